package vdom

import "testing"

type plainComponent struct{ label string }

func (p plainComponent) Render() *VNode { return Span(p.label) }

type otherComponent struct{}

func (otherComponent) Render() *VNode { return nil }

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		a, b *VNode
		same bool
	}{
		{"same tag different props", Div(Class("x"), "one"), Div("two"), true},
		{"different tags", Div(), Span(), false},
		{"text nodes", Text("a"), Text("b"), true},
		{"text vs element", Text("a"), Span(), false},
		{"same named func", Comp(NamedFunc("card", nil)), Comp(NamedFunc("card", nil)), true},
		{"different named func", Comp(NamedFunc("card", nil)), Comp(NamedFunc("list", nil)), false},
		{"same go type", Comp(plainComponent{"a"}), Comp(plainComponent{"b"}), true},
		{"different go types", Comp(plainComponent{}), Comp(otherComponent{}), false},
		{"component vs element", Comp(plainComponent{}), Span(), false},
		{"nil left", nil, Div(), false},
		{"both nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameType(tt.a, tt.b); got != tt.same {
				t.Errorf("SameType = %v, want %v (%v vs %v)", got, tt.same, TypeOf(tt.a), TypeOf(tt.b))
			}
		})
	}
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		node *VNode
		want string
	}{
		{Div(), "Element<div>"},
		{Text("x"), "Text"},
		{Comp(NamedFunc("card", nil)), "Component<card>"},
		{Fragment(), "Fragment"},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.node).String(); got != tt.want {
			t.Errorf("TypeOf().String() = %q, want %q", got, tt.want)
		}
	}
}
