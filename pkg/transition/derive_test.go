package transition

import (
	"testing"

	"github.com/vango-dev/transitiongate/pkg/vdom"
)

func TestDerive(t *testing.T) {
	a1 := vdom.Div(vdom.Class("a"), "one")
	a2 := vdom.Div(vdom.Class("a"), "two")
	b := vdom.Section("b")

	tests := []struct {
		name string
		next *vdom.VNode
		prev State
		want Patch
	}{
		{
			name: "enter onto empty gate",
			next: a1,
			prev: State{},
			want: Patch{IsExit: false, SetChildren: true, Children: a1},
		},
		{
			name: "same type replaces immediately",
			next: a2,
			prev: State{Children: a1},
			want: Patch{IsExit: false, SetChildren: true, Children: a2},
		},
		{
			name: "same type cancels an exit",
			next: a2,
			prev: State{Children: a1, IsExit: true},
			want: Patch{IsExit: false, SetChildren: true, Children: a2},
		},
		{
			name: "different type exits old content",
			next: b,
			prev: State{Children: a1},
			want: Patch{IsExit: true},
		},
		{
			name: "removal exits old content",
			next: nil,
			prev: State{Children: a1},
			want: Patch{IsExit: true},
		},
		{
			name: "nothing to show or exit",
			next: nil,
			prev: State{},
			want: Patch{IsExit: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.next, tt.prev)
			if got != tt.want {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatchApply(t *testing.T) {
	a := vdom.Div()
	b := vdom.Span()

	s := Patch{IsExit: true}.Apply(State{Children: a})
	if s.Children != a || !s.IsExit {
		t.Errorf("exit patch: got %+v", s)
	}

	s = Patch{SetChildren: true, Children: b}.Apply(State{Children: a, IsExit: true})
	if s.Children != b || s.IsExit {
		t.Errorf("enter patch: got %+v", s)
	}

	s = Patch{SetChildren: true}.Apply(State{Children: a})
	if s.Children != nil {
		t.Errorf("patch with nil children should clear, got %+v", s)
	}
}
