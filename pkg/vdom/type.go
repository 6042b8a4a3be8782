package vdom

import "reflect"

// NodeType identifies the content kind of a node. Two nodes of the same
// NodeType are considered updates of one another; nodes of different
// NodeType are a content swap.
type NodeType struct {
	Kind VKind
	Tag  string
	Comp string
}

// Typed is implemented by components that report their own type name.
type Typed interface {
	ComponentType() string
}

// TypeOf returns the NodeType of node. A nil node has the zero NodeType.
//
// Elements are typed by tag. Components are typed by ComponentType when
// they implement Typed, otherwise by their Go dynamic type.
func TypeOf(node *VNode) NodeType {
	if node == nil {
		return NodeType{}
	}
	switch node.Kind {
	case KindElement:
		return NodeType{Kind: KindElement, Tag: node.Tag}
	case KindComponent:
		return NodeType{Kind: KindComponent, Comp: componentType(node.Comp)}
	default:
		return NodeType{Kind: node.Kind}
	}
}

// SameType reports whether a and b are non-nil and share a NodeType.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil {
		return false
	}
	return TypeOf(a) == TypeOf(b)
}

// String returns a compact description such as "Element<div>".
func (t NodeType) String() string {
	switch {
	case t.Tag != "":
		return t.Kind.String() + "<" + t.Tag + ">"
	case t.Comp != "":
		return t.Kind.String() + "<" + t.Comp + ">"
	default:
		return t.Kind.String()
	}
}

func componentType(c Component) string {
	if c == nil {
		return ""
	}
	if typed, ok := c.(Typed); ok {
		if name := typed.ComponentType(); name != "" {
			return name
		}
	}
	return reflect.TypeOf(c).String()
}
