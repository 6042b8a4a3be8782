package vdom

import "strings"

// ClassAcceptor is implemented by components that take a class list from
// their parent, the way elements take a class attribute.
type ClassAcceptor interface {
	Component
	WithClass(class string) Component
}

// JoinClasses joins class names with single spaces, skipping empty parts.
func JoinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// ClassOf returns the class attribute of an element node.
// "className" is accepted as an alias of "class".
func ClassOf(node *VNode) string {
	if node == nil || node.Props == nil {
		return ""
	}
	if s, ok := node.Props["class"].(string); ok {
		return s
	}
	if s, ok := node.Props["className"].(string); ok {
		return s
	}
	return ""
}

// Attributed reports whether node can carry an extra class: elements
// always can, components only when they implement ClassAcceptor.
func Attributed(node *VNode) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case KindElement:
		return true
	case KindComponent:
		_, ok := node.Comp.(ClassAcceptor)
		return ok
	default:
		return false
	}
}

// WithExtraClass returns a shallow clone of node whose class list is the
// node's own classes followed by extra. The original node is not modified.
// Nodes that are not Attributed are returned unchanged, as is any node
// when extra is empty.
func WithExtraClass(node *VNode, extra string) *VNode {
	if node == nil || strings.TrimSpace(extra) == "" || !Attributed(node) {
		return node
	}

	clone := *node
	switch node.Kind {
	case KindElement:
		props := make(Props, len(node.Props)+1)
		for k, v := range node.Props {
			props[k] = v
		}
		delete(props, "className")
		props["class"] = JoinClasses(ClassOf(node), extra)
		clone.Props = props
	case KindComponent:
		clone.Comp = node.Comp.(ClassAcceptor).WithClass(extra)
	}
	return &clone
}

// TopLevel returns the top-level children of node: the children of a
// fragment, or the node itself otherwise.
func TopLevel(node *VNode) []*VNode {
	if node == nil {
		return nil
	}
	if node.Kind == KindFragment {
		return node.Children
	}
	return []*VNode{node}
}

// classComponent is a component rendered from a class list.
type classComponent struct {
	name   string
	class  string
	render func(class string) *VNode
}

// ClassFunc creates a named component that receives its class list from the
// parent. Appending classes via WithClass keeps the same component type.
func ClassFunc(name string, render func(class string) *VNode) Component {
	return &classComponent{name: name, render: render}
}

func (c *classComponent) Render() *VNode { return c.render(c.class) }

func (c *classComponent) ComponentType() string { return c.name }

func (c *classComponent) WithClass(class string) Component {
	return &classComponent{
		name:   c.name,
		class:  JoinClasses(c.class, class),
		render: c.render,
	}
}
