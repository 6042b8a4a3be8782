package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw creates a node whose text is written without escaping.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. It accepts the same
// child arguments as element constructors; attributes are ignored.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	for _, c := range children {
		node.appendChild(c)
	}
	return node
}

// Key sets a node's key. Keys are informational here: type identity, not
// the key, decides whether content is replaced.
func Key(key any) Attr {
	return attr("key", fmt.Sprint(key))
}

// appendChild adds a child argument to v. It returns false when arg is not
// a child (an attribute, or an unsupported type).
func (v *VNode) appendChild(arg any) bool {
	switch c := arg.(type) {
	case nil:
	case *VNode:
		if c != nil {
			v.Children = append(v.Children, c)
		}
	case []*VNode:
		for _, n := range c {
			if n != nil {
				v.Children = append(v.Children, n)
			}
		}
	case Component:
		v.Children = append(v.Children, Comp(c))
	case string:
		v.Children = append(v.Children, Text(c))
	default:
		return false
	}
	return true
}
