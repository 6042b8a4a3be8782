// Package vdom provides the virtual node model rendered by transition gates.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes; Attr is used
// to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Node types
//
// TypeOf reports the content kind of a node (element tag, component type).
// Transition gates compare types to tell a content update from a content
// swap.
//
// # Classes
//
// WithExtraClass clones an element, or a ClassAcceptor component, with
// classes appended to its own class list. Text and raw nodes carry no
// attributes and are returned unchanged.
package vdom
