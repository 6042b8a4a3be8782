package vdom

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element, which is
// rendered without children or a closing tag.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement builds an element node. Each arg is an Attr, []Attr or a
// child (see Fragment); nil and unknown values are skipped.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		switch a := arg.(type) {
		case Attr:
			node.setAttr(a)
		case []Attr:
			for _, each := range a {
				node.setAttr(each)
			}
		default:
			node.appendChild(arg)
		}
	}
	return node
}

func (v *VNode) setAttr(a Attr) {
	switch {
	case a.IsEmpty():
	case a.Key == "key":
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	default:
		v.Props[a.Key] = a.Value
	}
}

func Html(args ...any) *VNode    { return createElement("html", args) }
func Head(args ...any) *VNode    { return createElement("head", args) }
func Body(args ...any) *VNode    { return createElement("body", args) }
func Title(args ...any) *VNode   { return createElement("title", args) }
func Meta(args ...any) *VNode    { return createElement("meta", args) }
func Style(args ...any) *VNode   { return createElement("style", args) }
func Script(args ...any) *VNode  { return createElement("script", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func Div(args ...any) *VNode     { return createElement("div", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }
func Li(args ...any) *VNode      { return createElement("li", args) }
func Em(args ...any) *VNode      { return createElement("em", args) }
func Img(args ...any) *VNode     { return createElement("img", args) }

// CustomElement creates an element with any tag name.
func CustomElement(tag string, args ...any) *VNode {
	return createElement(tag, args)
}
