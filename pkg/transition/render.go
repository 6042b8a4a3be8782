package transition

import "github.com/vango-dev/transitiongate/pkg/vdom"

// class returns the class for the current phase.
func (g *Gate) class() string {
	if g.state.IsExit {
		return g.props.ExitClass
	}
	return g.props.EnterClass
}

// render builds the output tree from the current state and props.
func (g *Gate) render() *vdom.VNode {
	children := g.state.Children
	if children == nil {
		return nil
	}
	class := g.class()

	if g.props.Wrap {
		return vdom.Div(vdom.ClassIf(class != "", class), children)
	}

	if children.Kind != vdom.KindFragment {
		return vdom.WithExtraClass(children, class)
	}

	out := make([]*vdom.VNode, 0, len(children.Children))
	for _, child := range children.Children {
		out = append(out, vdom.WithExtraClass(child, class))
	}
	frag := vdom.Fragment(out)
	frag.Key = children.Key
	return frag
}
