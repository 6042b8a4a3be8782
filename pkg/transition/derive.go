package transition

import "github.com/vango-dev/transitiongate/pkg/vdom"

// State is the gate's internal state.
type State struct {
	// Children is the displayed content. It lags behind Props.Children
	// while old content is exiting.
	Children *vdom.VNode

	// IsExit is true while the displayed content plays its exit animation.
	IsExit bool
}

// Patch is a partial State update produced by Derive.
type Patch struct {
	IsExit bool

	// SetChildren reports whether Children replaces State.Children.
	SetChildren bool
	Children    *vdom.VNode
}

// Apply returns s with the patch applied.
func (p Patch) Apply(s State) State {
	s.IsExit = p.IsExit
	if p.SetChildren {
		s.Children = p.Children
	}
	return s
}

// Derive computes the state patch for incoming children next, given the
// previous state. New children of the displayed type (or onto an empty
// gate) enter immediately. Anything else starts an exit of the displayed
// children and leaves them in place.
func Derive(next *vdom.VNode, prev State) Patch {
	if next != nil {
		if prev.Children == nil || vdom.SameType(prev.Children, next) {
			return Patch{IsExit: false, SetChildren: true, Children: next}
		}
		return Patch{IsExit: true}
	}
	if prev.Children != nil {
		return Patch{IsExit: true}
	}
	return Patch{IsExit: false}
}
