// Package transition implements the transition gate: a component that adds
// enter and exit classes to its children and keeps exiting content on screen
// long enough for an exit animation to play.
//
// # Lifecycle
//
// Every call to Gate.Update is one commit:
//
//  1. Derive computes the next State from the incoming children and the
//     previous State. It is pure and runs before rendering.
//  2. The gate renders from the new State and current Props.
//  3. The reaction step compares the previous Props, current Props and the
//     committed State, and arms, replaces or cancels the one pending
//     transition.
//
// A pending transition is either a removal (clear the displayed children)
// or a swap (replace exiting children with new children of another type).
// It fires after Props.ExitDuration, as fixed when it was armed, and then
// runs another commit.
//
// # Threading
//
// A Gate is not safe for concurrent use. All calls, and all timer
// callbacks, must run on one goroutine; loop.Loop provides that. Unmount
// disposes the gate's lifecycle owner, which cancels the pending transition
// so a callback that is already queued becomes a no-op.
//
// # Children
//
// Without wrap mode each top-level child (the node, or each child of a
// fragment) gets the class appended to its own class list. Only elements
// and vdom.ClassAcceptor components can carry a class. Other children are
// rendered unchanged, or rejected by Update when WithStrictChildren is set.
package transition
