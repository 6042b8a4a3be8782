package transition

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/transitiongate/internal/errors"
	"github.com/vango-dev/transitiongate/pkg/lifecycle"
	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

const tracerName = "transitiongate"

// Props are supplied by the gate's parent on every update.
type Props struct {
	// Children is the content to display, or nil for none.
	Children *vdom.VNode

	// EnterClass is applied while content is entering. Empty means none.
	EnterClass string

	// ExitClass is applied while content is exiting. Empty means none.
	ExitClass string

	// ExitDuration is how long exiting content stays rendered. It should
	// match the exit animation's duration plus delay.
	ExitDuration time.Duration

	// Wrap renders the children inside one container <div> carrying the
	// class, instead of adding the class to each child.
	Wrap bool
}

// Gate is a transition gate. Create one with New; the first Update mounts it.
type Gate struct {
	props   Props
	state   State
	pending *task

	scheduler loop.Scheduler
	parent    *lifecycle.Owner
	owner     *lifecycle.Owner

	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	onCommit func(Commit)
	strict   bool
	mounted  bool
}

// New creates an unmounted gate whose delayed transitions are scheduled on
// scheduler.
func New(scheduler loop.Scheduler, opts ...Option) *Gate {
	g := &Gate{
		scheduler: scheduler,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.owner = lifecycle.NewOwner(g.parent)
	g.owner.OnCleanup(g.cancelPending)
	g.logger = g.logger.With("gate", g.owner.ID())

	return g
}

// Update commits new props: derive, render, react.
func (g *Gate) Update(p Props) error {
	if g.owner.IsDisposed() {
		return errors.New("E103")
	}
	if p.ExitDuration < 0 {
		return errors.New("E101").WithDetailf("ExitDuration is %v.", p.ExitDuration)
	}
	if err := g.checkChildren(p); err != nil {
		return err
	}

	prev := g.props
	g.props = p
	g.mounted = true
	g.commit(prev, false)
	return nil
}

// checkChildren validates children that cannot carry a class in non-wrap
// mode: an error in strict mode, a debug log otherwise.
func (g *Gate) checkChildren(p Props) error {
	if p.Wrap || p.Children == nil {
		return nil
	}
	for _, child := range vdom.TopLevel(p.Children) {
		if vdom.Attributed(child) {
			continue
		}
		if g.strict {
			return errors.New("E102").
				WithDetailf("A %v child cannot carry the enter or exit class.", vdom.TypeOf(child)).
				WithSuggestion("Enable Wrap, or render an element or a vdom.ClassAcceptor component.")
		}
		g.logger.Debug("child rendered without transition class",
			"type", vdom.TypeOf(child).String())
	}
	return nil
}

// commit runs one derive/render/react cycle. prev holds the props of the
// previous commit.
func (g *Gate) commit(prev Props, timer bool) {
	g.state = Derive(g.props.Children, g.state).Apply(g.state)
	output := g.render()
	g.react(prev)

	if g.onCommit != nil {
		c := Commit{Output: output, State: g.state, Timer: timer}
		if g.pending != nil {
			c.Pending = g.pending.kind
		}
		g.onCommit(c)
	}
}

// react arms, replaces or cancels the pending transition after a commit.
func (g *Gate) react(prev Props) {
	next := g.props.Children
	shown := g.state.Children

	switch {
	case next == nil && shown != nil:
		g.arm(KindRemoval, nil)

	case next != nil && shown != next && prev.Children != nil && !vdom.SameType(prev.Children, next):
		g.arm(KindSwap, next)

	case next != nil && g.state.IsExit && !vdom.SameType(shown, next):
		// Exiting content of another type with no type change since the
		// previous props: the exit still has to finish.
		g.arm(KindSwap, next)

	default:
		g.cancelPending()
	}
}

// arm schedules a transition after the current ExitDuration, cancelling the
// pending one first. When the pending transition already does the same
// thing (a removal, or a swap to children of the same type) it is kept with
// its original deadline and only its target is updated.
func (g *Gate) arm(kind Kind, next *vdom.VNode) {
	if t := g.pending; t != nil && t.kind == kind && (kind == KindRemoval || vdom.SameType(t.next, next)) {
		t.next = next
		return
	}
	g.cancelPending()

	d := g.props.ExitDuration
	spanCtx, span := g.tracer.Start(g.owner.Context(), "transition."+string(kind),
		trace.WithAttributes(
			attribute.Int64("gate.id", int64(g.owner.ID())),
			attribute.String("transition.kind", string(kind)),
			attribute.Int64("transition.exit_duration_ms", d.Milliseconds()),
			attribute.String("transition.from", vdom.TypeOf(g.state.Children).String()),
			attribute.String("transition.to", vdom.TypeOf(next).String()),
		),
	)
	ctx, cancel := context.WithCancel(spanCtx)

	t := &task{
		kind:     kind,
		next:     next,
		duration: d,
		ctx:      ctx,
		cancel:   cancel,
		span:     span,
	}
	g.pending = t
	t.handle = g.scheduler.AfterFunc(d, func() { g.fire(t) })

	g.metrics.recordArmed(kind, d)
	g.logger.Debug("transition armed", "kind", kind, "exit_duration", d)
}

// fire applies the state change a task deferred, then commits.
func (g *Gate) fire(t *task) {
	if !t.live() || g.pending != t {
		g.metrics.recordDropped(t.kind)
		g.logger.Debug("transition dropped", "kind", t.kind)
		return
	}

	g.pending = nil
	switch t.kind {
	case KindRemoval:
		g.state.Children = nil
	case KindSwap:
		g.state.Children = t.next
	}
	t.finish(outcomeCompleted)
	g.metrics.recordCompleted(t.kind)
	g.logger.Debug("transition completed", "kind", t.kind, "exit_duration", t.duration)

	g.commit(g.props, true)
}

// cancelPending stops and forgets the pending transition, if any.
func (g *Gate) cancelPending() {
	t := g.pending
	if t == nil {
		return
	}
	g.pending = nil
	t.handle.Stop()
	t.finish(outcomeCancelled)
	g.metrics.recordCancelled(t.kind)
}

// Render implements vdom.Component. It renders nothing once the gate is
// unmounted.
func (g *Gate) Render() *vdom.VNode {
	if g.owner.IsDisposed() {
		return nil
	}
	return g.render()
}

// State returns the current state.
func (g *Gate) State() State {
	return g.state
}

// Props returns the props of the last successful Update.
func (g *Gate) Props() Props {
	return g.props
}

// Pending returns the kind of the armed transition, or "" if none.
func (g *Gate) Pending() Kind {
	if g.pending == nil {
		return ""
	}
	return g.pending.kind
}

// Mounted reports whether the gate has been updated at least once and not
// yet unmounted.
func (g *Gate) Mounted() bool {
	return g.mounted && !g.owner.IsDisposed()
}

// Unmount tears the gate down. The pending transition is cancelled and any
// callback already on its way is ignored. Unmount is idempotent.
func (g *Gate) Unmount() {
	if g.owner.IsDisposed() {
		return
	}
	g.owner.Dispose()
	g.logger.Debug("gate unmounted")
}
