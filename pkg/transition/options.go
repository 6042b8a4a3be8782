package transition

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/transitiongate/pkg/lifecycle"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics records transitions in m. Several gates may share one Metrics.
func WithMetrics(m *Metrics) Option {
	return func(g *Gate) {
		g.metrics = m
	}
}

// WithTracer sets the tracer used for transition spans. Defaults to the
// tracer named "transitiongate" from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Gate) {
		if tracer != nil {
			g.tracer = tracer
		}
	}
}

// WithParent makes the gate's lifecycle owner a child of parent, so
// disposing parent unmounts the gate. Dispose parent on the gate's loop.
func WithParent(parent *lifecycle.Owner) Option {
	return func(g *Gate) {
		g.parent = parent
	}
}

// WithOnCommit registers fn to receive every commit, including commits run
// by a transition firing.
func WithOnCommit(fn func(Commit)) Option {
	return func(g *Gate) {
		g.onCommit = fn
	}
}

// WithStrictChildren makes Update reject, in non-wrap mode, children that
// cannot carry a class (error E102). By default such children are rendered
// unchanged.
func WithStrictChildren(strict bool) Option {
	return func(g *Gate) {
		g.strict = strict
	}
}

// Commit describes one rendered frame.
type Commit struct {
	// Output is the rendered tree; nil when nothing is displayed.
	Output *vdom.VNode

	// State is the state the frame was rendered from.
	State State

	// Pending is the transition armed by this commit's reaction step,
	// or "" when none is pending.
	Pending Kind

	// Timer is true when the commit was run by a transition firing rather
	// than by Update.
	Timer bool
}
