package transition

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

// Kind identifies a delayed transition.
type Kind string

const (
	// KindRemoval clears exiting children once the exit has played.
	KindRemoval Kind = "removal"

	// KindSwap replaces exiting children with new children of another type.
	KindSwap Kind = "swap"
)

// task is one armed transition. Its context derives from the gate owner,
// so disposing the owner cancels it.
type task struct {
	kind     Kind
	next     *vdom.VNode // swap target; nil for removal
	duration time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	handle loop.Handle
	span   trace.Span
}

// live reports whether the task may still mutate gate state.
func (t *task) live() bool {
	return t.ctx.Err() == nil
}

// finish releases the task's context and ends its span with the given
// outcome.
func (t *task) finish(outcome string) {
	t.cancel()
	t.span.SetAttributes(attribute.String("transition.outcome", outcome))
	if outcome == outcomeCompleted {
		t.span.SetStatus(codes.Ok, "")
	}
	t.span.End()
}

const (
	outcomeCompleted = "completed"
	outcomeCancelled = "cancelled"
)
