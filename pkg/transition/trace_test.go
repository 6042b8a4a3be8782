package transition

import (
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/vango-dev/transitiongate/pkg/vdom"
)

func newTracedHarness(t *testing.T) (*harness, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return newHarness(t, WithTracer(tp.Tracer("test"))), recorder
}

func attrString(span sdktrace.ReadOnlySpan, key attribute.Key) string {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

func TestTransitionSpans(t *testing.T) {
	a := vdom.Div("A")
	b := vdom.Span("B")

	tests := []struct {
		name    string
		run     func(t *testing.T, h *harness)
		span    string
		outcome string
		ok      bool
	}{
		{
			name: "removal completes",
			run: func(t *testing.T, h *harness) {
				h.update(t, props(a, 100*time.Millisecond))
				h.update(t, props(nil, 100*time.Millisecond))
				h.clock.Advance(100 * time.Millisecond)
			},
			span:    "transition.removal",
			outcome: "completed",
			ok:      true,
		},
		{
			name: "swap cancelled by return",
			run: func(t *testing.T, h *harness) {
				h.update(t, props(a, 100*time.Millisecond))
				h.update(t, props(b, 100*time.Millisecond))
				h.update(t, props(a, 100*time.Millisecond))
			},
			span:    "transition.swap",
			outcome: "cancelled",
		},
		{
			name: "removal cancelled by unmount",
			run: func(t *testing.T, h *harness) {
				h.update(t, props(a, 100*time.Millisecond))
				h.update(t, props(nil, 100*time.Millisecond))
				h.gate.Unmount()
			},
			span:    "transition.removal",
			outcome: "cancelled",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, recorder := newTracedHarness(t)
			tt.run(t, h)

			spans := recorder.Ended()
			if len(spans) != 1 {
				t.Fatalf("got %d ended spans, want 1", len(spans))
			}
			span := spans[0]
			if span.Name() != tt.span {
				t.Errorf("name = %q, want %q", span.Name(), tt.span)
			}
			if got := attrString(span, "transition.outcome"); got != tt.outcome {
				t.Errorf("outcome = %q, want %q", got, tt.outcome)
			}
			if got := attrString(span, "transition.exit_duration_ms"); got != "100" {
				t.Errorf("exit_duration_ms = %q, want 100", got)
			}
			if (span.Status().Code == codes.Ok) != tt.ok {
				t.Errorf("status = %v", span.Status().Code)
			}
		})
	}
}

func TestTransitionSpanRetargetKeepsSpan(t *testing.T) {
	h, recorder := newTracedHarness(t)
	h.update(t, props(vdom.Div("A"), 100*time.Millisecond))
	h.update(t, props(vdom.Span("B1"), 100*time.Millisecond))
	h.update(t, props(vdom.Span("B2"), 100*time.Millisecond))
	h.clock.Advance(100 * time.Millisecond)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d ended spans, want 1", len(spans))
	}
	if got := attrString(spans[0], "transition.from"); got == "" {
		t.Error("transition.from not set")
	}
}
