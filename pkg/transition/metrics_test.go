package transition

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

func TestMetricsRecordTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	clock := loop.NewVirtual()
	g := New(clock, WithMetrics(m))

	mustUpdate := func(c *vdom.VNode) {
		t.Helper()
		if err := g.Update(props(c, 100*time.Millisecond)); err != nil {
			t.Fatal(err)
		}
	}

	mustUpdate(vdom.Div("A"))
	mustUpdate(vdom.Section("B")) // arm swap
	if v := metricGaugeValue(t, m.pending); v != 1 {
		t.Errorf("pending = %v, want 1", v)
	}

	mustUpdate(vdom.Div("A")) // same type as shown: cancel
	mustUpdate(nil)           // arm removal
	clock.Advance(100 * time.Millisecond)

	tests := []struct {
		name string
		c    prometheus.Counter
		want float64
	}{
		{"armed swap", m.armed.WithLabelValues("swap"), 1},
		{"armed removal", m.armed.WithLabelValues("removal"), 1},
		{"cancelled swap", m.cancelled.WithLabelValues("swap"), 1},
		{"completed removal", m.completed.WithLabelValues("removal"), 1},
		{"completed swap", m.completed.WithLabelValues("swap"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metricCounterValue(t, tt.c); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if v := metricGaugeValue(t, m.pending); v != 0 {
		t.Errorf("pending = %v, want 0", v)
	}

	var h dto.Metric
	if err := m.exitDuration.Write(&h); err != nil {
		t.Fatal(err)
	}
	if got := h.GetHistogram().GetSampleCount(); got != 2 {
		t.Errorf("exit duration samples = %d, want 2", got)
	}
}

func TestMetricsRecordDropped(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	sched := &stickyScheduler{}
	g := New(sched, WithMetrics(m))

	_ = g.Update(props(vdom.Div(), time.Second))
	_ = g.Update(props(nil, time.Second))
	g.Unmount()
	sched.fns[0]()

	if v := metricCounterValue(t, m.dropped.WithLabelValues("removal")); v != 1 {
		t.Errorf("dropped = %v, want 1", v)
	}
	if v := metricCounterValue(t, m.cancelled.WithLabelValues("removal")); v != 1 {
		t.Errorf("cancelled = %v, want 1", v)
	}
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithConstLabels(prometheus.Labels{"app": "test"}))

	clock := loop.NewVirtual()
	for i := 0; i < 3; i++ {
		g := New(clock, WithMetrics(m))
		_ = g.Update(props(vdom.Div(), 10*time.Millisecond))
		_ = g.Update(props(nil, 10*time.Millisecond))
	}

	if v := metricGaugeValue(t, m.pending); v != 3 {
		t.Errorf("pending = %v, want 3", v)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "transitiongate_gate_transitions_armed_total" {
			found = true
		}
	}
	if !found {
		t.Error("armed counter not registered under the default namespace")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.recordArmed(KindSwap, time.Second)
	m.recordCancelled(KindSwap)
	m.recordCompleted(KindSwap)
	m.recordDropped(KindSwap)
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}
