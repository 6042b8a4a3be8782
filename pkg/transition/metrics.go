package transition

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the gate metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "transitiongate").
	Namespace string

	// Subsystem is the metrics subsystem (default: "gate").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for armed exit durations, in seconds.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the gate metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "transitiongate",
		Subsystem: "gate",
		Buckets:   []float64{0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors shared by any number of gates.
// A nil *Metrics records nothing.
type Metrics struct {
	armed        *prometheus.CounterVec
	cancelled    *prometheus.CounterVec
	completed    *prometheus.CounterVec
	dropped      *prometheus.CounterVec
	pending      prometheus.Gauge
	exitDuration prometheus.Histogram
}

// NewMetrics creates and registers the gate collectors.
//
// Metrics collected:
//   - transitiongate_gate_transitions_armed_total{kind}
//   - transitiongate_gate_transitions_cancelled_total{kind}
//   - transitiongate_gate_transitions_completed_total{kind}
//   - transitiongate_gate_transitions_dropped_total{kind}
//   - transitiongate_gate_pending_transitions
//   - transitiongate_gate_exit_duration_seconds
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		armed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_armed_total",
			Help:        "Delayed transitions scheduled, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		cancelled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_cancelled_total",
			Help:        "Delayed transitions cancelled before firing, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		completed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_completed_total",
			Help:        "Delayed transitions applied, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "transitions_dropped_total",
			Help:        "Timer callbacks that fired for a cancelled or unmounted gate, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pending_transitions",
			Help:        "Delayed transitions currently armed",
			ConstLabels: config.ConstLabels,
		}),

		exitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "exit_duration_seconds",
			Help:        "Exit durations of armed transitions",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) recordArmed(kind Kind, d time.Duration) {
	if m == nil {
		return
	}
	m.armed.WithLabelValues(string(kind)).Inc()
	m.exitDuration.Observe(d.Seconds())
	m.pending.Inc()
}

func (m *Metrics) recordCancelled(kind Kind) {
	if m == nil {
		return
	}
	m.cancelled.WithLabelValues(string(kind)).Inc()
	m.pending.Dec()
}

func (m *Metrics) recordCompleted(kind Kind) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(string(kind)).Inc()
	m.pending.Dec()
}

func (m *Metrics) recordDropped(kind Kind) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(string(kind)).Inc()
}
