package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kchuriumova/distributed-nose/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	decisions     *prometheus.CounterVec
	ringFallbacks prometheus.Counter
	buildDuration prometheus.Histogram
	bucketTotals  *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "distnose" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "distnose"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "decisions_total",
			Help:      "Total membership decisions by item kind and outcome.",
		}, []string{"kind", "decision"})

		p.ringFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "resolver",
			Name:      "ring_fallbacks_total",
			Help:      "Total LPT lookups that fell back to the hash ring.",
		})

		p.buildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "build_duration_seconds",
			Help:      "Time spent in the one-time configuration/build phase.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		})

		p.bucketTotals = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "lpt",
			Name:      "bucket_seconds",
			Help:      "Accumulated historical duration assigned to each node by LPT.",
		}, []string{"node"})

		for _, c := range []prometheus.Collector{p.decisions, p.ringFallbacks, p.buildDuration, p.bucketTotals} {
			// AlreadyRegisteredError is tolerated so two engines sharing a
			// registry don't panic.
			_ = p.reg.Register(c)
		}
	})
}

// RecordDecision increments the decision counter for the given kind/outcome.
func (p *PrometheusCollector) RecordDecision(kind types.ItemKind, decision types.Decision) {
	p.ensureRegistered()
	p.decisions.WithLabelValues(kind.String(), decision.String()).Inc()
}

// RecordRingFallback increments the ring fallback counter.
func (p *PrometheusCollector) RecordRingFallback() {
	p.ensureRegistered()
	p.ringFallbacks.Inc()
}

// RecordBuildDuration observes the build phase duration.
func (p *PrometheusCollector) RecordBuildDuration(seconds float64) {
	p.ensureRegistered()
	p.buildDuration.Observe(seconds)
}

// SetBucketTotal sets the LPT bucket total gauge for a node.
func (p *PrometheusCollector) SetBucketTotal(node types.NodeID, seconds float64) {
	p.ensureRegistered()
	p.bucketTotals.WithLabelValues(node.String()).Set(seconds)
}
