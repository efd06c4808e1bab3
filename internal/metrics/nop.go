package metrics

import "github.com/kchuriumova/distributed-nose/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	engine, err := distnose.NewEngine(cfg, distnose.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordDecision discards the decision metric.
func (n *NopMetrics) RecordDecision(_ /* kind */ types.ItemKind, _ /* decision */ types.Decision) {
	// No-op
}

// RecordRingFallback discards the fallback metric.
func (n *NopMetrics) RecordRingFallback() {
	// No-op
}

// RecordBuildDuration discards the build duration metric.
func (n *NopMetrics) RecordBuildDuration(_ /* seconds */ float64) {
	// No-op
}

// SetBucketTotal discards the bucket total metric.
func (n *NopMetrics) SetBucketTotal(_ /* node */ types.NodeID, _ /* seconds */ float64) {
	// No-op
}
