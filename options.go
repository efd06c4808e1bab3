package distnose

import (
	"github.com/kchuriumova/distributed-nose/internal/logging"
	"github.com/kchuriumova/distributed-nose/internal/metrics"
	"github.com/kchuriumova/distributed-nose/types"
)

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		logger:  logging.NewSlogDefault(),
		metrics: metrics.NewNop(),
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	engine, err := distnose.NewEngine(ctx, cfg, distnose.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - collector: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "ci")
//	engine, err := distnose.NewEngine(ctx, cfg, distnose.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *engineOptions) {
		if collector != nil {
			o.metrics = collector
		}
	}
}
