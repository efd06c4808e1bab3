package distnose

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/kchuriumova/distributed-nose/partitioner"
	"github.com/kchuriumova/distributed-nose/types"
)

// Engine decides, for each discovered test item, whether it runs on this
// node. It is the single entry point a host test framework consumes.
//
// Lifecycle is strictly two-phase. NewEngine performs the one-time build:
// validate configuration, load duration data, construct the hash ring and
// (for least-processing-time) the full assignment table. After that the
// engine is read-only; the Want* callbacks are pure lookups and safe for
// concurrent use.
//
// A disabled engine (node count of 1, explicit disable switch, or invalid
// node configuration) answers Defer to every query, leaving the host
// framework's behavior unchanged.
type Engine struct {
	nodeID      types.NodeID
	nodeCount   int
	algorithm   types.Algorithm
	granularity types.Granularity
	enabled     bool

	ring *partitioner.ConsistentHash
	lpt  *partitioner.LeastProcessingTime

	// resolved memoizes key -> node so repeated queries for the same key
	// (e.g. a class key probed once per method) skip the ring walk. Safe for
	// concurrent query-phase use.
	resolved *xsync.Map[string, types.NodeID]

	logger  types.Logger
	metrics types.MetricsCollector
}

// NewEngine validates the configuration and builds a ready-to-query engine.
//
// Configuration errors (non-integer node values, out-of-range node number,
// unknown algorithm) are logged and produce a disabled engine with a nil
// error: a misconfigured distribution flag should not crash an otherwise
// working test run. Duration-data errors are fatal and returned: proceeding
// with partial data would let nodes silently diverge in their assignment
// tables.
//
// Parameters:
//   - ctx: Context for the build phase (duration-data loading)
//   - cfg: Engine configuration (see Config, ConfigFromEnv)
//   - opts: Optional dependencies (WithLogger, WithMetrics)
//
// Returns:
//   - *Engine: Ready engine; disabled rather than nil on recoverable config errors
//   - error: Fatal duration-data error (types.IsDataError returns true)
//
// Example:
//
//	cfg, _ := distnose.ConfigFromEnv(ctx)
//	engine, err := distnose.NewEngine(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if engine.WantFunction("pkg/app", "TestLogin") == distnose.Include {
//	    // run the test
//	}
func NewEngine(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	ApplyDefaults(&cfg)

	eng := &Engine{
		resolved: xsync.NewMap[string, types.NodeID](),
		logger:   o.logger,
		metrics:  o.metrics,
	}

	s, err := cfg.normalize()
	if err != nil {
		eng.logger.Error("invalid test distribution configuration, disabling", "error", err)
		return eng, nil
	}

	eng.nodeID = s.nodeID
	eng.nodeCount = s.nodeCount
	eng.algorithm = s.algorithm
	eng.granularity = s.granularity

	if cfg.Disabled {
		eng.logger.Info("test distribution explicitly disabled")
		return eng, nil
	}

	popts := []partitioner.Option{
		partitioner.WithVirtualNodes(s.virtualNodes),
		partitioner.WithHashSeed(s.hashSeed),
	}

	ring, err := partitioner.NewConsistentHash(s.nodeCount, popts...)
	if err != nil {
		// normalize guarantees nodeCount >= 1, so this is an internal defect.
		return nil, fmt.Errorf("building hash ring: %w", err)
	}
	eng.ring = ring

	if s.algorithm == types.AlgorithmLeastProcessingTime {
		src, err := cfg.durationSource()
		if err != nil {
			eng.logger.Error("least-processing-time selected without duration data, aborting", "error", err)
			return nil, err
		}

		record, err := src.Load(ctx)
		if err != nil {
			eng.logger.Error("loading duration data failed, aborting", "error", err)
			return nil, err
		}

		lpt, err := partitioner.NewLeastProcessingTime(s.nodeCount, record, popts...)
		if err != nil {
			return nil, fmt.Errorf("building assignment table: %w", err)
		}
		eng.lpt = lpt

		for _, bucket := range lpt.Buckets() {
			eng.metrics.SetBucketTotal(bucket.Node, bucket.Total)
		}
	}

	// Distribution only makes sense with more than one node.
	eng.enabled = s.nodeCount > 1

	eng.metrics.RecordBuildDuration(time.Since(start).Seconds())
	eng.logger.Info("test distribution configured",
		"node", eng.nodeID,
		"nodes", eng.nodeCount,
		"algorithm", eng.algorithm,
		"granularity", eng.granularity.String(),
		"enabled", eng.enabled,
	)

	return eng, nil
}

// Enabled reports whether the engine makes partitioning decisions at all.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// NodeID returns this node's 1-indexed identity (0 if configuration failed).
func (e *Engine) NodeID() types.NodeID {
	return e.nodeID
}

// NodeCount returns the total node count (0 if configuration failed).
func (e *Engine) NodeCount() int {
	return e.nodeCount
}

// Algorithm returns the configured partitioning algorithm.
func (e *Engine) Algorithm() types.Algorithm {
	return e.algorithm
}

// Granularity returns the configured decision granularity.
func (e *Engine) Granularity() types.Granularity {
	return e.granularity
}

// Buckets returns the LPT assignment table, one bucket per node, or nil when
// the engine does not use least-processing-time.
func (e *Engine) Buckets() []partitioner.Bucket {
	if e.lpt == nil {
		return nil
	}

	return e.lpt.Buckets()
}

// WantFunction decides membership for a bare test function.
//
// Bare functions are always decided directly, at every granularity.
//
// Parameters:
//   - module: Module or package path containing the function
//   - name: Function name
//
// Returns:
//   - types.Decision: Include, Exclude, or Defer (engine disabled)
func (e *Engine) WantFunction(module, name string) types.Decision {
	if !e.enabled {
		return e.record(types.KindFunction, types.Defer)
	}

	return e.record(types.KindFunction, e.decide(types.FunctionKey(module, name)))
}

// WantMethod decides membership for a test method.
//
// At per-class granularity the method defers: the decision was already made
// at the class level and must not be overridden here. At per-item
// granularity the method is decided individually.
//
// Parameters:
//   - module: Module or package path containing the class
//   - class: Class name
//   - method: Method name
//
// Returns:
//   - types.Decision: Include, Exclude, or Defer
func (e *Engine) WantMethod(module, class, method string) types.Decision {
	if !e.enabled || e.granularity == types.PerClass {
		return e.record(types.KindMethod, types.Defer)
	}

	return e.record(types.KindMethod, e.decide(types.MethodKey(module, class, method)))
}

// WantClass decides membership for a test class.
//
// At per-item granularity the class defers entirely: each method is decided
// individually by WantMethod. At per-class granularity the class is decided
// here and its methods defer.
//
// Parameters:
//   - module: Module or package path containing the class
//   - class: Class name
//
// Returns:
//   - types.Decision: Include, Exclude, or Defer
func (e *Engine) WantClass(module, class string) types.Decision {
	if !e.enabled || e.granularity != types.PerClass {
		return e.record(types.KindClass, types.Defer)
	}

	return e.record(types.KindClass, e.decide(types.ClassKey(module, class)))
}

// ResolveKey returns the node owning an item key, bypassing granularity
// rules. Intended for tooling and tests.
//
// Parameters:
//   - key: Item key to resolve
//
// Returns:
//   - types.NodeID: Owning node
//   - bool: false when the engine has no partitioner (disabled before build)
func (e *Engine) ResolveKey(key string) (types.NodeID, bool) {
	if e.ring == nil {
		return 0, false
	}

	return e.resolve(key), true
}

// decide maps a key's owning node to an include/exclude decision for this node.
func (e *Engine) decide(key string) types.Decision {
	if e.resolve(key) == e.nodeID {
		return types.Include
	}

	return types.Exclude
}

// resolve returns the node owning key, memoizing the result. A racing
// double-lookup is harmless: lookup is deterministic.
func (e *Engine) resolve(key string) types.NodeID {
	if node, ok := e.resolved.Load(key); ok {
		return node
	}

	node, _ := e.resolved.LoadOrStore(key, e.lookup(key))

	return node
}

// lookup consults the configured partitioner.
func (e *Engine) lookup(key string) types.NodeID {
	if e.lpt != nil {
		if node, ok := e.lpt.Owner(key); ok {
			return node
		}

		// No recorded duration for this key. Inserting it into the greedy
		// schedule would make the result depend on discovery order, which
		// differs between nodes, so unknown keys go to the hash ring.
		e.metrics.RecordRingFallback()

		return e.lpt.Fallback().Node(key)
	}

	return e.ring.Node(key)
}

// record reports the decision to the metrics collector and passes it through.
func (e *Engine) record(kind types.ItemKind, d types.Decision) types.Decision {
	e.metrics.RecordDecision(kind, d)
	return d
}
