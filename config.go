package distnose

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sethvargo/go-envconfig"

	"github.com/kchuriumova/distributed-nose/partitioner"
	"github.com/kchuriumova/distributed-nose/source"
	"github.com/kchuriumova/distributed-nose/types"
)

// Config is the configuration for the Engine.
//
// Nodes and NodeNumber are kept as raw strings because they typically arrive
// from environment variables or CLI flags; the engine parses and validates
// them itself so a typo disables distribution gracefully instead of crashing
// the test run.
type Config struct {
	// Nodes is the total number of worker nodes the suite is split across.
	// Must parse as a positive integer. Default: "1".
	Nodes string `env:"DISTNOSE_NODES, default=1"`

	// NodeNumber is this node's 1-indexed identity among Nodes.
	// Must parse as an integer in [1, Nodes]. Default: "1".
	NodeNumber string `env:"DISTNOSE_NODE_NUMBER, default=1"`

	// Disabled forces the engine off regardless of the node count. Useful
	// when configuration comes from the environment and distribution must be
	// switched off temporarily.
	Disabled bool `env:"DISTNOSE_DISABLED, default=false"`

	// HashByClass keeps all methods of a class on the same node by deciding
	// membership once per class instead of once per item. Reduces duplicated
	// class setup/teardown work at the cost of a less even split.
	HashByClass bool `env:"DISTNOSE_HASH_BY_CLASS, default=false"`

	// Algorithm selects the partitioning algorithm: "consistent-hash"
	// (default) or "least-processing-time".
	Algorithm string `env:"DISTNOSE_ALGORITHM, default=consistent-hash"`

	// LPTDataPath is the duration-data file consumed by
	// least-processing-time. Required for that algorithm unless
	// DurationSource is set.
	LPTDataPath string `env:"DISTNOSE_LPT_DATA"`

	// DurationSource overrides LPTDataPath with a custom source.
	// Takes precedence when both are set. Not settable from the environment.
	DurationSource types.DurationSource

	// VirtualNodes is the number of virtual nodes per worker on the hash
	// ring. All nodes in a fleet must agree on this value.
	// Default: partitioner.DefaultVirtualNodes.
	VirtualNodes int `env:"DISTNOSE_VIRTUAL_NODES, default=0"`

	// HashSeed seeds the ring hash function. All nodes in a fleet must agree
	// on this value. Default: 0 (unseeded).
	HashSeed uint64 `env:"DISTNOSE_HASH_SEED, default=0"`
}

// DefaultConfig returns a Config with sensible defaults: a single node
// running everything, consistent hashing, per-item granularity.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Nodes:        "1",
		NodeNumber:   "1",
		Algorithm:    string(types.AlgorithmConsistentHash),
		VirtualNodes: partitioner.DefaultVirtualNodes,
	}
}

// ApplyDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Nodes == "" {
		cfg.Nodes = defaults.Nodes
	}
	if cfg.NodeNumber == "" {
		cfg.NodeNumber = defaults.NodeNumber
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = defaults.Algorithm
	}
	if cfg.VirtualNodes == 0 {
		cfg.VirtualNodes = defaults.VirtualNodes
	}
}

// ConfigFromEnv builds a Config from DISTNOSE_* environment variables.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - Config: Configuration populated from the process environment
//   - error: Environment parsing error (e.g., non-boolean DISTNOSE_DISABLED)
//
// Example:
//
//	cfg, err := distnose.ConfigFromEnv(ctx)
//	if err != nil { /* handle */ }
//	engine, err := distnose.NewEngine(ctx, cfg)
func ConfigFromEnv(ctx context.Context) (Config, error) {
	return ConfigFromLookuper(ctx, envconfig.OsLookuper())
}

// ConfigFromLookuper builds a Config from the given envconfig lookuper.
// Useful in tests with envconfig.MapLookuper.
//
// Parameters:
//   - ctx: Context for cancellation
//   - lookuper: Variable source
//
// Returns:
//   - Config: Configuration populated from the lookuper
//   - error: Environment parsing error
func ConfigFromLookuper(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	ApplyDefaults(&cfg)

	return cfg, nil
}

// settings is the validated, typed form of Config used to build partitioners.
type settings struct {
	nodeCount    int
	nodeID       types.NodeID
	algorithm    types.Algorithm
	granularity  types.Granularity
	virtualNodes int
	hashSeed     uint64
}

// normalize parses and validates the raw configuration.
//
// The returned error, when non-nil, is always one of the recoverable
// configuration errors (see types.IsConfigError): the caller disables the
// engine and lets the run proceed unfiltered.
func (cfg *Config) normalize() (settings, error) {
	var s settings

	nodeCount, err := strconv.Atoi(cfg.Nodes)
	if err != nil {
		return s, fmt.Errorf("%w: nodes %q", types.ErrInvalidInteger, cfg.Nodes)
	}

	nodeNumber, err := strconv.Atoi(cfg.NodeNumber)
	if err != nil {
		return s, fmt.Errorf("%w: node number %q", types.ErrInvalidInteger, cfg.NodeNumber)
	}

	if nodeNumber > nodeCount {
		return s, fmt.Errorf("%w: node number %d, nodes %d", types.ErrNodeIDTooLarge, nodeNumber, nodeCount)
	}
	if nodeNumber < 1 {
		return s, fmt.Errorf("%w: node number %d", types.ErrNodeIDTooSmall, nodeNumber)
	}

	algorithm, err := types.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return s, err
	}

	s.nodeCount = nodeCount
	s.nodeID = types.NodeID(nodeNumber)
	s.algorithm = algorithm
	s.granularity = types.PerItem
	if cfg.HashByClass {
		s.granularity = types.PerClass
	}
	s.virtualNodes = cfg.VirtualNodes
	s.hashSeed = cfg.HashSeed

	return s, nil
}

// durationSource picks the duration source for least-processing-time:
// an explicit DurationSource wins over LPTDataPath.
func (cfg *Config) durationSource() (types.DurationSource, error) {
	if cfg.DurationSource != nil {
		return cfg.DurationSource, nil
	}
	if cfg.LPTDataPath != "" {
		return source.NewFile(cfg.LPTDataPath), nil
	}

	return nil, types.ErrMissingDurationData
}
