package distnose

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"

	"github.com/kchuriumova/distributed-nose/partitioner"
	"github.com/kchuriumova/distributed-nose/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "1", cfg.Nodes)
	require.Equal(t, "1", cfg.NodeNumber)
	require.False(t, cfg.Disabled)
	require.False(t, cfg.HashByClass)
	require.Equal(t, "consistent-hash", cfg.Algorithm)
	require.Empty(t, cfg.LPTDataPath)
	require.Equal(t, partitioner.DefaultVirtualNodes, cfg.VirtualNodes)
	require.Equal(t, uint64(0), cfg.HashSeed)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		ApplyDefaults(&cfg)

		require.Equal(t, "1", cfg.Nodes)
		require.Equal(t, "1", cfg.NodeNumber)
		require.Equal(t, "consistent-hash", cfg.Algorithm)
		require.Equal(t, partitioner.DefaultVirtualNodes, cfg.VirtualNodes)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Nodes:        "8",
			NodeNumber:   "3",
			Algorithm:    "least-processing-time",
			VirtualNodes: 300,
		}
		ApplyDefaults(&cfg)

		require.Equal(t, "8", cfg.Nodes)
		require.Equal(t, "3", cfg.NodeNumber)
		require.Equal(t, "least-processing-time", cfg.Algorithm)
		require.Equal(t, 300, cfg.VirtualNodes)
	})
}

func TestConfigFromLookuper(t *testing.T) {
	ctx := context.Background()

	t.Run("empty environment yields defaults", func(t *testing.T) {
		cfg, err := ConfigFromLookuper(ctx, envconfig.MapLookuper(nil))
		require.NoError(t, err)
		require.Equal(t, "1", cfg.Nodes)
		require.Equal(t, "1", cfg.NodeNumber)
		require.Equal(t, "consistent-hash", cfg.Algorithm)
		require.False(t, cfg.Disabled)
	})

	t.Run("reads the full variable set", func(t *testing.T) {
		cfg, err := ConfigFromLookuper(ctx, envconfig.MapLookuper(map[string]string{
			"DISTNOSE_NODES":         "4",
			"DISTNOSE_NODE_NUMBER":   "2",
			"DISTNOSE_DISABLED":      "true",
			"DISTNOSE_HASH_BY_CLASS": "true",
			"DISTNOSE_ALGORITHM":     "least-processing-time",
			"DISTNOSE_LPT_DATA":      "/var/lib/ci/durations.json",
			"DISTNOSE_VIRTUAL_NODES": "200",
			"DISTNOSE_HASH_SEED":     "42",
		}))
		require.NoError(t, err)

		require.Equal(t, "4", cfg.Nodes)
		require.Equal(t, "2", cfg.NodeNumber)
		require.True(t, cfg.Disabled)
		require.True(t, cfg.HashByClass)
		require.Equal(t, "least-processing-time", cfg.Algorithm)
		require.Equal(t, "/var/lib/ci/durations.json", cfg.LPTDataPath)
		require.Equal(t, 200, cfg.VirtualNodes)
		require.Equal(t, uint64(42), cfg.HashSeed)
	})

	t.Run("keeps raw node values even when non-numeric", func(t *testing.T) {
		// Parsing happens in NewEngine so a typo disables distribution
		// instead of failing the environment read.
		cfg, err := ConfigFromLookuper(ctx, envconfig.MapLookuper(map[string]string{
			"DISTNOSE_NODES": "four",
		}))
		require.NoError(t, err)
		require.Equal(t, "four", cfg.Nodes)
	})

	t.Run("rejects a non-boolean disable switch", func(t *testing.T) {
		_, err := ConfigFromLookuper(ctx, envconfig.MapLookuper(map[string]string{
			"DISTNOSE_DISABLED": "maybe",
		}))
		require.Error(t, err)
	})
}

func TestConfig_normalize(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "2", Algorithm: "consistent-hash"}

		s, err := cfg.normalize()
		require.NoError(t, err)
		require.Equal(t, 4, s.nodeCount)
		require.Equal(t, types.NodeID(2), s.nodeID)
		require.Equal(t, types.AlgorithmConsistentHash, s.algorithm)
		require.Equal(t, types.PerItem, s.granularity)
	})

	t.Run("hash by class selects per-class granularity", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "2", Algorithm: "consistent-hash", HashByClass: true}

		s, err := cfg.normalize()
		require.NoError(t, err)
		require.Equal(t, types.PerClass, s.granularity)
	})

	t.Run("non-integer node count", func(t *testing.T) {
		cfg := Config{Nodes: "four", NodeNumber: "1", Algorithm: "consistent-hash"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrInvalidInteger)
		require.True(t, types.IsConfigError(err))
	})

	t.Run("non-integer node number", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "two", Algorithm: "consistent-hash"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrInvalidInteger)
	})

	t.Run("node number above node count", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "5", Algorithm: "consistent-hash"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrNodeIDTooLarge)
	})

	t.Run("node number of zero", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "0", Algorithm: "consistent-hash"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrNodeIDTooSmall)
	})

	t.Run("negative node number", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "-1", Algorithm: "consistent-hash"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrNodeIDTooSmall)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		cfg := Config{Nodes: "4", NodeNumber: "1", Algorithm: "round-robin"}

		_, err := cfg.normalize()
		require.ErrorIs(t, err, types.ErrInvalidAlgorithm)
	})
}
