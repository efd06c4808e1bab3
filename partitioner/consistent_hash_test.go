package partitioner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kchuriumova/distributed-nose/types"
)

func TestNewConsistentHash(t *testing.T) {
	t.Run("rejects zero nodes", func(t *testing.T) {
		_, err := NewConsistentHash(0)
		require.Error(t, err)
		require.ErrorIs(t, err, types.ErrNoNodes)
	})

	t.Run("rejects negative nodes", func(t *testing.T) {
		_, err := NewConsistentHash(-3)
		require.ErrorIs(t, err, types.ErrNoNodes)
	})

	t.Run("single node is valid", func(t *testing.T) {
		p, err := NewConsistentHash(1)
		require.NoError(t, err)
		require.Equal(t, 1, p.NodeCount())
	})
}

func TestConsistentHash_Node(t *testing.T) {
	t.Run("resolution is deterministic", func(t *testing.T) {
		p1, err := NewConsistentHash(5)
		require.NoError(t, err)
		p2, err := NewConsistentHash(5)
		require.NoError(t, err)

		for i := range 200 {
			key := fmt.Sprintf("pkg/app.Test%d", i)
			require.Equal(t, p1.Node(key), p1.Node(key), "repeated calls must agree")
			require.Equal(t, p1.Node(key), p2.Node(key), "independent partitioners must agree")
		}
	})

	t.Run("covers only valid node IDs", func(t *testing.T) {
		for _, nodeCount := range []int{1, 2, 5, 12} {
			p, err := NewConsistentHash(nodeCount)
			require.NoError(t, err)

			for i := range 500 {
				node := p.Node(fmt.Sprintf("item-%d", i))
				require.GreaterOrEqual(t, int(node), 1)
				require.LessOrEqual(t, int(node), nodeCount)
			}
		}
	})

	t.Run("each node owns a share of a large key population", func(t *testing.T) {
		p, err := NewConsistentHash(4)
		require.NoError(t, err)

		counts := make(map[types.NodeID]int)
		for i := range 4000 {
			counts[p.Node(fmt.Sprintf("pkg/mod%d.Test%d", i%40, i))]++
		}

		require.Len(t, counts, 4, "every node should own some keys")
		for node, count := range counts {
			require.Greater(t, count, 400, "node %d owns too few keys", node)
		}
	})

	t.Run("custom virtual nodes and seed still cover all nodes", func(t *testing.T) {
		p, err := NewConsistentHash(3, WithVirtualNodes(50), WithHashSeed(99))
		require.NoError(t, err)

		seen := make(map[types.NodeID]bool)
		for i := range 1000 {
			seen[p.Node(fmt.Sprintf("item-%d", i))] = true
		}

		require.Len(t, seen, 3)
	})
}
