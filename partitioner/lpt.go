package partitioner

import (
	"fmt"
	"slices"

	"github.com/kchuriumova/distributed-nose/types"
)

// LeastProcessingTime balances nodes by total historical duration using the
// classic greedy LPT scheduling heuristic: repeatedly assign the
// next-largest item to the currently least-loaded node.
//
// The heuristic gives a 4/3-approximation of the optimal makespan and, more
// importantly here, is deterministic: every node computes the identical
// assignment table from the identical duration record, so no coordination is
// needed. Items without a recorded duration are resolved by an embedded
// consistent hash ring instead of being inserted into the schedule
// dynamically, because dynamic insertion would depend on discovery order,
// which differs between nodes.
//
// The assignment table is built once at construction and never mutated, so
// Node is pure and safe for concurrent use.
type LeastProcessingTime struct {
	owner    map[string]types.NodeID
	buckets  []bucketState
	fallback *ConsistentHash
}

var _ types.Partitioner = (*LeastProcessingTime)(nil)

// bucketState accumulates one node's share of the schedule during the build.
type bucketState struct {
	total float64
	items []string
}

// Bucket is a read-only view of one node's LPT assignment.
type Bucket struct {
	// Node owning this bucket.
	Node types.NodeID

	// Total accumulated historical duration in seconds.
	Total float64

	// Items assigned to this bucket, sorted lexicographically.
	Items []string
}

// NewLeastProcessingTime creates an LPT partitioner over nodes 1..nodeCount.
//
// The full assignment table is computed here, once:
//  1. Sort all (key, duration) pairs by descending duration; ties are broken
//     by ascending key so the order never depends on map iteration.
//  2. Assign each pair to the bucket with the smallest accumulated total;
//     ties go to the lowest node ID.
//
// Parameters:
//   - nodeCount: Total number of worker nodes (must be >= 1)
//   - record: Historical per-item durations
//   - opts: Optional configuration for the fallback ring (WithVirtualNodes, WithHashSeed)
//
// Returns:
//   - *LeastProcessingTime: Initialized partitioner
//   - error: types.ErrNoNodes if nodeCount < 1
//
// Example:
//
//	p, err := partitioner.NewLeastProcessingTime(2, record)
//	if err != nil { /* handle */ }
//	node := p.Node("pkg/app.LoginSuite.TestOK")
func NewLeastProcessingTime(nodeCount int, record types.DurationRecord, opts ...Option) (*LeastProcessingTime, error) {
	fallback, err := NewConsistentHash(nodeCount, opts...)
	if err != nil {
		return nil, err
	}

	lpt := &LeastProcessingTime{
		owner:    make(map[string]types.NodeID, len(record)),
		buckets:  make([]bucketState, nodeCount),
		fallback: fallback,
	}

	type pair struct {
		key      string
		duration float64
	}

	pairs := make([]pair, 0, len(record))
	for key, duration := range record {
		pairs = append(pairs, pair{key: key, duration: duration})
	}

	// Descending duration, ties by ascending key. Map iteration order is
	// randomized, so the tie-break must be a total order over keys or two
	// nodes could build different tables from the same record.
	slices.SortFunc(pairs, func(a, b pair) int {
		if a.duration > b.duration {
			return -1
		}
		if a.duration < b.duration {
			return 1
		}

		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	})

	for _, p := range pairs {
		idx := lpt.smallestBucket()
		lpt.buckets[idx].total += p.duration
		lpt.buckets[idx].items = append(lpt.buckets[idx].items, p.key)
		lpt.owner[p.key] = types.NodeID(idx + 1)
	}

	return lpt, nil
}

// Node returns the node that owns the given item key.
//
// Keys present in the duration record resolve through the assignment table;
// unknown keys resolve through the fallback hash ring.
//
// Parameters:
//   - key: Item key to resolve
//
// Returns:
//   - types.NodeID: Owning node, always in [1, NodeCount]
func (lpt *LeastProcessingTime) Node(key string) types.NodeID {
	if node, ok := lpt.owner[key]; ok {
		return node
	}

	return lpt.fallback.Node(key)
}

// Owner returns the node the assignment table maps the key to, and whether
// the key has a recorded duration at all.
//
// Parameters:
//   - key: Item key to look up
//
// Returns:
//   - types.NodeID: Owning node (0 if unknown)
//   - bool: true if the key is present in the assignment table
func (lpt *LeastProcessingTime) Owner(key string) (types.NodeID, bool) {
	node, ok := lpt.owner[key]
	return node, ok
}

// Fallback returns the consistent hash partitioner used for keys without
// recorded durations.
func (lpt *LeastProcessingTime) Fallback() *ConsistentHash {
	return lpt.fallback
}

// NodeCount returns the number of nodes the partitioner distributes across.
func (lpt *LeastProcessingTime) NodeCount() int {
	return len(lpt.buckets)
}

// Buckets returns a read-only view of the assignment table, one bucket per
// node in node-ID order. Item slices are copies sorted lexicographically.
func (lpt *LeastProcessingTime) Buckets() []Bucket {
	out := make([]Bucket, len(lpt.buckets))
	for i, b := range lpt.buckets {
		items := slices.Clone(b.items)
		slices.Sort(items)

		out[i] = Bucket{
			Node:  types.NodeID(i + 1),
			Total: b.total,
			Items: items,
		}
	}

	return out
}

// smallestBucket returns the index of the bucket with the smallest
// accumulated total, preferring the lowest index on ties.
func (lpt *LeastProcessingTime) smallestBucket() int {
	idx := 0
	for i := 1; i < len(lpt.buckets); i++ {
		if lpt.buckets[i].total < lpt.buckets[idx].total {
			idx = i
		}
	}

	return idx
}

// String implements fmt.Stringer for debug logging.
func (lpt *LeastProcessingTime) String() string {
	return fmt.Sprintf("lpt(nodes=%d, items=%d)", len(lpt.buckets), len(lpt.owner))
}
