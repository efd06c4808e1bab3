package partitioner

import (
	"fmt"

	"github.com/kchuriumova/distributed-nose/internal/hash"
	"github.com/kchuriumova/distributed-nose/types"
)

// DefaultVirtualNodes is the default number of virtual nodes per worker.
const DefaultVirtualNodes = 150

// options holds shared partitioner configuration.
type options struct {
	virtualNodes int
	hashSeed     uint64
}

// Option configures a partitioner.
type Option func(*options)

func defaultOptions() options {
	return options{
		virtualNodes: DefaultVirtualNodes,
		hashSeed:     0,
	}
}

// WithVirtualNodes sets the number of virtual nodes per worker node.
//
// Higher values provide better distribution but increase memory usage.
// Recommended range: 100-300 (default: 150). All nodes in a fleet must use
// the same value or their rings will disagree.
//
// Parameters:
//   - nodes: Number of virtual nodes per worker node
//
// Returns:
//   - Option: Configuration option
func WithVirtualNodes(nodes int) Option {
	return func(o *options) {
		if nodes > 0 {
			o.virtualNodes = nodes
		}
	}
}

// WithHashSeed sets a custom hash seed for consistent hashing.
//
// All nodes in a fleet must use the same seed or their rings will disagree.
//
// Parameters:
//   - seed: Hash seed value (0 means unseeded)
//
// Returns:
//   - Option: Configuration option
func WithHashSeed(seed uint64) Option {
	return func(o *options) {
		o.hashSeed = seed
	}
}

// ConsistentHash resolves item keys via a consistent hash ring.
//
// The ring is built once at construction and never mutated, so Node is pure
// and safe for concurrent use.
type ConsistentHash struct {
	ring *hash.Ring
}

var _ types.Partitioner = (*ConsistentHash)(nil)

// NewConsistentHash creates a consistent hash partitioner over nodes
// 1..nodeCount.
//
// Parameters:
//   - nodeCount: Total number of worker nodes (must be >= 1)
//   - opts: Optional configuration (WithVirtualNodes, WithHashSeed)
//
// Returns:
//   - *ConsistentHash: Initialized partitioner
//   - error: types.ErrNoNodes if nodeCount < 1
//
// Example:
//
//	p, err := partitioner.NewConsistentHash(4, partitioner.WithVirtualNodes(300))
//	if err != nil { /* handle */ }
//	node := p.Node(types.FunctionKey("pkg/app", "TestLogin"))
func NewConsistentHash(nodeCount int, opts ...Option) (*ConsistentHash, error) {
	if nodeCount < 1 {
		return nil, fmt.Errorf("%w: node count %d", types.ErrNoNodes, nodeCount)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ConsistentHash{
		ring: hash.NewRing(nodeCount, o.virtualNodes, o.hashSeed),
	}, nil
}

// Node returns the node that owns the given item key.
//
// Parameters:
//   - key: Item key to resolve
//
// Returns:
//   - types.NodeID: Owning node, always in [1, NodeCount]
func (ch *ConsistentHash) Node(key string) types.NodeID {
	return ch.ring.GetNode(key)
}

// NodeCount returns the number of nodes the partitioner distributes across.
func (ch *ConsistentHash) NodeCount() int {
	return ch.ring.NodeCount()
}
