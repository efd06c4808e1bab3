package hash

import (
	"encoding/binary"
	"slices"
	"strconv"

	"github.com/zeebo/xxh3"

	"github.com/kchuriumova/distributed-nose/types"
)

// Ring implements a consistent hash ring with virtual nodes.
//
// The ring maps item keys to worker nodes using consistent hashing, which
// keeps assignments stable when the node count changes: only ~1/N of keys
// remap, instead of nearly all of them as with plain modulo hashing.
type Ring struct {
	// vnodes contains all virtual nodes on the ring, sorted by hash
	vnodes []virtualNode

	// nodeCount is the number of worker nodes placed on the ring
	nodeCount int

	// seed for the hash function (0 means unseeded)
	seed uint64
}

// virtualNode represents a virtual node on the hash ring.
type virtualNode struct {
	hash uint64       // Position on the ring
	node types.NodeID // Node owning this virtual node
}

// NewRing creates a new consistent hash ring over nodes 1..nodeCount.
//
// Parameters:
//   - nodeCount: Number of worker nodes to place on the ring
//   - virtualNodesPerNode: Virtual nodes per worker (higher = better distribution)
//   - seed: Seed for the hash function (0 for unseeded hashing)
//
// Returns:
//   - *Ring: Initialized hash ring
//
// Example:
//
//	ring := hash.NewRing(4, 150, 0)
//	node := ring.GetNode("pkg/app.TestLogin")
func NewRing(nodeCount, virtualNodesPerNode int, seed uint64) *Ring {
	if nodeCount < 0 {
		nodeCount = 0
	}

	ring := &Ring{
		vnodes:    make([]virtualNode, 0, nodeCount*virtualNodesPerNode),
		nodeCount: nodeCount,
		seed:      seed,
	}

	for id := 1; id <= nodeCount; id++ {
		ring.addNode(types.NodeID(id), virtualNodesPerNode)
	}

	// Sort virtual nodes by hash for binary search
	slices.SortFunc(ring.vnodes, func(a, b virtualNode) int {
		if a.hash < b.hash {
			return -1
		}
		if a.hash > b.hash {
			return 1
		}

		return 0
	})

	return ring
}

// GetNode finds the node responsible for an item key.
//
// Uses binary search to find the first virtual node whose hash is >= the key
// hash. If no such node exists (key hash > all virtual nodes), wraps around
// to the first node on the ring.
//
// Parameters:
//   - key: Item key to resolve
//
// Returns:
//   - types.NodeID: Node responsible for this key, 0 only for an empty ring
func (r *Ring) GetNode(key string) types.NodeID {
	if len(r.vnodes) == 0 {
		return 0
	}

	return r.getNodeByHash(r.hash(key))
}

// NodeCount returns the number of worker nodes placed on the ring.
func (r *Ring) NodeCount() int {
	return r.nodeCount
}

// Size returns the total number of virtual nodes on the ring.
func (r *Ring) Size() int {
	return len(r.vnodes)
}

// addNode adds virtual nodes for a worker node to the ring.
func (r *Ring) addNode(node types.NodeID, virtualNodes int) {
	// Fold the node label first, then each vnode index using the label hash
	// as seed. Stable across runs and processes.
	label := strconv.Itoa(int(node))

	var h uint64
	if r.seed != 0 {
		h = xxh3.HashStringSeed(label, r.seed)
	} else {
		h = xxh3.HashString(label)
	}

	for i := range virtualNodes {
		var ib [8]byte
		binary.LittleEndian.PutUint64(ib[:], uint64(i)) //nolint:gosec

		r.vnodes = append(r.vnodes, virtualNode{
			hash: xxh3.HashSeed(ib[:], h),
			node: node,
		})
	}
}

// hash computes a 64-bit hash of the key using XXH3.
func (r *Ring) hash(key string) uint64 {
	if r.seed != 0 {
		return xxh3.HashStringSeed(key, r.seed)
	}

	return xxh3.HashString(key)
}

// getNodeByHash returns the node for a given hash value using binary search
// over the ring.
func (r *Ring) getNodeByHash(target uint64) types.NodeID {
	// Binary search for first virtual node >= target
	idx, found := slices.BinarySearchFunc(r.vnodes, target, func(vn virtualNode, t uint64) int {
		if vn.hash < t {
			return -1
		}
		if vn.hash > t {
			return 1
		}

		return 0
	})

	// If exact match found or idx points to a valid position, use it.
	// If idx >= len(vnodes), wrap around to the first virtual node.
	if !found && idx >= len(r.vnodes) {
		idx = 0
	}

	return r.vnodes[idx].node
}
