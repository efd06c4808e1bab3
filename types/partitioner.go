package types

// Partitioner resolves an item key to the node that owns it.
//
// Implementations must be:
//   - Deterministic: the same key and node count always yield the same node,
//     across repeated calls and across independently constructed instances
//   - Total: every key resolves to a node in [1, NodeCount], never 0
//   - Immutable: no state mutation after construction, so the query phase is
//     safe for concurrent use without locking
type Partitioner interface {
	// Node returns the node that owns the given item key.
	//
	// Parameters:
	//   - key: Item key (see FunctionKey, MethodKey, ClassKey)
	//
	// Returns:
	//   - NodeID: Owning node, always in [1, NodeCount]
	Node(key string) NodeID

	// NodeCount returns the number of nodes the partitioner distributes across.
	NodeCount() int
}
