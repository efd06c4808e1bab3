// Package partitioner provides built-in test partitioning implementations.
//
// Partitioners resolve an item key to the single node that owns it. Every
// node builds the same partitioner from the same inputs and therefore
// computes the identical assignment without any cross-node coordination.
// The package includes two built-in partitioners:
//
//   - ConsistentHash: Hash-ring distribution with virtual nodes (default;
//     requires no historical data, remaps only ~1/N of keys when the node
//     count changes)
//   - LeastProcessingTime: Greedy LPT scheduling over historical durations
//     (balances total processing time per node; unknown keys fall back to
//     the hash ring)
//
// Custom partitioners can be implemented by satisfying the types.Partitioner
// interface.
package partitioner
