// Package distnose distributes a test run, shared-nothing style, across a
// fixed fleet of worker nodes.
//
// Each node is configured with the total node count and its own 1-indexed
// node number, and independently computes the same answer to the question
// "should this test item run here?" for every discovered item. No node ever
// talks to another: determinism of the partitioning algorithms is what keeps
// the fleet's answers complementary, so every item runs on exactly one node.
//
// # Quick Start
//
// Basic usage with environment configuration:
//
//	import "github.com/kchuriumova/distributed-nose"
//
//	cfg, err := distnose.ConfigFromEnv(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := distnose.NewEngine(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err) // fatal duration-data error
//	}
//
//	switch engine.WantFunction("pkg/app", "TestLogin") {
//	case distnose.Include:
//	    // run the test on this node
//	case distnose.Exclude:
//	    // skip: another node owns it
//	case distnose.Defer:
//	    // engine disabled: fall back to the host framework's behavior
//	}
//
// # Algorithms
//
// Two partitioning algorithms are built in:
//
//   - consistent-hash (default): items are placed on a hash ring with
//     virtual nodes. Needs no historical data and remaps only ~1/N of items
//     when the fleet grows or shrinks.
//   - least-processing-time: items are greedily packed so every node gets
//     approximately equal total runtime, based on a historical duration
//     file. Items without recorded durations fall back to the hash ring.
//
// # Granularity
//
// By default every function and method is decided individually. With
// HashByClass all methods of a class stay on the same node: the decision is
// made once at the class level and method callbacks defer.
//
// # Error Handling
//
// Misconfigured node counts disable the engine instead of failing the run;
// every callback then defers. Broken duration data, in contrast, aborts
// engine construction: partitioning from partial data would let nodes
// silently diverge and drop or duplicate tests.
package distnose
