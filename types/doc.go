// Package types provides core type definitions and interfaces for the
// distributed-nose library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main distnose package and its internal
// implementations.
//
// Key types:
//   - NodeID: 1-indexed worker node identity
//   - Decision: Three-valued membership outcome (Include/Exclude/Defer)
//   - Algorithm: Partitioning algorithm selector
//   - DurationRecord: Historical per-item durations
//   - Partitioner: Key-to-node resolution interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
