// Package source provides built-in duration-data source implementations.
//
// Duration sources supply the historical per-item runtimes consumed by the
// least-processing-time partitioner. The package includes:
//
//   - File: JSON file mapping item keys to objects with a "duration" field
//   - Static: Fixed in-memory record, useful for tests and tooling
//
// Custom sources can be implemented by satisfying the types.DurationSource
// interface.
package source
