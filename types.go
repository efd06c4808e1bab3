package distnose

import "github.com/kchuriumova/distributed-nose/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `distnose`
// package, while still providing a convenient `distnose.Decision`,
// `distnose.Logger`, etc. for users.
type (
	NodeID         = types.NodeID
	Decision       = types.Decision
	Algorithm      = types.Algorithm
	Granularity    = types.Granularity
	ItemKind       = types.ItemKind
	DurationRecord = types.DurationRecord
)

// Re-export interfaces from the types package for convenience.
type (
	Partitioner      = types.Partitioner
	DurationSource   = types.DurationSource
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Decision constants from the types package.
const (
	Defer   = types.Defer
	Include = types.Include
	Exclude = types.Exclude
)

// Re-export Algorithm constants from the types package.
const (
	AlgorithmConsistentHash      = types.AlgorithmConsistentHash
	AlgorithmLeastProcessingTime = types.AlgorithmLeastProcessingTime
)

// Re-export Granularity constants from the types package.
const (
	PerItem  = types.PerItem
	PerClass = types.PerClass
)

// Re-export ItemKind constants from the types package.
const (
	KindFunction = types.KindFunction
	KindMethod   = types.KindMethod
	KindClass    = types.KindClass
)
