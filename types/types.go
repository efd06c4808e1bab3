package types

import "fmt"

// NodeID identifies a worker node participating in a distributed test run.
//
// Node IDs are 1-indexed: valid assignment targets are in [1, NodeCount].
// Zero is never a valid assignment target and indicates "no node".
type NodeID int

// String returns the decimal representation of the node ID.
func (n NodeID) String() string {
	return fmt.Sprintf("%d", int(n))
}

// Algorithm selects how test items are partitioned across nodes.
type Algorithm string

// Supported partitioning algorithms.
const (
	// AlgorithmConsistentHash distributes items via a consistent hash ring.
	// Requires no historical data and remaps only ~1/N of items when the
	// node count changes.
	AlgorithmConsistentHash Algorithm = "consistent-hash"

	// AlgorithmLeastProcessingTime distributes items greedily by historical
	// duration so every node receives approximately equal processing time.
	// Requires a duration-data source; items without recorded durations fall
	// back to the consistent hash ring.
	AlgorithmLeastProcessingTime Algorithm = "least-processing-time"
)

// ParseAlgorithm converts a raw algorithm name into an Algorithm.
//
// Parameters:
//   - raw: Algorithm name (e.g., "consistent-hash")
//
// Returns:
//   - Algorithm: Parsed algorithm value
//   - error: ErrInvalidAlgorithm if the name is not recognized
func ParseAlgorithm(raw string) (Algorithm, error) {
	switch Algorithm(raw) {
	case AlgorithmConsistentHash:
		return AlgorithmConsistentHash, nil
	case AlgorithmLeastProcessingTime:
		return AlgorithmLeastProcessingTime, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, raw)
	}
}

// Granularity is the level at which the partition decision is made.
type Granularity int

const (
	// PerItem partitions each test function and method individually.
	// This yields the most even distribution when runtimes are similar,
	// but duplicates per-class setup work across nodes.
	PerItem Granularity = iota

	// PerClass keeps all methods of a class on the same node by deciding
	// membership once at the class level.
	PerClass
)

// String returns a human-readable granularity name.
func (g Granularity) String() string {
	switch g {
	case PerItem:
		return "per-item"
	case PerClass:
		return "per-class"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// ItemKind is the shape of a discovered test item.
type ItemKind int

const (
	// KindFunction is a bare test function.
	KindFunction ItemKind = iota

	// KindMethod is a test method belonging to a class.
	KindMethod

	// KindClass is a test class containing methods.
	KindClass
)

// String returns a human-readable item kind name.
func (k ItemKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	case KindClass:
		return "class"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
