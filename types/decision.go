package types

import "fmt"

// Decision is the three-valued outcome of a membership query.
//
// The zero value is Defer so that an unset decision never accidentally
// includes or excludes an item. Defer means "make no decision here": the
// host framework's default behavior, or a more specific callback at a finer
// granularity, applies instead. Collapsing Defer into Include or Exclude
// breaks the granularity split, so callers must treat all three values
// distinctly.
type Decision int

const (
	// Defer makes no decision at this callback.
	Defer Decision = iota

	// Include runs the item on this node.
	Include

	// Exclude runs the item on a different node.
	Exclude
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case Defer:
		return "defer"
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}
