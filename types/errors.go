package types

import "errors"

// Sentinel errors for the distributed-nose library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Configuration errors - recoverable: the engine disables itself and the run
// proceeds unfiltered rather than crashing an otherwise-working test run.
var (
	// ErrInvalidInteger is returned when the node count or node number does
	// not parse as an integer.
	ErrInvalidInteger = errors.New("value must be an integer")

	// ErrNodeIDTooSmall is returned when the node number is below 1.
	ErrNodeIDTooSmall = errors.New("node number must be greater than zero")

	// ErrNodeIDTooLarge is returned when the node number exceeds the node count.
	ErrNodeIDTooLarge = errors.New("node number can't be larger than the number of nodes")

	// ErrInvalidAlgorithm is returned when the algorithm name is not recognized.
	ErrInvalidAlgorithm = errors.New("unknown partitioning algorithm")
)

// Duration-data errors - fatal: running a distributed suite with broken
// distribution data would let nodes silently diverge in their assignment
// tables, which is worse than aborting.
var (
	// ErrMissingDurationData is returned when least-processing-time is
	// selected without a duration-data source.
	ErrMissingDurationData = errors.New("least-processing-time requires a duration-data source")

	// ErrDataUnreadable is returned when the duration-data source cannot be read.
	ErrDataUnreadable = errors.New("duration data unreadable")

	// ErrDataMalformed is returned when the duration data does not parse.
	ErrDataMalformed = errors.New("duration data malformed")

	// ErrDataSchemaInvalid is returned when the duration data parses but an
	// entry is missing its duration field or carries an invalid value.
	ErrDataSchemaInvalid = errors.New("duration data schema invalid")
)

// Partitioner errors.
var (
	// ErrNoNodes is returned when a partitioner is constructed with a
	// non-positive node count.
	ErrNoNodes = errors.New("no nodes available")
)

// IsConfigError reports whether err is one of the recoverable configuration
// errors that disable the engine instead of aborting the run.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidInteger) ||
		errors.Is(err, ErrNodeIDTooSmall) ||
		errors.Is(err, ErrNodeIDTooLarge) ||
		errors.Is(err, ErrInvalidAlgorithm)
}

// IsDataError reports whether err is one of the fatal duration-data errors.
func IsDataError(err error) bool {
	return errors.Is(err, ErrMissingDurationData) ||
		errors.Is(err, ErrDataUnreadable) ||
		errors.Is(err, ErrDataMalformed) ||
		errors.Is(err, ErrDataSchemaInvalid)
}
