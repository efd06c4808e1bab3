package distnose

import "github.com/kchuriumova/distributed-nose/types"

// Sentinel errors surfaced by the Engine, re-exported from the types package.
var (
	// ErrInvalidInteger is returned when the node count or node number does
	// not parse as an integer.
	ErrInvalidInteger = types.ErrInvalidInteger

	// ErrNodeIDTooSmall is returned when the node number is below 1.
	ErrNodeIDTooSmall = types.ErrNodeIDTooSmall

	// ErrNodeIDTooLarge is returned when the node number exceeds the node count.
	ErrNodeIDTooLarge = types.ErrNodeIDTooLarge

	// ErrInvalidAlgorithm is returned when the algorithm name is not recognized.
	ErrInvalidAlgorithm = types.ErrInvalidAlgorithm

	// ErrMissingDurationData is returned when least-processing-time is
	// selected without a duration-data source.
	ErrMissingDurationData = types.ErrMissingDurationData

	// ErrDataUnreadable is returned when the duration-data source cannot be read.
	ErrDataUnreadable = types.ErrDataUnreadable

	// ErrDataMalformed is returned when the duration data does not parse.
	ErrDataMalformed = types.ErrDataMalformed

	// ErrDataSchemaInvalid is returned when the duration data parses but an
	// entry is missing its duration field or carries an invalid value.
	ErrDataSchemaInvalid = types.ErrDataSchemaInvalid
)
