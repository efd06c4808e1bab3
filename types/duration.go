package types

import "context"

// DurationRecord maps an item key to its historical runtime in seconds.
//
// The record is loaded once during engine construction and treated as
// immutable for the remainder of the run. Durations are non-negative.
type DurationRecord map[string]float64

// Clone returns a copy of the record. A nil record clones to nil.
func (r DurationRecord) Clone() DurationRecord {
	if r == nil {
		return nil
	}

	out := make(DurationRecord, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// DurationSource loads historical per-item duration data.
//
// Sources are consumed exactly once, during the engine's build phase. Any
// load failure is fatal to configuration: partitioning with partial or
// default data would let nodes silently diverge in their assignment tables.
//
// Implementations should return errors wrapping the sentinel failure kinds
// (ErrDataUnreadable, ErrDataMalformed, ErrDataSchemaInvalid) so callers can
// classify the failure with errors.Is.
type DurationSource interface {
	// Load reads and parses the duration data.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - DurationRecord: Parsed per-item durations
	//   - error: Non-nil on any read or parse failure
	Load(ctx context.Context) (DurationRecord, error)
}
