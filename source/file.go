package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kchuriumova/distributed-nose/types"
)

// File loads duration data from a JSON file on disk.
//
// The expected format is a flat object mapping item keys to entries carrying
// at least a numeric "duration" field; additional fields are ignored:
//
//	{
//	  "pkg/app.LoginSuite.TestOK": {"duration": 4.2},
//	  "pkg/app.TestHealthz":       {"duration": 0.3, "runs": 17}
//	}
//
// Load failures are classified with the sentinel errors in types so callers
// can distinguish unreadable files, malformed JSON, and schema violations.
// All three are fatal to engine configuration.
type File struct {
	path string
}

var _ types.DurationSource = (*File)(nil)

// fileEntry is one value of the on-disk mapping. Duration is a pointer so a
// missing field is distinguishable from an explicit zero.
type fileEntry struct {
	Duration *float64 `json:"duration"`
}

// NewFile creates a duration source reading from the given file path.
//
// Parameters:
//   - path: Path to the JSON duration-data file
//
// Returns:
//   - *File: Initialized source (the file is not touched until Load)
//
// Example:
//
//	src := source.NewFile("/var/lib/ci/test-durations.json")
//	record, err := src.Load(ctx)
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the configured file path.
func (f *File) Path() string {
	return f.path
}

// Load reads and parses the duration-data file.
//
// Parameters:
//   - ctx: Context for cancellation (checked before I/O)
//
// Returns:
//   - types.DurationRecord: Parsed per-item durations
//   - error: Wrapping types.ErrDataUnreadable, types.ErrDataMalformed or
//     types.ErrDataSchemaInvalid depending on the failure
func (f *File) Load(ctx context.Context) (types.DurationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDataUnreadable, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", types.ErrDataUnreadable, f.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", types.ErrDataMalformed, f.path, err)
	}

	record := make(types.DurationRecord, len(raw))
	for key, msg := range raw {
		var entry fileEntry
		if err := json.Unmarshal(msg, &entry); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", types.ErrDataSchemaInvalid, key, err)
		}
		if entry.Duration == nil {
			return nil, fmt.Errorf("%w: entry %q is missing the duration field", types.ErrDataSchemaInvalid, key)
		}
		if *entry.Duration < 0 {
			return nil, fmt.Errorf("%w: entry %q has negative duration %v", types.ErrDataSchemaInvalid, key, *entry.Duration)
		}

		record[key] = *entry.Duration
	}

	return record, nil
}
