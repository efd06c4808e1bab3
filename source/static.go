package source

import (
	"context"
	"sync"

	"github.com/kchuriumova/distributed-nose/types"
)

// Static implements a duration source with a fixed in-memory record.
type Static struct {
	mu     sync.RWMutex
	record types.DurationRecord
}

var _ types.DurationSource = (*Static)(nil)

// NewStatic creates a new static duration source.
//
// The source returns a fixed record. Useful for testing and for tooling that
// already holds the durations in memory.
//
// Parameters:
//   - record: Fixed per-item durations (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(types.DurationRecord{
//	    "pkg/app.LoginSuite.TestOK": 4.2,
//	    "pkg/app.TestHealthz":       0.3,
//	})
func NewStatic(record types.DurationRecord) *Static {
	return &Static{
		record: record.Clone(),
	}
}

// Load returns a copy of the static record.
//
// Returns:
//   - types.DurationRecord: Copy of the fixed record
//   - error: Always nil (never fails)
func (s *Static) Load(_ context.Context) (types.DurationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.record.Clone(), nil
}

// Update replaces the record returned by subsequent Load calls.
//
// Parameters:
//   - record: New per-item durations (copied)
func (s *Static) Update(record types.DurationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = record.Clone()
}
