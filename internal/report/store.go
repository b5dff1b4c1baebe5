// Package report holds the in-memory session report: an append-only
// sequence of completed calculations and its display projections.
package report

import (
	"sync"
	"time"

	"trex/internal/core"
)

// Record is one completed worksheet calculation. Records are immutable once
// created; the store never reorders, edits, or removes them.
type Record struct {
	core.CalculationInput
	core.TaxResult
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord stamps a computed result with its creation instant.
func NewRecord(in core.CalculationInput, res core.TaxResult) Record {
	return Record{CalculationInput: in, TaxResult: res, CreatedAt: time.Now()}
}

// Store accumulates records for the lifetime of the process. There is one
// logical writer (the calculate handler); the mutex only covers net/http
// serving reads on separate goroutines.
type Store struct {
	mu      sync.RWMutex
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

// Append adds a record to the end of the sequence. It never fails.
func (s *Store) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// All returns the records in insertion order. The slice is a copy, so
// callers cannot alias the store's contents.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of accumulated records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Latest returns the most recently appended record, if any.
func (s *Store) Latest() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}
