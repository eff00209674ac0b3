// Package history keeps the summaries produced during one session.
//
// A Store is created when a session starts and dropped when it ends; it
// never outlives the process. Records are append-only: there is no way to
// edit or remove one.
package history

import (
	"sync"

	"github.com/Shimizu-Technology/medsum/internal/models"
)

// DefaultRecent is how many records the recent-activity panel shows.
const DefaultRecent = 5

// Store is an ordered, append-only list of summary records.
type Store struct {
	// Go Pattern: the HTTP server runs each request on its own goroutine,
	// so two tabs of the same session could touch the store at once.
	mu      sync.RWMutex
	records []models.SummaryRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds record to the end of the history.
func (s *Store) Append(record models.SummaryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// Recent returns at most n records, most recent first.
// The returned slice is a copy; the store is not modified.
func (s *Store) Recent(n int) []models.SummaryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []models.SummaryRecord{}
	}
	if n > len(s.records) {
		n = len(s.records)
	}

	out := make([]models.SummaryRecord, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}

// Count returns the number of records appended so far.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Get looks up a record by ID.
func (s *Store) Get(id string) (models.SummaryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.SummaryRecord{}, false
}
