package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mycok/uTraverse/bench"
)

// Static and compile-time check to ensure InMemoryStore implements
// bench.Store interface.
var _ bench.Store = (*InMemoryStore)(nil)

// InMemoryStore implements an in-memory measurement store that can be
// concurrently accessed by multiple clients.
type InMemoryStore struct {
	mu           sync.RWMutex
	measurements map[uuid.UUID]*bench.Measurement
	// Measurements ordered by recording time.
	timeline []*bench.Measurement
}

// NewInMemoryStore creates a new in-memory measurement store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		measurements: make(map[uuid.UUID]*bench.Measurement),
	}
}

// Record stores a copy of m. A new ID is assigned if m.ID is the nil UUID.
func (s *InMemoryStore) Record(m *bench.Measurement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		// Try to assign a random ID. In case the generated ID is already
		// used, run the ID generator until a unique ID is found.
		for {
			m.ID = uuid.New()
			if _, exists := s.measurements[m.ID]; !exists {
				break
			}
		}
	}

	m.RecordedAt = m.RecordedAt.UTC()

	// Keep a private copy so later modifications by the caller do not leak
	// into the store.
	mCopy := new(bench.Measurement)
	*mCopy = *m

	if prev, exists := s.measurements[m.ID]; exists {
		s.removeFromTimeline(prev)
	}

	s.measurements[m.ID] = mCopy

	idx := sort.Search(len(s.timeline), func(i int) bool {
		return s.timeline[i].RecordedAt.After(mCopy.RecordedAt)
	})
	s.timeline = append(s.timeline, nil)
	copy(s.timeline[idx+1:], s.timeline[idx:])
	s.timeline[idx] = mCopy

	return nil
}

// Find looks up a measurement by its ID.
func (s *InMemoryStore) Find(id uuid.UUID) (*bench.Measurement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, exists := s.measurements[id]
	if !exists {
		return nil, fmt.Errorf("find measurement: %w", bench.ErrNotFound)
	}

	mCopy := new(bench.Measurement)
	*mCopy = *m

	return mCopy, nil
}

// Measurements returns an iterator for the measurements recorded at or after
// since.
func (s *InMemoryStore) Measurements(since time.Time) (bench.MeasurementIterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since = since.UTC()
	idx := sort.Search(len(s.timeline), func(i int) bool {
		return !s.timeline[i].RecordedAt.Before(since)
	})

	list := make([]*bench.Measurement, len(s.timeline)-idx)
	copy(list, s.timeline[idx:])

	return &measurementIterator{store: s, measurements: list}, nil
}

func (s *InMemoryStore) removeFromTimeline(m *bench.Measurement) {
	for i, existing := range s.timeline {
		if existing == m {
			s.timeline = append(s.timeline[:i], s.timeline[i+1:]...)

			return
		}
	}
}
