package bench

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -package mocks -destination mocks/mock.go github.com/mycok/uTraverse/bench Store,MeasurementIterator

// ErrNotFound is returned by Store implementations when a measurement lookup
// fails.
var ErrNotFound = errors.New("measurement not found")

// Workload identifies a pair of sequential and parallel operations that are
// benchmarked against each other.
type Workload string

// The supported workloads.
const (
	WorkloadBFS       Workload = "bfs"
	WorkloadDFS       Workload = "dfs"
	WorkloadReduction Workload = "reduction"
)

// Measurement describes the timings collected for a single workload.
type Measurement struct {
	// A unique identifier for the measurement, assigned by the store.
	ID uuid.UUID

	Workload Workload

	// Size of the input. Reduction measurements leave Edges at zero and use
	// Vertices for the array length.
	Vertices int
	Edges    int

	Workers int
	Repeats int

	// Mean and standard deviation of the elapsed time over all repeats.
	Sequential       time.Duration
	Parallel         time.Duration
	SequentialStdDev time.Duration
	ParallelStdDev   time.Duration

	// Reached is the number of vertices reached by the traversal, or the
	// number of reduced elements.
	Reached int

	RecordedAt time.Time
}

// Speedup returns the ratio between the sequential and the parallel mean
// elapsed times. It returns 0 if the parallel time is not positive.
func (m *Measurement) Speedup() float64 {
	if m.Parallel <= 0 {
		return 0
	}

	return float64(m.Sequential) / float64(m.Parallel)
}

// Store is implemented by objects that persist benchmark measurements.
type Store interface {
	// Record stores a measurement. If the measurement ID is the nil UUID,
	// a new ID is assigned to it.
	Record(m *Measurement) error

	// Find looks up a measurement by its ID.
	Find(id uuid.UUID) (*Measurement, error)

	// Measurements returns an iterator for the measurements recorded at or
	// after the provided time, ordered by recording time.
	Measurements(since time.Time) (MeasurementIterator, error)
}

// MeasurementIterator is implemented by objects that can iterate
// measurements.
type MeasurementIterator interface {
	// Next advances the iterator. If no more items are available or an
	// error occurs, calls to Next() return false.
	Next() bool

	// Measurement returns the currently fetched measurement.
	Measurement() *Measurement

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources associated with the iterator.
	Close() error
}
