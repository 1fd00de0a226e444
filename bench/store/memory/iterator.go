package memory

import "github.com/mycok/uTraverse/bench"

// Static and compile-time check to ensure measurementIterator implements
// bench.MeasurementIterator interface.
var _ bench.MeasurementIterator = (*measurementIterator)(nil)

// measurementIterator is a bench.MeasurementIterator implementation for the
// in-memory store.
type measurementIterator struct {
	// Provides access to the store mutex object.
	store        *InMemoryStore
	measurements []*bench.Measurement
	currentIndex int
}

// Next advances the iterator. When no measurements are available, calls to
// Next() return false.
func (i *measurementIterator) Next() bool {
	if i.currentIndex >= len(i.measurements) {
		return false
	}

	i.currentIndex++

	return true
}

// Error returns the last error encountered by the iterator.
func (i *measurementIterator) Error() error {
	return nil
}

// Close releases any resources allocated to the iterator.
func (i *measurementIterator) Close() error {
	return nil
}

// Measurement returns the currently fetched measurement.
func (i *measurementIterator) Measurement() *bench.Measurement {
	// Stored measurements may be replaced by a concurrent Record call.
	// Clone under the read lock to avoid data races.
	i.store.mu.RLock()
	defer i.store.mu.RUnlock()

	m := new(bench.Measurement)
	*m = *i.measurements[i.currentIndex-1]

	return m
}
