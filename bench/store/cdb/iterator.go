package cdb

import (
	"database/sql"
	"fmt"

	"github.com/mycok/uTraverse/bench"
)

// Static and compile-time check to ensure measurementIterator implements
// bench.MeasurementIterator interface.
var _ bench.MeasurementIterator = (*measurementIterator)(nil)

// measurementIterator wraps the [database/sql] Rows type that serves as an
// iterator for the returned query data.
type measurementIterator struct {
	rows        *sql.Rows
	lastErr     error
	measurement *bench.Measurement
}

// Next loads the next measurement, returns false when no more rows are
// available or when an error occurs.
func (i *measurementIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	if i.measurement, i.lastErr = scanMeasurement(i.rows); i.lastErr != nil {
		return false
	}

	return true
}

// Error returns the last error encountered by the iterator.
func (i *measurementIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}

	return i.rows.Err()
}

// Close releases any resources allocated to the iterator.
func (i *measurementIterator) Close() error {
	if err := i.rows.Close(); err != nil {
		return fmt.Errorf("measurement iterator: %w", err)
	}

	return nil
}

// Measurement returns the currently fetched measurement.
func (i *measurementIterator) Measurement() *bench.Measurement {
	return i.measurement
}
