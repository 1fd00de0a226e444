package reduction

import (
	"math"
	"sync/atomic"
)

// Static and compile-time checks to ensure the accumulators implement the
// Accumulator interface.
var (
	_ Accumulator = (*IntSum)(nil)
	_ Accumulator = (*IntMin)(nil)
	_ Accumulator = (*IntMax)(nil)
)

// Accumulator is implemented by types that provide concurrent-safe
// reduction primitives.
type Accumulator interface {
	// Get the current accumulator value.
	Get() int64

	// Aggregate folds the provided value into the accumulator.
	Aggregate(val int64)
}

// IntSum is a concurrent-safe accumulator that sums int64 values.
type IntSum struct {
	sum int64
}

// Get retrieves the current accumulator value.
func (a *IntSum) Get() int64 { return atomic.LoadInt64(&a.sum) }

// Aggregate adds val to the accumulator.
func (a *IntSum) Aggregate(val int64) { _ = atomic.AddInt64(&a.sum, val) }

// IntMin is a concurrent-safe accumulator that tracks the smallest value it
// has seen. The zero value is not ready for use; call NewIntMin.
type IntMin struct {
	min int64
}

// NewIntMin returns an IntMin that has not seen any value yet.
func NewIntMin() *IntMin { return &IntMin{min: math.MaxInt64} }

// Get retrieves the current accumulator value.
func (a *IntMin) Get() int64 { return atomic.LoadInt64(&a.min) }

// Aggregate replaces the current value with val if val is smaller.
func (a *IntMin) Aggregate(val int64) {
	// Loop until either the stored value is already smaller or a
	// compare-swap operation succeeds.
	for {
		old := atomic.LoadInt64(&a.min)
		if val >= old || atomic.CompareAndSwapInt64(&a.min, old, val) {
			return
		}
	}
}

// IntMax is a concurrent-safe accumulator that tracks the largest value it
// has seen. The zero value is not ready for use; call NewIntMax.
type IntMax struct {
	max int64
}

// NewIntMax returns an IntMax that has not seen any value yet.
func NewIntMax() *IntMax { return &IntMax{max: math.MinInt64} }

// Get retrieves the current accumulator value.
func (a *IntMax) Get() int64 { return atomic.LoadInt64(&a.max) }

// Aggregate replaces the current value with val if val is larger.
func (a *IntMax) Aggregate(val int64) {
	for {
		old := atomic.LoadInt64(&a.max)
		if val <= old || atomic.CompareAndSwapInt64(&a.max, old, val) {
			return
		}
	}
}
