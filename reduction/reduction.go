/*
	reduction computes the sum, minimum, maximum and average of an integer
	array either sequentially or by splitting the array across a worker pool.
*/

package reduction

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mycok/uTraverse/pool"
)

// DefaultMaxValue is the exclusive upper bound used by Generate when no
// bound is provided.
const DefaultMaxValue = 1000

var (
	// ErrEmptyInput is returned when a reduction is requested over an empty
	// array.
	ErrEmptyInput = errors.New("cannot reduce an empty array")

	// ErrInvalidSize is returned by Generate for negative sizes.
	ErrInvalidSize = errors.New("array size must be non-negative")
)

// Stats holds the result of a reduction.
type Stats struct {
	Count int
	Sum   int64
	Min   int
	Max   int
	Avg   float64
}

// Sequential reduces values on the calling goroutine.
func Sequential(values []int) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptyInput
	}

	sum, lo, hi := reduceChunk(values)

	return newStats(len(values), sum, lo, hi), nil
}

// Parallel splits values into one contiguous chunk per pool worker. Every
// chunk is reduced locally and the partial results are folded into shared
// accumulators.
func Parallel(p *pool.Pool, values []int) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptyInput
	}

	chunks := p.Workers()
	if chunks > len(values) {
		chunks = len(values)
	}

	var (
		sum       = new(IntSum)
		minAcc    = NewIntMin()
		maxAcc    = NewIntMax()
		chunkSize = (len(values) + chunks - 1) / chunks
	)

	p.Run(chunks, func(i int) {
		lo := i * chunkSize
		if lo >= len(values) {
			return
		}

		hi := lo + chunkSize
		if hi > len(values) {
			hi = len(values)
		}

		s, mn, mx := reduceChunk(values[lo:hi])
		sum.Aggregate(s)
		minAcc.Aggregate(mn)
		maxAcc.Aggregate(mx)
	})

	return newStats(len(values), sum.Get(), minAcc.Get(), maxAcc.Get()), nil
}

// Generate returns n random values in [0, maxValue). A non-positive maxValue
// selects DefaultMaxValue.
func Generate(n, maxValue int, rnd *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate %d values: %w", n, ErrInvalidSize)
	}

	if maxValue <= 0 {
		maxValue = DefaultMaxValue
	}

	values := make([]int, n)
	for i := range values {
		values[i] = rnd.Intn(maxValue)
	}

	return values, nil
}

func reduceChunk(values []int) (sum, lo, hi int64) {
	lo, hi = math.MaxInt64, math.MinInt64
	for _, v := range values {
		x := int64(v)
		sum += x

		if x < lo {
			lo = x
		}

		if x > hi {
			hi = x
		}
	}

	return sum, lo, hi
}

func newStats(count int, sum, lo, hi int64) Stats {
	return Stats{
		Count: count,
		Sum:   sum,
		Min:   int(lo),
		Max:   int(hi),
		Avg:   float64(sum) / float64(count),
	}
}
