package reduction_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/pool"
	"github.com/mycok/uTraverse/reduction"
)

var _ = check.Suite(new(reductionTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type reductionTestSuite struct {
	pool *pool.Pool
}

func (s *reductionTestSuite) SetUpSuite(c *check.C) {
	s.pool = pool.New(4)
}

func (s *reductionTestSuite) TearDownSuite(c *check.C) {
	s.pool.Close()
}

func (s *reductionTestSuite) TestKnownValues(c *check.C) {
	values := []int{5, -3, 12, 7, 0, 4}
	exp := reduction.Stats{Count: 6, Sum: 25, Min: -3, Max: 12, Avg: 25.0 / 6.0}

	seq, err := reduction.Sequential(values)
	c.Assert(err, check.IsNil)
	c.Assert(seq, check.DeepEquals, exp)

	par, err := reduction.Parallel(s.pool, values)
	c.Assert(err, check.IsNil)
	c.Assert(par, check.DeepEquals, exp)
}

func (s *reductionTestSuite) TestParallelMatchesSequential(c *check.C) {
	rnd := rand.New(rand.NewSource(42))

	for _, size := range []int{1, 2, 3, 5, 17, 1000, 100003} {
		values, err := reduction.Generate(size, 0, rnd)
		c.Assert(err, check.IsNil)
		c.Assert(values, check.HasLen, size)

		seq, err := reduction.Sequential(values)
		c.Assert(err, check.IsNil)
		par, err := reduction.Parallel(s.pool, values)
		c.Assert(err, check.IsNil)

		c.Assert(par, check.DeepEquals, seq, check.Commentf("size %d", size))
		c.Assert(seq.Min >= 0 && seq.Max < reduction.DefaultMaxValue, check.Equals, true)
	}
}

func (s *reductionTestSuite) TestEmptyInput(c *check.C) {
	_, err := reduction.Sequential(nil)
	c.Assert(errors.Is(err, reduction.ErrEmptyInput), check.Equals, true)

	_, err = reduction.Parallel(s.pool, []int{})
	c.Assert(errors.Is(err, reduction.ErrEmptyInput), check.Equals, true)

	_, err = reduction.Generate(-1, 10, rand.New(rand.NewSource(1)))
	c.Assert(errors.Is(err, reduction.ErrInvalidSize), check.Equals, true)
}

func (s *reductionTestSuite) TestAccumulatorsUnderContention(c *check.C) {
	var (
		sum    = new(reduction.IntSum)
		minAcc = reduction.NewIntMin()
		maxAcc = reduction.NewIntMax()
		wg     sync.WaitGroup
	)

	c.Assert(minAcc.Get(), check.Equals, int64(math.MaxInt64))
	c.Assert(maxAcc.Get(), check.Equals, int64(math.MinInt64))

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := int64(w*1000 + i)
				sum.Aggregate(1)
				for _, acc := range []reduction.Accumulator{minAcc, maxAcc} {
					acc.Aggregate(v)
				}
			}
		}(w)
	}
	wg.Wait()

	c.Assert(sum.Get(), check.Equals, int64(8000))
	c.Assert(minAcc.Get(), check.Equals, int64(0))
	c.Assert(maxAcc.Get(), check.Equals, int64(7999))
}
