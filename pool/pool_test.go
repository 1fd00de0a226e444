package pool_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/pool"
)

var _ = check.Suite(new(poolTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type poolTestSuite struct{}

func (s *poolTestSuite) TestRunExecutesEveryTaskOnce(c *check.C) {
	p := pool.New(4)
	defer p.Close()

	hits := make([]int32, 1000)
	p.Run(len(hits), func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})

	for i, n := range hits {
		c.Assert(n, check.Equals, int32(1), check.Commentf("task %d", i))
	}
}

func (s *poolTestSuite) TestRunWithNoTasks(c *check.C) {
	p := pool.New(2)
	defer p.Close()

	p.Run(0, func(int) { c.Fatal("unexpected task execution") })
	p.Run(-3, func(int) { c.Fatal("unexpected task execution") })
}

func (s *poolTestSuite) TestDefaultWorkerCount(c *check.C) {
	p := pool.New(0)
	defer p.Close()

	c.Assert(p.Workers(), check.Equals, runtime.NumCPU())
}

func (s *poolTestSuite) TestNestedBatchesDoNotDeadlock(c *check.C) {
	p := pool.New(2)
	defer p.Close()

	var total int64
	p.Run(8, func(int) {
		p.Run(8, func(int) {
			p.Run(4, func(int) {
				atomic.AddInt64(&total, 1)
			})
		})
	})

	c.Assert(atomic.LoadInt64(&total), check.Equals, int64(8*8*4))
}

func (s *poolTestSuite) TestConcurrentSubmitters(c *check.C) {
	p := pool.New(3)
	defer p.Close()

	var (
		wg    sync.WaitGroup
		total int64
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(100, func(int) { atomic.AddInt64(&total, 1) })
		}()
	}

	wg.Wait()
	c.Assert(atomic.LoadInt64(&total), check.Equals, int64(1000))
}

func (s *poolTestSuite) TestRunAfterClose(c *check.C) {
	p := pool.New(2)
	p.Close()
	// Closing twice is a no-op.
	p.Close()

	var total int64
	p.Run(5, func(int) { atomic.AddInt64(&total, 1) })
	c.Assert(total, check.Equals, int64(5))
}
