package traversal_test

import (
	"sort"
	"sync"

	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/traversal"
)

var _ = check.Suite(new(frontierTestSuite))

type frontierTestSuite struct{}

func (s *frontierTestSuite) TestQueueIsFIFO(c *check.C) {
	q := traversal.NewQueue()
	q.Push(1)
	q.PushAll([]int{2, 3})
	q.Push(4)
	c.Assert(q.Len(), check.Equals, 4)

	for exp := 1; exp <= 4; exp++ {
		v, ok := q.Pop()
		c.Assert(ok, check.Equals, true)
		c.Assert(v, check.Equals, exp)
	}

	_, ok := q.Pop()
	c.Assert(ok, check.Equals, false)
	c.Assert(q.Len(), check.Equals, 0)

	// The queue remains usable once drained.
	q.Push(9)
	v, ok := q.Pop()
	c.Assert(ok, check.Equals, true)
	c.Assert(v, check.Equals, 9)
}

func (s *frontierTestSuite) TestStackIsLIFO(c *check.C) {
	st := traversal.NewStack()
	st.Push(1)
	st.PushAll([]int{2, 3})
	st.Push(4)
	c.Assert(st.Len(), check.Equals, 4)

	for exp := 4; exp >= 1; exp-- {
		v, ok := st.Pop()
		c.Assert(ok, check.Equals, true)
		c.Assert(v, check.Equals, exp)
	}

	_, ok := st.Pop()
	c.Assert(ok, check.Equals, false)
}

func (s *frontierTestSuite) TestConcurrentPushPop(c *check.C) {
	for _, f := range []traversal.Frontier{traversal.NewQueue(), traversal.NewStack()} {
		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					f.Push(w*500 + i)
				}
			}(w)
		}
		wg.Wait()
		c.Assert(f.Len(), check.Equals, 4000)

		var (
			mu     sync.Mutex
			popped []int
		)
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					v, ok := f.Pop()
					if !ok {
						return
					}
					mu.Lock()
					popped = append(popped, v)
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		sort.Ints(popped)
		c.Assert(popped, check.HasLen, 4000)
		for i, v := range popped {
			c.Assert(v, check.Equals, i)
		}
	}
}

func (s *frontierTestSuite) TestVisitedSetSingleClaimWinner(c *check.C) {
	set := traversal.NewVisitedSet(100)

	var (
		wg   sync.WaitGroup
		wins = make([]int32, 100)
		mu   sync.Mutex
	)

	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < 100; v++ {
				if set.Claim(v) {
					mu.Lock()
					wins[v]++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	for v, n := range wins {
		c.Assert(n, check.Equals, int32(1), check.Commentf("vertex %d", v))
		c.Assert(set.IsVisited(v), check.Equals, true)
	}

	c.Assert(set.Claims(), check.Equals, int64(100))
	c.Assert(set.Len(), check.Equals, 100)
}
