package traversal

import (
	"sync"
	"sync/atomic"
)

// ParallelDFS runs a depth-first traversal from start using every worker of
// the pool.
//
// Workers share one stack. Each worker repeatedly pops a vertex, claims it
// and pushes its unvisited neighbors; vertices that were already claimed by
// another worker are discarded. Neighbor expansion of high degree vertices is
// split into a nested batch on the same pool.
//
// The traversal terminates once the stack is empty and no worker is in the
// middle of an expansion. Observing an empty stack alone is not enough: the
// worker that popped the last vertex may be about to push more work.
func (e *Engine) ParallelDFS(start int) (*Result, error) {
	if err := e.checkStart(start); err != nil {
		return nil, err
	}

	var (
		visited  = NewVisitedSet(e.g.NumVertices())
		tracker  = newWorkTracker(NewStack())
		examined int64
	)

	tracker.put(start)

	e.pool.Run(e.pool.Workers(), func(int) {
		for {
			v, ok := tracker.take()
			if !ok {
				return
			}

			if visited.Claim(v) {
				atomic.AddInt64(&examined, int64(e.g.Degree(v)))
				e.expand(v, visited, tracker)
			}

			tracker.done()
		}
	})

	res := &Result{
		Visited:       visited.Snapshot(),
		Claims:        visited.Claims(),
		EdgesExamined: atomic.LoadInt64(&examined),
	}
	e.logCompleted("parallel-dfs", start, res)

	return res, nil
}

// expand pushes the currently unvisited neighbors of v onto the shared
// frontier.
//
// Neighbor lists of at least ExpandThreshold vertices are split into a
// nested pool batch. ParallelDFS occupies every pool worker with its loop
// and idle loops block on the tracker rather than on the pool, so a chunk
// is handed to another worker only in the rare case that one is waiting on
// the pool; otherwise it runs on the calling goroutine.
func (e *Engine) expand(v int, visited *VisitedSet, tracker *workTracker) {
	neighbors := e.g.Neighbors(v)

	pushUnvisited := func(vs []int) {
		for _, n := range vs {
			if !visited.IsVisited(n) {
				tracker.put(n)
			}
		}
	}

	threshold := e.cfg.ExpandThreshold
	if len(neighbors) < threshold {
		pushUnvisited(neighbors)

		return
	}

	chunks := (len(neighbors) + threshold - 1) / threshold
	e.pool.Run(chunks, func(i int) {
		lo := i * threshold
		hi := lo + threshold
		if hi > len(neighbors) {
			hi = len(neighbors)
		}

		pushUnvisited(neighbors[lo:hi])
	})
}

// workTracker couples a frontier with a count of workers that are currently
// expanding a vertex. It provides the termination detection for ParallelDFS.
type workTracker struct {
	mu       sync.Mutex
	cond     *sync.Cond
	frontier Frontier
	active   int
}

func newWorkTracker(frontier Frontier) *workTracker {
	t := &workTracker{frontier: frontier}
	t.cond = sync.NewCond(&t.mu)

	return t
}

// put adds v to the frontier and wakes up a waiting worker.
func (t *workTracker) put(v int) {
	t.mu.Lock()

	t.frontier.Push(v)

	t.mu.Unlock()
	t.cond.Signal()
}

// take pops the next vertex and registers the caller as active. While the
// frontier is empty but other workers are active, take blocks since they may
// still push work. It returns false once the frontier is empty and no worker
// is active.
func (t *workTracker) take() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		if v, ok := t.frontier.Pop(); ok {
			t.active++

			return v, true
		}

		if t.active == 0 {
			// Release every other waiter; the traversal is complete.
			t.cond.Broadcast()

			return 0, false
		}

		t.cond.Wait()
	}
}

// done unregisters an active worker.
func (t *workTracker) done() {
	t.mu.Lock()

	t.active--
	idle := t.active == 0 && t.frontier.Len() == 0

	t.mu.Unlock()

	if idle {
		t.cond.Broadcast()
	}
}
