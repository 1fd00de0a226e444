package traversal

import "sync/atomic"

// ParallelBFS runs a level-synchronous breadth-first traversal from start.
//
// At the beginning of each level the size k of the frontier is snapshotted
// and k tasks are submitted to the worker pool. Each task dequeues a single
// vertex and scans its neighbors; a neighbor is appended to the next level
// only by the task that wins its claim. The pool barrier at the end of the
// batch guarantees that every vertex at distance d is claimed before any
// vertex at distance d+1 is expanded.
func (e *Engine) ParallelBFS(start int) (*Result, error) {
	if err := e.checkStart(start); err != nil {
		return nil, err
	}

	var (
		visited  = NewVisitedSet(e.g.NumVertices())
		levels   = newLevels(e.g.NumVertices())
		frontier = NewQueue()
		next     = NewQueue()
		examined int64
	)

	visited.Claim(start)
	levels[start] = 0
	frontier.Push(start)

	for level := 0; frontier.Len() != 0; level++ {
		e.pool.Run(frontier.Len(), func(int) {
			v, ok := frontier.Pop()
			if !ok {
				return
			}

			neighbors := e.g.Neighbors(v)
			atomic.AddInt64(&examined, int64(len(neighbors)))

			var claimed []int
			for _, n := range neighbors {
				// Only the winner of the claim writes levels[n], and levels
				// is read after the barrier.
				if visited.Claim(n) {
					levels[n] = level + 1
					claimed = append(claimed, n)
				}
			}

			next.PushAll(claimed)
		})

		// The current frontier has been drained; the collected level becomes
		// the frontier of the next iteration.
		frontier, next = next, frontier
	}

	res := &Result{
		Visited:       visited.Snapshot(),
		Levels:        levels,
		Claims:        visited.Claims(),
		EdgesExamined: atomic.LoadInt64(&examined),
	}
	e.logCompleted("parallel-bfs", start, res)

	return res, nil
}
