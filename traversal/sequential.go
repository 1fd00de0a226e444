package traversal

// SequentialBFS runs a single-goroutine breadth-first traversal from start.
// Its result is the reference for ParallelBFS.
func (e *Engine) SequentialBFS(start int) (*Result, error) {
	if err := e.checkStart(start); err != nil {
		return nil, err
	}

	var (
		visited  = NewVisitedSet(e.g.NumVertices())
		levels   = newLevels(e.g.NumVertices())
		queue    = []int{start}
		examined int64
	)

	visited.Claim(start)
	levels[start] = 0

	for len(queue) != 0 {
		v := queue[0]
		queue = queue[1:]

		neighbors := e.g.Neighbors(v)
		examined += int64(len(neighbors))

		for _, n := range neighbors {
			if visited.Claim(n) {
				levels[n] = levels[v] + 1
				queue = append(queue, n)
			}
		}
	}

	res := &Result{
		Visited:       visited.Snapshot(),
		Levels:        levels,
		Claims:        visited.Claims(),
		EdgesExamined: examined,
	}
	e.logCompleted("sequential-bfs", start, res)

	return res, nil
}

// SequentialDFS runs a single-goroutine depth-first traversal from start.
// Vertices are claimed when popped, so a vertex may sit on the stack more
// than once before it is expanded; ParallelDFS follows the same rule.
func (e *Engine) SequentialDFS(start int) (*Result, error) {
	if err := e.checkStart(start); err != nil {
		return nil, err
	}

	var (
		visited  = NewVisitedSet(e.g.NumVertices())
		stack    = []int{start}
		examined int64
	)

	for len(stack) != 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visited.Claim(v) {
			continue
		}

		neighbors := e.g.Neighbors(v)
		examined += int64(len(neighbors))

		for _, n := range neighbors {
			if !visited.IsVisited(n) {
				stack = append(stack, n)
			}
		}
	}

	res := &Result{
		Visited:       visited.Snapshot(),
		Claims:        visited.Claims(),
		EdgesExamined: examined,
	}
	e.logCompleted("sequential-dfs", start, res)

	return res, nil
}
