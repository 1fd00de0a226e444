package traversal

// Result captures the outcome of a single traversal.
type Result struct {
	// Visited holds the final visited flag of every vertex. A vertex is
	// reached iff its flag is set.
	Visited []bool

	// Levels holds, for breadth-first traversals, the level at which each
	// vertex was claimed; -1 marks unreached vertices. It is nil for
	// depth-first traversals.
	Levels []int

	// Claims counts the unvisited to visited transitions performed by the
	// traversal.
	Claims int64

	// EdgesExamined counts the adjacency entries that were scanned.
	EdgesExamined int64
}

// Reached returns the number of vertices that were visited.
func (r *Result) Reached() int {
	var n int
	for _, ok := range r.Visited {
		if ok {
			n++
		}
	}

	return n
}

// Depth returns the number of BFS levels that contain at least one vertex,
// or 0 for depth-first results.
func (r *Result) Depth() int {
	depth := 0
	for _, l := range r.Levels {
		if l+1 > depth {
			depth = l + 1
		}
	}

	return depth
}

// SameReach checks whether r and other reached exactly the same vertices.
func (r *Result) SameReach(other *Result) bool {
	if len(r.Visited) != len(other.Visited) {
		return false
	}

	for v, ok := range r.Visited {
		if other.Visited[v] != ok {
			return false
		}
	}

	return true
}

func newLevels(n int) []int {
	levels := make([]int, n)
	for v := range levels {
		levels[v] = -1
	}

	return levels
}
