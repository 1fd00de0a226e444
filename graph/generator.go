package graph

import (
	"fmt"
	"math/rand"
)

// GenerateRandom draws edges uniformly random vertex pairs using rnd and adds
// every pair whose endpoints differ. Duplicate pairs are not filtered out.
// It returns the number of edges that were actually added.
func (g *Graph) GenerateRandom(edges int, rnd *rand.Rand) (int, error) {
	if edges < 0 {
		return 0, fmt.Errorf("generate %d random edges: %w", edges, ErrInvalidEdgeCount)
	}

	v := g.NumVertices()
	if v < 2 {
		return 0, nil
	}

	var added int
	for i := 0; i < edges; i++ {
		src, dest := rnd.Intn(v), rnd.Intn(v)
		if src == dest {
			continue
		}

		if err := g.AddEdge(src, dest); err != nil {
			return added, err
		}

		added++
	}

	return added, nil
}

// NewRandom is a convenience wrapper that creates a graph with v vertices and
// populates it with GenerateRandom.
func NewRandom(v, edges int, rnd *rand.Rand) (*Graph, error) {
	g, err := New(v)
	if err != nil {
		return nil, err
	}

	if _, err = g.GenerateRandom(edges, rnd); err != nil {
		return nil, err
	}

	return g, nil
}
