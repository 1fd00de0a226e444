/*
	graph provides the adjacency-list store for the undirected graphs that
	are traversed by the sequential and parallel search engines.
*/

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVertexCount is returned when a graph is created with a
	// negative number of vertices.
	ErrInvalidVertexCount = errors.New("vertex count must be non-negative")

	// ErrInvalidEdgeCount is returned when a negative number of edges is
	// requested from the random generator.
	ErrInvalidEdgeCount = errors.New("edge count must be non-negative")

	// ErrVertexOutOfRange is returned when an edge endpoint does not belong
	// to the [0, V) vertex range.
	ErrVertexOutOfRange = errors.New("vertex is out of range")

	// ErrSelfLoop is returned when both edge endpoints refer to the same
	// vertex.
	ErrSelfLoop = errors.New("self loops are not supported")
)

// Graph is an undirected graph stored as adjacency lists. Vertices are the
// integers in the [0, V) range.
//
// A Graph is populated by a single goroutine. Once populated it is never
// mutated again and can therefore be read concurrently by any number of
// goroutines without further synchronization.
type Graph struct {
	adjacency [][]int
	numEdges  int
}

// New returns an edgeless graph with v vertices.
func New(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("create graph with %d vertices: %w", v, ErrInvalidVertexCount)
	}

	return &Graph{adjacency: make([][]int, v)}, nil
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.adjacency) }

// NumEdges returns the number of undirected edges added to the graph,
// duplicates included.
func (g *Graph) NumEdges() int { return g.numEdges }

// Contains checks whether v is a valid vertex of the graph.
func (g *Graph) Contains(v int) bool { return v >= 0 && v < len(g.adjacency) }

// Neighbors returns the neighbor list of v in insertion order. The returned
// slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.adjacency[v] }

// Degree returns the length of the neighbor list of v.
func (g *Graph) Degree(v int) int { return len(g.adjacency[v]) }

// AddEdge links u and v by appending v to u's neighbor list and u to v's
// neighbor list. Parallel edges are kept.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Contains(u) || !g.Contains(v) {
		return fmt.Errorf("add edge (%d, %d): %w", u, v, ErrVertexOutOfRange)
	}

	if u == v {
		return fmt.Errorf("add edge (%d, %d): %w", u, v, ErrSelfLoop)
	}

	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.numEdges++

	return nil
}

// MaxEdges returns the number of edges of a simple complete graph with v
// vertices.
func MaxEdges(v int) int64 {
	if v < 2 {
		return 0
	}

	n := int64(v)

	return n * (n - 1) / 2
}

// ClampEdges caps the requested edge count e to MaxEdges(v). The returned
// flag reports whether the value was adjusted.
func ClampEdges(v, e int) (int, bool) {
	if max := MaxEdges(v); int64(e) > max {
		return int(max), true
	}

	return e, false
}
