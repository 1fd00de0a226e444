/*
	traversal implements sequential and parallel breadth-first and
	depth-first search over an undirected graph.

	The parallel variants share a single bounded worker pool, a frontier
	protected by a mutex and a visited set whose flags are claimed with an
	atomic compare-and-swap. Every reachable vertex is visited exactly once;
	the order in which vertices are visited is not deterministic.
*/

package traversal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uTraverse/graph"
	"github.com/mycok/uTraverse/pool"
)

// ErrInvalidStartVertex is returned when a traversal is started from a vertex
// that does not belong to the graph.
var ErrInvalidStartVertex = errors.New("start vertex is not part of the graph")

// Engine runs traversals over a single graph.
type Engine struct {
	g      *graph.Graph
	pool   *pool.Pool
	cfg    Config
	logger *logrus.Entry
}

// NewEngine creates a new Engine instance using the provided configuration.
// It is important for callers to invoke Close() on the returned engine when
// they are done using it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("traversal engine config validation failed: %w", err)
	}

	return &Engine{
		g:      cfg.Graph,
		pool:   pool.New(cfg.Workers),
		cfg:    cfg,
		logger: cfg.Logger,
	}, nil
}

// Close releases the worker pool associated with the engine.
func (e *Engine) Close() error {
	e.pool.Close()

	return nil
}

// Graph returns the graph traversed by the engine.
func (e *Engine) Graph() *graph.Graph { return e.g }

// Pool returns the worker pool used by the parallel traversals.
func (e *Engine) Pool() *pool.Pool { return e.pool }

func (e *Engine) checkStart(start int) error {
	if !e.g.Contains(start) {
		return fmt.Errorf(
			"traverse from %d (vertices: %d): %w",
			start, e.g.NumVertices(), ErrInvalidStartVertex,
		)
	}

	return nil
}

func (e *Engine) logCompleted(mode string, start int, res *Result) {
	e.logger.WithFields(logrus.Fields{
		"mode":           mode,
		"start":          start,
		"reached":        res.Claims,
		"edges_examined": res.EdgesExamined,
	}).Debug("traversal completed")
}
