package traversal

import (
	"errors"
	"io"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uTraverse/graph"
)

// defaultExpandThreshold is the vertex degree from which the parallel DFS
// splits neighbor expansion into a nested batch.
const defaultExpandThreshold = 32

// Config encapsulates the configuration options for creating engines.
type Config struct {
	// Graph is the graph to traverse. It must not be mutated while the
	// engine is in use.
	Graph *graph.Graph

	// Workers specifies the size of the worker pool used by the parallel
	// traversals. If not specified, runtime.NumCPU() workers are used.
	Workers int

	// ExpandThreshold is the minimum vertex degree for which the parallel
	// DFS fans out neighbor expansion across the pool. Lower degree
	// vertices are expanded by the worker that claimed them.
	ExpandThreshold int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error

	if cfg.Graph == nil {
		err = multierror.Append(err, errors.New("graph not provided"))
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.ExpandThreshold <= 0 {
		cfg.ExpandThreshold = defaultExpandThreshold
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
