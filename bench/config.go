package bench

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned by New when the benchmark configuration
// cannot be used.
var ErrInvalidConfig = errors.New("benchmark config validation failed")

// Config defines the configuration for a benchmark run.
type Config struct {
	// Number of vertices of the random graph. A zero value skips the
	// traversal workloads.
	Vertices int

	// Number of random edges to draw. Values above the edge count of a
	// complete graph are clamped.
	Edges int

	// Vertex from which every traversal starts.
	Start int

	// Seed for the random graph and array generators. If not specified, a
	// seed is derived from the clock.
	Seed int64

	// Length of the random array used by the reduction workload. A zero
	// value skips the reduction workload.
	ReductionSize int

	// The number of pool workers used by the parallel variants. If not
	// specified, runtime.NumCPU() is used.
	Workers int

	// The number of times each workload is executed. If not specified, a
	// single run is performed.
	Repeats int

	// A clock instance for measuring elapsed time. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// An optional store where measurements are recorded.
	Store Store

	// Optional metrics collector.
	Metrics *Metrics

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.Vertices < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for vertices, must be >= 0"))
	}

	if config.Edges < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for edges, must be >= 0"))
	}

	if config.ReductionSize < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for reduction size, must be >= 0"))
	}

	if config.Vertices == 0 && config.ReductionSize == 0 {
		err = multierror.Append(err, fmt.Errorf("no workload selected: vertices and reduction size are both zero"))
	}

	if config.Vertices > 0 && (config.Start < 0 || config.Start >= config.Vertices) {
		err = multierror.Append(err, fmt.Errorf(
			"invalid value for start vertex %d, must be in [0, %d)", config.Start, config.Vertices,
		))
	}

	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	if config.Repeats <= 0 {
		config.Repeats = 1
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Seed == 0 {
		config.Seed = config.Clock.Now().UnixNano()
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
