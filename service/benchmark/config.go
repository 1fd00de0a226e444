package benchmark

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uTraverse/bench"
)

// Config defines configurations for the benchmark gRPC service.
type Config struct {
	// The address to listen on for incoming gRPC requests.
	ListenAddr string

	// An optional store where benchmark measurements are recorded.
	Store bench.Store

	// Optional metrics collector shared by every benchmark run.
	Metrics *bench.Metrics

	// A clock instance used to time the workloads. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// Upper bound for the number of vertices a client may request. A zero
	// value disables the check.
	MaxVertices int

	// Upper bounds for the reduction array length, repeats and pool workers
	// a client may request. Zero values select the rpc package defaults.
	MaxReductionSize int
	MaxRepeats       int
	MaxWorkers       int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.ListenAddr == "" {
		err = multierror.Append(err, fmt.Errorf("listen address not specified"))
	}

	if config.MaxVertices < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max vertices, must be >= 0"))
	}

	if config.MaxReductionSize < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max reduction size, must be >= 0"))
	}

	if config.MaxRepeats < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max repeats, must be >= 0"))
	}

	if config.MaxWorkers < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max workers, must be >= 0"))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
