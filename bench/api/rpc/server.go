package rpc

import (
	"context"
	"errors"
	"io"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/bench/api/rpc/proto"
)

var _ proto.BenchmarkServer = (*BenchmarkServer)(nil)

// Limits applied to client requests when the corresponding ServerConfig
// field is left at zero.
const (
	DefaultMaxReductionSize = 1 << 24
	DefaultMaxRepeats       = 100
	DefaultMaxWorkers       = 256
)

// ServerConfig encapsulates the settings shared by every benchmark executed
// through a BenchmarkServer.
type ServerConfig struct {
	// An optional store for recording and listing measurements.
	Store bench.Store

	// Optional metrics collector.
	Metrics *bench.Metrics

	// Clock used to time the workloads. Defaults to the wall-clock.
	Clock clock.Clock

	// Upper bound for the number of vertices a client may request. A zero
	// value disables the check.
	MaxVertices int

	// Upper bound for the length of the reduction array a client may
	// request. Defaults to DefaultMaxReductionSize.
	MaxReductionSize int

	// Upper bound for the number of times each workload is measured.
	// Defaults to DefaultMaxRepeats.
	MaxRepeats int

	// Upper bound for the number of pool workers a client may request.
	// Defaults to DefaultMaxWorkers.
	MaxWorkers int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

// BenchmarkServer provides a gRPC layer for running benchmarks and
// accessing recorded measurements.
type BenchmarkServer struct {
	cfg ServerConfig
	proto.UnimplementedBenchmarkServer
}

// NewBenchmarkServer returns a new server instance configured by cfg.
func NewBenchmarkServer(cfg ServerConfig) *BenchmarkServer {
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	if cfg.MaxReductionSize <= 0 {
		cfg.MaxReductionSize = DefaultMaxReductionSize
	}

	if cfg.MaxRepeats <= 0 {
		cfg.MaxRepeats = DefaultMaxRepeats
	}

	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = DefaultMaxWorkers
	}

	return &BenchmarkServer{cfg: cfg}
}

// Run executes the requested benchmark and returns the resulting report.
func (s *BenchmarkServer) Run(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	runReq, err := decodeRunRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err = s.checkLimits(runReq); err != nil {
		return nil, err
	}

	h, err := bench.New(bench.Config{
		Vertices:      runReq.Vertices,
		Edges:         runReq.Edges,
		Start:         runReq.Start,
		Seed:          runReq.Seed,
		ReductionSize: runReq.ReductionSize,
		Workers:       runReq.Workers,
		Repeats:       runReq.Repeats,
		Clock:         s.cfg.Clock,
		Store:         s.cfg.Store,
		Metrics:       s.cfg.Metrics,
		Logger:        s.cfg.Logger,
	})
	if err != nil {
		if errors.Is(err, bench.ErrInvalidConfig) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return nil, err
	}

	report, err := h.Run(ctx)
	if err != nil {
		s.cfg.Logger.WithField("err", err).Error("benchmark run failed")

		switch {
		case errors.Is(err, context.Canceled):
			return nil, status.Error(codes.Canceled, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			return nil, status.Error(codes.DeadlineExceeded, err.Error())
		default:
			return nil, status.Error(codes.Internal, err.Error())
		}
	}

	return encodeReport(report), nil
}

// checkLimits rejects requests that exceed the resource bounds of the server.
func (s *BenchmarkServer) checkLimits(req RunRequest) error {
	limits := []struct {
		what       string
		value, max int
	}{
		{"vertices", req.Vertices, s.cfg.MaxVertices},
		{"reduction size", req.ReductionSize, s.cfg.MaxReductionSize},
		{"repeats", req.Repeats, s.cfg.MaxRepeats},
		{"workers", req.Workers, s.cfg.MaxWorkers},
	}

	for _, l := range limits {
		if l.max > 0 && l.value > l.max {
			return status.Errorf(codes.InvalidArgument, "requested %d %s, server limit is %d", l.value, l.what, l.max)
		}
	}

	return nil
}

// Measurements streams the measurements recorded at or after the "since"
// field of the request. A missing field selects every measurement.
func (s *BenchmarkServer) Measurements(req *structpb.Struct, stream proto.Benchmark_MeasurementsServer) error {
	if s.cfg.Store == nil {
		return status.Error(codes.FailedPrecondition, "no measurement store configured")
	}

	r := fieldReader{s: req}
	since := r.timestamp("since")
	if r.err != nil {
		return status.Error(codes.InvalidArgument, r.err.Error())
	}

	it, err := s.cfg.Store.Measurements(since)
	if err != nil {
		return err
	}
	defer func() { _ = it.Close() }()

	for it.Next() {
		if err := stream.Send(encodeMeasurement(it.Measurement())); err != nil {
			return err
		}
	}

	if err = it.Error(); err != nil {
		return err
	}

	return it.Close()
}
