package rpc

import (
	"context"
	"errors"
	"io"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/bench/api/rpc/proto"
)

// BenchmarkClient provides an API for running benchmarks on, and reading
// measurements from, a remote gRPC server.
type BenchmarkClient struct {
	ctx       context.Context
	rpcClient proto.BenchmarkClient
}

// NewBenchmarkClient configures and returns a BenchmarkClient instance.
func NewBenchmarkClient(ctx context.Context, rpcClient proto.BenchmarkClient) *BenchmarkClient {
	return &BenchmarkClient{
		ctx:       ctx,
		rpcClient: rpcClient,
	}
}

// Run asks the server to execute a benchmark and returns its report.
func (c *BenchmarkClient) Run(req RunRequest) (*bench.Report, error) {
	result, err := c.rpcClient.Run(c.ctx, encodeRunRequest(req))
	if err != nil {
		return nil, err
	}

	return decodeReport(result)
}

// Measurements returns an iterator for the measurements recorded at or after
// since.
func (c *BenchmarkClient) Measurements(since time.Time) (bench.MeasurementIterator, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	if !since.IsZero() {
		req.Fields["since"] = structpb.NewStringValue(since.UTC().Format(time.RFC3339Nano))
	}

	ctx, cancel := context.WithCancel(c.ctx)
	stream, err := c.rpcClient.Measurements(ctx, req)
	if err != nil {
		cancel()

		return nil, err
	}

	return &measurementIterator{
		stream:   stream,
		cancelFn: cancel,
	}, nil
}

var _ bench.MeasurementIterator = (*measurementIterator)(nil)

type measurementIterator struct {
	stream      proto.Benchmark_MeasurementsClient
	measurement *bench.Measurement
	lastErr     error
	cancelFn    func()
}

// Next loads the next measurement, returns false when the stream is
// exhausted or when an error occurs.
func (i *measurementIterator) Next() bool {
	if i.lastErr != nil {
		return false
	}

	result, err := i.stream.Recv()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			i.lastErr = err
		}

		i.cancelFn()

		return false
	}

	if i.measurement, i.lastErr = decodeMeasurement(result); i.lastErr != nil {
		i.cancelFn()

		return false
	}

	return true
}

// Error returns the last error encountered by the iterator.
func (i *measurementIterator) Error() error {
	return i.lastErr
}

// Close releases any resources allocated to the iterator.
func (i *measurementIterator) Close() error {
	i.cancelFn()

	return nil
}

// Measurement returns the currently fetched measurement.
func (i *measurementIterator) Measurement() *bench.Measurement {
	return i.measurement
}
