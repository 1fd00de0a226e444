package rpc_test

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/bench/api/rpc"
	"github.com/mycok/uTraverse/bench/api/rpc/mocks"
	"github.com/mycok/uTraverse/bench/api/rpc/proto"
)

var _ = check.Suite(new(ClientTestSuite))

type ClientTestSuite struct{}

func (s *ClientTestSuite) TestRun(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockBenchmarkClient(ctrl)

	id := uuid.New()
	now := time.Now().Truncate(time.Microsecond).UTC()

	rpcClient.EXPECT().Run(
		gomock.AssignableToTypeOf(context.TODO()),
		gomock.AssignableToTypeOf(&structpb.Struct{}),
	).DoAndReturn(func(_ context.Context, req *structpb.Struct, _ ...grpc.CallOption) (*structpb.Struct, error) {
		c.Assert(req.Fields["vertices"].GetNumberValue(), check.Equals, 10.0)
		c.Assert(req.Fields["seed"].GetStringValue(), check.Equals, "99")

		return mustStruct(c, map[string]interface{}{
			"vertices": 10,
			"edges":    20,
			"workers":  4,
			"repeats":  1,
			"seed":     "99",
			"bfs": map[string]interface{}{
				"id":            id.String(),
				"workload":      "bfs",
				"vertices":      10,
				"edges":         20,
				"sequential_ns": 4000,
				"parallel_ns":   2000,
				"reached":       10,
				"recorded_at":   now.Format(time.RFC3339Nano),
			},
		}), nil
	})

	client := rpc.NewBenchmarkClient(context.TODO(), rpcClient)
	report, err := client.Run(rpc.RunRequest{Vertices: 10, Edges: 20, Seed: 99})
	c.Assert(err, check.IsNil)
	c.Assert(report.Seed, check.Equals, int64(99))
	c.Assert(report.DFS, check.IsNil)
	c.Assert(report.Reduction, check.IsNil)
	c.Assert(report.BFS, check.DeepEquals, &bench.Measurement{
		ID:         id,
		Workload:   bench.WorkloadBFS,
		Vertices:   10,
		Edges:      20,
		Sequential: 4 * time.Microsecond,
		Parallel:   2 * time.Microsecond,
		Reached:    10,
		RecordedAt: now,
	})
	c.Assert(report.BFS.Speedup(), check.Equals, 2.0)
}

func (s *ClientTestSuite) TestRunWithMalformedReport(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockBenchmarkClient(ctrl)
	rpcClient.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		mustStruct(c, map[string]interface{}{
			"dfs": map[string]interface{}{"id": "not-a-uuid"},
		}), nil,
	)

	client := rpc.NewBenchmarkClient(context.TODO(), rpcClient)
	_, err := client.Run(rpc.RunRequest{Vertices: 1})
	c.Assert(err, check.ErrorMatches, `dfs measurement: field "id": .*`)
}

func (s *ClientTestSuite) TestMeasurements(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rpcClient := mocks.NewMockBenchmarkClient(ctrl)
	stream := mocks.NewMockBenchmark_MeasurementsClient(ctrl)

	rpcClient.EXPECT().Measurements(
		gomock.AssignableToTypeOf(context.TODO()),
		gomock.AssignableToTypeOf(&structpb.Struct{}),
	).DoAndReturn(func(_ context.Context, req *structpb.Struct, _ ...grpc.CallOption) (proto.Benchmark_MeasurementsClient, error) {
		c.Assert(req.Fields["since"].GetStringValue(), check.Equals, since.Format(time.RFC3339Nano))

		return stream, nil
	})

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	gomock.InOrder(
		stream.EXPECT().Recv().Return(mustStruct(c, map[string]interface{}{
			"id": ids[0].String(), "workload": "dfs", "reached": 7,
		}), nil),
		stream.EXPECT().Recv().Return(mustStruct(c, map[string]interface{}{
			"id": ids[1].String(), "workload": "reduction", "reached": 100,
		}), nil),
		stream.EXPECT().Recv().Return(nil, io.EOF),
	)

	client := rpc.NewBenchmarkClient(context.TODO(), rpcClient)
	it, err := client.Measurements(since)
	c.Assert(err, check.IsNil)

	var got []uuid.UUID
	for it.Next() {
		got = append(got, it.Measurement().ID)
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)
	c.Assert(got, check.DeepEquals, ids)
}

func (s *ClientTestSuite) TestMeasurementsStreamError(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockBenchmarkClient(ctrl)
	stream := mocks.NewMockBenchmark_MeasurementsClient(ctrl)

	rpcClient.EXPECT().Measurements(gomock.Any(), gomock.Any()).Return(stream, nil)
	stream.EXPECT().Recv().Return(nil, errors.New("stream reset"))

	client := rpc.NewBenchmarkClient(context.TODO(), rpcClient)
	it, err := client.Measurements(time.Time{})
	c.Assert(err, check.IsNil)
	c.Assert(it.Next(), check.Equals, false)
	c.Assert(it.Error(), check.ErrorMatches, "stream reset")

	// Iterators do not recover from errors.
	c.Assert(it.Next(), check.Equals, false)
}

func mustStruct(c *check.C, fields map[string]interface{}) *structpb.Struct {
	s, err := structpb.NewStruct(fields)
	c.Assert(err, check.IsNil)

	return s
}
