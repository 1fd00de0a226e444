package rpc_test

import (
	"context"
	"net"
	"time"

	"github.com/juju/clock/testclock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/bench/api/rpc"
	"github.com/mycok/uTraverse/bench/api/rpc/proto"
	"github.com/mycok/uTraverse/bench/store/memory"
)

var _ = check.Suite(new(ServerTestSuite))

type ServerTestSuite struct {
	store       *memory.InMemoryStore
	netListener *bufconn.Listener
	grpcSrv     *grpc.Server
	clientConn  *grpc.ClientConn
	rpcClient   proto.BenchmarkClient
	client      *rpc.BenchmarkClient
}

func (s *ServerTestSuite) SetUpTest(c *check.C) {
	s.store = memory.NewInMemoryStore()
	s.startServer(c, rpc.ServerConfig{
		Store:       s.store,
		Clock:       testclock.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		MaxVertices: 10000,
	})
}

func (s *ServerTestSuite) TearDownTest(c *check.C) {
	s.stopServer()
}

func (s *ServerTestSuite) startServer(c *check.C, cfg rpc.ServerConfig) {
	s.netListener = bufconn.Listen(1024 * 1024)
	s.grpcSrv = grpc.NewServer()
	proto.RegisterBenchmarkServer(s.grpcSrv, rpc.NewBenchmarkServer(cfg))

	go func() {
		_ = s.grpcSrv.Serve(s.netListener)
	}()

	var err error
	s.clientConn, err = grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return s.netListener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	c.Assert(err, check.IsNil)

	s.rpcClient = proto.NewBenchmarkClient(s.clientConn)
	s.client = rpc.NewBenchmarkClient(context.TODO(), s.rpcClient)
}

func (s *ServerTestSuite) stopServer() {
	_ = s.clientConn.Close()
	s.grpcSrv.Stop()
	_ = s.netListener.Close()
}

func (s *ServerTestSuite) TestRun(c *check.C) {
	report, err := s.client.Run(rpc.RunRequest{
		Vertices:      60,
		Edges:         5000,
		Seed:          1234567890123456789,
		ReductionSize: 2000,
		Workers:       3,
		Repeats:       2,
	})
	c.Assert(err, check.IsNil)

	c.Assert(report.Vertices, check.Equals, 60)
	c.Assert(report.EdgesClamped, check.Equals, true)
	c.Assert(report.RequestedEdges, check.Equals, 5000)
	c.Assert(report.Seed, check.Equals, int64(1234567890123456789))
	c.Assert(report.Workers, check.Equals, 3)
	c.Assert(report.Repeats, check.Equals, 2)
	c.Assert(report.Measurements(), check.HasLen, 3)
	c.Assert(report.BFS.Reached, check.Equals, report.DFS.Reached)
	c.Assert(report.ReductionStats, check.NotNil)
	c.Assert(report.ReductionStats.Sequential, check.DeepEquals, report.ReductionStats.Parallel)
	c.Assert(report.ReductionStats.Sequential.Count, check.Equals, 2000)

	// Every measurement must have been recorded by the server-side store.
	for _, m := range report.Measurements() {
		stored, err := s.store.Find(m.ID)
		c.Assert(err, check.IsNil)
		c.Assert(stored.Workload, check.Equals, m.Workload)
		c.Assert(stored.Reached, check.Equals, m.Reached)
		c.Assert(stored.RecordedAt.Equal(m.RecordedAt), check.Equals, true)
	}
}

func (s *ServerTestSuite) TestRunWithInvalidConfig(c *check.C) {
	_, err := s.client.Run(rpc.RunRequest{Vertices: -1})
	assertCode(c, err, codes.InvalidArgument)

	_, err = s.client.Run(rpc.RunRequest{})
	assertCode(c, err, codes.InvalidArgument)

	_, err = s.client.Run(rpc.RunRequest{Vertices: 10001})
	assertCode(c, err, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestRunRejectsRequestsAboveServerLimits(c *check.C) {
	s.stopServer()
	s.startServer(c, rpc.ServerConfig{
		Store:            s.store,
		MaxVertices:      10,
		MaxReductionSize: 1000,
		MaxRepeats:       5,
		MaxWorkers:       4,
	})

	specs := []struct {
		req    rpc.RunRequest
		expErr string
	}{
		{
			req:    rpc.RunRequest{Vertices: 11},
			expErr: ".*requested 11 vertices, server limit is 10",
		},
		{
			req:    rpc.RunRequest{Vertices: 5, ReductionSize: 5000000, Repeats: 1},
			expErr: ".*requested 5000000 reduction size, server limit is 1000",
		},
		{
			req:    rpc.RunRequest{Vertices: 5, Repeats: 10},
			expErr: ".*requested 10 repeats, server limit is 5",
		},
		{
			req:    rpc.RunRequest{Vertices: 5, Workers: 1000000},
			expErr: ".*requested 1000000 workers, server limit is 4",
		},
	}

	for i, spec := range specs {
		_, err := s.client.Run(spec.req)
		assertCode(c, err, codes.InvalidArgument)
		c.Assert(err, check.ErrorMatches, spec.expErr, check.Commentf("spec %d", i))
	}

	// Nothing must have been executed or recorded for a rejected request.
	it, err := s.store.Measurements(time.Time{})
	c.Assert(err, check.IsNil)
	c.Assert(it.Next(), check.Equals, false)
	c.Assert(it.Close(), check.IsNil)

	// Requests within the limits are still served.
	report, err := s.client.Run(rpc.RunRequest{Vertices: 5, Edges: 4, ReductionSize: 1000, Repeats: 5, Workers: 4})
	c.Assert(err, check.IsNil)
	c.Assert(report.Repeats, check.Equals, 5)
}

func (s *ServerTestSuite) TestRunAppliesDefaultLimits(c *check.C) {
	s.stopServer()
	s.startServer(c, rpc.ServerConfig{Store: s.store})

	_, err := s.client.Run(rpc.RunRequest{Vertices: 5, ReductionSize: 100000000000, Repeats: 1})
	assertCode(c, err, codes.InvalidArgument)

	_, err = s.client.Run(rpc.RunRequest{Vertices: 5, Repeats: rpc.DefaultMaxRepeats + 1})
	assertCode(c, err, codes.InvalidArgument)

	_, err = s.client.Run(rpc.RunRequest{Vertices: 5, Workers: rpc.DefaultMaxWorkers + 1})
	assertCode(c, err, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestRunWithMalformedRequest(c *check.C) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		"vertices": structpb.NewNumberValue(10.5),
	}}

	_, err := s.rpcClient.Run(context.TODO(), req)
	assertCode(c, err, codes.InvalidArgument)

	req.Fields["vertices"] = structpb.NewBoolValue(true)
	_, err = s.rpcClient.Run(context.TODO(), req)
	assertCode(c, err, codes.InvalidArgument)
}

func (s *ServerTestSuite) TestMeasurements(c *check.C) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var recorded []*bench.Measurement
	for i, w := range []bench.Workload{bench.WorkloadBFS, bench.WorkloadDFS, bench.WorkloadReduction} {
		m := &bench.Measurement{
			Workload:         w,
			Vertices:         100 * (i + 1),
			Edges:            300,
			Workers:          2,
			Repeats:          1,
			Sequential:       time.Duration(i+1) * time.Millisecond,
			Parallel:         500 * time.Microsecond,
			SequentialStdDev: 3 * time.Microsecond,
			Reached:          99,
			RecordedAt:       base.Add(time.Duration(i) * time.Minute),
		}
		c.Assert(s.store.Record(m), check.IsNil)
		recorded = append(recorded, m)
	}

	it, err := s.client.Measurements(base.Add(30 * time.Second))
	c.Assert(err, check.IsNil)

	var got []*bench.Measurement
	for it.Next() {
		got = append(got, it.Measurement())
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	c.Assert(got, check.HasLen, 2)
	for i, m := range got {
		exp := recorded[i+1]
		c.Assert(m.ID, check.Equals, exp.ID)
		c.Assert(m.Workload, check.Equals, exp.Workload)
		c.Assert(m.Vertices, check.Equals, exp.Vertices)
		c.Assert(m.Sequential, check.Equals, exp.Sequential)
		c.Assert(m.Parallel, check.Equals, exp.Parallel)
		c.Assert(m.SequentialStdDev, check.Equals, exp.SequentialStdDev)
		c.Assert(m.RecordedAt.Equal(exp.RecordedAt), check.Equals, true)
	}

	// A zero time selects every measurement.
	it, err = s.client.Measurements(time.Time{})
	c.Assert(err, check.IsNil)

	var count int
	for it.Next() {
		count++
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(count, check.Equals, 3)
}

func (s *ServerTestSuite) TestMeasurementsWithoutStore(c *check.C) {
	s.stopServer()
	s.startServer(c, rpc.ServerConfig{})

	it, err := s.client.Measurements(time.Time{})
	c.Assert(err, check.IsNil)
	c.Assert(it.Next(), check.Equals, false)
	assertCode(c, it.Error(), codes.FailedPrecondition)
	c.Assert(it.Close(), check.IsNil)
}
