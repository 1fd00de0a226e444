/*
	proto defines the utraverse.Benchmark gRPC service. Requests and
	responses are google.protobuf.Struct messages, so the service is
	described directly with grpc.ServiceDesc and the default proto codec.
*/

package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

//go:generate mockgen -package mocks -destination ../mocks/mock.go github.com/mycok/uTraverse/bench/api/rpc/proto BenchmarkClient,Benchmark_MeasurementsClient

const (
	// ServiceName is the fully qualified name of the benchmark service.
	ServiceName = "utraverse.Benchmark"

	runMethod          = "/utraverse.Benchmark/Run"
	measurementsMethod = "/utraverse.Benchmark/Measurements"
)

// BenchmarkClient is the client API for the Benchmark service.
type BenchmarkClient interface {
	// Run executes a benchmark and returns its report.
	Run(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)

	// Measurements streams the recorded measurements matching the query.
	Measurements(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (Benchmark_MeasurementsClient, error)
}

type benchmarkClient struct {
	cc grpc.ClientConnInterface
}

// NewBenchmarkClient returns a BenchmarkClient that issues calls over cc.
func NewBenchmarkClient(cc grpc.ClientConnInterface) BenchmarkClient {
	return &benchmarkClient{cc}
}

func (c *benchmarkClient) Run(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, runMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *benchmarkClient) Measurements(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (Benchmark_MeasurementsClient, error) {

	stream, err := c.cc.NewStream(ctx, &benchmarkServiceDesc.Streams[0], measurementsMethod, opts...)
	if err != nil {
		return nil, err
	}

	x := &benchmarkMeasurementsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}

	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

// Benchmark_MeasurementsClient is the client side of the Measurements
// stream.
type Benchmark_MeasurementsClient interface {
	Recv() (*structpb.Struct, error)
	grpc.ClientStream
}

type benchmarkMeasurementsClient struct {
	grpc.ClientStream
}

func (x *benchmarkMeasurementsClient) Recv() (*structpb.Struct, error) {
	m := new(structpb.Struct)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// BenchmarkServer is the server API for the Benchmark service.
type BenchmarkServer interface {
	Run(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Measurements(*structpb.Struct, Benchmark_MeasurementsServer) error
}

// UnimplementedBenchmarkServer can be embedded to have forward compatible
// implementations.
type UnimplementedBenchmarkServer struct{}

func (UnimplementedBenchmarkServer) Run(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Run not implemented")
}

func (UnimplementedBenchmarkServer) Measurements(*structpb.Struct, Benchmark_MeasurementsServer) error {
	return status.Errorf(codes.Unimplemented, "method Measurements not implemented")
}

// Benchmark_MeasurementsServer is the server side of the Measurements
// stream.
type Benchmark_MeasurementsServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type benchmarkMeasurementsServer struct {
	grpc.ServerStream
}

func (x *benchmarkMeasurementsServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

// RegisterBenchmarkServer registers srv with the gRPC server s.
func RegisterBenchmarkServer(s grpc.ServiceRegistrar, srv BenchmarkServer) {
	s.RegisterService(&benchmarkServiceDesc, srv)
}

func runHandler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {

	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(BenchmarkServer).Run(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: runMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BenchmarkServer).Run(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

func measurementsHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}

	return srv.(BenchmarkServer).Measurements(in, &benchmarkMeasurementsServer{stream})
}

var benchmarkServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BenchmarkServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Run", Handler: runHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Measurements", Handler: measurementsHandler, ServerStreams: true},
	},
	Metadata: "utraverse/benchmark.proto",
}
