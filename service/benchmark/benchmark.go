package benchmark

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/mycok/uTraverse/bench/api/rpc"
	"github.com/mycok/uTraverse/bench/api/rpc/proto"
)

// Service exposes the benchmark harness over gRPC. It satisfies the
// service.Service interface.
type Service struct {
	config Config
	srv    *grpc.Server
}

// New creates and returns a fully configured benchmark service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("benchmark service: config validation failed: %w", err)
	}

	srv := grpc.NewServer()
	proto.RegisterBenchmarkServer(srv, rpc.NewBenchmarkServer(rpc.ServerConfig{
		Store:            config.Store,
		Metrics:          config.Metrics,
		Clock:            config.Clock,
		MaxVertices:      config.MaxVertices,
		MaxReductionSize: config.MaxReductionSize,
		MaxRepeats:       config.MaxRepeats,
		MaxWorkers:       config.MaxWorkers,
		Logger:           config.Logger,
	}))

	return &Service{config: config, srv: srv}, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "benchmark-rpc" }

// Run listens for gRPC connections and blocks until the context gets
// cancelled or the server fails.
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.config.ListenAddr)
	if err != nil {
		return err
	}

	return svc.serve(ctx, l)
}

func (svc *Service) serve(ctx context.Context, l net.Listener) error {
	defer func() { _ = l.Close() }()

	go func() {
		<-ctx.Done()

		svc.srv.GracefulStop()
	}()

	svc.config.Logger.WithField("addr", l.Addr().String()).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	if err := svc.srv.Serve(l); err != nil && err != grpc.ErrServerStopped {
		return err
	}

	return nil
}
