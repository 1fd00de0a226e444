package metrics

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Config defines configurations for the metrics service.
type Config struct {
	// The address to listen on for metrics scrapes.
	ListenAddr string

	// The registry whose metrics are exposed. If not specified, the default
	// prometheus gatherer is used.
	Gatherer prometheus.Gatherer

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.ListenAddr == "" {
		err = multierror.Append(err, fmt.Errorf("listen address not specified"))
	}

	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}

// Service exposes prometheus metrics on the /metrics endpoint. It satisfies
// the service.Service interface.
type Service struct {
	config Config
	router *chi.Mux
}

// New creates and returns a fully configured metrics service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("metrics service: config validation failed: %w", err)
	}

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{}))

	return &Service{config: config, router: router}, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "metrics" }

// Run serves metric scrapes and blocks until the context gets cancelled or
// an error occurs.
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.config.ListenAddr)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	srv := &http.Server{
		Addr:    svc.config.ListenAddr,
		Handler: svc.router,
	}

	go func() {
		<-ctx.Done()

		_ = srv.Close()
	}()

	svc.config.Logger.WithField("addr", l.Addr().String()).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	if err = srv.Serve(l); err == http.ErrServerClosed {
		err = nil
	}

	return err
}
