package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/internal/config"
	"github.com/mycok/uTraverse/service"
	"github.com/mycok/uTraverse/service/benchmark"
	"github.com/mycok/uTraverse/service/metrics"
)

func newApp(rootLogger *logrus.Logger, logger *logrus.Entry, in io.Reader, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = appSHA
	app.Usage = "benchmark sequential and parallel graph traversals"
	app.Reader = in
	app.Writer = out
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "vertices",
			Usage: "Number of vertices of the random graph (prompted for when not set)",
		},
		&cli.IntFlag{
			Name:  "edges",
			Usage: "Number of random edges (prompted for when not set)",
		},
		&cli.IntFlag{
			Name:  "start",
			Usage: "Vertex from which every traversal starts",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for the graph and array generators [defaults to a time based seed]",
		},
		&cli.IntFlag{
			Name:  "reduction-size",
			Usage: "Length of the random array for the reduction workload [0 skips the workload]",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Number of pool workers for the parallel variants [defaults to number of CPU's]",
		},
		&cli.IntFlag{
			Name:  "repeats",
			Value: 1,
			Usage: "Number of times each workload is measured",
		},
		&cli.StringFlag{
			Name:    "store-uri",
			EnvVars: []string{"STORE_URI"},
			Usage: "URI for recording measurements" +
				" (supported URI's: in-memory://, postgresql://user@host:26257/utraverse?sslmode=disable)",
		},
		&cli.BoolFlag{
			Name:  "serve",
			Usage: "Expose the benchmark over gRPC instead of running it once",
		},
		&cli.StringFlag{
			Name:    "listen-addr",
			Value:   ":8080",
			EnvVars: []string{"LISTEN_ADDR"},
			Usage:   "Address to listen on for gRPC requests in serve mode",
		},
		&cli.StringFlag{
			Name:    "metrics-addr",
			Value:   ":9090",
			EnvVars: []string{"METRICS_ADDR"},
			Usage:   "Address for the prometheus /metrics endpoint in serve mode [empty disables it]",
		},
		&cli.IntFlag{
			Name:  "max-vertices",
			Usage: "Upper bound on the vertices a gRPC client may request [0 disables the check]",
		},
		&cli.IntFlag{
			Name:  "max-reduction-size",
			Usage: "Upper bound on the reduction array length a gRPC client may request [0 selects the server default]",
		},
		&cli.IntFlag{
			Name:  "max-repeats",
			Usage: "Upper bound on the repeats a gRPC client may request [0 selects the server default]",
		},
		&cli.IntFlag{
			Name:  "max-workers",
			Usage: "Upper bound on the pool workers a gRPC client may request [0 selects the server default]",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Logging level (panic, fatal, error, warn, info, debug, trace)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Logging format (text, json)",
		},
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"UTRAVERSE_CONFIG"},
			Usage:   "Path to a YAML config file. Flags take precedence over its values",
		},
	}

	app.Action = func(appCtx *cli.Context) error {
		s, err := resolveSettings(appCtx)
		if err != nil {
			return err
		}

		if err = s.logging.ConfigureLogger(rootLogger); err != nil {
			return err
		}

		ctx, cancelFn := context.WithCancel(appCtx.Context)
		defer cancelFn()

		go watchSignals(ctx, cancelFn, logger)

		store, closeStore, err := getStore(s.storeURI)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		if s.serve {
			grp, err := newServiceGroup(s, store, logger)
			if err != nil {
				return err
			}

			if err = grp.Execute(ctx); err != nil {
				return err
			}

			logger.Info("shutdown complete")

			return nil
		}

		return runOnce(ctx, s, store, logger, bufio.NewReader(in), out)
	}

	return app
}

// watchSignals cancels the shared context when the process receives an
// interrupt or hangup signal.
func watchSignals(ctx context.Context, cancelFn context.CancelFunc, logger *logrus.Entry) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(signalChan)

	select {
	case s := <-signalChan:
		logger.WithField("signal", s.String()).Info("shutting down due to os signal")
		cancelFn()
	case <-ctx.Done():
	}
}

func runOnce(
	ctx context.Context, s *settings, store bench.Store, logger *logrus.Entry, in *bufio.Reader, out io.Writer,
) error {

	var err error
	if !s.verticesSet {
		if s.bench.Vertices, err = promptCount(in, out, "Enter the number of vertices: ", "vertices"); err != nil {
			return err
		}
	}

	if !s.edgesSet {
		if s.bench.Edges, err = promptCount(in, out, "Enter the number of edges: ", "edges"); err != nil {
			return err
		}
	}

	cfg := s.bench
	cfg.Store = store
	cfg.Logger = logger.WithField("component", "bench")

	h, err := bench.New(cfg)
	if err != nil {
		return err
	}

	report, err := h.Run(ctx)
	if err != nil {
		return err
	}

	if _, err = report.WriteTo(out); err != nil {
		return err
	}

	for _, m := range report.Measurements() {
		logger.WithFields(logrus.Fields{
			"workload":       m.Workload,
			"measurement_id": m.ID,
			"speedup":        m.Speedup(),
		}).Debug("measurement completed")
	}

	return nil
}

// promptCount writes prompt to out and reads a single non-negative integer
// from in.
func promptCount(in *bufio.Reader, out io.Writer, prompt, what string) (int, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return 0, err
	}

	var n int
	if _, err := fmt.Fscan(in, &n); err != nil {
		return 0, fmt.Errorf("invalid number of %s: %w", what, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("invalid number of %s: %d, must be >= 0", what, n)
	}

	return n, nil
}

func newServiceGroup(s *settings, store bench.Store, logger *logrus.Entry) (service.Group, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	benchMetrics, err := bench.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	var (
		svc    service.Service
		svcGrp service.Group
	)

	if svc, err = benchmark.New(benchmark.Config{
		ListenAddr:       s.listenAddr,
		Store:            store,
		Metrics:          benchMetrics,
		MaxVertices:      s.maxVertices,
		MaxReductionSize: s.maxReductionSize,
		MaxRepeats:       s.maxRepeats,
		MaxWorkers:       s.maxWorkers,
		Logger:           logger.WithField("service", "benchmark-rpc"),
	}); err != nil {
		return nil, err
	}
	svcGrp = append(svcGrp, svc)

	if s.metricsAddr != "" {
		if svc, err = metrics.New(metrics.Config{
			ListenAddr: s.metricsAddr,
			Gatherer:   reg,
			Logger:     logger.WithField("service", "metrics"),
		}); err != nil {
			return nil, err
		}
		svcGrp = append(svcGrp, svc)
	}

	return svcGrp, nil
}

// settings is the merged view of the command line flags and the optional
// config file.
type settings struct {
	bench       bench.Config
	verticesSet bool
	edgesSet    bool

	storeURI         string
	serve            bool
	listenAddr       string
	metricsAddr      string
	maxVertices      int
	maxReductionSize int
	maxRepeats       int
	maxWorkers       int

	logging config.LoggingConfig
}

func resolveSettings(appCtx *cli.Context) (*settings, error) {
	var fileCfg config.Config
	if path := appCtx.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}

		fileCfg = *loaded
	}

	intValue := func(name string, fromFile int) int {
		if appCtx.IsSet(name) || fromFile == 0 {
			return appCtx.Int(name)
		}

		return fromFile
	}

	stringValue := func(name, fromFile string) string {
		if appCtx.IsSet(name) || fromFile == "" {
			return appCtx.String(name)
		}

		return fromFile
	}

	fb := fileCfg.Benchmark
	s := &settings{
		bench: bench.Config{
			Start:         intValue("start", fb.Start),
			ReductionSize: intValue("reduction-size", fb.ReductionSize),
			Workers:       intValue("workers", fb.Workers),
			Repeats:       intValue("repeats", fb.Repeats),
			Seed:          appCtx.Int64("seed"),
		},
		storeURI:         stringValue("store-uri", fileCfg.Store.URI),
		serve:            appCtx.Bool("serve"),
		listenAddr:       stringValue("listen-addr", fileCfg.Server.ListenAddr),
		metricsAddr:      appCtx.String("metrics-addr"),
		maxVertices:      intValue("max-vertices", fileCfg.Server.MaxVertices),
		maxReductionSize: intValue("max-reduction-size", fileCfg.Server.MaxReductionSize),
		maxRepeats:       intValue("max-repeats", fileCfg.Server.MaxRepeats),
		maxWorkers:       intValue("max-workers", fileCfg.Server.MaxWorkers),
		logging: config.LoggingConfig{
			Level:  stringValue("log-level", fileCfg.Logging.Level),
			Format: stringValue("log-format", fileCfg.Logging.Format),
		},
	}

	// An explicit empty address in the file disables the metrics endpoint.
	if !appCtx.IsSet("metrics-addr") && fileCfg.Server.MetricsAddr != nil {
		s.metricsAddr = *fileCfg.Server.MetricsAddr
	}

	if !appCtx.IsSet("seed") && fb.Seed != 0 {
		s.bench.Seed = fb.Seed
	}

	switch {
	case appCtx.IsSet("vertices"):
		s.bench.Vertices, s.verticesSet = appCtx.Int("vertices"), true
	case fb.Vertices != nil:
		s.bench.Vertices, s.verticesSet = *fb.Vertices, true
	}

	switch {
	case appCtx.IsSet("edges"):
		s.bench.Edges, s.edgesSet = appCtx.Int("edges"), true
	case fb.Edges != nil:
		s.bench.Edges, s.edgesSet = *fb.Edges, true
	}

	return s, nil
}
