/*
	bench times the sequential and parallel variants of the traversal and
	reduction workloads, verifies that both variants agree and reports the
	resulting speedups.
*/

package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/mycok/uTraverse/graph"
	"github.com/mycok/uTraverse/pool"
	"github.com/mycok/uTraverse/reduction"
	"github.com/mycok/uTraverse/traversal"
)

// ErrResultMismatch is returned when the parallel variant of a workload
// produces a different result than the sequential one.
var ErrResultMismatch = errors.New("parallel result differs from sequential result")

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

type traversalFunc func(start int) (*traversal.Result, error)

// Harness runs benchmark workloads.
type Harness struct {
	cfg            Config
	requestedEdges int
	edgesClamped   bool
}

// New validates cfg and returns a Harness for it.
func New(cfg Config) (*Harness, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	h := &Harness{cfg: cfg, requestedEdges: cfg.Edges}

	if edges, clamped := graph.ClampEdges(cfg.Vertices, cfg.Edges); clamped {
		cfg.Logger.WithFields(logrus.Fields{
			"requested_edges": cfg.Edges,
			"max_edges":       edges,
		}).Warn("too many edges for the given number of vertices; adjusting to maximum possible edges")

		h.cfg.Edges = edges
		h.edgesClamped = true
	}

	return h, nil
}

// Config returns the validated configuration used by the harness.
func (h *Harness) Config() Config { return h.cfg }

// Run generates the workload inputs, measures every selected workload and
// records the measurements to the configured store. It stops between
// repeats once ctx is cancelled; individual traversals always run to
// completion.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	var (
		cfg = h.cfg
		rnd = rand.New(rand.NewSource(cfg.Seed))
	)

	report := &Report{
		Vertices:       cfg.Vertices,
		RequestedEdges: h.requestedEdges,
		EdgesClamped:   h.edgesClamped,
		Workers:        cfg.Workers,
		Repeats:        cfg.Repeats,
		Start:          cfg.Start,
		Seed:           cfg.Seed,
	}

	tick := cfg.Clock.Now()
	g, err := graph.NewRandom(cfg.Vertices, cfg.Edges, rnd)
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	report.Edges = g.NumEdges()

	cfg.Logger.WithFields(logrus.Fields{
		"vertices":            g.NumVertices(),
		"edges":               g.NumEdges(),
		"generation_duration": cfg.Clock.Now().Sub(tick),
	}).Info("generated random graph")

	engine, err := traversal.NewEngine(traversal.Config{
		Graph:   g,
		Workers: cfg.Workers,
		Logger:  cfg.Logger.WithField("component", "traversal"),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = engine.Close() }()

	if cfg.Vertices > 0 {
		if report.BFS, err = h.measureTraversal(
			ctx, WorkloadBFS, g, engine.SequentialBFS, engine.ParallelBFS,
		); err != nil {
			return nil, err
		}

		if report.DFS, err = h.measureTraversal(
			ctx, WorkloadDFS, g, engine.SequentialDFS, engine.ParallelDFS,
		); err != nil {
			return nil, err
		}
	}

	if cfg.ReductionSize > 0 {
		values, err := reduction.Generate(cfg.ReductionSize, reduction.DefaultMaxValue, rnd)
		if err != nil {
			return nil, err
		}

		report.Reduction, report.ReductionStats, err = h.measureReduction(ctx, engine.Pool(), values)
		if err != nil {
			return nil, err
		}
	}

	for _, m := range report.Measurements() {
		m.RecordedAt = cfg.Clock.Now().UTC()
		if cfg.Store != nil {
			if err := cfg.Store.Record(m); err != nil {
				return nil, fmt.Errorf("record %s measurement: %w", m.Workload, err)
			}
		}

		cfg.Metrics.setSpeedup(m.Workload, m.Speedup())
		cfg.Logger.WithFields(logrus.Fields{
			"workload":   m.Workload,
			"sequential": m.Sequential,
			"parallel":   m.Parallel,
			"speedup":    m.Speedup(),
			"reached":    m.Reached,
		}).Info("workload measured")
	}

	return report, nil
}

func (h *Harness) measureTraversal(
	ctx context.Context, workload Workload, g *graph.Graph,
	seqFn, parFn traversalFunc,
) (*Measurement, error) {

	var (
		seqTimes = make([]float64, 0, h.cfg.Repeats)
		parTimes = make([]float64, 0, h.cfg.Repeats)
		reached  int
	)

	for run := 0; run < h.cfg.Repeats; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seqRes, seqElapsed, err := h.timeTraversal(seqFn)
		if err != nil {
			return nil, fmt.Errorf("sequential %s: %w", workload, err)
		}

		parRes, parElapsed, err := h.timeTraversal(parFn)
		if err != nil {
			return nil, fmt.Errorf("parallel %s: %w", workload, err)
		}

		if !seqRes.SameReach(parRes) || parRes.Claims != int64(parRes.Reached()) {
			h.cfg.Metrics.parityFailure(workload)

			return nil, fmt.Errorf(
				"%s run %d: sequential reached %d vertices, parallel reached %d with %d claims: %w",
				workload, run, seqRes.Reached(), parRes.Reached(), parRes.Claims, ErrResultMismatch,
			)
		}

		h.cfg.Metrics.observe(workload, modeSequential, seqElapsed)
		h.cfg.Metrics.observe(workload, modeParallel, parElapsed)
		seqTimes = append(seqTimes, float64(seqElapsed))
		parTimes = append(parTimes, float64(parElapsed))
		reached = seqRes.Reached()
	}

	m := h.newMeasurement(workload, seqTimes, parTimes)
	m.Vertices = g.NumVertices()
	m.Edges = g.NumEdges()
	m.Reached = reached

	return m, nil
}

func (h *Harness) measureReduction(
	ctx context.Context, p *pool.Pool, values []int,
) (*Measurement, *ReductionStats, error) {

	var (
		seqTimes = make([]float64, 0, h.cfg.Repeats)
		parTimes = make([]float64, 0, h.cfg.Repeats)
		stats    ReductionStats
	)

	for run := 0; run < h.cfg.Repeats; run++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		var err error

		tick := h.cfg.Clock.Now()
		if stats.Sequential, err = reduction.Sequential(values); err != nil {
			return nil, nil, err
		}
		seqElapsed := h.cfg.Clock.Now().Sub(tick)

		tick = h.cfg.Clock.Now()
		if stats.Parallel, err = reduction.Parallel(p, values); err != nil {
			return nil, nil, err
		}
		parElapsed := h.cfg.Clock.Now().Sub(tick)

		if stats.Sequential != stats.Parallel {
			h.cfg.Metrics.parityFailure(WorkloadReduction)

			return nil, nil, fmt.Errorf(
				"reduction run %d: sequential %+v, parallel %+v: %w",
				run, stats.Sequential, stats.Parallel, ErrResultMismatch,
			)
		}

		h.cfg.Metrics.observe(WorkloadReduction, modeSequential, seqElapsed)
		h.cfg.Metrics.observe(WorkloadReduction, modeParallel, parElapsed)
		seqTimes = append(seqTimes, float64(seqElapsed))
		parTimes = append(parTimes, float64(parElapsed))
	}

	m := h.newMeasurement(WorkloadReduction, seqTimes, parTimes)
	m.Vertices = len(values)
	m.Reached = len(values)

	return m, &stats, nil
}

func (h *Harness) timeTraversal(fn traversalFunc) (*traversal.Result, time.Duration, error) {
	tick := h.cfg.Clock.Now()
	res, err := fn(h.cfg.Start)
	elapsed := h.cfg.Clock.Now().Sub(tick)

	return res, elapsed, err
}

func (h *Harness) newMeasurement(workload Workload, seqTimes, parTimes []float64) *Measurement {
	seqMean, seqStd := meanStdDev(seqTimes)
	parMean, parStd := meanStdDev(parTimes)

	return &Measurement{
		Workload:         workload,
		Workers:          h.cfg.Workers,
		Repeats:          len(seqTimes),
		Sequential:       time.Duration(seqMean),
		Parallel:         time.Duration(parMean),
		SequentialStdDev: time.Duration(seqStd),
		ParallelStdDev:   time.Duration(parStd),
	}
}

// meanStdDev returns the mean and the sample standard deviation of xs. The
// deviation of a single sample is reported as zero.
func meanStdDev(xs []float64) (float64, float64) {
	mean, std := stat.MeanStdDev(xs, nil)
	if len(xs) < 2 || math.IsNaN(std) {
		std = 0
	}

	return mean, std
}
