package bench

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mycok/uTraverse/reduction"
)

// ReductionStats holds the outputs of the last sequential and parallel
// reduction runs.
type ReductionStats struct {
	Sequential reduction.Stats
	Parallel   reduction.Stats
}

// Report summarizes a benchmark run.
type Report struct {
	Vertices       int
	Edges          int
	RequestedEdges int
	EdgesClamped   bool
	Workers        int
	Repeats        int
	Start          int
	Seed           int64

	BFS       *Measurement
	DFS       *Measurement
	Reduction *Measurement

	ReductionStats *ReductionStats
}

// Measurements returns the measurements that were collected, in workload
// order.
func (r *Report) Measurements() []*Measurement {
	var out []*Measurement
	for _, m := range []*Measurement{r.BFS, r.DFS, r.Reduction} {
		if m != nil {
			out = append(out, m)
		}
	}

	return out
}

// WriteTo renders a human-readable version of the report to w. Times are
// reported with microsecond resolution.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	if r.EdgesClamped {
		fmt.Fprintf(
			&buf, "Too many edges for the given number of vertices (%d requested). Adjusting to maximum possible edges.\n",
			r.RequestedEdges,
		)
	}

	if r.Vertices > 0 {
		fmt.Fprintf(
			&buf, "Graph: %d vertices, %d edges, start vertex %d, %d workers, %d repeat(s)\n",
			r.Vertices, r.Edges, r.Start, r.Workers, r.Repeats,
		)
	}

	for _, m := range []*Measurement{r.BFS, r.DFS} {
		if m == nil {
			continue
		}

		name := strings.ToUpper(string(m.Workload))
		fmt.Fprintf(&buf, "Sequential %s Time: %d microseconds\n", name, micros(m.Sequential))
		fmt.Fprintf(&buf, "Parallel %s Time: %d microseconds\n", name, micros(m.Parallel))
		fmt.Fprintf(&buf, "Speedup for %s: %.4f\n", name, m.Speedup())
		fmt.Fprintf(&buf, "Reached vertices (%s): %d\n", name, m.Reached)
		if m.Repeats > 1 {
			fmt.Fprintf(
				&buf, "Std deviation (%s): sequential %d, parallel %d microseconds\n",
				name, micros(m.SequentialStdDev), micros(m.ParallelStdDev),
			)
		}
	}

	if m := r.Reduction; m != nil {
		fmt.Fprintf(&buf, "Reduction over %d elements, %d workers, %d repeat(s)\n", m.Vertices, m.Workers, m.Repeats)
		if s := r.ReductionStats; s != nil {
			writeStats(&buf, "Sequential:", s.Sequential)
			writeStats(&buf, "Parallel:  ", s.Parallel)
		}

		fmt.Fprintf(&buf, "Sequential Execution: %d microseconds\n", micros(m.Sequential))
		fmt.Fprintf(&buf, "Parallel Execution:   %d microseconds\n", micros(m.Parallel))
		fmt.Fprintf(&buf, "Speedup: %.4fx\n", m.Speedup())
	}

	return buf.WriteTo(w)
}

func writeStats(w io.Writer, label string, s reduction.Stats) {
	fmt.Fprintf(w, "%s Sum = %d, Min = %d, Max = %d, Avg = %g\n", label, s.Sum, s.Min, s.Max, s.Avg)
}

func micros(d time.Duration) int64 { return d.Microseconds() }
