package rpc

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mycok/uTraverse/bench"
	"github.com/mycok/uTraverse/reduction"
)

// RunRequest describes the benchmark a client asks the server to execute.
// Zero values select the server-side defaults.
type RunRequest struct {
	Vertices      int
	Edges         int
	Start         int
	Seed          int64
	ReductionSize int
	Workers       int
	Repeats       int
}

func encodeRunRequest(req RunRequest) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"vertices":       number(req.Vertices),
		"edges":          number(req.Edges),
		"start":          number(req.Start),
		"seed":           structpb.NewStringValue(strconv.FormatInt(req.Seed, 10)),
		"reduction_size": number(req.ReductionSize),
		"workers":        number(req.Workers),
		"repeats":        number(req.Repeats),
	}}
}

func decodeRunRequest(s *structpb.Struct) (RunRequest, error) {
	r := fieldReader{s: s}
	req := RunRequest{
		Vertices:      r.integer("vertices"),
		Edges:         r.integer("edges"),
		Start:         r.integer("start"),
		Seed:          r.integer64("seed"),
		ReductionSize: r.integer("reduction_size"),
		Workers:       r.integer("workers"),
		Repeats:       r.integer("repeats"),
	}

	return req, r.err
}

func encodeMeasurement(m *bench.Measurement) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":                   structpb.NewStringValue(m.ID.String()),
		"workload":             structpb.NewStringValue(string(m.Workload)),
		"vertices":             number(m.Vertices),
		"edges":                number(m.Edges),
		"workers":              number(m.Workers),
		"repeats":              number(m.Repeats),
		"sequential_ns":        structpb.NewNumberValue(float64(m.Sequential)),
		"parallel_ns":          structpb.NewNumberValue(float64(m.Parallel)),
		"sequential_stddev_ns": structpb.NewNumberValue(float64(m.SequentialStdDev)),
		"parallel_stddev_ns":   structpb.NewNumberValue(float64(m.ParallelStdDev)),
		"reached":              number(m.Reached),
		"recorded_at":          structpb.NewStringValue(m.RecordedAt.UTC().Format(time.RFC3339Nano)),
	}}
}

func decodeMeasurement(s *structpb.Struct) (*bench.Measurement, error) {
	r := fieldReader{s: s}
	m := &bench.Measurement{
		ID:               r.id("id"),
		Workload:         bench.Workload(r.text("workload")),
		Vertices:         r.integer("vertices"),
		Edges:            r.integer("edges"),
		Workers:          r.integer("workers"),
		Repeats:          r.integer("repeats"),
		Sequential:       time.Duration(r.integer64("sequential_ns")),
		Parallel:         time.Duration(r.integer64("parallel_ns")),
		SequentialStdDev: time.Duration(r.integer64("sequential_stddev_ns")),
		ParallelStdDev:   time.Duration(r.integer64("parallel_stddev_ns")),
		Reached:          r.integer("reached"),
		RecordedAt:       r.timestamp("recorded_at"),
	}

	if r.err != nil {
		return nil, r.err
	}

	return m, nil
}

func encodeReport(report *bench.Report) *structpb.Struct {
	fields := map[string]*structpb.Value{
		"vertices":        number(report.Vertices),
		"edges":           number(report.Edges),
		"requested_edges": number(report.RequestedEdges),
		"edges_clamped":   structpb.NewBoolValue(report.EdgesClamped),
		"workers":         number(report.Workers),
		"repeats":         number(report.Repeats),
		"start":           number(report.Start),
		"seed":            structpb.NewStringValue(strconv.FormatInt(report.Seed, 10)),
	}

	for _, m := range report.Measurements() {
		fields[string(m.Workload)] = structpb.NewStructValue(encodeMeasurement(m))
	}

	if s := report.ReductionStats; s != nil {
		fields["reduction_stats"] = structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"sequential": structpb.NewStructValue(encodeStats(s.Sequential)),
				"parallel":   structpb.NewStructValue(encodeStats(s.Parallel)),
			},
		})
	}

	return &structpb.Struct{Fields: fields}
}

func decodeReport(s *structpb.Struct) (*bench.Report, error) {
	r := fieldReader{s: s}
	report := &bench.Report{
		Vertices:       r.integer("vertices"),
		Edges:          r.integer("edges"),
		RequestedEdges: r.integer("requested_edges"),
		EdgesClamped:   r.flag("edges_clamped"),
		Workers:        r.integer("workers"),
		Repeats:        r.integer("repeats"),
		Start:          r.integer("start"),
		Seed:           r.integer64("seed"),
	}

	if r.err != nil {
		return nil, r.err
	}

	var err error
	for _, w := range []bench.Workload{bench.WorkloadBFS, bench.WorkloadDFS, bench.WorkloadReduction} {
		v, exists := s.Fields[string(w)]
		if !exists {
			continue
		}

		var m *bench.Measurement
		if m, err = decodeMeasurement(v.GetStructValue()); err != nil {
			return nil, fmt.Errorf("%s measurement: %w", w, err)
		}

		switch w {
		case bench.WorkloadBFS:
			report.BFS = m
		case bench.WorkloadDFS:
			report.DFS = m
		case bench.WorkloadReduction:
			report.Reduction = m
		}
	}

	if v, exists := s.Fields["reduction_stats"]; exists {
		pair := v.GetStructValue()
		stats := new(bench.ReductionStats)
		if stats.Sequential, err = decodeStats(pair.GetFields()["sequential"].GetStructValue()); err != nil {
			return nil, fmt.Errorf("sequential reduction stats: %w", err)
		}

		if stats.Parallel, err = decodeStats(pair.GetFields()["parallel"].GetStructValue()); err != nil {
			return nil, fmt.Errorf("parallel reduction stats: %w", err)
		}

		report.ReductionStats = stats
	}

	return report, nil
}

func encodeStats(s reduction.Stats) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"count": number(s.Count),
		"sum":   structpb.NewStringValue(strconv.FormatInt(s.Sum, 10)),
		"min":   number(s.Min),
		"max":   number(s.Max),
		"avg":   structpb.NewNumberValue(s.Avg),
	}}
}

func decodeStats(s *structpb.Struct) (reduction.Stats, error) {
	r := fieldReader{s: s}
	stats := reduction.Stats{
		Count: r.integer("count"),
		Sum:   r.integer64("sum"),
		Min:   r.integer("min"),
		Max:   r.integer("max"),
		Avg:   r.number64("avg"),
	}

	return stats, r.err
}

func number(v int) *structpb.Value {
	return structpb.NewNumberValue(float64(v))
}

// fieldReader extracts typed values from a Struct. Missing fields decode to
// their zero value; the first malformed field is kept in err and every
// subsequent read becomes a no-op.
type fieldReader struct {
	s   *structpb.Struct
	err error
}

func (r *fieldReader) value(name string) *structpb.Value {
	if r.err != nil || r.s == nil {
		return nil
	}

	return r.s.Fields[name]
}

func (r *fieldReader) fail(name, format string, args ...interface{}) {
	r.err = fmt.Errorf("field %q: %s", name, fmt.Sprintf(format, args...))
}

func (r *fieldReader) integer64(name string) int64 {
	v := r.value(name)
	if v == nil {
		return 0
	}

	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			r.fail(name, "expected an integer, got %v", f)

			return 0
		}

		return int64(f)
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(kind.StringValue, 10, 64)
		if err != nil {
			r.fail(name, "%v", err)
		}

		return n
	default:
		r.fail(name, "expected a number")

		return 0
	}
}

func (r *fieldReader) integer(name string) int {
	return int(r.integer64(name))
}

func (r *fieldReader) number64(name string) float64 {
	v := r.value(name)
	if v == nil {
		return 0
	}

	kind, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		r.fail(name, "expected a number")

		return 0
	}

	return kind.NumberValue
}

func (r *fieldReader) flag(name string) bool {
	v := r.value(name)
	if v == nil {
		return false
	}

	kind, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.fail(name, "expected a bool")

		return false
	}

	return kind.BoolValue
}

func (r *fieldReader) text(name string) string {
	v := r.value(name)
	if v == nil {
		return ""
	}

	kind, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.fail(name, "expected a string")

		return ""
	}

	return kind.StringValue
}

func (r *fieldReader) id(name string) uuid.UUID {
	s := r.text(name)
	if s == "" {
		return uuid.Nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		r.fail(name, "%v", err)
	}

	return id
}

func (r *fieldReader) timestamp(name string) time.Time {
	s := r.text(name)
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		r.fail(name, "%v", err)
	}

	return t.UTC()
}
