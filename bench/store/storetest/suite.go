package storetest

import (
	"errors"
	"time"

	"github.com/google/uuid"
	check "gopkg.in/check.v1"

	"github.com/mycok/uTraverse/bench"
)

// BaseSuite defines a set of re-usable store-related tests that can be
// executed against any concrete type that implements the bench.Store
// interface.
type BaseSuite struct {
	s bench.Store
}

// SetStore configures the test-suite to run all tests against an instance
// of bench.Store.
func (s *BaseSuite) SetStore(store bench.Store) {
	s.s = store
}

// TestRecordAssignsID verifies that recording a measurement without an ID
// assigns a new one.
func (s *BaseSuite) TestRecordAssignsID(c *check.C) {
	m := newMeasurement(bench.WorkloadBFS, time.Now())

	err := s.s.Record(m)
	c.Assert(err, check.IsNil)
	c.Assert(m.ID, check.Not(check.Equals), uuid.Nil, check.Commentf("expected a new ID to be assigned"))

	found, err := s.s.Find(m.ID)
	c.Assert(err, check.IsNil)
	c.Assert(found, check.DeepEquals, m)
}

// TestRecordExistingID verifies that recording a measurement with an existing
// ID replaces the stored measurement.
func (s *BaseSuite) TestRecordExistingID(c *check.C) {
	m := newMeasurement(bench.WorkloadDFS, time.Now())
	c.Assert(s.s.Record(m), check.IsNil)

	m.Parallel = 42 * time.Microsecond
	c.Assert(s.s.Record(m), check.IsNil)

	found, err := s.s.Find(m.ID)
	c.Assert(err, check.IsNil)
	c.Assert(found.Parallel, check.Equals, 42*time.Microsecond)

	it, err := s.s.Measurements(time.Time{})
	c.Assert(err, check.IsNil)

	var count int
	for it.Next() {
		if it.Measurement().ID == m.ID {
			count++
		}
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)
	c.Assert(count, check.Equals, 1)
}

// TestFindUnknownID verifies that looking up an unknown measurement fails
// with bench.ErrNotFound.
func (s *BaseSuite) TestFindUnknownID(c *check.C) {
	_, err := s.s.Find(uuid.New())
	c.Assert(errors.Is(err, bench.ErrNotFound), check.Equals, true)
}

// TestMeasurementsSince verifies that the iterator only yields measurements
// recorded at or after the requested time, in recording order.
func (s *BaseSuite) TestMeasurementsSince(c *check.C) {
	base := time.Now().Truncate(time.Second).UTC()

	var ids []uuid.UUID
	for i, w := range []bench.Workload{bench.WorkloadBFS, bench.WorkloadDFS, bench.WorkloadReduction} {
		m := newMeasurement(w, base.Add(time.Duration(i)*time.Hour))
		c.Assert(s.s.Record(m), check.IsNil)
		ids = append(ids, m.ID)
	}

	it, err := s.s.Measurements(base.Add(30 * time.Minute))
	c.Assert(err, check.IsNil)

	var got []uuid.UUID
	for it.Next() {
		m := it.Measurement()
		if m.RecordedAt.Before(base) || m.RecordedAt.After(base.Add(2*time.Hour)) {
			// Ignore measurements recorded by other tests.
			continue
		}

		got = append(got, m.ID)
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	c.Assert(got, check.DeepEquals, ids[1:])
}

func newMeasurement(w bench.Workload, recordedAt time.Time) *bench.Measurement {
	return &bench.Measurement{
		Workload:         w,
		Vertices:         1000,
		Edges:            5000,
		Workers:          4,
		Repeats:          3,
		Sequential:       900 * time.Microsecond,
		Parallel:         300 * time.Microsecond,
		SequentialStdDev: 12 * time.Microsecond,
		ParallelStdDev:   7 * time.Microsecond,
		Reached:          987,
		RecordedAt:       recordedAt.Truncate(time.Microsecond).UTC(),
	}
}
