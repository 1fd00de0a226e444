package cdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/mycok/uTraverse/bench"
)

const queryTimeout = 500 * time.Millisecond

var (
	createTableQuery = `
					CREATE TABLE IF NOT EXISTS measurements (
						id UUID PRIMARY KEY,
						workload STRING NOT NULL,
						vertices INT NOT NULL,
						edges INT NOT NULL,
						workers INT NOT NULL,
						repeats INT NOT NULL,
						sequential_ns INT8 NOT NULL,
						parallel_ns INT8 NOT NULL,
						sequential_stddev_ns INT8 NOT NULL,
						parallel_stddev_ns INT8 NOT NULL,
						reached INT NOT NULL,
						recorded_at TIMESTAMP NOT NULL,
						INDEX (recorded_at)
					)
					`

	upsertMeasurementQuery = `
					INSERT INTO measurements (
						id, workload, vertices, edges, workers, repeats,
						sequential_ns, parallel_ns, sequential_stddev_ns,
						parallel_stddev_ns, reached, recorded_at
					)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
					ON CONFLICT (id)
					DO UPDATE SET
						workload=$2, vertices=$3, edges=$4, workers=$5,
						repeats=$6, sequential_ns=$7, parallel_ns=$8,
						sequential_stddev_ns=$9, parallel_stddev_ns=$10,
						reached=$11, recorded_at=$12
					RETURNING id
					`

	measurementColumns = `
					id, workload, vertices, edges, workers, repeats,
					sequential_ns, parallel_ns, sequential_stddev_ns,
					parallel_stddev_ns, reached, recorded_at
					`

	findMeasurementQuery = "SELECT" + measurementColumns + "FROM measurements WHERE id=$1"

	measurementsSinceQuery = "SELECT" + measurementColumns +
		"FROM measurements WHERE recorded_at >= $1 ORDER BY recorded_at ASC"
)

// Static and compile-time check to ensure CockroachDBStore implements
// bench.Store interface.
var _ bench.Store = (*CockroachDBStore)(nil)

// CockroachDBStore implements a persistent measurement store backed by a
// CockroachDB (or any postgres wire compatible) instance.
type CockroachDBStore struct {
	db *sql.DB
}

// NewCockroachDBStore returns a CockroachDBStore instance. The measurements
// table is created if it does not exist.
func NewCockroachDBStore(dsn string) (*CockroachDBStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, err
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create measurements table: %w", err)
	}

	return &CockroachDBStore{db}, nil
}

// Close terminates the connection to the cockroachDB instance.
func (s *CockroachDBStore) Close() error {
	return s.db.Close()
}

// Record creates a new or updates an existing measurement.
func (s *CockroachDBStore) Record(m *bench.Measurement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	m.RecordedAt = m.RecordedAt.UTC()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(
		ctx,
		upsertMeasurementQuery,
		m.ID,
		string(m.Workload),
		m.Vertices,
		m.Edges,
		m.Workers,
		m.Repeats,
		int64(m.Sequential),
		int64(m.Parallel),
		int64(m.SequentialStdDev),
		int64(m.ParallelStdDev),
		m.Reached,
		m.RecordedAt,
	)

	if err := row.Scan(&m.ID); err != nil {
		return fmt.Errorf("record measurement: %w", err)
	}

	return nil
}

// Find looks up a measurement by its ID.
func (s *CockroachDBStore) Find(id uuid.UUID) (*bench.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, findMeasurementQuery, id)

	m, err := scanMeasurement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find measurement: %w", bench.ErrNotFound)
		}

		return nil, fmt.Errorf("find measurement: %w", err)
	}

	return m, nil
}

// Measurements returns an iterator for the measurements recorded at or after
// since, ordered by recording time.
func (s *CockroachDBStore) Measurements(since time.Time) (bench.MeasurementIterator, error) {
	rows, err := s.db.Query(measurementsSinceQuery, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("measurements: %w", err)
	}

	return &measurementIterator{rows: rows}, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row scanner) (*bench.Measurement, error) {
	var (
		m                            = new(bench.Measurement)
		workload                     string
		seqNs, parNs, seqStd, parStd int64
	)

	if err := row.Scan(
		&m.ID, &workload, &m.Vertices, &m.Edges, &m.Workers, &m.Repeats,
		&seqNs, &parNs, &seqStd, &parStd, &m.Reached, &m.RecordedAt,
	); err != nil {
		return nil, err
	}

	m.Workload = bench.Workload(workload)
	m.Sequential = time.Duration(seqNs)
	m.Parallel = time.Duration(parNs)
	m.SequentialStdDev = time.Duration(seqStd)
	m.ParallelStdDev = time.Duration(parStd)
	m.RecordedAt = m.RecordedAt.UTC()

	return m, nil
}
