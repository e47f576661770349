// Package storage persists simulation results to SQLite: one row per
// executed attempt and one summary row per run.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	sqlite3 "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/azargarov/dispatchsim/internal/sim"
)

const busyRetries = 3

const schema = `
create table if not exists runs(
	run_id integer primary key autoincrement,
	run_uuid text not null,
	started_at integer,
	finished_at integer,
	total_jobs integer,
	success_jobs integer,
	failed_jobs integer,
	avg_wait_ms real,
	avg_service_ms real,
	avg_turnaround_ms real,
	throughput_jobs_per_s real
);
create table if not exists jobs(
	job_id integer primary key autoincrement,
	run_uuid text not null,
	ext_id integer,
	priority integer,
	attempt integer,
	status text,
	fail_reason text,
	enqueue_ts integer,
	start_ts integer,
	end_ts integer,
	wait_ms integer,
	service_ms integer,
	turnaround_ms integer
);`

// Store records runs and attempts in a SQLite database. It implements
// sim.Observer; in that role a persistence error is fatal, matching
// the policy that only IO collaborators may abort a run.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore opens (creating if needed) the database at path and ensures
// the schema exists.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordAttempt inserts one row for an executed attempt.
func (s *Store) RecordAttempt(ev sim.AttemptEvent) error {
	const stmt = `insert into jobs (
		run_uuid, ext_id, priority, attempt, status, fail_reason,
		enqueue_ts, start_ts, end_ts, wait_ms, service_ms, turnaround_ms
	) values (?,?,?,?,?,?,?,?,?,?,?,?);`
	return s.exec(stmt,
		ev.RunID, ev.ExtID, ev.Priority, ev.Attempt, string(ev.Status), ev.FailReason,
		ev.EnqueueTS, ev.StartTS, ev.EndTS, ev.WaitMs, ev.ServiceMs, ev.TurnaroundMs,
	)
}

// RecordSummary inserts the run's summary row.
func (s *Store) RecordSummary(sum sim.RunSummary) error {
	const stmt = `insert into runs (
		run_uuid, started_at, finished_at, total_jobs, success_jobs, failed_jobs,
		avg_wait_ms, avg_service_ms, avg_turnaround_ms, throughput_jobs_per_s
	) values (?,?,?,?,?,?,?,?,?,?);`
	return s.exec(stmt,
		sum.RunID, sum.StartedAtMs, sum.FinishedAtMs, sum.TotalJobs, sum.Successes, sum.Failures,
		sum.AvgWaitMs, sum.AvgServiceMs, sum.AvgTurnaroundMs, sum.ThroughputPerSec,
	)
}

// ListRuns returns up to limit recorded run summaries, newest first.
func (s *Store) ListRuns(limit int) ([]sim.RunSummary, error) {
	const query = `select run_uuid, started_at, finished_at, total_jobs,
		success_jobs, failed_jobs, avg_wait_ms, avg_service_ms,
		avg_turnaround_ms, throughput_jobs_per_s
	from runs order by run_id desc limit ?;`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: list runs: %w", err)
	}
	defer rows.Close()

	var out []sim.RunSummary
	for rows.Next() {
		var sum sim.RunSummary
		if err := rows.Scan(
			&sum.RunID, &sum.StartedAtMs, &sum.FinishedAtMs, &sum.TotalJobs,
			&sum.Successes, &sum.Failures, &sum.AvgWaitMs, &sum.AvgServiceMs,
			&sum.AvgTurnaroundMs, &sum.ThroughputPerSec,
		); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// ListAttempts returns the recorded attempts of one run, in record
// order.
func (s *Store) ListAttempts(runID string) ([]sim.AttemptEvent, error) {
	const query = `select run_uuid, ext_id, priority, attempt, status, fail_reason,
		enqueue_ts, start_ts, end_ts, wait_ms, service_ms, turnaround_ms
	from jobs where run_uuid = ? order by job_id;`
	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("storage: list attempts: %w", err)
	}
	defer rows.Close()

	var out []sim.AttemptEvent
	for rows.Next() {
		var ev sim.AttemptEvent
		var status string
		if err := rows.Scan(
			&ev.RunID, &ev.ExtID, &ev.Priority, &ev.Attempt, &status, &ev.FailReason,
			&ev.EnqueueTS, &ev.StartTS, &ev.EndTS, &ev.WaitMs, &ev.ServiceMs, &ev.TurnaroundMs,
		); err != nil {
			return nil, fmt.Errorf("storage: scan attempt: %w", err)
		}
		ev.Status = sim.Status(status)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// OnAttempt implements sim.Observer.
func (s *Store) OnAttempt(ev sim.AttemptEvent) {
	if err := s.RecordAttempt(ev); err != nil {
		s.logger.Fatal("recording attempt failed", zap.Int("ext_id", ev.ExtID), zap.Error(err))
	}
}

// OnSummary implements sim.Observer.
func (s *Store) OnSummary(sum sim.RunSummary) {
	if err := s.RecordSummary(sum); err != nil {
		s.logger.Fatal("recording run summary failed", zap.String("run_id", sum.RunID), zap.Error(err))
	}
}

// exec runs an insert, retrying transient busy/locked errors with
// jittered backoff. Other writers are rare here (a second CLI reading
// history) but WAL still surfaces SQLITE_BUSY under contention.
func (s *Store) exec(stmt string, args ...any) error {
	bo := boff.New(10*time.Millisecond, 250*time.Millisecond, time.Now().UnixNano())
	var err error
	for attempt := 0; attempt < busyRetries; attempt++ {
		if _, err = s.db.Exec(stmt, args...); err == nil {
			return nil
		}
		if !isBusy(err) {
			return err
		}
		time.Sleep(bo.Next())
	}
	return err
}

func isBusy(err error) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
}
