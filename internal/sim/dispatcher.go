package sim

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher executes one simulation run: it seeds jobs, then
// repeatedly selects the highest-priority pending job, applies backoff
// if the job is a retry, consumes its service time, and resolves the
// attempt until every job reaches a terminal state.
//
// Execution is strictly sequential; jobs never run in parallel, and
// the wall-clock duration of a run is the sum of all backoff and
// service delays incurred.
type Dispatcher struct {
	jobs      int
	policy    RetryPolicy
	model     ProcessModel
	clock     Clock
	logger    *zap.Logger
	observers []Observer

	queue     *Queue
	stats     aggregator
	completed []Job
}

// NewDispatcher builds a dispatcher for a run of n jobs.
//
// n must be >= 0. A nil clock defaults to WallClock; a nil logger is
// replaced with a no-op. Observers receive every attempt event and the
// final summary, in registration order.
func NewDispatcher(n int, policy RetryPolicy, model ProcessModel, clock Clock, logger *zap.Logger, observers ...Observer) *Dispatcher {
	if clock == nil {
		clock = WallClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		jobs:      n,
		policy:    policy,
		model:     model,
		clock:     clock,
		logger:    logger,
		observers: observers,
	}
}

// Run performs the simulation and returns its summary. It blocks until
// the queue drains or ctx is canceled; on cancellation it returns
// ctx.Err() and emits no summary.
func (d *Dispatcher) Run(ctx context.Context) (RunSummary, error) {
	runID := uuid.NewString()
	d.queue = NewQueue()
	d.stats = aggregator{}
	d.completed = d.completed[:0]

	start := d.clock.Now()
	d.seedJobs(start)
	d.logger.Info("run started",
		zap.String("run_id", runID),
		zap.Int("jobs", d.jobs),
		zap.Int("max_retries", d.policy.MaxRetries),
	)

	for d.queue.Len() > 0 {
		j, _ := d.queue.Pop()
		if err := d.dispatch(ctx, runID, j); err != nil {
			d.logger.Info("run canceled", zap.String("run_id", runID), zap.Error(err))
			return RunSummary{}, err
		}
	}

	end := d.clock.Now()
	sum := d.stats.summary(runID, start.UnixMilli(), end.UnixMilli(), end.Sub(start).Seconds())
	d.logger.Info("run finished",
		zap.String("run_id", runID),
		zap.Int("total", sum.TotalJobs),
		zap.Int("successes", sum.Successes),
		zap.Int("failures", sum.Failures),
		zap.Float64("throughput_per_s", sum.ThroughputPerSec),
	)
	d.emitSummary(sum)
	return sum, nil
}

// Completed returns the jobs that reached a terminal state in the last
// run, in completion order. The returned slice is owned by the
// dispatcher.
func (d *Dispatcher) Completed() []Job {
	return d.completed
}

// seedJobs fills the queue with the run's initial jobs. Enqueue
// timestamps are staggered by one ms per job so that same-priority
// jobs keep a stable FIFO order.
func (d *Dispatcher) seedJobs(start time.Time) {
	t0 := start.UnixMilli()
	for i := 1; i <= d.jobs; i++ {
		d.queue.Push(Job{
			ExtID:      i,
			Priority:   d.model.Priority(),
			MaxRetries: d.policy.MaxRetries,
			EnqueueTS:  t0 + int64(i),
			Status:     StatusPending,
		})
	}
}

// dispatch executes one attempt of one job and resolves it: success,
// retryable failure, or terminal failure.
func (d *Dispatcher) dispatch(ctx context.Context, runID string, j Job) error {
	if delay := d.policy.Backoff(j.Attempt); delay > 0 {
		if err := d.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	j.Status = StatusRunning
	j.StartTS = d.clock.Now().UnixMilli()
	j.WaitMs = int(j.StartTS - j.EnqueueTS)

	j.ServiceMs = d.model.ServiceMs()
	if err := d.clock.Sleep(ctx, time.Duration(j.ServiceMs)*time.Millisecond); err != nil {
		return err
	}

	failed := d.model.ShouldFail(j.Attempt)
	j.EndTS = d.clock.Now().UnixMilli()
	j.TurnaroundMs = int(j.EndTS - j.EnqueueTS)

	if !failed {
		j.Status = StatusSuccess
		d.finalize(runID, j)
		return nil
	}

	j.Status = StatusFailed
	j.FailReason = FailReasonSimulated
	if d.policy.Exhausted(j.Attempt) {
		d.finalize(runID, j)
		return nil
	}

	// Failed attempts that will be retried are still recorded.
	d.logger.Debug("attempt failed, retrying",
		zap.Int("ext_id", j.ExtID),
		zap.Int("attempt", j.Attempt),
		zap.Duration("backoff", d.policy.Backoff(j.Attempt+1)),
	)
	d.emitAttempt(d.attemptEvent(runID, j))

	j.Attempt++
	j.Status = StatusPending
	j.Priority = d.policy.Age(j.Priority)
	j.EnqueueTS = d.clock.Now().UnixMilli()
	j.FailReason = ""
	d.queue.Push(j)
	return nil
}

// finalize records a terminal attempt: statistics, completed set, and
// the attempt event.
func (d *Dispatcher) finalize(runID string, j Job) {
	d.stats.observeTerminal(j)
	d.completed = append(d.completed, j)
	d.emitAttempt(d.attemptEvent(runID, j))
}

func (d *Dispatcher) attemptEvent(runID string, j Job) AttemptEvent {
	return AttemptEvent{
		RunID:        runID,
		ExtID:        j.ExtID,
		Priority:     j.Priority,
		Attempt:      j.Attempt,
		Status:       j.Status,
		FailReason:   j.FailReason,
		EnqueueTS:    j.EnqueueTS,
		StartTS:      j.StartTS,
		EndTS:        j.EndTS,
		WaitMs:       j.WaitMs,
		ServiceMs:    j.ServiceMs,
		TurnaroundMs: j.TurnaroundMs,
	}
}
