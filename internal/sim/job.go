package sim

// Status is the lifecycle state of a job attempt.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusRunning Status = "RUNNING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// FailReasonSimulated is the only failure reason the simulation
// produces; real systems would carry error detail here.
const FailReasonSimulated = "SIMULATED_FAILURE"

const (
	// MinPriority and MaxPriority bound job priorities, inclusive.
	MinPriority = 1
	MaxPriority = 10
)

// Job is one unit of simulated work together with its accumulated
// timing and status fields. Jobs are plain values: the queue stores
// copies, and a retry pushes an updated copy rather than aliasing a
// previously enqueued one.
type Job struct {
	// ExtID is the stable external identifier, assigned 1..N at
	// seeding and never reused.
	ExtID int

	// Priority is in [MinPriority, MaxPriority]; higher dispatches
	// sooner. Non-decreasing across retries (aging).
	Priority int

	// Attempt counts executions so far, zero-based. It increments
	// only on a failed attempt that is retried and never exceeds
	// MaxRetries.
	Attempt int

	// MaxRetries is the retry cap, copied from configuration at
	// creation and immutable afterwards.
	MaxRetries int

	// EnqueueTS is the wall time, in ms, of the most recent enqueue.
	// Reset on every retry re-enqueue.
	EnqueueTS int64

	// StartTS and EndTS bracket the current attempt, in ms. Zero
	// before the attempt starts/ends.
	StartTS int64
	EndTS   int64

	// Derived per-attempt timings, in ms.
	WaitMs       int
	ServiceMs    int
	TurnaroundMs int

	Status     Status
	FailReason string
}

// Terminal reports whether this job has reached a final state:
// success, or failure with retries exhausted.
func (j Job) Terminal() bool {
	switch j.Status {
	case StatusSuccess:
		return true
	case StatusFailed:
		return j.Attempt >= j.MaxRetries
	default:
		return false
	}
}
