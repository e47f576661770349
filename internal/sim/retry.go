package sim

import (
	"time"
)

// backoffInitial is the delay before the first retry; each further
// retry doubles it (100ms, 200ms, 400ms, ...).
const backoffInitial = 100 * time.Millisecond

// RetryPolicy describes how many times a failed job is retried and
// how it is reprioritized when it re-enters the queue.
// The backoff schedule is fixed: the simulation depends on it being
// deterministic, so there is no jitter.
type RetryPolicy struct {
	// MaxRetries is the cap on retries per job; a job's attempt
	// counter never exceeds it.
	MaxRetries int
}

// Backoff returns the delay imposed before dispatching the given
// zero-based attempt. The first attempt is never delayed.
func (RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return backoffInitial << (attempt - 1)
}

// Age returns the priority a failed job re-enqueues with: one step up,
// capped at MaxPriority, so frequently failing jobs cannot starve.
func (RetryPolicy) Age(priority int) int {
	if priority >= MaxPriority {
		return MaxPriority
	}
	return priority + 1
}

// Exhausted reports whether a job that just failed on the given
// attempt has no retries left.
func (p RetryPolicy) Exhausted(attempt int) bool {
	return attempt >= p.MaxRetries
}
