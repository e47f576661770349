package sim

// minWallSeconds floors the measured run duration so throughput never
// divides by zero on an effectively instant run.
const minWallSeconds = 0.001

// aggregator accumulates timing over jobs reaching a terminal state.
//
// Intermediate failed attempts feed nothing here; only the terminal
// attempt of each job counts toward the averages.
type aggregator struct {
	// successes is the number of jobs that finished successfully.
	successes int

	// failures is the number of jobs that exhausted their retries.
	failures int

	sumWaitMs       int64
	sumServiceMs    int64
	sumTurnaroundMs int64
}

// observeTerminal records the terminal attempt of a job.
func (a *aggregator) observeTerminal(j Job) {
	switch j.Status {
	case StatusSuccess:
		a.successes++
	case StatusFailed:
		a.failures++
	}
	a.sumWaitMs += int64(j.WaitMs)
	a.sumServiceMs += int64(j.ServiceMs)
	a.sumTurnaroundMs += int64(j.TurnaroundMs)
}

// total returns the number of terminal jobs observed so far.
func (a *aggregator) total() int {
	return a.successes + a.failures
}

// summary computes the run-level averages and throughput. wallSeconds
// is the measured run duration; it is floored at minWallSeconds.
func (a *aggregator) summary(runID string, startedMs, finishedMs int64, wallSeconds float64) RunSummary {
	sum := RunSummary{
		RunID:        runID,
		StartedAtMs:  startedMs,
		FinishedAtMs: finishedMs,
		TotalJobs:    a.total(),
		Successes:    a.successes,
		Failures:     a.failures,
	}
	if sum.TotalJobs > 0 {
		n := float64(sum.TotalJobs)
		sum.AvgWaitMs = float64(a.sumWaitMs) / n
		sum.AvgServiceMs = float64(a.sumServiceMs) / n
		sum.AvgTurnaroundMs = float64(a.sumTurnaroundMs) / n
	}
	if wallSeconds < minWallSeconds {
		wallSeconds = minWallSeconds
	}
	sum.ThroughputPerSec = float64(a.successes) / wallSeconds
	return sum
}
