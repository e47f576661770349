package sim

// AttemptEvent is emitted once per executed attempt, success or
// failure, carrying the attempt's full timing and outcome. Observers
// must treat it as read-only.
type AttemptEvent struct {
	RunID        string
	ExtID        int
	Priority     int
	Attempt      int
	Status       Status
	FailReason   string
	EnqueueTS    int64
	StartTS      int64
	EndTS        int64
	WaitMs       int
	ServiceMs    int
	TurnaroundMs int
}

// RunSummary is emitted exactly once at run end.
type RunSummary struct {
	RunID            string
	StartedAtMs      int64
	FinishedAtMs     int64
	TotalJobs        int
	Successes        int
	Failures         int
	AvgWaitMs        float64
	AvgServiceMs     float64
	AvgTurnaroundMs  float64
	ThroughputPerSec float64
}

// Observer consumes dispatch events. Implementations run on the
// dispatcher's goroutine and should return quickly.
type Observer interface {
	// OnAttempt is called after every executed attempt, including
	// failed attempts that will be retried.
	OnAttempt(ev AttemptEvent)

	// OnSummary is called once, after the queue drains.
	OnSummary(sum RunSummary)
}

// emitAttempt fans an attempt event out to all observers.
// A run with no observers is valid; events are simply dropped.
func (d *Dispatcher) emitAttempt(ev AttemptEvent) {
	for _, o := range d.observers {
		o.OnAttempt(ev)
	}
}

// emitSummary fans the run summary out to all observers.
func (d *Dispatcher) emitSummary(sum RunSummary) {
	for _, o := range d.observers {
		o.OnSummary(sum)
	}
}
