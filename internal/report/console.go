// Package report prints human-readable dispatch progress.
package report

import (
	"go.uber.org/zap"

	"github.com/azargarov/dispatchsim/internal/sim"
)

// Console is a sim.Observer that logs one line per executed attempt
// and a summary block at run end.
type Console struct {
	logger *zap.Logger
}

func NewConsole(logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{logger: logger}
}

// OnAttempt implements sim.Observer.
func (c *Console) OnAttempt(ev sim.AttemptEvent) {
	fields := []zap.Field{
		zap.Int("job", ev.ExtID),
		zap.Int("prio", ev.Priority),
		zap.Int("attempt", ev.Attempt),
		zap.Int("wait_ms", ev.WaitMs),
		zap.Int("service_ms", ev.ServiceMs),
		zap.Int("turnaround_ms", ev.TurnaroundMs),
		zap.String("status", string(ev.Status)),
	}
	if ev.FailReason != "" {
		fields = append(fields, zap.String("reason", ev.FailReason))
	}
	c.logger.Info("attempt finished", fields...)
}

// OnSummary implements sim.Observer.
func (c *Console) OnSummary(sum sim.RunSummary) {
	c.logger.Info("run summary",
		zap.String("run_id", sum.RunID),
		zap.Int("total_jobs", sum.TotalJobs),
		zap.Int("successes", sum.Successes),
		zap.Int("failures", sum.Failures),
		zap.Float64("avg_wait_ms", sum.AvgWaitMs),
		zap.Float64("avg_service_ms", sum.AvgServiceMs),
		zap.Float64("avg_turnaround_ms", sum.AvgTurnaroundMs),
		zap.Float64("throughput_jobs_per_s", sum.ThroughputPerSec),
	)
}
