package sim_test

import (
	"context"
	"time"

	"github.com/azargarov/dispatchsim/internal/sim"
)

// fakeClock drives the simulation on virtual time: Sleep advances the
// clock instead of blocking, so runs are instant and fully
// deterministic.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_000_000)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.now = c.now.Add(d)
	return nil
}

// scriptModel is a ProcessModel with pre-scripted draws. Priorities
// and failure outcomes are consumed in call order; when a script runs
// out, priorities fall back to 5 and attempts succeed.
type scriptModel struct {
	serviceMs  int
	priorities []int
	failures   []bool

	pi, fi int
}

func (m *scriptModel) ServiceMs() int { return m.serviceMs }

func (m *scriptModel) Priority() int {
	if m.pi < len(m.priorities) {
		p := m.priorities[m.pi]
		m.pi++
		return p
	}
	return 5
}

func (m *scriptModel) ShouldFail(int) bool {
	if m.fi < len(m.failures) {
		f := m.failures[m.fi]
		m.fi++
		return f
	}
	return false
}

// collector records every event it observes.
type collector struct {
	attempts  []sim.AttemptEvent
	summaries []sim.RunSummary
}

func (c *collector) OnAttempt(ev sim.AttemptEvent) { c.attempts = append(c.attempts, ev) }
func (c *collector) OnSummary(sum sim.RunSummary)  { c.summaries = append(c.summaries, sum) }
