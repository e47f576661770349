package sim

import (
	"context"
	"time"
)

// Clock abstracts wall time and timed waits so tests can drive the
// simulation on virtual time. The production clock blocks for real.
type Clock interface {
	Now() time.Time

	// Sleep waits for d or until ctx is canceled, returning ctx.Err()
	// in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock is the production Clock.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

func (WallClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C // drain if timer is fired
		}
		return ctx.Err()
	}
}
