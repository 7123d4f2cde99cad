package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Sleeper pauses the calling goroutine for visual pacing.
type Sleeper interface {
	// Sleep blocks for d or until ctx is cancelled, returning the
	// context error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type SystemSleeper struct{}

func (SystemSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
