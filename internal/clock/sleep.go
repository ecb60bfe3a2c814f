// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Every calls fn immediately and then once per interval until ctx is done.
func Every(ctx context.Context, interval time.Duration, fn func(tick int)) {
	for tick := 0; ctx.Err() == nil; tick++ {
		fn(tick)
		if SleepWithContext(ctx, interval) != nil {
			return
		}
	}
}
