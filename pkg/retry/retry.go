package retry

import (
	"context"
	"time"
)

type fn func(ctx context.Context) error
type ShouldRetry func(err error, attempt int) bool

// Always retries every error.
func Always(error, int) bool {
	return true
}

// WrapWithRetry - wraps the given function, retries it if it fails and shouldRetry returns true. Gives up after
// attempts calls, returning the last error. Waits delay between attempts, doubling it each time.
func WrapWithRetry(f fn, shouldRetry ShouldRetry, attempts int, delay time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		wait := delay

		for attempt := 1; ; attempt++ {
			err := f(ctx)
			if err == nil {
				return nil
			}

			if attempt >= attempts || !shouldRetry(err, attempt) {
				return err
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return err
			case <-timer.C:
			}

			wait *= 2
		}
	}
}
