package httputil

import (
	"context"
	"errors"
	"time"
)

// maxDelay caps the backoff between attempts.
const maxDelay = 30 * time.Second

// RetryableError marks a failure as transient. [Retry] only tries again
// for errors that wrap one.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry calls fn until it succeeds, fails permanently or has been tried
// attempts times. The wait starts at delay and doubles after every
// transient failure, up to 30s. A cancelled ctx ends the wait with
// ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for left := max(attempts, 1); ; left-- {
		if err = fn(); err == nil || !errors.As(err, new(*RetryableError)) || left == 1 {
			return err
		}
		if err := sleep(ctx, delay); err != nil {
			return err
		}
		delay = min(delay*2, maxDelay)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
