package retry

import (
	"context"
	"time"
)

// Predicate reports whether an error is worth another attempt.
type Predicate func(error) bool

// Policy is a bounded retry schedule gated by a transience predicate.
// Delays[i] is slept before attempt i+2; the last delay repeats if
// MaxAttempts exceeds len(Delays)+1.
type Policy struct {
	MaxAttempts int
	Delays      []time.Duration
	IsTransient Predicate
}

// Default is the collaborator-call policy: three attempts with
// 500ms/1s/2s backoff.
func Default(isTransient Predicate) Policy {
	return Policy{
		MaxAttempts: 3,
		Delays:      []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second},
		IsTransient: isTransient,
	}
}

// Do runs fn until it succeeds, the error is non-transient, or attempts
// are exhausted. The last error is returned unwrapped so callers can
// inspect it.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(p.delay(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.IsTransient == nil || !p.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (p Policy) delay(attempt int) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	idx := attempt - 2
	if idx >= len(p.Delays) {
		idx = len(p.Delays) - 1
	}
	return p.Delays[idx]
}
