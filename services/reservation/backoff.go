package reservation

import (
	"context"
	"math/rand"
	"time"
)

const (
	backoffBase   = 300 * time.Millisecond
	backoffJitter = 200 * time.Millisecond
)

// backoffDelay computes the wait before retrying attempt (0-based). A
// Retry-After value from the server wins over the computed backoff. The
// jitter source is injected so the function stays deterministic in tests.
func backoffDelay(attempt int, retryAfterSeconds int, jitter func() time.Duration) time.Duration {
	if retryAfterSeconds > 0 {
		return time.Duration(retryAfterSeconds) * time.Second
	}
	d := backoffBase<<attempt + jitter()
	if d < 0 {
		d = 0
	}
	return d
}

// defaultJitter returns a random duration in [-200ms, +200ms].
func defaultJitter() time.Duration {
	return time.Duration(rand.Int63n(int64(2*backoffJitter))) - backoffJitter
}

// sleepCtx blocks for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
