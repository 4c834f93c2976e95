package client

import (
	"context"
	"time"
)

// RetryPolicy governs how transient HTTP failures are retried. A single
// policy applies to all read paths; mutating requests always run once.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Factor      int
	MaxDelay    time.Duration
}

// DefaultRetryPolicy retries reads up to three times with exponential
// backoff starting at one second.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Factor:      2,
		MaxDelay:    8 * time.Second,
	}
}

// Retryable reports whether a response status warrants another attempt.
// Client errors other than 429 are definitive and never retried.
func (p RetryPolicy) Retryable(status int) bool {
	return status == 429 || status >= 500
}

// Delay returns the backoff before the given attempt (1-based). The first
// attempt carries no delay.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	d := p.BaseDelay
	for i := 2; i < attempt; i++ {
		d *= time.Duration(p.Factor)
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// wait sleeps for the attempt's backoff, returning early if the context is
// cancelled.
func (p RetryPolicy) wait(ctx context.Context, attempt int) error {
	d := p.Delay(attempt)
	if d == 0 {
		return nil
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
