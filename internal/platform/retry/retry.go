// Copyright (c) 2026 MovieFinder. All rights reserved.
// Author: yaron.avidan.dev@gmail.com

/*
Package retry implements an explicit, reusable retry policy for outbound
calls: a fixed attempt budget, an exponential backoff schedule, and a
caller-supplied retryable-error predicate, decoupled from any call site.

Rate limiting is modelled separately from failure. An operation that returns
[RateLimitError] is retried after the server-specified wait without consuming
an attempt, because the server explicitly asked us to come back.
*/
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RateLimitError signals that the remote end throttled the call and told us
// how long to wait before retrying.
type RateLimitError struct {
	// RetryAfter is the server-specified wait duration.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// Policy describes how an operation is retried.
//
// The zero value is not usable; construct policies explicitly so the attempt
// budget and schedule are visible at the call site that owns them.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// InitialInterval is the delay before the first retry; each subsequent
	// delay is multiplied by Multiplier (2s, 4s, 8s, ... for 2s x2).
	InitialInterval time.Duration
	Multiplier      float64

	// Retryable classifies an error as transient. A nil predicate retries
	// everything except rate limits, which are always retried.
	Retryable func(error) bool

	// Notify, when set, observes each transient failure and the delay before
	// the next attempt.
	Notify func(err error, next time.Duration)

	// Sleep is injectable for tests; nil means a context-aware real sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Do runs op under the policy. It returns nil as soon as op succeeds, the
// last error once the attempt budget is exhausted or a non-retryable error
// occurs, or the context error if the context ends during a wait.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = p.InitialInterval
	schedule.Multiplier = p.Multiplier
	schedule.RandomizationFactor = 0
	schedule.MaxInterval = backoff.DefaultMaxInterval * 10
	schedule.MaxElapsedTime = 0
	schedule.Reset()

	attempt := 0
	for {
		err := op(ctx)
		if err == nil {
			return nil
		}

		// Server-directed throttling: honor the wait, keep the budget intact.
		var rl *RateLimitError
		if errors.As(err, &rl) {
			if p.Notify != nil {
				p.Notify(err, rl.RetryAfter)
			}
			if serr := sleep(ctx, rl.RetryAfter); serr != nil {
				return serr
			}
			continue
		}

		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}

		attempt++
		if attempt >= p.MaxAttempts {
			return err
		}

		next := schedule.NextBackOff()
		if p.Notify != nil {
			p.Notify(err, next)
		}
		if serr := sleep(ctx, next); serr != nil {
			return serr
		}
	}
}

// sleepContext blocks for d or until ctx ends, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
