package github

import (
	"context"
	"errors"
	"math"
	"net/url"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/sirupsen/logrus"
)

const (
	maxBackoff       = 30 * time.Second
	maxRateLimitWait = 15 * time.Minute
)

// RetryPolicy is the single retry configuration shared by every API
// call: primary/secondary rate limits wait for the server-advised
// duration, transient errors (5xx, network) back off exponentially, and
// everything else fails immediately.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultRetryPolicy returns the retry settings used when none are
// configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 4,
		BaseDelay:   time.Second,
		Multiplier:  2.0,
	}
}

// Do runs fn, retrying per the policy. The last error is returned once
// attempts are exhausted or a non-retryable error occurs.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		wait, retryable := p.classify(err, attempt)
		if !retryable || attempt == attempts-1 {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"wait":    wait,
		}).WithError(err).Debug("retrying GitHub API call")
		if sleepErr := sleep(ctx, wait); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

// classify decides whether err is retryable and how long to wait first.
func (p RetryPolicy) classify(err error, attempt int) (time.Duration, bool) {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		wait := time.Until(rateErr.Rate.Reset.Time)
		if wait < 0 {
			wait = 0
		}
		if wait > maxRateLimitWait {
			wait = maxRateLimitWait
		}
		return wait, true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		if wait := abuseErr.GetRetryAfter(); wait > 0 {
			return wait, true
		}
		return p.backoff(attempt), true
	}

	if isTransient(err) {
		return p.backoff(attempt), true
	}
	return 0, false
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	multiplier := p.Multiplier
	if multiplier < 1 {
		multiplier = 2.0
	}
	wait := time.Duration(float64(base) * math.Pow(multiplier, float64(attempt)))
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return wait
}

// isTransient reports whether err is a server-side or network failure
// worth retrying.
func isTransient(err error) bool {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return respErr.Response != nil && respErr.Response.StatusCode >= 500
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
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
