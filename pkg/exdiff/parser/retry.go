package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// RetryPolicy bounds how often a workbook open is attempted.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first (>= 1).
	MaxAttempts int
	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

// Validate checks the policy.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("retry: max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.Delay < 0 {
		return fmt.Errorf("retry: delay must not be negative, got %s", p.Delay)
	}
	return nil
}

// OpenWithRetry acquires both views of path, retrying with a constant delay
// until policy.MaxAttempts is exhausted. On failure it returns the number of
// attempts made and the last error from open.
func OpenWithRetry(
	ctx context.Context,
	path string,
	open Opener,
	policy RetryPolicy,
	log logrus.FieldLogger,
) (*Views, int, error) {
	if err := policy.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		views    *Views
		attempts int
	)
	operation := func() error {
		attempts++
		v, err := open(path)
		if err != nil {
			return err
		}
		views = v
		return nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Delay), uint64(policy.MaxAttempts-1)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		log.WithFields(logrus.Fields{
			"path":    path,
			"attempt": attempts,
			"wait":    wait,
		}).WithError(err).Warn("workbook open failed, retrying")
	}

	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return nil, attempts, err
	}
	return views, attempts, nil
}
