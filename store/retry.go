package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
)

// transient reports whether err is worth retrying. Structural errors
// (invalid keys, serialization failures) and ErrNotFound never are.
func transient(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrTimeout)
}

// withRetry runs op, retrying transient failures up to maxRetries
// additional times with capped exponential backoff. Fatal errors
// surface immediately; a cancelled context aborts the wait.
func withRetry(ctx context.Context, cfg *Config, maxRetries int, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.RetryBaseDelay
	bo.MaxInterval = cfg.RetryMaxDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx)

	err := backoff.Retry(func() error {
		err := op()
		if err != nil && !transient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)

	// A context cancelled during a backoff wait surfaces as the raw
	// context error; fold it into the taxonomy like any other expired
	// deadline.
	if err != nil && !transient(err) &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
