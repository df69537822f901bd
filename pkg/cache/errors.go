package cache

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tempo/pkg/httputil"
)

// ErrUnavailable is returned when a remote backend cannot be reached.
var ErrUnavailable = errors.New("cache backend unavailable")

// Retryable marks err as transient so that httputil.Retry attempts the
// operation again.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &httputil.RetryableError{Err: err}
}

// IsRetryable reports whether err was marked with Retryable.
func IsRetryable(err error) bool {
	return errors.As(err, new(*httputil.RetryableError))
}

// unavailable wraps a backend failure as a retryable ErrUnavailable.
func unavailable(op string, err error) error {
	return Retryable(fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err))
}
