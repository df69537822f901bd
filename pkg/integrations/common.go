package integrations

import (
	"errors"
	"net/http"
	"time"

	terrors "github.com/matzehuels/tempo/pkg/errors"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a feed or resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrInvalidData is returned when a response body cannot be decoded.
	ErrInvalidData = errors.New("invalid data")
)

// NewHTTPClient creates an HTTP client with a standard timeout for feed requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// ValidateFeedURL reports whether raw is an absolute http(s) URL.
func ValidateFeedURL(raw string) error {
	return terrors.ValidateURL(raw)
}
