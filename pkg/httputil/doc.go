// Package httputil provides retry with exponential backoff for the HTTP
// clients in package integrations and the remote cache backends.
//
// # Retry
//
// [Retry] runs an operation until it succeeds, fails permanently or runs
// out of attempts. Only errors wrapped in [RetryableError] are retried:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// The delay doubles after every failed attempt. [RetryWithBackoff] uses 3
// attempts starting at one second.
package httputil
