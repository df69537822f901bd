// Package integrations provides HTTP clients for the remote feeds the
// tools display.
//
// # Overview
//
// The [Client] type is the shared infrastructure: JSON GET requests with
// default headers, retry of transient failures through package httputil,
// and caching of decoded responses in a [cache.Cache]. Feed specific
// clients live in subpackages:
//
//   - [products]: the product deals feed shown by "tempo browse"
//
// # Client Pattern
//
//	client := products.NewClient(backend, 24*time.Hour)
//	list, err := client.FetchList(ctx, url, false)  // false = use cache
//
// Status codes map onto [ErrNotFound] (404), retryable [ErrNetwork] (429,
// 5xx) and plain [ErrNetwork] (everything else). Bodies that fail to decode
// yield [ErrInvalidData].
//
// [products]: github.com/matzehuels/tempo/pkg/integrations/products
// [cache.Cache]: github.com/matzehuels/tempo/pkg/cache.Cache
package integrations
