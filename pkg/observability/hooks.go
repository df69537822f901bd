// Package observability exposes instrumentation hooks for reconciliation,
// layout passes, cache access and outgoing HTTP requests.
//
// Every hook defaults to a no-op. A binary that wants metrics or traces
// registers its own implementations once at startup:
//
//	observability.SetReconcileHooks(promHooks{})
//	observability.SetCacheHooks(promHooks{})
//
// Library code only reads hooks:
//
//	hooks := observability.Reconcile()
//	hooks.OnDiffStart(ctx, sections)
//	script := reconcile.Diff(from, to)
//	hooks.OnDiffComplete(ctx, len(script), time.Since(start))
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// Reconcile Hooks
// =============================================================================

// ReconcileHooks receives events from the reconciliation scheduler.
type ReconcileHooks interface {
	// Diff events
	OnDiffStart(ctx context.Context, sections int)
	OnDiffComplete(ctx context.Context, ops int, duration time.Duration)

	// OnCoalesce records a pending snapshot replaced before it was diffed.
	OnCoalesce(ctx context.Context)

	// OnApplyComplete records a batch applied to the surface.
	OnApplyComplete(ctx context.Context, ops int, duration time.Duration)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout passes.
type LayoutHooks interface {
	OnLayoutStart(ctx context.Context, sections int)
	OnLayoutComplete(ctx context.Context, cells int, duration time.Duration, prepared bool)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopReconcileHooks is a no-op implementation of ReconcileHooks.
type NoopReconcileHooks struct{}

func (NoopReconcileHooks) OnDiffStart(context.Context, int)                    {}
func (NoopReconcileHooks) OnDiffComplete(context.Context, int, time.Duration)  {}
func (NoopReconcileHooks) OnCoalesce(context.Context)                          {}
func (NoopReconcileHooks) OnApplyComplete(context.Context, int, time.Duration) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(context.Context, int)                         {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, int, time.Duration, bool) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

// registry is replaced as a whole on every Set call; readers load it without
// locking so the presenter worker never contends with registration.
type registry struct {
	reconcile ReconcileHooks
	layout    LayoutHooks
	cache     CacheHooks
	http      HTTPHooks
}

var (
	current atomic.Pointer[registry]
	setMu   sync.Mutex
)

func init() { Reset() }

func update(fn func(r *registry)) {
	setMu.Lock()
	defer setMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetReconcileHooks registers reconcile hooks. A nil h is ignored.
// Call it at startup, before the first presenter is created.
func SetReconcileHooks(h ReconcileHooks) {
	if h != nil {
		update(func(r *registry) { r.reconcile = h })
	}
}

// SetLayoutHooks registers layout hooks. A nil h is ignored.
func SetLayoutHooks(h LayoutHooks) {
	if h != nil {
		update(func(r *registry) { r.layout = h })
	}
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers HTTP client hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// Reconcile returns the registered reconcile hooks.
func Reconcile() ReconcileHooks { return current.Load().reconcile }

// Layout returns the registered layout hooks.
func Layout() LayoutHooks { return current.Load().layout }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	setMu.Lock()
	defer setMu.Unlock()
	current.Store(&registry{
		reconcile: NoopReconcileHooks{},
		layout:    NoopLayoutHooks{},
		cache:     NoopCacheHooks{},
		http:      NoopHTTPHooks{},
	})
}
