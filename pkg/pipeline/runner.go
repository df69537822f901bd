package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tempo/pkg/cache"
	"github.com/matzehuels/tempo/pkg/io"
	"github.com/matzehuels/tempo/pkg/observability"
	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Runner encapsulates stage execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Diff reconciles two snapshots and renders the edit script.
//
// Diagram formats are cached by the content of both snapshots; text, JSON
// and DOT output are always rendered.
func (r *Runner) Diff(ctx context.Context, from, to *viewstate.Snapshot, opts DiffOptions) (*DiffResult, error) {
	r.applyLogger(&opts.Logger)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	script := reconcile.Diff(from, to)
	result := &DiffResult{
		Script:     script,
		Duplicates: duplicates(from, to),
		Stats: Stats{
			Sections: to.Len(),
			Ops:      script.Counts(),
		},
	}
	for _, id := range result.Duplicates {
		opts.Logger.Warn("duplicate section identifier", "id", id)
	}

	var key string
	if IsDiagram(opts.Format) {
		hash, err := cache.HashJSON([2]io.Document{io.FromSnapshot(from), io.FromSnapshot(to)})
		if err != nil {
			return nil, fmt.Errorf("hash snapshots: %w", err)
		}
		key = r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts())
		if data, ok := r.get(ctx, "artifact", key); ok {
			result.Output = data
			result.CacheHit = true
			result.Stats.Duration = time.Since(start)
			return result, nil
		}
	}

	out, err := RenderDiff(ctx, from, to, script, opts)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.Duration = time.Since(start)
	if key != "" {
		r.set(ctx, "artifact", key, out, cache.TTLArtifact)
	}

	opts.Logger.Debug("reconciled snapshots",
		"sections", to.Len(),
		"updates", len(script),
		"duration", result.Stats.Duration)
	return result, nil
}

// Pack places tiles on a grid and projects them to points.
// Invalid columns or tiles are returned as coded errors.
func (r *Runner) Pack(ctx context.Context, opts PackOptions) (*PackResult, error) {
	tiles, err := opts.Validate()
	if err != nil {
		return nil, err
	}

	key := r.Keyer.PackKey(opts.PackKeyOpts())
	if data, ok := r.get(ctx, "pack", key); ok {
		var cached PackResult
		if json.Unmarshal(data, &cached) == nil {
			cached.CacheHit = true
			return &cached, nil
		}
	}

	result := Pack(tiles, opts)
	if data, err := json.Marshal(result); err == nil {
		r.set(ctx, "pack", key, data, cache.TTLLayout)
	}
	r.Logger.Debug("packed tiles", "tiles", len(tiles), "rows", result.Rows)
	return result, nil
}

// Layout runs a layout pass over snap.
func (r *Runner) Layout(ctx context.Context, snap *viewstate.Snapshot, opts LayoutOptions) (*LayoutResult, error) {
	r.applyLogger(&opts.Logger)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	snapHash, err := cache.HashJSON(io.FromSnapshot(snap))
	if err != nil {
		return nil, fmt.Errorf("hash snapshot: %w", err)
	}
	cfgHash, err := cache.HashJSON(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("hash config: %w", err)
	}
	key := r.Keyer.LayoutKey(snapHash, cache.LayoutKeyOpts{Width: opts.Width, Height: opts.Height, ConfigHash: cfgHash})

	if data, ok := r.get(ctx, "layout", key); ok {
		var cached LayoutResult
		if json.Unmarshal(data, &cached) == nil {
			cached.CacheHit = true
			return &cached, nil
		}
	}

	start := time.Now()
	result, err := Layout(snap, opts)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(result); err == nil {
		r.set(ctx, "layout", key, data, cache.TTLLayout)
	}
	opts.Logger.Debug("computed layout",
		"sections", snap.Len(),
		"elements", len(result.Elements),
		"duration", time.Since(start))
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "key", key, "error", err)
		ok = false
	}
	if !ok {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(l **log.Logger) {
	if *l == nil {
		*l = r.Logger
	}
}

func duplicates(snaps ...*viewstate.Snapshot) []string {
	var out []string
	for _, s := range snaps {
		for _, id := range reconcile.Duplicates(s.Sections()) {
			if !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
	}
	return out
}
