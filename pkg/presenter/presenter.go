// Package presenter schedules reconciliation between successive view states.
//
// A [SectionPresenter] captures every presented state as an immutable
// snapshot, diffs it against the previous one on a background worker and
// hands the resulting edit script to an [Adapter] on the main queue. Only one
// diff job is ever pending: presenting faster than the surface can apply
// replaces the pending target snapshot, so intermediate states are skipped
// while the chain of applied snapshots stays consistent.
package presenter

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tempo/pkg/observability"
	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Adapter is the rendering surface a presenter drives.
//
// ApplyUpdates receives the edit script that turns the previously applied
// snapshot into snap. A nil script is the full-reset signal sent on the first
// presentation. It must not return before the batch has been applied.
type Adapter interface {
	ApplyUpdates(script reconcile.Script, snap *viewstate.Snapshot)
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func(script reconcile.Script, snap *viewstate.Snapshot)

// ApplyUpdates calls f(script, snap).
func (f AdapterFunc) ApplyUpdates(script reconcile.Script, snap *viewstate.Snapshot) {
	f(script, snap)
}

// Option configures a SectionPresenter.
type Option func(*SectionPresenter)

// WithMainQueue sets the queue adapter calls run on. Defaults to [Immediate].
func WithMainQueue(q Queue) Option {
	return func(p *SectionPresenter) {
		if q != nil {
			p.main = q
		}
	}
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(p *SectionPresenter) {
		if l != nil {
			p.logger = l
		}
	}
}

type job struct {
	from, to *viewstate.Snapshot
}

// SectionPresenter turns a stream of view states into ordered, non-overlapping
// batches of updates. It is safe for concurrent use.
type SectionPresenter struct {
	adapter Adapter
	main    Queue
	logger  *log.Logger

	mu      sync.Mutex
	current *viewstate.Snapshot
	pending *job
	closed  bool

	wake  chan struct{}
	ready chan struct{}
	done  chan struct{}
	wg    sync.WaitGroup
}

// New starts a presenter driving adapter.
func New(adapter Adapter, opts ...Option) *SectionPresenter {
	p := &SectionPresenter{
		adapter: adapter,
		main:    Immediate,
		logger:  log.Default(),
		wake:    make(chan struct{}, 1),
		ready:   make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.wg.Add(1)
	go p.work()
	return p
}

// Present captures state and schedules it for display.
//
// The first call applies the snapshot synchronously on the caller with a nil
// script. Later calls return immediately; the diff runs on the worker.
func (p *SectionPresenter) Present(state viewstate.State) {
	snap := viewstate.Capture(state)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	from := p.current
	p.current = snap
	if from == nil {
		p.mu.Unlock()
		p.logger.Debug("initial presentation", "sections", snap.Len())
		p.adapter.ApplyUpdates(nil, snap)
		close(p.ready)
		return
	}
	if p.pending != nil {
		p.pending.to = snap
		p.mu.Unlock()
		observability.Reconcile().OnCoalesce(context.Background())
		return
	}
	p.pending = &job{from: from, to: snap}
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Current returns the most recently presented snapshot, or nil.
func (p *SectionPresenter) Current() *viewstate.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Close stops the worker. A batch already handed to the main queue is not
// waited for once Close has been called.
func (p *SectionPresenter) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.pending = nil
	p.mu.Unlock()

	close(p.done)
	p.wg.Wait()
}

func (p *SectionPresenter) work() {
	defer p.wg.Done()

	// No diff is applied before the initial full reset has finished.
	select {
	case <-p.ready:
	case <-p.done:
		return
	}
	for {
		select {
		case <-p.wake:
		case <-p.done:
			return
		}
		for {
			p.mu.Lock()
			j := p.pending
			p.pending = nil
			p.mu.Unlock()
			if j == nil {
				break
			}
			if !p.run(j) {
				return
			}
		}
	}
}

// run diffs one job and blocks until the main queue applied it. It reports
// false when the presenter was closed while waiting.
func (p *SectionPresenter) run(j *job) bool {
	ctx := context.Background()
	hooks := observability.Reconcile()

	sections := j.to.Sections()
	if dups := reconcile.Duplicates(sections); len(dups) > 0 {
		p.logger.Debug("duplicate section identifiers", "ids", dups)
	}

	hooks.OnDiffStart(ctx, len(sections))
	start := time.Now()
	script := reconcile.Diff(j.from, j.to)
	hooks.OnDiffComplete(ctx, len(script), time.Since(start))
	p.logger.Debug("reconciled", "ops", len(script), "duration", time.Since(start))

	applied := make(chan struct{})
	p.main.Do(func() {
		defer close(applied)
		begin := time.Now()
		p.adapter.ApplyUpdates(script, j.to)
		hooks.OnApplyComplete(ctx, len(script), time.Since(begin))
	})

	select {
	case <-applied:
		return true
	case <-p.done:
		return false
	}
}
