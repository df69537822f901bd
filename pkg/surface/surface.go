// Package surface is a terminal collection surface driven by a presenter.
//
// A [Surface] holds the applied view-state snapshot, lays it out with
// layout.Layout and draws the visible cells with lipgloss. It implements
// presenter.Adapter and publishes lifecycle and interaction events on an
// event.Bus. A Surface is not safe for concurrent use; every call must come
// from the presenter's main queue.
package surface

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tempo/pkg/component"
	"github.com/matzehuels/tempo/pkg/event"
	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/reconcile"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Scale is the number of layout points covered by one terminal cell.
type Scale struct {
	X, Y float64
}

// DefaultScale maps a 375 point wide layout onto roughly 94 columns and a
// 44 point list item onto three rows.
var DefaultScale = Scale{X: 4, Y: 16}

// Batch summarises the last applied edit script.
type Batch struct {
	Inserted []int
	Deleted  []int
	Reloaded []int
	Headers  []int

	// Configured lists the cells reconfigured in place, by new path.
	Configured []viewstate.IndexPath
	Focused    []viewstate.IndexPath
}

// Option configures a Surface.
type Option func(*Surface)

// WithBus sets the event bus. Defaults to a private bus.
func WithBus(b *event.Bus) Option {
	return func(s *Surface) {
		if b != nil {
			s.bus = b
		}
	}
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Surface) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLayoutConfig sets the layout defaults.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(s *Surface) { s.layout = layout.New(cfg) }
}

// WithScale sets the point to terminal cell ratio.
func WithScale(sc Scale) Option {
	return func(s *Surface) {
		if sc.X > 0 && sc.Y > 0 {
			s.scale = sc
		}
	}
}

// Surface renders a sectioned view state in a terminal.
type Surface struct {
	registry *component.Registry
	bus      *event.Bus
	logger   *log.Logger
	layout   *layout.Layout
	scale    Scale

	snap     *viewstate.Snapshot
	viewport geom.Size
	offsetX  float64
	offsetY  float64
	valid    bool

	// focusing is the target of a scroll still in progress.
	focusing *viewstate.IndexPath
	target   [2]float64

	cursor  viewstate.IndexPath
	hasCur  bool
	last    Batch
	batches int

	// cells caches rendered cells by path.
	cells   map[viewstate.IndexPath]cell
	renders int
}

// New returns a surface drawing items with the components of reg.
func New(reg *component.Registry, opts ...Option) *Surface {
	s := &Surface{
		registry: reg,
		bus:      event.NewBus(),
		logger:   log.Default(),
		layout:   layout.New(layout.DefaultConfig()),
		scale:    DefaultScale,
		snap:     viewstate.Empty(),
		cells:    make(map[viewstate.IndexPath]cell),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.bus.Publish(event.Event{Kind: event.ViewDidLoad})
	return s
}

// Bus returns the surface's event bus.
func (s *Surface) Bus() *event.Bus { return s.bus }

// Snapshot returns the applied view state.
func (s *Surface) Snapshot() *viewstate.Snapshot { return s.snap }

// LastBatch returns what the last applied edit script touched.
func (s *Surface) LastBatch() Batch { return s.last }

// Batches returns the number of edit scripts applied so far.
func (s *Surface) Batches() int { return s.batches }

// Layout returns the surface layout, prepared for the current state.
func (s *Surface) Layout() *layout.Layout {
	s.prepare()
	return s.layout
}

// ApplyUpdates implements presenter.Adapter.
//
// The applied state is swapped first. A nil script resets every cell. An
// empty script changes nothing unless sections or items were reordered, in
// which case the cells are redrawn at their new paths. While the surface has
// no size the batch is skipped, the next Resize lays out the new state from
// scratch.
func (s *Surface) ApplyUpdates(script reconcile.Script, snap *viewstate.Snapshot) {
	from := s.snap
	s.snap = snap

	if script == nil {
		s.reset()
		return
	}
	if len(script) == 0 {
		if !sameShape(from, snap) {
			s.reorder()
		}
		return
	}
	if s.viewport.IsZero() {
		s.valid = false
		return
	}

	s.batches++
	s.last = Batch{}
	moved := false
	var focus []viewstate.Focus
	for _, u := range script {
		switch u.Op {
		case reconcile.OpInsert:
			s.last.Inserted = append(s.last.Inserted, u.Index)
			moved = true
		case reconcile.OpDelete:
			s.last.Deleted = append(s.last.Deleted, u.Index)
			moved = true
		case reconcile.OpReload:
			s.last.Reloaded = append(s.last.Reloaded, u.Index)
			s.forgetSection(u.Index)
			if to := s.sectionIndex(from.Section(u.Index).ID()); to != u.Index {
				s.forgetSection(to)
			}
		case reconcile.OpUpdate:
			if s.updateSection(from, u) {
				moved = true
			}
		case reconcile.OpFocus:
			focus = append(focus, *u.Focus)
		case reconcile.OpHeader:
			s.last.Headers = append(s.last.Headers, u.To)
		}
	}
	if moved {
		clear(s.cells)
	}

	s.layout.Invalidate()
	s.valid = false
	s.prepare()
	s.clampCursor()

	for _, f := range focus {
		s.focus(f)
	}
	s.logger.Debug("applied updates", "ops", len(script), "moved", moved)
	s.bus.Publish(event.Event{Kind: event.UpdatesComplete})
}

// updateSection reconfigures the cells of an updated section and reports
// whether any cell changed its path.
func (s *Surface) updateSection(from *viewstate.Snapshot, u reconcile.SectionUpdate) bool {
	moved := u.From != u.To
	if len(u.Items) == 0 {
		for i := 0; i < from.NumberOfItems(u.From) && i < s.snap.NumberOfItems(u.To); i++ {
			s.configure(viewstate.Path(u.To, i))
		}
		return moved
	}
	for _, iu := range u.Items {
		switch iu.Op {
		case reconcile.OpInsert, reconcile.OpDelete:
			moved = true
		case reconcile.OpUpdate:
			s.configure(viewstate.Path(u.To, iu.To))
			moved = moved || iu.From != iu.To
		}
	}
	return moved
}

func (s *Surface) configure(path viewstate.IndexPath) {
	s.last.Configured = append(s.last.Configured, path)
	delete(s.cells, path)
}

func (s *Surface) forgetSection(section int) {
	for p := range s.cells {
		if p.Section == section {
			delete(s.cells, p)
		}
	}
}

func (s *Surface) sectionIndex(id string) int {
	for i, sec := range s.snap.Sections() {
		if sec.ID() == id {
			return i
		}
	}
	return -1
}

// reorder redraws a state whose items only moved. An in-flight focus
// scroll is kept.
func (s *Surface) reorder() {
	clear(s.cells)
	s.layout.Invalidate()
	s.valid = false
	if s.viewport.IsZero() {
		return
	}
	s.prepare()
	s.clampCursor()
	s.logger.Debug("applied reorder", "sections", s.snap.Len())
	s.bus.Publish(event.Event{Kind: event.UpdatesComplete})
}

// sameShape reports whether a and b list the same section and item
// identifiers in the same order.
func sameShape(a, b *viewstate.Snapshot) bool {
	as, bs := a.Sections(), b.Sections()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i].ID() != bs[i].ID() {
			return false
		}
		ai, _ := viewstate.Children(as[i])
		bi, _ := viewstate.Children(bs[i])
		if !slices.EqualFunc(ai, bi, func(x, y viewstate.Item) bool { return x.ID() == y.ID() }) {
			return false
		}
	}
	return true
}

func (s *Surface) reset() {
	clear(s.cells)
	s.focusing = nil
	s.layout.Invalidate()
	s.valid = false
	s.clampCursor()
}

// prepare lays out the applied state if the layout is stale. A failed pass
// keeps the previous geometry.
func (s *Surface) prepare() {
	if s.valid || s.viewport.Width <= 0 {
		return
	}
	d := component.NewDelegate(s.registry, s.snap)
	if s.layout.Prepare(s.snap, d, s.viewport) {
		s.valid = true
	}
}

// Resize sets the viewport in terminal cells.
func (s *Surface) Resize(cols, rows int) {
	size := geom.Size{Width: float64(cols) * s.scale.X, Height: float64(rows) * s.scale.Y}
	if !layout.ShouldInvalidate(s.viewport, size) {
		return
	}
	first := s.viewport.IsZero()
	s.viewport = size
	s.layout.Invalidate()
	s.valid = false
	s.prepare()
	s.scrollTo(s.offsetX, s.offsetY)
	if first && !size.IsZero() {
		s.bus.Publish(event.Event{Kind: event.ViewWillAppear})
		s.bus.Publish(event.Event{Kind: event.ViewDidAppear})
	}
}

// Viewport returns the viewport in points.
func (s *Surface) Viewport() geom.Size { return s.viewport }

// Offset returns the scroll offset in points.
func (s *Surface) Offset() (x, y float64) { return s.offsetX, s.offsetY }

// Visible returns the visible region in layout coordinates.
func (s *Surface) Visible() geom.Rect {
	return geom.Rect{X: s.offsetX, Y: s.offsetY, Width: s.viewport.Width, Height: s.viewport.Height}
}

// Scroll moves the viewport by dy terminal rows.
func (s *Surface) Scroll(dy int) {
	s.scrollTo(s.offsetX, s.offsetY+float64(dy)*s.scale.Y)
}

func (s *Surface) scrollTo(x, y float64) {
	s.prepare()
	content := s.layout.ContentSize()
	s.offsetX = clamp(x, 0, content.Width-s.viewport.Width)
	s.offsetY = clamp(y, 0, content.Height-s.viewport.Height)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

// Close publishes ViewWillDisappear.
func (s *Surface) Close() {
	s.bus.Publish(event.Event{Kind: event.ViewWillDisappear})
}
