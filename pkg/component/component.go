// Package component maps view-state items to the components that draw them.
//
// A [Registry] resolves an item to a [Component] in two steps: an explicit
// kind (items implementing viewstate.Kinded) is looked up first, then the
// registered match predicates are tried in registration order. Resolution is
// memoised per dynamic type and kind. An item no component accepts is a
// configuration error: [Registry.MustFor] panics with
// errors.ErrCodeMissingComponent.
package component

import (
	"reflect"
	"sync"

	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// RenderContext describes where and how a cell is drawn.
type RenderContext struct {
	Width     int
	Position  layout.Position
	Style     layout.ItemStyle
	Highlight layout.HighlightStyle
	Focused   bool
	Selected  bool
}

// Component draws one kind of item.
type Component interface {
	Render(item viewstate.Item, ctx RenderContext) string
	Height(item viewstate.Item, width float64) float64
}

// Configurer is implemented by components that override layout properties
// of the items they draw.
type Configurer interface {
	ItemConfig(item viewstate.Item) layout.ItemConfig
}

// Selector is implemented by components that react to selection.
type Selector interface {
	ShouldSelect(item viewstate.Item) bool
	Select(item viewstate.Item)
}

// Select runs c's selection behaviour for item and reports whether the item
// was selectable. Components that do not implement Selector are selectable
// and do nothing.
func Select(c Component, item viewstate.Item) bool {
	s, ok := c.(Selector)
	if !ok {
		return true
	}
	if !s.ShouldSelect(item) {
		return false
	}
	s.Select(item)
	return true
}

// Predicate reports whether a component can display item.
type Predicate func(item viewstate.Item) bool

// Any accepts every item.
func Any(viewstate.Item) bool { return true }

// TypeOf returns a predicate accepting items whose dynamic type is T.
func TypeOf[T viewstate.Item]() Predicate {
	return func(item viewstate.Item) bool {
		_, ok := item.(T)
		return ok
	}
}

type match struct {
	pred Predicate
	c    Component
}

type memoKey struct {
	typ  reflect.Type
	kind string
}

// Registry resolves items to components. It is safe for concurrent use.
// Predicates must depend only on an item's type and kind.
type Registry struct {
	mu      sync.RWMutex
	kinds   map[string]Component
	headers map[string]Component
	matches []match
	memo    map[memoKey]Component
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:   make(map[string]Component),
		headers: make(map[string]Component),
		memo:    make(map[memoKey]Component),
	}
}

// Register binds c to items of the given kind.
func (r *Registry) Register(kind string, c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = c
	clear(r.memo)
}

// RegisterMatch adds c as a fallback for items accepted by pred.
func (r *Registry) RegisterMatch(pred Predicate, c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, match{pred: pred, c: c})
	clear(r.memo)
}

// RegisterHeader binds c to section headers of the given kind.
func (r *Registry) RegisterHeader(kind string, c Component) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers[kind] = c
}

// For returns the component for item.
func (r *Registry) For(item viewstate.Item) (Component, bool) {
	if item == nil {
		return nil, false
	}
	key := memoKey{typ: reflect.TypeOf(item), kind: viewstate.KindOf(item)}

	r.mu.RLock()
	if c, ok := r.kinds[key.kind]; ok && key.kind != "" {
		r.mu.RUnlock()
		return c, true
	}
	if c, ok := r.memo[key]; ok {
		r.mu.RUnlock()
		return c, true
	}
	matches := r.matches
	r.mu.RUnlock()

	for _, m := range matches {
		if m.pred(item) {
			r.mu.Lock()
			r.memo[key] = m.c
			r.mu.Unlock()
			return m.c, true
		}
	}
	return nil, false
}

// MustFor is like For but panics when no component displays item.
func (r *Registry) MustFor(item viewstate.Item) Component {
	c, ok := r.For(item)
	if !ok {
		terrors.Fatal(terrors.ErrCodeMissingComponent, "missing component for %T %q", item, idOf(item))
	}
	return c
}

// HeaderFor returns the component for a section header. Header kinds are
// looked up first, the empty kind included, then the regular item
// resolution applies.
func (r *Registry) HeaderFor(header viewstate.Item) (Component, bool) {
	if header == nil {
		return nil, false
	}
	r.mu.RLock()
	c, ok := r.headers[viewstate.KindOf(header)]
	r.mu.RUnlock()
	if ok {
		return c, true
	}
	return r.For(header)
}

// MustHeaderFor is like HeaderFor but panics when nothing matches.
func (r *Registry) MustHeaderFor(header viewstate.Item) Component {
	c, ok := r.HeaderFor(header)
	if !ok {
		terrors.Fatal(terrors.ErrCodeMissingComponent, "missing header component for %T %q", header, idOf(header))
	}
	return c
}

func idOf(item viewstate.Item) string {
	if item == nil {
		return ""
	}
	return item.ID()
}
