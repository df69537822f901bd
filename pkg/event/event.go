// Package event is a typed publish/subscribe bus for view lifecycle and
// interaction events.
//
// Handlers are keyed by [Kind] and run synchronously on the publishing
// goroutine, in subscription order. The bus is safe for concurrent use;
// a handler may subscribe or unsubscribe while an event is being published.
package event

import (
	"fmt"
	"sync"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Kind identifies an event type.
type Kind int

const (
	ViewDidLoad Kind = iota
	ViewWillAppear
	ViewDidAppear
	ViewWillDisappear
	UpdatesComplete
	ItemSelected
	ItemFocused
)

var kindNames = [...]string{
	ViewDidLoad:       "view-did-load",
	ViewWillAppear:    "view-will-appear",
	ViewDidAppear:     "view-did-appear",
	ViewWillDisappear: "view-will-disappear",
	UpdatesComplete:   "updates-complete",
	ItemSelected:      "item-selected",
	ItemFocused:       "item-focused",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a published occurrence. Path and Item are set for item events.
type Event struct {
	Kind Kind
	Path viewstate.IndexPath
	Item viewstate.Item
}

// Handler receives events.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Bus routes events to subscribers. The zero value is ready to use.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Kind][]subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers h for events of kind k. The returned function removes
// the subscription; calling it more than once is harmless.
func (b *Bus) Subscribe(k Kind, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = make(map[Kind][]subscription)
	}
	b.nextID++
	id := b.nextID
	b.subs[k] = append(b.subs[k], subscription{id: id, fn: h})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(k, id) })
	}
}

func (b *Bus) remove(k Kind, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[k]
	for i, s := range subs {
		if s.id == id {
			b.subs[k] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every handler subscribed to e.Kind at the time of
// the call.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := b.subs[e.Kind]
	b.mu.RUnlock()
	for _, s := range subs {
		s.fn(e)
	}
}

// Len returns the number of handlers subscribed to k.
func (b *Bus) Len(k Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[k])
}
