package event

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

func TestPublishOrder(t *testing.T) {
	var bus Bus
	var got []string
	bus.Subscribe(ItemSelected, func(e Event) { got = append(got, "first "+e.Path.String()) })
	bus.Subscribe(ItemSelected, func(e Event) { got = append(got, "second "+e.Path.String()) })
	bus.Subscribe(ItemFocused, func(Event) { got = append(got, "focused") })

	bus.Publish(Event{Kind: ItemSelected, Path: viewstate.Path(1, 2)})

	want := []string{"first 1.2", "second 1.2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Publish() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsub := bus.Subscribe(UpdatesComplete, func(Event) { calls++ })
	bus.Subscribe(UpdatesComplete, func(Event) {})

	bus.Publish(Event{Kind: UpdatesComplete})
	unsub()
	unsub()
	bus.Publish(Event{Kind: UpdatesComplete})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := bus.Len(UpdatesComplete); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	var got []int
	var unsub func()
	unsub = bus.Subscribe(ViewDidAppear, func(Event) {
		got = append(got, 1)
		unsub()
	})
	bus.Subscribe(ViewDidAppear, func(Event) { got = append(got, 2) })

	bus.Publish(Event{Kind: ViewDidAppear})
	bus.Publish(Event{Kind: ViewDidAppear})

	want := []int{1, 2, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Publish() mismatch (-want +got):\n%s", diff)
	}
}

func TestConcurrentPublish(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(ItemFocused, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(Event{Kind: ItemFocused})
			}
			bus.Subscribe(ViewDidLoad, func(Event) {})()
		}()
	}
	wg.Wait()

	if count != 800 {
		t.Errorf("count = %d, want 800", count)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ViewDidLoad, "view-did-load"},
		{UpdatesComplete, "updates-complete"},
		{ItemFocused, "item-focused"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
