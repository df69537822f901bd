package reconcile

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tempo/pkg/viewstate"
)

func leaf(id string, v int) viewstate.Item { return viewstate.V(id, v) }

func group(id string, children ...viewstate.Item) viewstate.Item {
	return viewstate.Group{Key: id, Children: children}
}

func titled(id, title string, children ...viewstate.Item) viewstate.Item {
	return viewstate.Group{Key: id, Children: children, Head: viewstate.Node{Key: id + "-header", Title: title}}
}

func TestDiffSections(t *testing.T) {
	focus := viewstate.Focus{Path: viewstate.Path(1, 0), Position: viewstate.CenteredHorizontally, Animated: true}

	tests := []struct {
		name     string
		previous []viewstate.Item
		current  []viewstate.Item
		focus    *viewstate.Focus
		want     Script
	}{
		{
			name:     "delete first insert last",
			previous: []viewstate.Item{leaf("1", 1), leaf("2", 2)},
			current:  []viewstate.Item{leaf("2", 2), leaf("3", 3)},
			want:     Script{Insert(1), Delete(0)},
		},
		{
			name:     "empty previous",
			previous: nil,
			current:  []viewstate.Item{leaf("a", 1), leaf("b", 1)},
			want:     Script{Insert(0), Insert(1)},
		},
		{
			name:     "empty current",
			previous: []viewstate.Item{leaf("a", 1), leaf("b", 1)},
			current:  nil,
			want:     Script{Delete(0), Delete(1)},
		},
		{
			name:     "both empty",
			previous: nil,
			current:  nil,
			want:     Script{},
		},
		{
			name:     "leaf content change keeps cell count",
			previous: []viewstate.Item{leaf("a", 1)},
			current:  []viewstate.Item{leaf("a", 2)},
			want:     Script{Update(0, 0)},
		},
		{
			name:     "leaf count change reloads",
			previous: []viewstate.Item{viewstate.Node{Key: "a", Count: 2}},
			current:  []viewstate.Item{viewstate.Node{Key: "a", Count: 3}},
			want:     Script{Reload(0)},
		},
		{
			name:     "parent and leaf with different counts reload",
			previous: []viewstate.Item{group("a", leaf("x", 1), leaf("y", 1))},
			current:  []viewstate.Item{viewstate.Node{Key: "a"}},
			want:     Script{Reload(0)},
		},
		{
			name:     "parent and leaf with equal counts update",
			previous: []viewstate.Item{group("a", leaf("x", 1))},
			current:  []viewstate.Item{viewstate.Node{Key: "a"}},
			want:     Script{Update(0, 0)},
		},
		{
			name:     "moved section with item edits",
			previous: []viewstate.Item{leaf("top", 0), group("g", leaf("a", 1), leaf("b", 1), leaf("c", 1))},
			current:  []viewstate.Item{group("g", leaf("b", 2), leaf("c", 1), leaf("d", 1)), leaf("top", 0)},
			want: Script{
				Update(1, 0, InsertItem(2), DeleteItem(0), UpdateItem(1, 0)),
			},
		},
		{
			name:     "focus trails structural edits",
			previous: []viewstate.Item{leaf("a", 1)},
			current:  []viewstate.Item{leaf("a", 2), leaf("b", 1)},
			focus:    &focus,
			want:     Script{Insert(1), Update(0, 0), FocusOn(focus)},
		},
		{
			name:     "header change after focus",
			previous: []viewstate.Item{titled("a", "Old", leaf("x", 1))},
			current:  []viewstate.Item{titled("a", "New", leaf("x", 1))},
			focus:    &focus,
			want:     Script{Update(0, 0), FocusOn(focus), Header(0, 0)},
		},
		{
			name:     "header compared across moves",
			previous: []viewstate.Item{leaf("z", 0), titled("a", "Old")},
			current:  []viewstate.Item{titled("a", "New"), leaf("z", 0)},
			want:     Script{Update(1, 0), Header(1, 0)},
		},
		{
			name:     "appearing header is not reported",
			previous: []viewstate.Item{viewstate.Group{Key: "a"}},
			current:  []viewstate.Item{titled("a", "Hello")},
			want:     Script{Update(0, 0)},
		},
		{
			name:     "disappearing header is not reported",
			previous: []viewstate.Item{titled("a", "Hello")},
			current:  []viewstate.Item{viewstate.Group{Key: "a"}},
			want:     Script{Update(0, 0)},
		},
		{
			name:     "first differing duplicate wins",
			previous: []viewstate.Item{leaf("a", 1)},
			current:  []viewstate.Item{leaf("a", 1), leaf("a", 2)},
			want:     Script{Update(0, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffSections(tt.previous, tt.current, tt.focus)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffSections() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffItems(t *testing.T) {
	tests := []struct {
		name     string
		previous []viewstate.Item
		current  []viewstate.Item
		want     []ItemUpdate
	}{
		{
			name:     "identical",
			previous: []viewstate.Item{leaf("a", 1), leaf("b", 2)},
			current:  []viewstate.Item{leaf("a", 1), leaf("b", 2)},
			want:     nil,
		},
		{
			name:     "swap reports nothing when content is equal",
			previous: []viewstate.Item{leaf("a", 1), leaf("b", 2)},
			current:  []viewstate.Item{leaf("b", 2), leaf("a", 1)},
			want:     nil,
		},
		{
			name:     "insert delete update",
			previous: []viewstate.Item{leaf("a", 1), leaf("b", 2), leaf("c", 3)},
			current:  []viewstate.Item{leaf("c", 4), leaf("d", 1), leaf("a", 1)},
			want:     []ItemUpdate{InsertItem(1), DeleteItem(1), UpdateItem(2, 0)},
		},
		{
			name:     "nested children are leaves",
			previous: []viewstate.Item{group("g", leaf("x", 1))},
			current:  []viewstate.Item{group("g", leaf("x", 2), leaf("y", 1))},
			want:     []ItemUpdate{UpdateItem(0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffItems(tt.previous, tt.current)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffItems() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffSnapshots(t *testing.T) {
	focus := &viewstate.Focus{Path: viewstate.Path(0, 0)}
	from := viewstate.Capture(viewstate.Static{Items: []viewstate.Item{leaf("a", 1)}, FocusOn: focus})
	to := viewstate.Capture(viewstate.Static{Items: []viewstate.Item{leaf("a", 1)}})

	if got := Diff(from, to); len(got) != 0 {
		t.Errorf("Diff() = %v, want no updates; focus of from is already consumed", got.Strings())
	}

	to = viewstate.Capture(viewstate.Static{Items: []viewstate.Item{leaf("a", 1)}, FocusOn: focus})
	want := Script{FocusOn(*focus)}
	if diff := cmp.Diff(want, Diff(from, to)); diff != "" {
		t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
	}
}

// randomSections returns n sections with unique identifiers drawn from a
// shared pool, so two calls overlap partially.
func randomSections(rng *rand.Rand, n int) []viewstate.Item {
	perm := rng.Perm(3 * n)
	items := make([]viewstate.Item, 0, n)
	for _, id := range perm[:n] {
		key := strconv.Itoa(id)
		switch rng.Intn(3) {
		case 0:
			items = append(items, leaf(key, rng.Intn(2)))
		case 1:
			items = append(items, viewstate.Node{Key: key, Count: 1 + rng.Intn(2)})
		default:
			var children []viewstate.Item
			for j := 0; j < rng.Intn(4); j++ {
				children = append(children, leaf(strconv.Itoa(j), rng.Intn(2)))
			}
			items = append(items, titled(key, strconv.Itoa(rng.Intn(2)), children...))
		}
	}
	return items
}

func TestNoopIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	focus := &viewstate.Focus{Path: viewstate.Path(0, 0)}

	for run := 0; run < 200; run++ {
		sections := randomSections(rng, rng.Intn(12))
		copied := append([]viewstate.Item(nil), sections...)

		if got := DiffSections(sections, sections, nil); len(got) != 0 {
			t.Fatalf("run %d: DiffSections(S, S) = %v, want empty", run, got.Strings())
		}
		got := DiffSections(sections, copied, focus)
		if !got.IsNoop() || len(got) != 1 || got[0].Op != OpFocus {
			t.Fatalf("run %d: DiffSections(S, copy(S), focus) = %v, want only focus", run, got.Strings())
		}
	}
}

func TestInsertSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for run := 0; run < 200; run++ {
		previous := randomSections(rng, rng.Intn(10))
		current := append(append([]viewstate.Item(nil), previous...), leaf("new", 0))

		want := Script{Insert(len(previous))}
		if diff := cmp.Diff(want, DiffSections(previous, current, nil)); diff != "" {
			t.Fatalf("run %d: DiffSections() mismatch (-want +got):\n%s", run, diff)
		}

		want = Script{Delete(len(previous))}
		if diff := cmp.Diff(want, DiffSections(current, previous, nil)); diff != "" {
			t.Fatalf("run %d: reverse DiffSections() mismatch (-want +got):\n%s", run, diff)
		}
	}
}

func TestConservationOfCount(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for run := 0; run < 500; run++ {
		previous := randomSections(rng, rng.Intn(15))
		current := randomSections(rng, rng.Intn(15))
		script := DiffSections(previous, current, nil)

		if got := script.ApplyCount(len(previous)); got != len(current) {
			t.Fatalf("run %d: ApplyCount(%d) = %d, want %d (script %v)",
				run, len(previous), got, len(current), script.Strings())
		}
	}
}

func TestDuplicates(t *testing.T) {
	items := []viewstate.Item{leaf("a", 1), leaf("b", 1), leaf("a", 2), leaf("a", 3), leaf("b", 2), leaf("c", 1)}
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, Duplicates(items)); diff != "" {
		t.Errorf("Duplicates() mismatch (-want +got):\n%s", diff)
	}
	if got := Duplicates([]viewstate.Item{leaf("a", 1)}); got != nil {
		t.Errorf("Duplicates(unique) = %v, want nil", got)
	}
}

func TestScriptCounts(t *testing.T) {
	s := Script{Insert(0), Insert(3), Delete(1), Update(0, 1, InsertItem(0)), FocusOn(viewstate.Focus{})}
	want := map[Op]int{OpInsert: 2, OpDelete: 1, OpUpdate: 1, OpFocus: 1}
	if diff := cmp.Diff(want, s.Counts()); diff != "" {
		t.Errorf("Counts() mismatch (-want +got):\n%s", diff)
	}
}
