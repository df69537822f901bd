package viewstate

import (
	"testing"

	terrors "github.com/matzehuels/tempo/pkg/errors"
)

func expectPanic(t *testing.T, code terrors.Code, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic with %s, got %v", code, r)
		}
		if !terrors.Is(err, code) {
			t.Errorf("panic code = %s, want %s", terrors.GetCode(err), code)
		}
	}()
	fn()
}

func TestNumberOfItems(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want int
	}{
		{"leaf value", V("a", 1), 1},
		{"leaf node", Node{Key: "n"}, 1},
		{"counted node", Node{Key: "n", Count: 4}, 4},
		{"group", Group{Key: "g", Children: []Item{V("a", 1), V("b", 2)}}, 2},
		{"empty group", Group{Key: "g"}, 0},
		{"section node ignores count", SectionNode{Node: Node{Key: "s", Count: 9}, Children: []Item{V("a", 1)}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberOfItems(tt.item); got != tt.want {
				t.Errorf("NumberOfItems() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChildren(t *testing.T) {
	if _, ok := Children(Group{Key: "g"}); !ok {
		t.Error("Children(empty group) reported no children, want parent")
	}
	if _, ok := Children(Node{Key: "n"}); ok {
		t.Error("Children(node) reported a parent")
	}
}

func TestEqual(t *testing.T) {
	header := Node{Key: "h", Title: "Header"}
	tests := []struct {
		name string
		a, b Item
		want bool
	}{
		{"same value", V("a", 1), V("a", 1), true},
		{"different payload", V("a", 1), V("a", 2), false},
		{"different payload type", V("a", 1), V("a", "1"), false},
		{"value vs node", V("a", 1), Node{Key: "a"}, false},
		{"same group", Group{Key: "g", Children: []Item{V("a", 1)}, Head: header}, Group{Key: "g", Children: []Item{V("a", 1)}, Head: header}, true},
		{"group child differs", Group{Key: "g", Children: []Item{V("a", 1)}}, Group{Key: "g", Children: []Item{V("a", 2)}}, false},
		{"group header appears", Group{Key: "g"}, Group{Key: "g", Head: header}, false},
		{"node title differs", Node{Key: "n", Title: "x"}, Node{Key: "n", Title: "y"}, false},
		{"section nodes", SectionNode{Node: Node{Key: "s"}, Children: []Item{Node{Key: "a"}}}, SectionNode{Node: Node{Key: "s"}, Children: []Item{Node{Key: "a"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaptureCopies(t *testing.T) {
	sections := []Item{V("a", 1), V("b", 2)}
	focus := &Focus{Path: Path(1, 0), Position: CenteredVertically}
	state := Static{Items: sections, FocusOn: focus}

	snap := Capture(state)
	sections[0] = V("z", 26)
	focus.Path = Path(0, 0)

	if got := snap.Section(0).ID(); got != "a" {
		t.Errorf("Section(0).ID() = %q, want %q", got, "a")
	}
	if got := snap.Focus().Path; got != Path(1, 0) {
		t.Errorf("Focus().Path = %v, want 1.0", got)
	}

	out := snap.Sections()
	out[1] = V("y", 25)
	if got := snap.Section(1).ID(); got != "b" {
		t.Errorf("Section(1).ID() after mutating Sections() = %q, want %q", got, "b")
	}
	if Capture(state).ID() == snap.ID() {
		t.Error("two captures share an ID")
	}
}

func TestCaptureNil(t *testing.T) {
	snap := Capture(nil)
	if snap.Len() != 0 || snap.Focus() != nil {
		t.Errorf("Capture(nil) = %d sections, focus %v; want empty", snap.Len(), snap.Focus())
	}
}

func TestItemAt(t *testing.T) {
	snap := Capture(Static{Items: []Item{
		Group{Key: "g", Children: []Item{V("a", 1), V("b", 2)}},
		Node{Key: "leaf", Count: 3},
	}})

	if got := snap.ItemAt(Path(0, 1)).ID(); got != "b" {
		t.Errorf("ItemAt(0.1).ID() = %q, want %q", got, "b")
	}
	if got := snap.ItemAt(Path(1, 2)).ID(); got != "leaf" {
		t.Errorf("ItemAt(1.2).ID() = %q, want %q", got, "leaf")
	}
	if got := len(snap.Paths()); got != 5 {
		t.Errorf("len(Paths()) = %d, want 5", got)
	}

	expectPanic(t, terrors.ErrCodeInvalidPath, func() { snap.ItemAt(Path(0, 2)) })
	expectPanic(t, terrors.ErrCodeInvalidPath, func() { snap.ItemAt(Path(1, 3)) })
	expectPanic(t, terrors.ErrCodeInvalidPath, func() { snap.ItemAt(Path(2, 0)) })
}

func TestHeaderAt(t *testing.T) {
	header := Node{Key: "h"}
	snap := Capture(Static{Items: []Item{
		Group{Key: "with", Head: header},
		Group{Key: "without"},
		V("value", 1),
	}})

	if !snap.HasHeader(0) || snap.HasHeader(1) || snap.HasHeader(2) {
		t.Errorf("HasHeader() = %v %v %v, want true false false", snap.HasHeader(0), snap.HasHeader(1), snap.HasHeader(2))
	}
	if got := snap.HeaderAt(0); !got.Equal(header) {
		t.Errorf("HeaderAt(0) = %v, want %v", got, header)
	}
	expectPanic(t, terrors.ErrCodeMissingHeader, func() { snap.HeaderAt(1) })
	expectPanic(t, terrors.ErrCodeMissingHeader, func() { snap.HeaderAt(2) })
}

func TestFocusPositionText(t *testing.T) {
	for _, p := range []FocusPosition{CenteredVertically, CenteredHorizontally} {
		b, _ := p.MarshalText()
		var got FocusPosition
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", b, err)
		}
		if got != p {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, got, p)
		}
	}
	var p FocusPosition
	if err := p.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("UnmarshalText(diagonal) succeeded, want error")
	}
}
