package surface

import (
	"slices"

	"github.com/matzehuels/tempo/pkg/component"
	"github.com/matzehuels/tempo/pkg/event"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// focus scrolls the focused cell into view. A focus on the path already
// being scrolled to is ignored.
func (s *Surface) focus(f viewstate.Focus) {
	if s.focusing != nil && *s.focusing == f.Path {
		return
	}
	attrs, ok := s.layout.Item(f.Path)
	if !ok {
		return
	}

	x, y := s.offsetX, s.offsetY
	switch f.Position {
	case viewstate.CenteredHorizontally:
		x = attrs.Frame.MidX() - s.viewport.Width/2
	default:
		y = attrs.Frame.MidY() - s.viewport.Height/2
	}

	switch {
	case s.Visible().Contains(attrs.Frame):
		s.didFocus(f.Path)
	case f.Animated:
		path := f.Path
		s.focusing = &path
		s.target = [2]float64{x, y}
	default:
		s.scrollTo(x, y)
		s.didFocus(f.Path)
	}
}

// Focusing returns the path of a scroll in progress.
func (s *Surface) Focusing() (viewstate.IndexPath, bool) {
	if s.focusing == nil {
		return viewstate.IndexPath{}, false
	}
	return *s.focusing, true
}

// Settle finishes a scroll in progress and reports whether there was one.
func (s *Surface) Settle() bool {
	if s.focusing == nil {
		return false
	}
	path := *s.focusing
	s.scrollTo(s.target[0], s.target[1])
	s.focusing = nil
	s.didFocus(path)
	return true
}

func (s *Surface) didFocus(path viewstate.IndexPath) {
	s.last.Focused = append(s.last.Focused, path)
	s.cursor, s.hasCur = path, true
	s.bus.Publish(event.Event{Kind: event.ItemFocused, Path: path, Item: s.snap.ItemAt(path)})
}

// Cursor returns the selection cursor.
func (s *Surface) Cursor() (viewstate.IndexPath, bool) { return s.cursor, s.hasCur }

// MoveCursor moves the selection cursor by delta cells in display order and
// scrolls it into view. Without a cursor, delta counts from the first cell.
func (s *Surface) MoveCursor(delta int) {
	paths := s.snap.Paths()
	if len(paths) == 0 {
		s.hasCur = false
		return
	}
	i := 0
	if s.hasCur {
		i, _ = slices.BinarySearchFunc(paths, s.cursor, comparePaths)
	}
	i = min(max(i+delta, 0), len(paths)-1)
	s.cursor, s.hasCur = paths[i], true

	s.prepare()
	if attrs, ok := s.layout.Item(s.cursor); ok && !s.Visible().Contains(attrs.Frame) {
		if attrs.Frame.MinY() < s.offsetY {
			s.scrollTo(s.offsetX, attrs.Frame.MinY())
		} else {
			s.scrollTo(s.offsetX, attrs.Frame.MaxY()-s.viewport.Height)
		}
	}
}

// Select selects the cell under the cursor. It publishes ItemSelected when
// the cell's component allows selection.
func (s *Surface) Select() bool {
	if !s.hasCur {
		return false
	}
	item := s.snap.ItemAt(s.cursor)
	if !component.Select(s.registry.MustFor(item), item) {
		return false
	}
	s.bus.Publish(event.Event{Kind: event.ItemSelected, Path: s.cursor, Item: item})
	return true
}

func (s *Surface) clampCursor() {
	if !s.hasCur {
		return
	}
	paths := s.snap.Paths()
	if len(paths) == 0 {
		s.hasCur = false
		return
	}
	if i, found := slices.BinarySearchFunc(paths, s.cursor, comparePaths); !found {
		s.cursor = paths[min(i, len(paths)-1)]
	}
}

func comparePaths(a, b viewstate.IndexPath) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
