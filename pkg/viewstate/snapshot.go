package viewstate

import (
	"slices"
	"time"

	"github.com/google/uuid"

	terrors "github.com/matzehuels/tempo/pkg/errors"
)

// State is what producers hand to the presenter.
type State interface {
	Sections() []Item
}

// Focuser is a state that requests focus on one item.
type Focuser interface {
	Focus() *Focus
}

// Snapshot is a frozen copy of a State.
type Snapshot struct {
	id       uuid.UUID
	captured time.Time
	sections []Item
	focus    *Focus
}

// Capture freezes state. The section slice and the focus request are copied,
// so later changes by the producer are not observed. A nil state captures an
// empty snapshot.
func Capture(state State) *Snapshot {
	s := &Snapshot{id: uuid.New(), captured: time.Now()}
	if state == nil {
		return s
	}
	s.sections = slices.Clone(state.Sections())
	if f, ok := state.(Focuser); ok {
		if focus := f.Focus(); focus != nil {
			cp := *focus
			s.focus = &cp
		}
	}
	return s
}

// Empty returns a snapshot with no sections. Surfaces start from it.
func Empty() *Snapshot { return Capture(nil) }

// ID returns the unique identifier stamped at capture time.
func (s *Snapshot) ID() uuid.UUID { return s.id }

// CapturedAt returns the capture time.
func (s *Snapshot) CapturedAt() time.Time { return s.captured }

// Sections returns a copy of the section list.
func (s *Snapshot) Sections() []Item { return slices.Clone(s.sections) }

// Focus returns the captured focus request, or nil.
func (s *Snapshot) Focus() *Focus {
	if s.focus == nil {
		return nil
	}
	f := *s.focus
	return &f
}

// Len returns the number of sections.
func (s *Snapshot) Len() int { return len(s.sections) }

// Section returns section i. It panics if i is out of range.
func (s *Snapshot) Section(i int) Item {
	if i < 0 || i >= len(s.sections) {
		terrors.Fatal(terrors.ErrCodeInvalidPath, "section %d out of range [0, %d)", i, len(s.sections))
	}
	return s.sections[i]
}

// NumberOfItems returns the cell count of section i.
func (s *Snapshot) NumberOfItems(i int) int { return NumberOfItems(s.Section(i)) }

// NumberOfSections returns the number of sections.
func (s *Snapshot) NumberOfSections() int { return len(s.sections) }

// ItemAt returns the item displayed at path. A section without child items
// is its own item for every one of its cells.
//
// ItemAt panics with an INVALID_PATH error when path does not address a cell.
func (s *Snapshot) ItemAt(path IndexPath) Item {
	section := s.Section(path.Section)
	if items, ok := Children(section); ok {
		if path.Item < 0 || path.Item >= len(items) {
			terrors.Fatal(terrors.ErrCodeInvalidPath, "item %s out of range [0, %d)", path, len(items))
		}
		return items[path.Item]
	}
	if n := NumberOfItems(section); path.Item < 0 || path.Item >= n {
		terrors.Fatal(terrors.ErrCodeInvalidPath, "item %s out of range [0, %d)", path, n)
	}
	return section
}

// HasHeader reports whether section i carries a header.
func (s *Snapshot) HasHeader(i int) bool { return HeaderOf(s.Section(i)) != nil }

// HeaderAt returns the header of section i. It panics with a MISSING_HEADER
// error if the section has none.
func (s *Snapshot) HeaderAt(i int) Item {
	h := HeaderOf(s.Section(i))
	if h == nil {
		terrors.Fatal(terrors.ErrCodeMissingHeader, "no header for section %d", i)
	}
	return h
}

// Paths returns every cell path in order.
func (s *Snapshot) Paths() []IndexPath {
	var paths []IndexPath
	for i, section := range s.sections {
		for j := 0; j < NumberOfItems(section); j++ {
			paths = append(paths, Path(i, j))
		}
	}
	return paths
}

// Static is a State backed by fixed values.
type Static struct {
	Items   []Item
	FocusOn *Focus
}

// Sections implements State.
func (s Static) Sections() []Item { return s.Items }

// Focus implements Focuser.
func (s Static) Focus() *Focus { return s.FocusOn }
