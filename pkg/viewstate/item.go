package viewstate

// Item is a unit of displayable data with a stable identifier.
//
// ID must be stable across snapshots for the same logical entity and unique
// among its siblings. Equal reports structural equality and must return false
// for items of a different dynamic type.
type Item interface {
	ID() string
	Equal(other Item) bool
}

// Parent is an item with child items. Presence of the method, not the length
// of the returned slice, is what makes an item a parent.
type Parent interface {
	Item
	Items() []Item
}

// Counter is an item that reports its own leaf count.
type Counter interface {
	Item
	NumberOfItems() int
}

// Sectioned is a section that may carry a header. A nil header means the
// section has none.
type Sectioned interface {
	Item
	Header() Item
}

// Kinded is an item that names the component kind that renders it.
type Kinded interface {
	Kind() string
}

// Children returns the child items of it and whether it is a parent.
func Children(it Item) ([]Item, bool) {
	p, ok := it.(Parent)
	if !ok {
		return nil, false
	}
	return p.Items(), true
}

// NumberOfItems returns the number of cells it occupies: the child count for
// parents, the reported count for counters and 1 otherwise.
func NumberOfItems(it Item) int {
	if items, ok := Children(it); ok {
		return len(items)
	}
	if c, ok := it.(Counter); ok {
		return c.NumberOfItems()
	}
	return 1
}

// HeaderOf returns the header of a section, or nil.
func HeaderOf(it Item) Item {
	if s, ok := it.(Sectioned); ok {
		return s.Header()
	}
	return nil
}

// KindOf returns the declared component kind of it, or "".
func KindOf(it Item) string {
	if k, ok := it.(Kinded); ok {
		return k.Kind()
	}
	return ""
}

// EqualItems reports whether a and b have the same length and pairwise
// equal elements.
func EqualItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalItem(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
