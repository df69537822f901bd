package layout

import "github.com/matzehuels/tempo/pkg/geom"

// ListEntry describes one cell of a list section.
type ListEntry struct {
	Style ItemStyle
	// Break forces a visual break after this cell; the next cell is
	// detached.
	Break bool
	// Height measures the cell for a given width. Nil means zero height.
	Height          func(width float64) float64
	X, Width        float64
	SeparatorInsets geom.Insets
}

// Placement is the computed geometry of one cell.
type Placement struct {
	Frame           geom.Rect
	Position        Position
	Style           ItemStyle
	SeparatorInsets geom.Insets
	Padding         geom.Insets
}

// PlaceList stacks entries vertically starting at y = 0 and assigns each its
// grouping position.
//
// A cell is detached when its style is StyleDetached or when the cell before
// it asks for a break. A cell is solo if it is the only one, if it is
// detached itself, or if its neighbours on every side it has are detached.
// Otherwise it is top when it is first or follows a detached cell, bottom
// when it is last or precedes a detached cell, and middle in every other
// case. A DetachMargin gap is
// inserted above a detached cell that is not first and above a cell that
// follows a detached one. Rule cells are one unit taller for their hairline.
func PlaceList(entries []ListEntry) []Placement {
	n := len(entries)
	out := make([]Placement, n)
	var y float64

	detachedAt := func(i int) bool {
		return entries[i].Style == StyleDetached || (i > 0 && entries[i-1].Break)
	}

	for i, e := range entries {
		first, last := i == 0, i == n-1
		middle := !first && !last

		detached := detachedAt(i)
		prevDetached := !first && detachedAt(i-1)
		nextDetached := !last && detachedAt(i+1)

		solo := n == 1 || detached ||
			(first && nextDetached) ||
			(last && prevDetached) ||
			(middle && prevDetached && nextDetached)

		var pos Position
		switch {
		case solo:
			pos = Solo
		case first || (middle && prevDetached):
			pos = Top
		case last || (middle && nextDetached):
			pos = Bottom
		default:
			pos = Middle
		}

		var top float64
		if (!first && detached) || (!detached && prevDetached) {
			top = DetachMargin.Points()
		}

		var height float64
		if e.Height != nil {
			height = e.Height(e.Width)
		}
		if e.Style == StyleRule {
			height++
		}

		out[i] = Placement{
			Frame:           geom.Rect{X: e.X, Y: y + top, Width: e.Width, Height: height},
			Position:        pos,
			Style:           e.Style,
			SeparatorInsets: e.SeparatorInsets,
		}
		y += height + top
	}
	return out
}
