package grid

import "fmt"

// space is an open, half-open column range [from, to) within one row.
type space struct {
	row      int
	from, to int
}

func fullRow(row, columns int) space {
	return space{row: row, from: 0, to: columns}
}

func (s space) String() string { return fmt.Sprintf("%d: %d..<%d", s.row, s.from, s.to) }

func (s space) isEmpty() bool { return s.from >= s.to }

func (s space) contains(o space) bool {
	return o.row == s.row && o.from >= s.from && o.to <= s.to
}

// bisect returns the parts of s not covered by r: s itself when r does not
// touch it, otherwise zero, one or two remainders.
func (s space) bisect(r Rect) []space {
	if s.row < r.Y || s.row >= r.MaxY() {
		return []space{s}
	}
	if r.MaxX() <= s.from || r.X >= s.to {
		return []space{s}
	}

	var parts []space
	if s.from < r.X {
		parts = append(parts, space{row: s.row, from: s.from, to: r.X})
	}
	if r.MaxX() < s.to {
		parts = append(parts, space{row: s.row, from: r.MaxX(), to: s.to})
	}
	return parts
}
