package grid

import (
	"fmt"

	terrors "github.com/matzehuels/tempo/pkg/errors"
)

// DefaultColumns is the column count used by grid sections.
const DefaultColumns = 12

// Tile is the footprint of an item in column and row units.
type Tile struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String returns the tile as "WxH".
func (t Tile) String() string { return fmt.Sprintf("%dx%d", t.Width, t.Height) }

// Rect is a placed tile in column and row units.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MaxX returns the first column to the right of the rectangle.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the first row below the rectangle.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Grid places tiles into a fixed number of columns.
type Grid struct {
	columns int
	rows    int
	spaces  []space
}

// New returns an empty grid with the given number of columns.
// It panics if columns is not positive.
func New(columns int) *Grid {
	if err := terrors.ValidateColumns(columns); err != nil {
		panic(err)
	}
	return &Grid{columns: columns}
}

// Columns returns the fixed column count.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the number of rows used so far. It never decreases.
func (g *Grid) Rows() int { return g.rows }

// Place finds a position for tile and returns the rectangle it occupies.
//
// Open spaces are tried in the order they were created. The tile goes to the
// leftmost column of the first space where its whole footprint is free; rows
// the grid has not reached yet count as free. When no space fits, the tile
// starts a new shelf at column 0 below everything placed so far.
//
// Place panics if the tile has a non-positive dimension or is wider than the
// grid.
func (g *Grid) Place(tile Tile) Rect {
	if err := terrors.ValidateTile(tile.Width, tile.Height, g.columns); err != nil {
		panic(err)
	}

	for _, s := range g.spaces {
		column, ok := g.fit(tile, s)
		if !ok {
			continue
		}

		rect := Rect{X: column, Y: s.row, Width: tile.Width, Height: tile.Height}

		next := make([]space, 0, len(g.spaces)+tile.Height)
		for _, open := range g.spaces {
			next = append(next, open.bisect(rect)...)
		}

		// The tile may hang below the current bottom; open up what is left
		// of those new rows.
		if tile.Width < g.columns && g.rows < rect.MaxY() {
			for row := g.rows; row < rect.MaxY(); row++ {
				next = append(next, fullRow(row, g.columns).bisect(rect)...)
			}
		}

		g.rows = max(g.rows, rect.MaxY())
		g.spaces = next
		return rect
	}

	if tile.Width < g.columns {
		for row := g.rows; row < g.rows+tile.Height; row++ {
			g.spaces = append(g.spaces, space{row: row, from: tile.Width, to: g.columns})
		}
	}

	rect := Rect{X: 0, Y: g.rows, Width: tile.Width, Height: tile.Height}
	g.rows += tile.Height
	return rect
}

// fit returns the leftmost column of s at which tile fits.
func (g *Grid) fit(tile Tile, s space) (int, bool) {
	for column := s.from; column+tile.Width <= s.to; column++ {
		if g.free(tile, s.row, column) {
			return column, true
		}
	}
	return 0, false
}

// free reports whether tile can be anchored at (column, row).
func (g *Grid) free(tile Tile, row, column int) bool {
	for r := row; r < row+tile.Height; r++ {
		if r >= g.rows {
			break
		}
		need := space{row: r, from: column, to: column + tile.Width}
		if !g.covered(need) {
			return false
		}
	}
	return true
}

func (g *Grid) covered(need space) bool {
	for _, s := range g.spaces {
		if s.contains(need) {
			return true
		}
	}
	return false
}
