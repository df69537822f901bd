package layout

import (
	"github.com/matzehuels/tempo/pkg/geom"
	"github.com/matzehuels/tempo/pkg/layout/grid"
)

// TileEntry describes one cell of a grid section.
type TileEntry struct {
	Tile    grid.Tile
	Spacing float64
	Insets  geom.Insets
	Padding geom.Insets
}

// PlaceTiles packs entries into a fresh twelve column grid of the given
// width, in order, and returns their frames relative to the section origin.
// Spacing and insets are read per entry, so neighbouring tiles may project
// differently if their entries disagree.
func PlaceTiles(entries []TileEntry, width float64) []Placement {
	g := grid.New(grid.DefaultColumns)
	out := make([]Placement, len(entries))
	for i, e := range entries {
		p := grid.NewProjection(width, g.Columns(), e.Spacing, e.Insets)
		out[i] = Placement{
			Frame:    p.Project(g.Place(e.Tile)),
			Position: Solo,
			Style:    StyleBorderless,
			Padding:  e.Padding,
		}
	}
	return out
}
