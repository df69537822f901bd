// Package grid packs rectangular tiles into a fixed-column grid and projects
// the resulting cell rectangles onto absolute coordinates.
//
// # Packing
//
// [Grid] is a shelf-style bin packer. Tiles are placed one at a time, in
// call order, and each placement is final. The packer keeps a ledger of open
// row segments left behind by tiles narrower than the grid and back-fills
// those holes with later tiles before growing the grid:
//
//	g := grid.New(12)
//	g.Place(grid.Tile{Width: 12, Height: 5}) // {0 0 12 5}
//	g.Place(grid.Tile{Width: 6, Height: 5})  // {0 5 6 5}
//	g.Place(grid.Tile{Width: 6, Height: 5})  // {6 5 6 5}
//
// A Grid is not safe for concurrent use. Layout passes create a fresh Grid
// for every section they lay out; no state survives between passes.
//
// # Projection
//
// [Projection] is a pure mapping from grid cells to absolute rectangles for a
// given container width, column count, spacing and insets. Cells are square:
// the row height equals the column width.
package grid
