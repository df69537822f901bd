package pipeline

import (
	"github.com/matzehuels/tempo/pkg/component"
	terrors "github.com/matzehuels/tempo/pkg/errors"
	"github.com/matzehuels/tempo/pkg/layout"
	"github.com/matzehuels/tempo/pkg/layout/grid"
	"github.com/matzehuels/tempo/pkg/viewstate"
)

// Pack places tiles in order on a grid of opts.Columns columns and
// projects every placement for a container of opts.Width points. Tiles
// must already be validated against the column count.
func Pack(tiles []grid.Tile, opts PackOptions) *PackResult {
	g := grid.New(opts.Columns)
	proj := grid.NewProjection(opts.Width, opts.Columns, opts.Spacing, layout.DefaultConfig().TileInsets)

	result := &PackResult{
		Columns:     opts.Columns,
		ColumnWidth: proj.ColumnWidth(),
		Tiles:       make([]PackedTile, len(tiles)),
	}
	for i, t := range tiles {
		cell := g.Place(t)
		result.Tiles[i] = PackedTile{Tile: t, Cell: cell, Frame: proj.Project(cell)}
	}
	result.Rows = g.Rows()
	result.ContentHeight = proj.ContentHeight(g.Rows())
	return result
}

// Layout runs one layout pass over snap with the default components and
// returns its cells in path order followed by the headers and the
// backdrop. Configuration errors raised while resolving components or index
// paths are returned instead of panicking.
func Layout(snap *viewstate.Snapshot, opts LayoutOptions) (result *LayoutResult, err error) {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(*terrors.Error); ok {
				err = e
				return
			}
			panic(v)
		}
	}()

	l := layout.New(*opts.Config)
	d := component.NewDelegate(component.Defaults(), snap)
	if !l.Prepare(d, d, opts.Viewport()) {
		return nil, terrors.New(terrors.ErrCodeInvalidInput, "layout pass skipped for viewport %vx%v", opts.Width, opts.Height)
	}

	elements := l.Cells()
	for i := range snap.Len() {
		if h, ok := l.Header(i); ok {
			elements = append(elements, h)
		}
	}
	if b, ok := l.Backdrop(); ok {
		elements = append(elements, b)
	}
	return &LayoutResult{ContentSize: l.ContentSize(), Elements: elements}, nil
}
