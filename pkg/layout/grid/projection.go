package grid

import (
	"github.com/matzehuels/tempo/pkg/geom"
)

// Projection maps grid cells onto absolute coordinates for a container of a
// fixed width. The zero value is not usable; create one with NewProjection.
type Projection struct {
	columns     int
	spacing     float64
	insets      geom.Insets
	columnWidth float64
}

// NewProjection returns a projection for a container of the given width.
// Column width is the content width (width minus horizontal insets) less the
// interior spacing, divided evenly between columns.
func NewProjection(width float64, columns int, spacing float64, insets geom.Insets) Projection {
	columns = max(columns, 1)
	content := width - insets.Horizontal() - float64(columns-1)*spacing
	return Projection{
		columns:     columns,
		spacing:     spacing,
		insets:      insets,
		columnWidth: max(content, 0) / float64(columns),
	}
}

// Columns returns the column count.
func (p Projection) Columns() int { return p.columns }

// ColumnWidth returns the width of a single column.
func (p Projection) ColumnWidth() float64 { return p.columnWidth }

// RowHeight returns the height of a single row. Cells are square.
func (p Projection) RowHeight() float64 { return p.columnWidth }

// WidthForColumns returns the width of a span of n columns, including the
// spacing between them.
func (p Projection) WidthForColumns(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*p.columnWidth + float64(n-1)*p.spacing
}

// PositionForColumn returns the x coordinate of the left edge of column c.
func (p Projection) PositionForColumn(c int) float64 {
	return p.insets.Left + float64(c)*(p.columnWidth+p.spacing)
}

// HeightForRows returns the height of a span of n rows, including the
// spacing between them.
func (p Projection) HeightForRows(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*p.RowHeight() + float64(n-1)*p.spacing
}

// PositionForRow returns the y coordinate of the top edge of row r.
func (p Projection) PositionForRow(r int) float64 {
	return p.insets.Top + float64(r)*(p.RowHeight()+p.spacing)
}

// Project returns the absolute rectangle covered by r, with every edge
// rounded to a whole unit.
func (p Projection) Project(r Rect) geom.Rect {
	return geom.Rect{
		X:      p.PositionForColumn(r.X),
		Y:      p.PositionForRow(r.Y),
		Width:  p.WidthForColumns(r.Width),
		Height: p.HeightForRows(r.Height),
	}.Normalized()
}

// ContentHeight returns the height needed to show rows rows, including the
// top and bottom insets.
func (p Projection) ContentHeight(rows int) float64 {
	return p.insets.Vertical() + p.HeightForRows(rows)
}
