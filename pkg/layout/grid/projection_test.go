package grid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tempo/pkg/geom"
)

func TestProjection(t *testing.T) {
	insets := geom.Insets{Left: 2, Right: 2}
	p := NewProjection(364, 12, 0, insets)

	if got := p.ColumnWidth(); got != 30 {
		t.Fatalf("ColumnWidth() = %v, want 30", got)
	}
	if got := p.RowHeight(); got != p.ColumnWidth() {
		t.Errorf("RowHeight() = %v, want %v", got, p.ColumnWidth())
	}

	tests := []struct {
		name string
		rect Rect
		want geom.Rect
	}{
		{"full width", Rect{0, 0, 12, 5}, geom.Rect{X: 2, Y: 0, Width: 360, Height: 150}},
		{"left half", Rect{0, 5, 6, 5}, geom.Rect{X: 2, Y: 150, Width: 180, Height: 150}},
		{"right half", Rect{6, 5, 6, 5}, geom.Rect{X: 182, Y: 150, Width: 180, Height: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, p.Project(tt.rect)); diff != "" {
				t.Errorf("Project(%+v) mismatch (-want +got):\n%s", tt.rect, diff)
			}
		})
	}
}

func TestProjectionSpacing(t *testing.T) {
	p := NewProjection(100, 4, 4, geom.Insets{Top: 10, Left: 10, Right: 10})

	// (100 - 20 - 3*4) / 4
	if got := p.ColumnWidth(); got != 17 {
		t.Fatalf("ColumnWidth() = %v, want 17", got)
	}
	if got := p.WidthForColumns(2); got != 38 {
		t.Errorf("WidthForColumns(2) = %v, want 38", got)
	}
	if got := p.PositionForColumn(3); got != 73 {
		t.Errorf("PositionForColumn(3) = %v, want 73", got)
	}
	if got := p.PositionForRow(1); got != 31 {
		t.Errorf("PositionForRow(1) = %v, want 31", got)
	}
	if got := p.WidthForColumns(0); got != 0 {
		t.Errorf("WidthForColumns(0) = %v, want 0", got)
	}

	// Adjacent tiles share an edge.
	left := p.Project(Rect{0, 0, 2, 1})
	right := p.Project(Rect{2, 0, 2, 1})
	if got := right.MinX() - left.MaxX(); got != 4 {
		t.Errorf("gap between adjacent tiles = %v, want 4", got)
	}
}

func TestProjectionEdgesRounded(t *testing.T) {
	p := NewProjection(100, 3, 0, geom.Insets{})
	var prev geom.Rect
	for c := 0; c < 3; c++ {
		r := p.Project(Rect{c, 0, 1, 1})
		for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
			if v != math.Trunc(v) {
				t.Fatalf("Project(column %d) = %+v, want whole units", c, r)
			}
		}
		if c > 0 && r.MinX() != prev.MaxX() {
			t.Errorf("column %d starts at %v, previous ends at %v", c, r.MinX(), prev.MaxX())
		}
		prev = r
	}
	if prev.MaxX() != 100 {
		t.Errorf("last column ends at %v, want 100", prev.MaxX())
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	for _, width := range []float64{320, 360, 375, 414, 1000, 1023} {
		for _, columns := range []int{1, 3, 4, 12} {
			for w := 1; w <= columns; w++ {
				g := New(columns)
				r := g.Place(Tile{Width: w, Height: 1})
				p := NewProjection(width, columns, 0, geom.Insets{})
				got := p.Project(r).Width
				want := float64(w) * width / float64(columns)
				if math.Abs(got-want) > 1 {
					t.Errorf("width=%v columns=%d tile=%d: Project().Width = %v, want %v", width, columns, w, got, want)
				}
			}
		}
	}
}

func TestProjectionContentHeight(t *testing.T) {
	p := NewProjection(120, 12, 0, geom.Insets{Top: 4, Bottom: 6})
	if got := p.ContentHeight(3); got != 40 {
		t.Errorf("ContentHeight(3) = %v, want 40", got)
	}
}
