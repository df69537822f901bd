// Package geom provides the floating point geometry shared by the layout
// engine and the rendering surface.
//
// All coordinates are in layout units (points on a phone, cells in a
// terminal). The origin is the top-left corner and y grows downward.
package geom

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// MidX returns the horizontal center point of the rectangle.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical center point of the rectangle.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Offset returns r translated by dx and dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns r shrunk by the given insets on each side.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersects reports whether r and o overlap with a non-zero area.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() < o.MaxX() && o.MinX() < r.MaxX() &&
		r.MinY() < o.MaxY() && o.MinY() < r.MaxY()
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MaxX() <= r.MaxX() &&
		o.MinY() >= r.MinY() && o.MaxY() <= r.MaxY()
}

// Normalized rounds each of the four edges to the nearest whole unit and
// rebuilds the size from the rounded edges. Rounding the edges rather than
// origin and size keeps adjacent rectangles seamless.
func (r Rect) Normalized() Rect {
	minX := math.RoundToEven(r.MinX())
	minY := math.RoundToEven(r.MinY())
	maxX := math.RoundToEven(r.MaxX())
	maxY := math.RoundToEven(r.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Insets describes the distance from each edge of a rectangle.
type Insets struct {
	Top    float64 `toml:"top" json:"top"`
	Left   float64 `toml:"left" json:"left"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Right  float64 `toml:"right" json:"right"`
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Size is a width and height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool { return s.Width == 0 || s.Height == 0 }
