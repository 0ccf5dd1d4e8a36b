package geom

import "math"

// Rect is an axis-aligned rectangle given by its minimum and maximum corners.
// A rectangle whose Min exceeds its Max on either axis is empty.
type Rect struct {
	Min, Max Point
}

// R is shorthand for Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// Empty reports whether the rectangle covers no point.
func (r Rect) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the extent along x (negative for an inverted rectangle).
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the extent along y (negative for an inverted rectangle).
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies in r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Translate returns r shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: Add(r.Min, d), Max: Add(r.Max, d)}
}

// Corners returns the four corners, counter-clockwise from Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Extend returns the smallest rectangle covering r and p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle covering both r and o. Empty operands
// are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}
