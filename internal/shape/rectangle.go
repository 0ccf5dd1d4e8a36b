package shape

import (
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
)

// Rectangle is an axis-aligned rectangle in the local frame, edges included.
type Rectangle struct {
	Bounds geom.Rect
}

// NewRectangle creates the rectangle spanning min to max.
func NewRectangle(min, max geom.Point) *Rectangle {
	return &Rectangle{Bounds: geom.Rect{Min: min, Max: max}}
}

// Sample draws each axis independently and uniformly between Min and Max.
func (rc *Rectangle) Sample(r *rand.Rand) geom.Point {
	b := rc.Bounds
	return geom.Pt(
		r.Float64()*b.Width()+b.Min.X,
		r.Float64()*b.Height()+b.Min.Y,
	)
}

// Contains reports whether p lies in the closed rectangle.
func (rc *Rectangle) Contains(p geom.Point) bool {
	return rc.Bounds.Contains(p)
}

// BoundingBox returns the rectangle itself.
func (rc *Rectangle) BoundingBox() geom.Rect {
	return rc.Bounds
}
