// Package geom provides the 2-D points, rectangles and rigid motions shared by
// shapes and bodies.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2-D coordinate.
type Point = r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate rotates p around the origin by deg degrees, counter-clockwise for
// positive angles.
func Rotate(p Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	sin, cos := math.Sincos(Radians(deg))
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Add returns a+b.
func Add(a, b Point) Point {
	return r2.Add(a, b)
}

// Sub returns a-b.
func Sub(a, b Point) Point {
	return r2.Sub(a, b)
}

// Scale returns p scaled by f.
func Scale(f float64, p Point) Point {
	return r2.Scale(f, p)
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
func DistanceSquared(a, b Point) float64 {
	return r2.Norm2(r2.Sub(b, a))
}

// Motion is a rigid motion: a rotation about the origin followed by a
// translation.
type Motion struct {
	Translation Point
	Angle       float64 // degrees
}

// Forward maps a point from the local frame into the parent frame:
// rotate by +Angle, then add Translation.
func (m Motion) Forward(p Point) Point {
	return r2.Add(Rotate(p, m.Angle), m.Translation)
}

// Inverse maps a point from the parent frame into the local frame:
// subtract Translation, then rotate by -Angle.
func (m Motion) Inverse(p Point) Point {
	return Rotate(r2.Sub(p, m.Translation), -m.Angle)
}

// ForwardRect returns the smallest axis-aligned rectangle enclosing r after
// mapping its corners through the motion.
func (m Motion) ForwardRect(r Rect) Rect {
	if r.Empty() {
		return r
	}
	corners := r.Corners()
	out := Rect{Min: m.Forward(corners[0]), Max: m.Forward(corners[0])}
	for _, c := range corners[1:] {
		out = out.Extend(m.Forward(c))
	}
	return out
}
