// Package shape implements the shape algebra used for collision detection.
//
// A shape is a region of the plane expressed in its own local frame. Leaf
// primitives (Disk, Rectangle, Silhouette) are combined into trees with Union
// and Transform. Every shape can draw a random point from its area and
// answer point containment, which is all the collision oracle needs.
//
// Trees are strictly owned: a node belongs to exactly one parent. Sampling a
// Union mutates its alternation flag, so a tree must not be sampled from
// several goroutines at once.
package shape

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/tomz197/collider/internal/geom"
)

// ErrEmptyRegion is returned when a shape would have no point to sample.
var ErrEmptyRegion = errors.New("shape: empty region")

// ErrNilShape is the panic value used when a combinator is given a nil child.
var ErrNilShape = errors.New("shape: nil child shape")

// Shape is a region of the plane in its local coordinate frame.
type Shape interface {
	// Sample returns a point drawn from the shape's area using r.
	Sample(r *rand.Rand) geom.Point
	// Contains reports whether p lies inside the shape.
	Contains(p geom.Point) bool
	// BoundingBox returns an axis-aligned rectangle enclosing the shape.
	BoundingBox() geom.Rect
}

func mustShape(s Shape) Shape {
	if s == nil {
		panic(ErrNilShape)
	}
	return s
}
