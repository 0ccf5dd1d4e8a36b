package shape

import (
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
)

// Union is the set union of two shapes.
//
// Sample alternates between the children on successive calls, left first,
// regardless of their areas. The alternation flag is the only mutable state
// and it never affects Contains.
type Union struct {
	left, right Shape
	flip        bool
}

// NewUnion creates the union of a and b. It panics if either is nil.
func NewUnion(a, b Shape) *Union {
	return &Union{left: mustShape(a), right: mustShape(b)}
}

// Sample draws from the left child on even calls and the right child on odd
// calls.
func (u *Union) Sample(r *rand.Rand) geom.Point {
	u.flip = !u.flip
	if u.flip {
		return u.left.Sample(r)
	}
	return u.right.Sample(r)
}

// Contains reports whether p lies in either child.
func (u *Union) Contains(p geom.Point) bool {
	return u.left.Contains(p) || u.right.Contains(p)
}

// BoundingBox returns the smallest rectangle covering both children's boxes.
func (u *Union) BoundingBox() geom.Rect {
	return u.left.BoundingBox().Union(u.right.BoundingBox())
}
