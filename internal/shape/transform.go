package shape

import (
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
)

// Transform places an inner shape with a rotation (degrees, counter-clockwise)
// followed by a translation. The angle may be changed in place.
type Transform struct {
	inner  Shape
	motion geom.Motion
}

// NewTransform wraps inner with the given translation and angle in degrees.
// It panics if inner is nil.
func NewTransform(inner Shape, translation geom.Point, angle float64) *Transform {
	return &Transform{
		inner:  mustShape(inner),
		motion: geom.Motion{Translation: translation, Angle: angle},
	}
}

// Inner returns the wrapped shape.
func (t *Transform) Inner() Shape { return t.inner }

// Angle returns the rotation in degrees.
func (t *Transform) Angle() float64 { return t.motion.Angle }

// SetAngle changes the rotation without rebuilding the tree.
func (t *Transform) SetAngle(deg float64) { t.motion.Angle = deg }

// Motion returns the rigid motion from the inner frame to this frame.
func (t *Transform) Motion() geom.Motion { return t.motion }

// Sample draws from the inner shape and maps the point out of its frame.
func (t *Transform) Sample(r *rand.Rand) geom.Point {
	return t.motion.Forward(t.inner.Sample(r))
}

// Contains maps p into the inner frame and delegates.
func (t *Transform) Contains(p geom.Point) bool {
	return t.inner.Contains(t.motion.Inverse(p))
}

// BoundingBox returns the envelope of the inner box after rotation and
// translation.
func (t *Transform) BoundingBox() geom.Rect {
	return t.motion.ForwardRect(t.inner.BoundingBox())
}
