// Package object provides the bodies moving through the simulated field.
package object

import (
	"image/color"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/shape"
)

// ErrNoShape is the panic value raised when a body without a shape tree is
// queried.
var ErrNoShape = errors.New("object: body has no shape")

// State is the collision status of a body.
type State int

const (
	StateClear     State = iota // Overlaps no other body
	StateColliding              // Overlaps at least one other body
)

func (s State) String() string {
	switch s {
	case StateClear:
		return "clear"
	case StateColliding:
		return "colliding"
	default:
		return "unknown"
	}
}

// Palette maps collision states to display colors. The core never looks at
// the colors.
type Palette struct {
	Clear     color.RGBA
	Colliding color.RGBA
}

// Color returns the color for state s.
func (p Palette) Color(s State) color.RGBA {
	if s == StateColliding {
		return p.Colliding
	}
	return p.Clear
}

// World is what a body needs from its scene while advancing.
type World interface {
	// Rand returns the shared random source.
	Rand() *rand.Rand
	// Collides reports whether b overlaps any other body of the world.
	Collides(b *Body) bool
}

// MotionFunc moves a body by one tick.
type MotionFunc func(b *Body, r *rand.Rand)

// Body is a shape tree placed in the world. Its placement acts as an
// implicit outermost transform: rotate by Rotation, then translate by
// Position.
type Body struct {
	id       uuid.UUID
	kind     Kind
	shape    shape.Shape
	position geom.Point
	rotation float64 // degrees
	palette  Palette
	state    State
	motion   MotionFunc
}

// NewBody creates a body at the origin with no rotation. motion may be nil
// for a body that never moves on its own.
func NewBody(kind Kind, s shape.Shape, palette Palette, motion MotionFunc) *Body {
	return &Body{
		id:      uuid.New(),
		kind:    kind,
		shape:   s,
		palette: palette,
		motion:  motion,
	}
}

// ID returns the body's unique identifier.
func (b *Body) ID() uuid.UUID { return b.id }

// Kind returns the body kind.
func (b *Body) Kind() Kind { return b.kind }

// Shape returns the owned shape tree.
func (b *Body) Shape() shape.Shape { return b.shape }

// Position returns the world position.
func (b *Body) Position() geom.Point { return b.position }

// SetPosition moves the body to p.
func (b *Body) SetPosition(p geom.Point) { b.position = p }

// Rotation returns the heading in degrees.
func (b *Body) Rotation() float64 { return b.rotation }

// SetRotation sets the heading in degrees.
func (b *Body) SetRotation(deg float64) { b.rotation = deg }

// State returns the collision state computed by the last advance.
func (b *Body) State() State { return b.state }

// Color returns the display color for the current state.
func (b *Body) Color() color.RGBA { return b.palette.Color(b.state) }

// Placement returns the rigid motion from the shape frame to the world.
func (b *Body) Placement() geom.Motion {
	return geom.Motion{Translation: b.position, Angle: b.rotation}
}

// MoveForward translates the body by distance along its heading.
func (b *Body) MoveForward(distance float64) {
	b.position = geom.Add(b.position, geom.Rotate(geom.Pt(distance, 0), b.rotation))
}

// Advance runs one tick: the motion rule, the wrap-around correction and
// the collision classification against w. A non-positive step is a no-op.
func (b *Body) Advance(step int, w World) {
	if step <= 0 {
		return
	}
	if b.motion != nil {
		b.motion(b, w.Rand())
	}
	b.position = Wrap(b.position)

	if w.Collides(b) {
		b.state = StateColliding
	} else {
		b.state = StateClear
	}
}

// Sample returns a world point drawn from the body's shape.
func (b *Body) Sample(r *rand.Rand) geom.Point {
	return b.Placement().Forward(b.mustShape().Sample(r))
}

// Contains reports whether world point p lies in the body.
func (b *Body) Contains(p geom.Point) bool {
	return b.mustShape().Contains(b.Placement().Inverse(p))
}

// BoundingBox returns the world envelope of the shape's bounding box.
func (b *Body) BoundingBox() geom.Rect {
	return b.Placement().ForwardRect(b.mustShape().BoundingBox())
}

func (b *Body) mustShape() shape.Shape {
	if b.shape == nil {
		panic(ErrNoShape)
	}
	return b.shape
}

var _ shape.Shape = (*Body)(nil)
