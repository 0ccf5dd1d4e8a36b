package object

import (
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/shape"
)

func rect(x0, y0, x1, y1 float64) *shape.Rectangle {
	return shape.NewRectangle(geom.Pt(x0, y0), geom.Pt(x1, y1))
}

func moved(s shape.Shape, dx, dy, angle float64) *shape.Transform {
	return shape.NewTransform(s, geom.Pt(dx, dy), angle)
}

// NewSpaceTruck creates a three-block hauler that flies ahead at speed while
// its heading drifts by up to 2 degrees per tick.
func NewSpaceTruck(palette Palette, speed float64) *Body {
	cab := shape.NewUnion(rect(10, -10, 30, 10), rect(0, -3, 10, 3))
	hull := shape.NewUnion(rect(-80, -10, 0, 10), cab)

	return NewBody(KindSpaceTruck, hull, palette, func(b *Body, r *rand.Rand) {
		b.MoveForward(speed)
		b.SetRotation(b.Rotation() + r.Float64()*2)
	})
}

// NewEnterprise creates the starship: a saucer in front, a hull with two
// angled struts and two nacelles behind. Its heading drifts by up to
// speed/10 degrees per tick.
func NewEnterprise(palette Palette, speed float64) *Body {
	nacelles := shape.NewUnion(
		moved(rect(-100, -8, 0, 8), 0, 40, 0),
		moved(rect(-100, -8, 0, 8), 0, -40, 0),
	)
	head := shape.NewUnion(rect(-40, -9, 40, 9), moved(shape.NewDisk(40), 70, 0, 0))
	struts := shape.NewUnion(
		moved(moved(rect(-25, -5, 25, 5), -30, 0, 0), 0, 0, 45),
		moved(moved(rect(-25, -5, 25, 5), -30, 0, 0), 0, 0, -45),
	)
	all := shape.NewUnion(head, shape.NewUnion(struts, nacelles))

	return NewBody(KindEnterprise, all, palette, func(b *Body, r *rand.Rand) {
		b.SetRotation(b.Rotation() + r.Float64()*speed/10)
		b.MoveForward(speed)
	})
}
