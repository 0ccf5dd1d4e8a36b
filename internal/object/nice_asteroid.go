package object

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/shape"
)

// Spin applied to a nice asteroid's silhouette, in degrees.
const (
	niceAsteroidInitialSpin = 10.0
	niceAsteroidSpinPerTick = 2.0
)

// NewNiceAsteroid creates a body shaped like the set pixels of mask. The
// silhouette is centered on the body and spins on itself while the body
// flies straight ahead. Its bounding box is anchored at the body position,
// mapped back through the placement so the body's box encloses the rock.
func NewNiceAsteroid(palette Palette, speed float64, mask *shape.Mask) (*Body, error) {
	sil, err := shape.NewSilhouette(mask)
	if err != nil {
		return nil, errors.Wrap(err, "nice asteroid")
	}

	centered := shape.NewTransform(sil, geom.Pt(-float64(mask.Width())/2, -float64(mask.Height())/2), 0)
	spin := shape.NewTransform(centered, geom.Point{}, niceAsteroidInitialSpin)

	b := NewBody(KindNiceAsteroid, spin, palette, func(b *Body, _ *rand.Rand) {
		b.MoveForward(speed)
		spin.SetAngle(spin.Angle() + niceAsteroidSpinPerTick)
	})
	sil.SetAnchor(func() geom.Point {
		p := b.Placement().Inverse(b.Position())
		return centered.Motion().Inverse(spin.Motion().Inverse(p))
	})
	return b, nil
}
