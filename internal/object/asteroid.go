package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/shape"
)

// NewAsteroid creates a disk of the given radius that flies straight ahead
// at speed units per tick.
func NewAsteroid(palette Palette, speed, radius float64) *Body {
	return NewBody(KindAsteroid, shape.NewDisk(radius), palette, func(b *Body, _ *rand.Rand) {
		b.MoveForward(speed)
	})
}

// NewAsteroidMask rasterizes an irregular rock into a size x size mask.
func NewAsteroidMask(r *rand.Rand, size int) *shape.Mask {
	m := shape.NewMask(size, size)
	if size <= 0 {
		return m
	}

	// Vertex distances vary by ±30% around the base radius; the base leaves
	// room for the largest bump.
	center := float64(size) / 2
	base := center / 1.3
	numVerts := 8 + r.IntN(5)
	points := make([]geom.Point, numVerts)
	for i := range points {
		angle := float64(i) * 2 * math.Pi / float64(numVerts)
		dist := base * (0.7 + r.Float64()*0.6)
		points[i] = geom.Pt(center+math.Cos(angle)*dist, center+math.Sin(angle)*dist)
	}

	m.FillPolygon(points)
	return m
}
