package scene

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/geom"
	"github.com/tomz197/collider/internal/object"
)

// spawnRadius is the distance from the field center at which bodies of the
// same kind are spread out at startup.
const spawnRadius = 200

// Populate adds the bodies described by pop. Each kind is spread evenly on a
// circle around the field center with a random heading; enterprises start at
// the center.
func (s *Scene) Populate(pop config.Population, maskSize int) error {
	r := s.rng

	for i := 0; i < pop.Asteroids; i++ {
		b := object.NewAsteroid(object.AsteroidPalette, r.Float64()*2+2, 10+r.Float64()*40)
		s.place(b, i, pop.Asteroids)
	}

	for i := 0; i < pop.SpaceTrucks; i++ {
		b := object.NewSpaceTruck(object.SpaceTruckPalette, r.Float64()*2+2)
		s.place(b, i, pop.SpaceTrucks)
	}

	for i := 0; i < pop.Enterprises; i++ {
		b := object.NewEnterprise(object.EnterprisePalette, r.Float64()*2+1)
		b.SetPosition(fieldCenter())
		s.Add(b)
	}

	for i := 0; i < pop.NiceAsteroids; i++ {
		mask := object.NewAsteroidMask(r, maskSize)
		b, err := object.NewNiceAsteroid(object.NiceAsteroidPalette, r.Float64()*2+1, mask)
		if err != nil {
			return errors.Wrapf(err, "populate nice asteroid %d", i)
		}
		s.place(b, i, pop.NiceAsteroids)
	}

	s.logger.Info("scene populated",
		zap.Int("bodies", s.Len()),
		zap.Int("asteroids", pop.Asteroids),
		zap.Int("space_trucks", pop.SpaceTrucks),
		zap.Int("enterprises", pop.Enterprises),
		zap.Int("nice_asteroids", pop.NiceAsteroids),
		zap.Int("nb_tested", s.nbTested),
	)
	return nil
}

// FromConfig creates a scene seeded and populated from conf.
func FromConfig(conf *config.Config, logger *zap.Logger) (*Scene, error) {
	s, err := New(conf.NbTested, WithSeed(conf.Seed), WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := s.Populate(conf.Population, conf.MaskSize); err != nil {
		return nil, err
	}
	return s, nil
}

// place puts b at slot i of n on the spawn circle with a random heading.
func (s *Scene) place(b *object.Body, i, n int) {
	angle := float64(i) * 2 * math.Pi / float64(n)
	b.SetRotation(s.rng.Float64() * 360)
	b.SetPosition(geom.Add(fieldCenter(), geom.Pt(math.Sin(angle)*spawnRadius, math.Cos(angle)*spawnRadius)))
	s.Add(b)
}

func fieldCenter() geom.Point {
	return geom.Pt(config.FieldWidth/2, config.FieldHeight/2)
}
