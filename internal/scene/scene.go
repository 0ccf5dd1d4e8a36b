// Package scene holds the bodies of a simulation and decides, by random
// sampling, which of them overlap.
//
// A Scene is single-threaded: Tick, Intersect and Collides must not run
// concurrently, since sampling mutates shape state and the shared random
// source.
package scene

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tomz197/collider/internal/object"
)

// ErrInvalidBudget is returned when the number of sampling trials is not
// positive.
var ErrInvalidBudget = errors.New("scene: sampling budget must be positive")

// Scene is the registry of bodies and the collision oracle.
type Scene struct {
	bodies   []*object.Body
	nbTested int
	rng      *rand.Rand
	logger   *zap.Logger
	ticks    uint64
}

// Option configures a Scene.
type Option func(*Scene)

// WithRand sets the random source shared by all sampling.
func WithRand(r *rand.Rand) Option {
	return func(s *Scene) { s.rng = r }
}

// WithSeed seeds the random source. Seed 0 seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(s *Scene) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the logger used to report collision state changes. A nil
// logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty scene testing nbTested random points per pair.
func New(nbTested int, opts ...Option) (*Scene, error) {
	if nbTested <= 0 {
		return nil, errors.Wrapf(ErrInvalidBudget, "got %d", nbTested)
	}
	s := &Scene{
		nbTested: nbTested,
		logger:   zap.NewNop(),
	}
	WithSeed(0)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NbTested returns the number of trials per pairwise test.
func (s *Scene) NbTested() int { return s.nbTested }

// Rand returns the shared random source.
func (s *Scene) Rand() *rand.Rand { return s.rng }

// Add registers b. Bodies are advanced in registration order.
func (s *Scene) Add(b *object.Body) {
	s.bodies = append(s.bodies, b)
}

// Bodies returns the registered bodies in registration order. The slice
// must not be modified.
func (s *Scene) Bodies() []*object.Body { return s.bodies }

// Len returns the number of registered bodies.
func (s *Scene) Len() int { return len(s.bodies) }

// Ticks returns the number of completed ticks.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Intersect reports whether a and b overlap. Each of the nbTested trials
// samples a point of a and tests it against b, then a point of b against a,
// stopping at the first hit. A true result is always backed by a common
// point; a false one may miss a small overlap.
func (s *Scene) Intersect(a, b *object.Body) bool {
	for i := 0; i < s.nbTested; i++ {
		if b.Contains(a.Sample(s.rng)) || a.Contains(b.Sample(s.rng)) {
			return true
		}
	}
	return false
}

// Collides reports whether b overlaps any other registered body. Bodies are
// compared by identity.
func (s *Scene) Collides(b *object.Body) bool {
	for _, other := range s.bodies {
		if other != b && s.Intersect(other, b) {
			return true
		}
	}
	return false
}

// Advance advances every body in registration order. Each body is
// classified against the others' positions at the time of its own advance,
// not against a synchronized snapshot. A non-positive step changes nothing.
func (s *Scene) Advance(step int) {
	if step <= 0 {
		return
	}
	for _, b := range s.bodies {
		before := b.State()
		b.Advance(step, s)
		if after := b.State(); after != before {
			s.logger.Debug("collision state changed",
				zap.Stringer("body", b.ID()),
				zap.Stringer("kind", b.Kind()),
				zap.Stringer("state", after),
				zap.Uint64("tick", s.ticks+1),
			)
		}
	}
	s.ticks++
}

// Tick advances the simulation by one step.
func (s *Scene) Tick() {
	s.Advance(1)
}

// Colliding returns the number of bodies currently in collision.
func (s *Scene) Colliding() int {
	n := 0
	for _, b := range s.bodies {
		if b.State() == object.StateColliding {
			n++
		}
	}
	return n
}

var _ object.World = (*Scene)(nil)
