package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestRotateQuarterTurn(t *testing.T) {
	p := Rotate(Pt(1, 0), 90)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 1, p.Y, eps)

	p = Rotate(Pt(1, 0), -90)
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, -1, p.Y, eps)
}

func TestMotionRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		m := Motion{
			Translation: Pt(r.Float64()*200-100, r.Float64()*200-100),
			Angle:       r.Float64()*720 - 360,
		}
		p := Pt(r.Float64()*1000-500, r.Float64()*1000-500)

		back := m.Forward(m.Inverse(p))
		assert.InDelta(t, p.X, back.X, 1e-7)
		assert.InDelta(t, p.Y, back.Y, 1e-7)

		back = m.Inverse(m.Forward(p))
		assert.InDelta(t, p.X, back.X, 1e-7)
		assert.InDelta(t, p.Y, back.Y, 1e-7)
	}
}

func TestMotionOrder(t *testing.T) {
	// Rotation happens about the local origin, before the translation.
	m := Motion{Translation: Pt(10, 0), Angle: 90}
	p := m.Forward(Pt(1, 0))
	assert.InDelta(t, 10, p.X, eps)
	assert.InDelta(t, 1, p.Y, eps)

	q := m.Inverse(Pt(10, 1))
	assert.InDelta(t, 1, q.X, eps)
	assert.InDelta(t, 0, q.Y, eps)
}

func TestForwardRectEnvelope(t *testing.T) {
	m := Motion{Angle: 45}
	box := m.ForwardRect(R(-1, -1, 1, 1))
	assert.InDelta(t, -math.Sqrt2, box.Min.X, eps)
	assert.InDelta(t, -math.Sqrt2, box.Min.Y, eps)
	assert.InDelta(t, math.Sqrt2, box.Max.X, eps)
	assert.InDelta(t, math.Sqrt2, box.Max.Y, eps)

	m = Motion{Translation: Pt(5, 5)}
	assert.Equal(t, R(4, 4, 6, 6), m.ForwardRect(R(-1, -1, 1, 1)))
}

func TestRect(t *testing.T) {
	r := R(0, 0, 10, 5)
	require.False(t, r.Empty())
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 5.0, r.Height())

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Pt(5, 2), true},
		{"min corner", Pt(0, 0), true},
		{"max corner", Pt(10, 5), true},
		{"left", Pt(-0.1, 2), false},
		{"above", Pt(5, 5.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := R(0, 0, 1, 1)
	b := R(5, -2, 6, 0)
	assert.Equal(t, R(0, -2, 6, 1), a.Union(b))
	assert.Equal(t, a, a.Union(R(1, 1, 0, 0)))
	assert.Equal(t, b, R(1, 1, 0, 0).Union(b))
	assert.Equal(t, R(-3, 0, 1, 4), a.Extend(Pt(-3, 4)))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Pt(0, 0), Pt(3, 4)))
	assert.Equal(t, 25.0, DistanceSquared(Pt(1, 1), Pt(4, 5)))
}
