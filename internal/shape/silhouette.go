package shape

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/tomz197/collider/internal/geom"
)

// maxSilhouetteTrials bounds the rejection loop of Silhouette.Sample. Past it
// the sample is drawn from the index of set pixels, which is also uniform.
const maxSilhouetteTrials = 1000

// Anchor returns the owning body's world position expressed in the
// silhouette's local frame.
type Anchor func() geom.Point

// Silhouette is the region covered by the set pixels of a mask. The mask
// occupies [0, width) x [0, height) of the local frame.
//
// Unlike the other primitives its bounding box is not purely local: it is
// the mask extent centered on the Anchor, which bodies bind to their current
// world position mapped back through their placement. Without an anchor the
// extent starts at the local origin.
type Silhouette struct {
	mask   *Mask
	set    []int
	anchor Anchor
}

// NewSilhouette creates the region of m's set pixels. The mask is copied, so
// later changes to m do not affect the region. It returns ErrEmptyRegion if no
// pixel is set.
func NewSilhouette(m *Mask) (*Silhouette, error) {
	if m == nil {
		return nil, errors.Wrap(ErrEmptyRegion, "nil mask")
	}
	m = m.Clone()
	set := m.setIndex()
	if len(set) == 0 {
		return nil, errors.Wrapf(ErrEmptyRegion, "mask %dx%d has no set pixel", m.width, m.height)
	}
	return &Silhouette{mask: m, set: set}, nil
}

// SetAnchor sets the function locating the bounding box.
func (s *Silhouette) SetAnchor(a Anchor) { s.anchor = a }

// Sample returns the integer coordinates of a uniformly chosen set pixel.
func (s *Silhouette) Sample(r *rand.Rand) geom.Point {
	w, h := s.mask.width, s.mask.height
	for i := 0; i < maxSilhouetteTrials; i++ {
		x := int(float64(w) * r.Float64())
		y := int(float64(h) * r.Float64())
		if s.mask.At(x, y) {
			return geom.Pt(float64(x), float64(y))
		}
	}
	idx := s.set[r.IntN(len(s.set))]
	return geom.Pt(float64(idx%w), float64(idx/w))
}

// Contains reports whether p falls on a set pixel.
func (s *Silhouette) Contains(p geom.Point) bool {
	x, y := math.Floor(p.X), math.Floor(p.Y)
	if x < 0 || y < 0 || x >= float64(s.mask.width) || y >= float64(s.mask.height) {
		return false
	}
	return s.mask.At(int(x), int(y))
}

// BoundingBox returns the mask extent centered on the anchor.
func (s *Silhouette) BoundingBox() geom.Rect {
	w, h := float64(s.mask.width), float64(s.mask.height)
	box := geom.R(0, 0, w, h)
	if s.anchor != nil {
		box = box.Translate(geom.Sub(s.anchor(), geom.Pt(w/2, h/2)))
	}
	return box
}
