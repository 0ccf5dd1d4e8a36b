package shape

import (
	"image"
	"math"
	"sort"

	"github.com/tomz197/collider/internal/geom"
)

// Mask is a binary raster. Pixel (x, y) covers [x, x+1) x [y, y+1).
type Mask struct {
	width  int
	height int
	pixels []bool // Flat slice: [y * width + x]
}

// NewMask creates a cleared mask of the given size. Negative sizes are
// treated as zero.
func NewMask(width, height int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// MaskFromImage builds a mask whose pixels are set where the image alpha is
// at least threshold (0-255). The image bounds are shifted so that the mask
// starts at (0, 0).
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	limit := uint32(threshold) * 0x101
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a > 0 && a >= limit {
				m.pixels[y*m.width+x] = true
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Valid reports whether (x, y) is inside the mask.
func (m *Mask) Valid(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At reports whether pixel (x, y) is set. Out of range pixels are unset.
func (m *Mask) At(x, y int) bool {
	return m.Valid(x, y) && m.pixels[y*m.width+x]
}

// Set sets or clears pixel (x, y). Out of range pixels are ignored.
func (m *Mask) Set(x, y int, on bool) {
	if m.Valid(x, y) {
		m.pixels[y*m.width+x] = on
	}
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, on := range m.pixels {
		if on {
			n++
		}
	}
	return n
}

// FillPolygon sets every pixel whose center lies inside the polygon, using a
// scanline fill.
func (m *Mask) FillPolygon(points []geom.Point) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var intersections []float64
	n := len(points)
	for y := max(int(math.Floor(minY)), 0); y <= min(int(math.Ceil(maxY)), m.height-1); y++ {
		scanY := float64(y) + 0.5
		intersections = intersections[:0]
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				m.Set(x, y, true)
			}
		}
	}
}

// setIndex returns the flat indices of all set pixels.
// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		pixels: append([]bool(nil), m.pixels...),
	}
}

func (m *Mask) setIndex() []int {
	var idx []int
	for i, on := range m.pixels {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}
