package shape

import (
	"math/rand/v2"

	"github.com/tomz197/collider/internal/geom"
)

// Disk is a disk centered on the local origin.
//
// A zero radius disk contains only the origin; a negative radius disk
// contains nothing. Both sample the origin.
type Disk struct {
	Radius float64
}

// NewDisk creates a disk of radius r.
func NewDisk(r float64) *Disk {
	return &Disk{Radius: r}
}

// Sample draws uniformly from the disk by rejection in the enclosing square.
func (d *Disk) Sample(r *rand.Rand) geom.Point {
	if d.Radius <= 0 {
		return geom.Point{}
	}
	for {
		p := geom.Pt(r.Float64()*2-1, r.Float64()*2-1)
		if p.X*p.X+p.Y*p.Y <= 1 {
			return geom.Scale(d.Radius, p)
		}
	}
}

// Contains reports whether p is within Radius of the origin.
func (d *Disk) Contains(p geom.Point) bool {
	if d.Radius < 0 {
		return false
	}
	return p.X*p.X+p.Y*p.Y <= d.Radius*d.Radius
}

// BoundingBox returns the square of side 2*Radius centered on the origin.
func (d *Disk) BoundingBox() geom.Rect {
	return geom.R(-d.Radius, -d.Radius, d.Radius, d.Radius)
}
