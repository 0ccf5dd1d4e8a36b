package object

import (
	"github.com/tomz197/collider/internal/config"
	"github.com/tomz197/collider/internal/geom"
)

// Wrap applies the toroidal correction to a world position. A coordinate
// more than config.Margin outside the field is moved just inside the margin
// of the opposite side; each axis is handled independently.
func Wrap(p geom.Point) geom.Point {
	p.X = wrapAxis(p.X, config.FieldWidth)
	p.Y = wrapAxis(p.Y, config.FieldHeight)
	return p
}

func wrapAxis(v, size float64) float64 {
	const margin = config.Margin
	switch {
	case v < -margin:
		return size + margin - 1
	case v > size+margin:
		return -margin + 1
	default:
		return v
	}
}
