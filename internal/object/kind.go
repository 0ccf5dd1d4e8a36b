package object

import "image/color"

// Kind identifies the family a body was built from.
type Kind int

const (
	KindAsteroid Kind = iota
	KindSpaceTruck
	KindEnterprise
	KindNiceAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindSpaceTruck:
		return "space-truck"
	case KindEnterprise:
		return "enterprise"
	case KindNiceAsteroid:
		return "nice-asteroid"
	default:
		return "unknown"
	}
}

// CollisionColor is the color every default palette uses for collisions.
var CollisionColor = color.RGBA{R: 255, G: 240, B: 0, A: 255}

// Default palettes per kind.
var (
	AsteroidPalette     = Palette{Clear: color.RGBA{R: 150, G: 130, B: 110, A: 255}, Colliding: CollisionColor}
	SpaceTruckPalette   = Palette{Clear: color.RGBA{R: 0, G: 130, B: 0, A: 255}, Colliding: CollisionColor}
	EnterprisePalette   = Palette{Clear: color.RGBA{R: 150, G: 0, B: 0, A: 255}, Colliding: CollisionColor}
	NiceAsteroidPalette = Palette{Clear: color.RGBA{R: 150, G: 130, B: 110, A: 255}, Colliding: CollisionColor}
)
