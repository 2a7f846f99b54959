package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Isometry is a 2D rigid transform: a rotation (radians) followed by a
// translation.
type Isometry struct {
	Translation cp.Vector
	Rotation    float64
}

// Transform maps a point from local coordinates into this frame.
func (iso Isometry) Transform(p cp.Vector) cp.Vector {
	s, c := math.Sincos(iso.Rotation)
	return cp.Vector{
		X: c*p.X - s*p.Y + iso.Translation.X,
		Y: s*p.X + c*p.Y + iso.Translation.Y,
	}
}

// InverseTransform maps a point expressed in this frame back to local
// coordinates.
func (iso Isometry) InverseTransform(p cp.Vector) cp.Vector {
	dx, dy := p.X-iso.Translation.X, p.Y-iso.Translation.Y
	s, c := math.Sincos(iso.Rotation)
	return cp.Vector{X: c*dx + s*dy, Y: -s*dx + c*dy}
}

// Compose returns iso * local: local applied first, then iso.
func (iso Isometry) Compose(local Isometry) Isometry {
	return Isometry{
		Translation: iso.Transform(local.Translation),
		Rotation:    iso.Rotation + local.Rotation,
	}
}
