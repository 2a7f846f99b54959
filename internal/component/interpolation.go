package component

import (
	"math"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const CInterpolation ecs.ComponentType = 8

// Interpolation holds the body pose from before the last step of a frame so
// the renderer can draw between two fixed steps.
type Interpolation struct {
	Previous physics.Isometry
	Valid    bool
}

func (Interpolation) Type() ecs.ComponentType { return CInterpolation }

// Lerp blends the previous pose toward current. alpha is clamped to [0, 1];
// before the first snapshot current is returned unchanged.
func (ip Interpolation) Lerp(current physics.Isometry, alpha float64) physics.Isometry {
	if !ip.Valid {
		return current
	}
	alpha = mgl64.Clamp(alpha, 0, 1)
	prev := mgl64.Vec2{ip.Previous.Translation.X, ip.Previous.Translation.Y}
	cur := mgl64.Vec2{current.Translation.X, current.Translation.Y}
	p := prev.Add(cur.Sub(prev).Mul(alpha))

	// rotate the short way round
	d := current.Rotation - ip.Previous.Rotation
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return physics.Isometry{
		Translation: cp.Vector{X: p.X(), Y: p.Y()},
		Rotation:    ip.Previous.Rotation + d*alpha,
	}
}
