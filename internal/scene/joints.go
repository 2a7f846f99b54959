package scene

import (
	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

// Grid dimensions of the joint scenes.
const (
	gridRows = 10
	gridCols = 13
)

func init() {
	register(Scene{
		Name:        "joints",
		Description: "a net of boxes held by ball joints",
		Focus:       cp.Vector{X: gridCols / 2, Y: -gridRows / 2},
		Zoom:        0.8,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			spawnNet(w, gridRows, gridCols)
			return nil
		},
	})
	register(Scene{
		Name:        "joints_despawn",
		Description: "a net of boxes that tears after five seconds",
		Focus:       cp.Vector{X: gridCols / 2, Y: -gridRows / 2},
		Zoom:        0.8,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			doomed := spawnNet(w, gridRows, gridCols)
			return despawnAfter(DespawnAfter, doomed, "joint")
		},
	})
}

// spawnNet builds rows x cols boxes, each tied to the box above and the box
// to its left. The top row is pinned at every fourth column and at the last
// one. It returns the joints along the middle row and the pinned columns.
func spawnNet(w *ecs.World, rows, cols int) []ecs.EntityID {
	const rad, shift = 0.4, 1.0
	var doomed []ecs.EntityID
	bodies := make([]ecs.EntityID, 0, rows*cols)
	for k := range cols {
		for i := range rows {
			spec := physics.NewDynamicBody()
			if i == 0 && (k%4 == 0 || k == cols-1) {
				spec = physics.NewStaticBody()
			}
			spec = spec.WithTranslation(float64(k)*shift, -float64(i)*shift)
			child := w.Spawn(
				component.BodyBuilder{Spec: spec},
				component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(rad, rad)).WithDensity(1)},
				component.Interpolation{},
			)
			tear := i == rows/2 || k%4 == 0 || k == cols-1

			if i > 0 {
				parent := bodies[len(bodies)-1]
				j := factory.NewJoint(w, parent, child, physics.BallJoint(cp.Vector{}, cp.Vector{Y: shift}))
				if tear {
					doomed = append(doomed, j)
				}
			}
			if k > 0 {
				parent := bodies[len(bodies)-rows]
				j := factory.NewJoint(w, parent, child, physics.BallJoint(cp.Vector{}, cp.Vector{X: -shift}))
				if tear {
					doomed = append(doomed, j)
				}
			}
			bodies = append(bodies, child)
		}
	}
	return doomed
}
