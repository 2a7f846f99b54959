package scene

import (
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

func init() {
	register(Scene{
		Name:        "locked_rotations",
		Description: "a bar that only spins and a tilted block that cannot",
		Focus:       cp.Vector{X: 0, Y: 2.5},
		Zoom:        2,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			factory.NewGround(w, 0, -0.1, 0, 5, 0.1)
			w.Spawn(
				bodyBuilder(physics.NewDynamicBody().WithTranslation(0, 3).LockTranslations()),
				colliderBuilder(physics.NewCollider(physics.Cuboid(2, 0.6))),
			)
			w.Spawn(
				bodyBuilder(physics.NewDynamicBody().WithTranslation(0.3, 5).WithRotation(1).LockRotations()),
				colliderBuilder(physics.NewCollider(physics.Cuboid(0.6, 0.4))),
			)
			return nil
		},
	})
}
