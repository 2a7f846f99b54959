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
		Name:        "multiple_colliders",
		Description: "U-shaped bodies built from three child colliders",
		Focus:       cp.Vector{X: 0, Y: 12},
		Zoom:        0.7,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			factory.NewGround(w, 0, -0.1, 0, 50, 0.1)
			spawnCups(w, 4, 6)
			return nil
		},
	})
}

// spawnCups stacks num x layers bodies, each with one base and two side
// colliders on separate entities.
func spawnCups(w *ecs.World, num, layers int) {
	const rad = 0.2
	shift := rad*4 + rad
	centerx := shift * float64(num/2)
	centery := shift / 2
	offset := -float64(num) * (rad*2 + rad) * 0.5

	for j := range layers {
		for i := range num {
			x := float64(i)*shift*5 - centerx + offset
			y := float64(j)*shift*5 + centery + 3

			parent := factory.NewBody(w, physics.NewDynamicBody().WithTranslation(x, y))
			factory.NewChildCollider(w, parent, physics.NewCollider(physics.Cuboid(rad*10, rad)))
			factory.NewChildCollider(w, parent, physics.NewCollider(physics.Cuboid(rad, rad*10)).WithTranslation(rad*10, rad*10))
			factory.NewChildCollider(w, parent, physics.NewCollider(physics.Cuboid(rad, rad*10)).WithTranslation(-rad*10, rad*10))
		}
		offset -= 0.05 * rad * float64(num-1)
	}
}
