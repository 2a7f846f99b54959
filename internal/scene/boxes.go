package scene

import (
	"math"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

func init() {
	register(Scene{
		Name:        "boxes",
		Description: "a pile of boxes falling into a bin",
		Focus:       cp.Vector{X: 0, Y: 10},
		Zoom:        0.6,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			spawnBin(w, 12)
			spawnBoxStack(w, 10, 12)
			return nil
		},
	})
}

// spawnBin creates a floor of half width size and two tall walls at its
// ends, and returns the three entities.
func spawnBin(w *ecs.World, size float64) []ecs.EntityID {
	return []ecs.EntityID{
		factory.NewGround(w, 0, 0, 0, size, 1.2),
		factory.NewGround(w, size, size*2, math.Pi/2, size*2, 1.2),
		factory.NewGround(w, -size, size*2, math.Pi/2, size*2, 1.2),
	}
}

// spawnBoxStack drops cols x rows unit boxes above the floor.
func spawnBoxStack(w *ecs.World, cols, rows int) {
	const rad = 0.5
	shift := rad * 2
	centerx := shift * float64(cols) / 2
	centery := shift / 2
	for i := range cols {
		for j := range rows {
			x := float64(i)*shift - centerx + rad
			y := float64(j)*shift + centery + 2
			factory.NewBox(w, x, y, rad, rad)
		}
	}
}
