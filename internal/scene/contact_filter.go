package scene

import (
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

// SameUserData lets two bodies touch only when they carry the same user data.
var SameUserData = physics.PairFilterFunc(func(ctx physics.PairContext) physics.PairDecision {
	if ctx.UserData1 == ctx.UserData2 {
		return physics.ComputeImpulses
	}
	return physics.SkipPair
})

func init() {
	register(Scene{
		Name:        "contact_filter",
		Description: "boxes only land on the floor with matching user data",
		Focus:       cp.Vector{X: 0, Y: 0},
		Zoom:        1,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			p.Filters.AddContactFilter(SameUserData)

			const groundSize = 10.0
			for i, y := range []float64{-10, 0} {
				w.Spawn(
					bodyBuilder(physics.NewStaticBody().WithTranslation(0, y).WithUserData(uint64(i))),
					colliderBuilder(physics.NewCollider(physics.Cuboid(groundSize, 1.2))),
				)
			}

			const num, rad = 4, 0.5
			shift := rad * 2
			centerx := shift * num / 2
			centery := shift / 2
			for i := range num {
				for j := range num * 5 {
					x := (float64(i)+float64(j)*0.2)*shift - centerx
					y := float64(j)*shift + centery + 2
					id := factory.NewBox(w, x, y, rad, rad)
					withUserData(w, id, uint64(j%2))
				}
			}
			return nil
		},
	})
}
