package scene

import (
	"fmt"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

// DespawnAfter is how long the despawn scenes wait before deleting entities.
const DespawnAfter = 5.0

func init() {
	register(Scene{
		Name:        "despawn",
		Description: "the bin disappears after five seconds",
		Focus:       cp.Vector{X: 0, Y: 10},
		Zoom:        0.6,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			doomed := spawnBin(w, 12)
			spawnBoxStack(w, 10, 12)
			return despawnAfter(DespawnAfter, doomed, "ground")
		},
	})
}

// despawnAfter returns an update that destroys ids once, after delay seconds.
func despawnAfter(delay float64, ids []ecs.EntityID, what string) UpdateFunc {
	return func(w *ecs.World, p *system.Physics, f Frame) []string {
		if f.Elapsed <= delay || len(ids) == 0 {
			return nil
		}
		for _, id := range ids {
			w.DestroyEntity(id)
		}
		msg := fmt.Sprintf("despawned %d %s entities", len(ids), what)
		ids = nil
		return []string{msg}
	}
}
