package scene

import (
	"fmt"
	"math"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

// Player sizing in presentation units; divided by the scale for physics.
const (
	playerScale  = 20.0
	playerSprite = 40.0
	playerSpeed  = 300.0
)

func init() {
	register(Scene{
		Name:        "player_movement",
		Description: "steer the red block with wasd or the arrow keys",
		Focus:       cp.Vector{},
		Zoom:        0.45,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			p.Config.Gravity = cp.Vector{}
			p.Config.Scale = playerScale

			const groundSize = 20.0
			walls := []cp.Vector{{X: 0, Y: groundSize}, {X: -groundSize}, {Y: -groundSize}, {X: groundSize}}
			for i, t := range walls {
				factory.NewGround(w, t.X, t.Y, math.Pi/2*float64(i), groundSize, 1.2)
			}

			half := playerSprite / playerScale / 2
			factory.NewPlayer(w, 0, 0, half, half, playerSpeed)
			return MovePlayers
		},
	})
}

// MovePlayers sets the velocity of every player body from the steering axes.
// Speed is in presentation units per second and is divided by the configured
// scale.
func MovePlayers(w *ecs.World, p *system.Physics, f Frame) []string {
	var out []string
	for _, id := range w.Query(component.CPlayer, component.CBodyHandle) {
		player := w.Get(id, component.CPlayer).(component.Player)
		b, ok := p.Body(id)
		if !ok {
			continue
		}
		v := cp.Vector{}
		if l := f.Move.Length(); l > 0 {
			scale := p.Config.Scale
			if scale <= 0 {
				scale = 1
			}
			v = f.Move.Mult(player.Speed / (l * scale))
		}
		b.SetLinearVelocity(v, true)
		pos := b.Translation()
		out = append(out, fmt.Sprintf("player: (%.2f, %.2f)", pos.X, pos.Y))
	}
	return out
}
