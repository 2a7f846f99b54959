package component

import "ecs-chipmunk/internal/ecs"

const CPlayer ecs.ComponentType = 10

// Player marks the body steered by the keyboard. Speed is in presentation
// units per second; the physics velocity is Speed divided by the configured
// scale.
type Player struct {
	Speed float64
}

func (Player) Type() ecs.ComponentType { return CPlayer }
