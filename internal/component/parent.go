package component

import "ecs-chipmunk/internal/ecs"

const CParent ecs.ComponentType = 7

// Parent attaches the entity's collider to another entity's body.
type Parent struct {
	Entity ecs.EntityID
}

func (Parent) Type() ecs.ComponentType { return CParent }
