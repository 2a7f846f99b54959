package component

import (
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

const (
	CBodyBuilder ecs.ComponentType = 1
	CBodyHandle  ecs.ComponentType = 4
)

// BodyBuilder asks for a rigid body to be created for the entity. It is
// consumed by the creation pass, which replaces it with a BodyHandle.
type BodyBuilder struct {
	Spec physics.BodySpec
}

func (BodyBuilder) Type() ecs.ComponentType { return CBodyBuilder }

// BodyHandle links an entity to its live rigid body. Removing it, or
// destroying the entity, removes the body and everything attached to it.
type BodyHandle struct {
	Handle physics.BodyHandle
}

func (BodyHandle) Type() ecs.ComponentType { return CBodyHandle }
