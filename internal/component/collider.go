package component

import (
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

const (
	CColliderBuilder ecs.ComponentType = 2
	CColliderHandle  ecs.ComponentType = 5
)

// ColliderBuilder asks for a collider. It attaches to the body of the same
// entity, or to the body of Parent.Entity when the entity carries a Parent.
type ColliderBuilder struct {
	Spec physics.ColliderSpec
}

func (ColliderBuilder) Type() ecs.ComponentType { return CColliderBuilder }

// ColliderHandle links an entity to a live collider.
type ColliderHandle struct {
	Handle physics.ColliderHandle
	// Body is the entity that owns the collider's parent body.
	Body ecs.EntityID
}

func (ColliderHandle) Type() ecs.ComponentType { return CColliderHandle }
