package component

import (
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

const (
	CJointBuilder ecs.ComponentType = 3
	CJointHandle  ecs.ComponentType = 6
)

// JointBuilder asks for a joint between the bodies of Entity1 and Entity2.
// It waits until both entities hold a body.
type JointBuilder struct {
	Spec             physics.JointSpec
	Entity1, Entity2 ecs.EntityID
}

func (JointBuilder) Type() ecs.ComponentType { return CJointBuilder }

type JointHandle struct {
	Handle           physics.JointHandle
	Entity1, Entity2 ecs.EntityID
}

func (JointHandle) Type() ecs.ComponentType { return CJointHandle }
