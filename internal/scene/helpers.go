package scene

import (
	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

func bodyBuilder(spec physics.BodySpec) component.BodyBuilder {
	return component.BodyBuilder{Spec: spec}
}

func colliderBuilder(spec physics.ColliderSpec) component.ColliderBuilder {
	return component.ColliderBuilder{Spec: spec}
}

// withUserData sets the user data on the pending body of id.
func withUserData(w *ecs.World, id ecs.EntityID, data uint64) {
	c := w.Get(id, component.CBodyBuilder)
	if c == nil {
		return
	}
	bb := c.(component.BodyBuilder)
	bb.Spec = bb.Spec.WithUserData(data)
	w.Add(id, bb)
}
