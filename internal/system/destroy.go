package system

import (
	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

// DestroyBodiesAndColliders removes from the engine whatever backed a handle
// component that was removed since the last run, whether the component was
// removed alone or with its entity.
//
// Bodies go first. Removing a body takes its colliders and joints with it, so
// the handle components that pointed at those, on the same entity or on
// dependent entities, are removed too. Removals the pass itself causes are
// drained before it returns; unknown handles are ignored.
func DestroyBodiesAndColliders(w *ecs.World, p *Physics) {
	for {
		bodies := w.Removed(component.CBodyHandle)
		colliders := w.Removed(component.CColliderHandle)
		joints := w.Removed(component.CJointHandle)
		if len(bodies) == 0 && len(colliders) == 0 && len(joints) == 0 {
			return
		}
		for _, r := range bodies {
			removeBody(w, p, r.Entity, r.Last.(component.BodyHandle).Handle)
		}
		for _, r := range colliders {
			h := r.Last.(component.ColliderHandle).Handle
			if p.Colliders.Remove(h, p.Bodies, true) {
				p.logf("entity %d: removed %v", r.Entity, h)
			}
			p.Maps.dropCollider(r.Entity, h)
		}
		for _, r := range joints {
			h := r.Last.(component.JointHandle).Handle
			if p.Joints.Remove(h, p.Bodies, true) {
				p.logf("entity %d: removed %v", r.Entity, h)
			}
			p.Maps.dropJoint(r.Entity, h)
		}
	}
}

// removeBody removes body h, owned by id, and strips the handle components
// left pointing at colliders or joints that went with it.
func removeBody(w *ecs.World, p *Physics, id ecs.EntityID, h physics.BodyHandle) {
	affected := append([]ecs.EntityID{id}, p.Maps.Dependents(id)...)
	p.Maps.dropBody(id, h)
	if !p.Bodies.Remove(h, p.Colliders, p.Joints) {
		return
	}
	p.logf("entity %d: removed %v", id, h)

	for _, e := range affected {
		if c := w.Get(e, component.CColliderHandle); c != nil {
			ch := c.(component.ColliderHandle).Handle
			if !p.Colliders.Contains(ch) {
				w.Remove(e, component.CColliderHandle)
				p.Maps.dropCollider(e, ch)
			}
		}
		if c := w.Get(e, component.CJointHandle); c != nil {
			jh := c.(component.JointHandle).Handle
			if !p.Joints.Contains(jh) {
				w.Remove(e, component.CJointHandle)
				p.Maps.dropJoint(e, jh)
			}
		}
	}
}
