package system

import (
	"fmt"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
)

// CreateBodiesAndColliders turns every BodyBuilder into a body, and a
// ColliderBuilder on the same entity into a collider on that body. Builders
// are removed as their handle components are attached. Colliders of entities
// carrying a Parent are left to AttachColliders.
//
// Specs are validated before anything is created, so an entity whose build
// fails keeps its builders. The first failure stops the pass.
func CreateBodiesAndColliders(w *ecs.World, p *Physics) error {
	for _, id := range w.Query(component.CBodyBuilder) {
		bb := w.Get(id, component.CBodyBuilder).(component.BodyBuilder)
		if err := bb.Spec.Validate(); err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
		var cb *component.ColliderBuilder
		if c := w.Get(id, component.CColliderBuilder); c != nil && !w.Has(id, component.CParent) {
			v := c.(component.ColliderBuilder)
			if err := v.Spec.Validate(); err != nil {
				return fmt.Errorf("entity %d: %w", id, err)
			}
			cb = &v
		}

		// A second builder replaces the body, and everything attached to it.
		if old := w.Get(id, component.CBodyHandle); old != nil {
			w.Remove(id, component.CBodyHandle)
			removeBody(w, p, id, old.(component.BodyHandle).Handle)
		}
		h, err := p.Bodies.Insert(bb.Spec)
		if err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
		w.Add(id, component.BodyHandle{Handle: h})
		p.Maps.setBody(id, h)
		w.Remove(id, component.CBodyBuilder)
		p.logf("entity %d: created %s %v", id, bb.Spec.Status, h)

		if cb == nil {
			continue
		}
		if err := attachCollider(w, p, id, id, *cb); err != nil {
			return err
		}
	}
	return nil
}

// AttachColliders creates the colliders whose builders wait for a body: those
// naming a Parent, and those added to an entity after its body was built. A
// builder whose target body does not exist yet is retried next frame.
func AttachColliders(w *ecs.World, p *Physics) error {
	for _, id := range w.Query(component.CColliderBuilder) {
		target := id
		if par := w.Get(id, component.CParent); par != nil {
			target = par.(component.Parent).Entity
		}
		if _, ok := p.Maps.Body(target); !ok {
			continue
		}
		cb := w.Get(id, component.CColliderBuilder).(component.ColliderBuilder)
		if err := cb.Spec.Validate(); err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
		if err := attachCollider(w, p, id, target, cb); err != nil {
			return err
		}
	}
	return nil
}

// attachCollider builds cb on the body of owner and records it on id.
func attachCollider(w *ecs.World, p *Physics, id, owner ecs.EntityID, cb component.ColliderBuilder) error {
	bh, _ := p.Maps.Body(owner)
	h, err := p.Colliders.Insert(cb.Spec, bh, p.Bodies)
	if err != nil {
		return fmt.Errorf("entity %d: %w", id, err)
	}
	if old := w.Get(id, component.CColliderHandle); old != nil {
		oh := old.(component.ColliderHandle).Handle
		w.Remove(id, component.CColliderHandle)
		p.Colliders.Remove(oh, p.Bodies, true)
		p.Maps.dropCollider(id, oh)
	}
	w.Add(id, component.ColliderHandle{Handle: h, Body: owner})
	p.Maps.setCollider(id, h, owner)
	w.Remove(id, component.CColliderBuilder)
	p.logf("entity %d: created %v on entity %d", id, h, owner)
	return nil
}
