package system

import (
	"fmt"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
)

// CreateJoints builds every JointBuilder whose two endpoint entities both
// hold a body. Builders with an unresolved endpoint stay for a later frame.
// It must run after CreateBodiesAndColliders so joints between bodies built
// in the same frame are created in that frame.
func CreateJoints(w *ecs.World, p *Physics) error {
	for _, id := range w.Query(component.CJointBuilder) {
		jb := w.Get(id, component.CJointBuilder).(component.JointBuilder)
		b1, ok1 := p.Maps.Body(jb.Entity1)
		b2, ok2 := p.Maps.Body(jb.Entity2)
		if !ok1 || !ok2 {
			continue
		}
		h, err := p.Joints.Insert(p.Bodies, b1, b2, jb.Spec)
		if err != nil {
			return fmt.Errorf("entity %d: %w", id, err)
		}
		if old := w.Get(id, component.CJointHandle); old != nil {
			oh := old.(component.JointHandle).Handle
			w.Remove(id, component.CJointHandle)
			p.Joints.Remove(oh, p.Bodies, true)
			p.Maps.dropJoint(id, oh)
		}
		w.Add(id, component.JointHandle{Handle: h, Entity1: jb.Entity1, Entity2: jb.Entity2})
		p.Maps.setJoint(id, h, jb.Entity1, jb.Entity2)
		w.Remove(id, component.CJointBuilder)
		p.logf("entity %d: created %v between %d and %d", id, h, jb.Entity1, jb.Entity2)
	}
	return nil
}
