package system

import (
	"sort"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
)

// EntityMaps mirrors the handle components: entity to handle and back for
// bodies, colliders and joints, plus the entities that depend on each body
// entity through a parented collider or a joint endpoint.
//
// Entries change only together with the matching handle component.
type EntityMaps struct {
	bodies    map[ecs.EntityID]physics.BodyHandle
	colliders map[ecs.EntityID]physics.ColliderHandle
	joints    map[ecs.EntityID]physics.JointHandle

	bodyEntities     map[physics.BodyHandle]ecs.EntityID
	colliderEntities map[physics.ColliderHandle]ecs.EntityID
	jointEntities    map[physics.JointHandle]ecs.EntityID

	colliderOwner map[ecs.EntityID]ecs.EntityID
	jointEnds     map[ecs.EntityID][2]ecs.EntityID
	// body entity -> dependent entity -> number of links
	dependents map[ecs.EntityID]map[ecs.EntityID]int
}

// NewEntityMaps returns empty maps.
func NewEntityMaps() *EntityMaps {
	return &EntityMaps{
		bodies:           make(map[ecs.EntityID]physics.BodyHandle),
		colliders:        make(map[ecs.EntityID]physics.ColliderHandle),
		joints:           make(map[ecs.EntityID]physics.JointHandle),
		bodyEntities:     make(map[physics.BodyHandle]ecs.EntityID),
		colliderEntities: make(map[physics.ColliderHandle]ecs.EntityID),
		jointEntities:    make(map[physics.JointHandle]ecs.EntityID),
		colliderOwner:    make(map[ecs.EntityID]ecs.EntityID),
		jointEnds:        make(map[ecs.EntityID][2]ecs.EntityID),
		dependents:       make(map[ecs.EntityID]map[ecs.EntityID]int),
	}
}

// Body returns the body handle held by entity id.
func (m *EntityMaps) Body(id ecs.EntityID) (physics.BodyHandle, bool) {
	h, ok := m.bodies[id]
	return h, ok
}

// Collider returns the collider handle held by entity id.
func (m *EntityMaps) Collider(id ecs.EntityID) (physics.ColliderHandle, bool) {
	h, ok := m.colliders[id]
	return h, ok
}

// Joint returns the joint handle held by entity id.
func (m *EntityMaps) Joint(id ecs.EntityID) (physics.JointHandle, bool) {
	h, ok := m.joints[id]
	return h, ok
}

// BodyEntity returns the entity holding body h.
func (m *EntityMaps) BodyEntity(h physics.BodyHandle) (ecs.EntityID, bool) {
	id, ok := m.bodyEntities[h]
	return id, ok
}

// ColliderEntity returns the entity holding collider h.
func (m *EntityMaps) ColliderEntity(h physics.ColliderHandle) (ecs.EntityID, bool) {
	id, ok := m.colliderEntities[h]
	return id, ok
}

// JointEntity returns the entity holding joint h.
func (m *EntityMaps) JointEntity(h physics.JointHandle) (ecs.EntityID, bool) {
	id, ok := m.jointEntities[h]
	return id, ok
}

// Len returns the number of body, collider and joint entries.
func (m *EntityMaps) Len() (bodies, colliders, joints int) {
	return len(m.bodies), len(m.colliders), len(m.joints)
}

// Dependents returns, in ascending order, the other entities whose collider or
// joint hangs off the body of id.
func (m *EntityMaps) Dependents(id ecs.EntityID) []ecs.EntityID {
	deps := m.dependents[id]
	if len(deps) == 0 {
		return nil
	}
	out := make([]ecs.EntityID, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (m *EntityMaps) setBody(id ecs.EntityID, h physics.BodyHandle) {
	m.bodies[id] = h
	m.bodyEntities[h] = id
}

// dropBody deletes the entry for id if it still holds h.
func (m *EntityMaps) dropBody(id ecs.EntityID, h physics.BodyHandle) bool {
	if cur, ok := m.bodies[id]; !ok || cur != h {
		return false
	}
	delete(m.bodies, id)
	delete(m.bodyEntities, h)
	return true
}

func (m *EntityMaps) setCollider(id ecs.EntityID, h physics.ColliderHandle, owner ecs.EntityID) {
	m.colliders[id] = h
	m.colliderEntities[h] = id
	m.colliderOwner[id] = owner
	m.link(owner, id)
}

func (m *EntityMaps) dropCollider(id ecs.EntityID, h physics.ColliderHandle) bool {
	if cur, ok := m.colliders[id]; !ok || cur != h {
		return false
	}
	delete(m.colliders, id)
	delete(m.colliderEntities, h)
	m.unlink(m.colliderOwner[id], id)
	delete(m.colliderOwner, id)
	return true
}

func (m *EntityMaps) setJoint(id ecs.EntityID, h physics.JointHandle, e1, e2 ecs.EntityID) {
	m.joints[id] = h
	m.jointEntities[h] = id
	m.jointEnds[id] = [2]ecs.EntityID{e1, e2}
	m.link(e1, id)
	m.link(e2, id)
}

func (m *EntityMaps) dropJoint(id ecs.EntityID, h physics.JointHandle) bool {
	if cur, ok := m.joints[id]; !ok || cur != h {
		return false
	}
	delete(m.joints, id)
	delete(m.jointEntities, h)
	ends := m.jointEnds[id]
	m.unlink(ends[0], id)
	m.unlink(ends[1], id)
	delete(m.jointEnds, id)
	return true
}

// link records that dep holds something attached to the body of owner. An
// entity is never its own dependent.
func (m *EntityMaps) link(owner, dep ecs.EntityID) {
	if owner == dep {
		return
	}
	deps := m.dependents[owner]
	if deps == nil {
		deps = make(map[ecs.EntityID]int)
		m.dependents[owner] = deps
	}
	deps[dep]++
}

func (m *EntityMaps) unlink(owner, dep ecs.EntityID) {
	deps := m.dependents[owner]
	if deps == nil {
		return
	}
	if deps[dep]--; deps[dep] <= 0 {
		delete(deps, dep)
	}
	if len(deps) == 0 {
		delete(m.dependents, owner)
	}
}
