package ecs

import "strconv"

// EntityID names an entity. IDs are handed out in increasing order and never
// reused by a World.
type EntityID uint64

// NilEntity is never returned by CreateEntity.
const NilEntity EntityID = 0

func (id EntityID) String() string { return "entity#" + strconv.FormatUint(uint64(id), 10) }

// ComponentType keys a component store. Each component struct reports a
// distinct constant.
type ComponentType uint8

// Component is a value stored on an entity.
type Component interface {
	Type() ComponentType
}

// Removal records a component that left an entity, either through Remove or
// because the whole entity was destroyed. Last is the value it held.
type Removal struct {
	Entity EntityID
	Last   Component
}
