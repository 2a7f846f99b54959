package ecs

import "sort"

// World is the central entity registry and component store.
//
// Component types registered with Track additionally keep a removal log that
// a consumer drains once per frame with Removed.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	removed    map[ComponentType][]Removal
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		removed:    make(map[ComponentType][]Removal),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Spawn creates an entity carrying the given components.
func (w *World) Spawn(cs ...Component) EntityID {
	id := w.CreateEntity()
	for _, c := range cs {
		w.Add(id, c)
	}
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
// Tracked components are logged as removed.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for t, store := range w.components {
		if c, ok := store[id]; ok {
			delete(store, id)
			w.logRemoval(t, id, c)
		}
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.alive)
}

// Add attaches a component to an entity, replacing any previous component of
// the same type. Replacement is not a removal. Adding to a dead entity is a
// no-op.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity. It reports whether a component
// was present.
func (w *World) Remove(id EntityID, t ComponentType) bool {
	store := w.components[t]
	if store == nil {
		return false
	}
	c, ok := store[id]
	if !ok {
		return false
	}
	delete(store, id)
	w.logRemoval(t, id, c)
	return true
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Track starts recording removals of components of type t.
func (w *World) Track(t ComponentType) {
	if _, ok := w.removed[t]; !ok {
		w.removed[t] = []Removal{}
	}
}

// Removed returns the removals of type t recorded since the previous call and
// clears the log. It returns nil for untracked types.
func (w *World) Removed(t ComponentType) []Removal {
	log, ok := w.removed[t]
	if !ok || len(log) == 0 {
		return nil
	}
	w.removed[t] = []Removal{}
	return log
}

func (w *World) logRemoval(t ComponentType, id EntityID, c Component) {
	if log, ok := w.removed[t]; ok {
		w.removed[t] = append(log, Removal{Entity: id, Last: c})
	}
}

// Query returns all alive entities that have every listed component type, in
// ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	// Map iteration order is random; systems that allocate engine handles
	// need a stable order.
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
