package physics

import "fmt"

// BodyHandle identifies a live body in a BodySet.
//
// Handles are generational: once a body is removed its slot may be reused,
// but the new occupant gets a different Generation, so the old handle never
// resolves again.
type BodyHandle struct {
	Index      uint32
	Generation uint32
}

// ColliderHandle identifies a live collider in a ColliderSet.
type ColliderHandle struct {
	Index      uint32
	Generation uint32
}

// JointHandle identifies a live joint in a JointSet.
type JointHandle struct {
	Index      uint32
	Generation uint32
}

// The zero handles never resolve: generations start at 1.
var (
	InvalidBodyHandle     BodyHandle
	InvalidColliderHandle ColliderHandle
	InvalidJointHandle    JointHandle
)

func (h BodyHandle) String() string { return fmt.Sprintf("body(%d:%d)", h.Index, h.Generation) }
func (h ColliderHandle) String() string { return fmt.Sprintf("collider(%d:%d)", h.Index, h.Generation) }
func (h JointHandle) String() string { return fmt.Sprintf("joint(%d:%d)", h.Index, h.Generation) }

// arena is a slot store with a free list and per-slot generations.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
}

func (a *arena[T]) insert(v T) (index, generation uint32) {
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[index]
	s.generation++
	s.value = v
	s.occupied = true
	a.live++
	return index, s.generation
}

func (a *arena[T]) get(index, generation uint32) (T, bool) {
	var zero T
	if int(index) >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[index]
	if !s.occupied || s.generation != generation {
		return zero, false
	}
	return s.value, true
}

func (a *arena[T]) remove(index, generation uint32) (T, bool) {
	v, ok := a.get(index, generation)
	if !ok {
		return v, false
	}
	var zero T
	s := &a.slots[index]
	s.value = zero
	s.occupied = false
	a.free = append(a.free, index)
	a.live--
	return v, true
}

// each visits occupied slots in index order.
func (a *arena[T]) each(f func(index, generation uint32, v T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.occupied {
			f(uint32(i), s.generation, s.value)
		}
	}
}

func (a *arena[T]) len() int { return a.live }
