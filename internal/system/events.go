package system

import (
	"sync"

	"ecs-chipmunk/internal/physics"
)

// EventQueue collects the contact and intersection events of the pipeline in
// the order they were produced. It is safe for concurrent use.
//
// With auto-clear on, StepWorld empties the queue before stepping, so only
// the events of the latest frame are ever visible.
type EventQueue struct {
	mu            sync.Mutex
	autoClear     bool
	contacts      []physics.ContactEvent
	intersections []physics.IntersectionEvent
}

// NewEventQueue returns an empty queue.
func NewEventQueue(autoClear bool) *EventQueue {
	return &EventQueue{autoClear: autoClear}
}

// AutoClear reports whether StepWorld clears the queue before stepping.
func (q *EventQueue) AutoClear() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.autoClear
}

// SetAutoClear turns clearing before each step on or off.
func (q *EventQueue) SetAutoClear(on bool) {
	q.mu.Lock()
	q.autoClear = on
	q.mu.Unlock()
}

// Clear drops every pending event.
func (q *EventQueue) Clear() {
	q.mu.Lock()
	q.contacts = q.contacts[:0]
	q.intersections = q.intersections[:0]
	q.mu.Unlock()
}

// Len returns the number of pending contact and intersection events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.contacts) + len(q.intersections)
}

// PopContact removes and returns the oldest contact event.
func (q *EventQueue) PopContact() (physics.ContactEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.contacts) == 0 {
		return physics.ContactEvent{}, false
	}
	e := q.contacts[0]
	q.contacts = q.contacts[1:]
	return e, true
}

// PopIntersection removes and returns the oldest intersection event.
func (q *EventQueue) PopIntersection() (physics.IntersectionEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.intersections) == 0 {
		return physics.IntersectionEvent{}, false
	}
	e := q.intersections[0]
	q.intersections = q.intersections[1:]
	return e, true
}

// ContactEvents drains every pending contact event.
func (q *EventQueue) ContactEvents() []physics.ContactEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.contacts
	q.contacts = nil
	return out
}

// IntersectionEvents drains every pending intersection event.
func (q *EventQueue) IntersectionEvents() []physics.IntersectionEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.intersections
	q.intersections = nil
	return out
}

// HandleContactEvent queues e. It implements physics.EventHandler.
func (q *EventQueue) HandleContactEvent(e physics.ContactEvent) {
	q.mu.Lock()
	q.contacts = append(q.contacts, e)
	q.mu.Unlock()
}

// HandleIntersectionEvent queues e. It implements physics.EventHandler.
func (q *EventQueue) HandleIntersectionEvent(e physics.IntersectionEvent) {
	q.mu.Lock()
	q.intersections = append(q.intersections, e)
	q.mu.Unlock()
}
