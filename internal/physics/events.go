package physics

import "fmt"

// ContactEventKind distinguishes the start and end of a contact.
type ContactEventKind uint8

const (
	ContactStarted ContactEventKind = iota
	ContactStopped
)

// ContactEvent reports two solid colliders starting or ceasing to touch.
type ContactEvent struct {
	Kind                 ContactEventKind
	Collider1, Collider2 ColliderHandle
}

func (e ContactEvent) String() string {
	verb := "started"
	if e.Kind == ContactStopped {
		verb = "stopped"
	}
	return fmt.Sprintf("contact %s %v %v", verb, e.Collider1, e.Collider2)
}

// IntersectionEvent reports a sensor starting or ceasing to overlap another
// collider.
type IntersectionEvent struct {
	Collider1, Collider2 ColliderHandle
	Intersecting         bool
}

func (e IntersectionEvent) String() string {
	return fmt.Sprintf("intersection %v %v intersecting=%t", e.Collider1, e.Collider2, e.Intersecting)
}

// EventHandler receives the events produced during a step.
type EventHandler interface {
	HandleContactEvent(ContactEvent)
	HandleIntersectionEvent(IntersectionEvent)
}
