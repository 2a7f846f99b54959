package scene

import (
	"fmt"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/factory"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

func init() {
	register(Scene{
		Name:        "events",
		Description: "a box falls through a sensor onto the ground",
		Focus:       cp.Vector{X: 0, Y: 6},
		Zoom:        1,
		Setup: func(w *ecs.World, p *system.Physics) UpdateFunc {
			factory.NewGround(w, 0, 0, 0, 4, 1.2)
			factory.NewSensor(w, 0, 5, 4, 1.2)
			factory.NewBox(w, 0, 13, 0.5, 0.5)
			return reportEvents
		},
	})
}

// reportEvents drains the event queue into one line per event, naming
// colliders by their entity.
func reportEvents(w *ecs.World, p *system.Physics, f Frame) []string {
	var out []string
	for {
		e, ok := p.Events.PopIntersection()
		if !ok {
			break
		}
		verb := "left"
		if e.Intersecting {
			verb = "entered"
		}
		out = append(out, fmt.Sprintf("intersection: %s %s %s", entityName(p, e.Collider1), verb, entityName(p, e.Collider2)))
	}
	for {
		e, ok := p.Events.PopContact()
		if !ok {
			break
		}
		verb := "touched"
		if e.Kind == physics.ContactStopped {
			verb = "released"
		}
		out = append(out, fmt.Sprintf("contact: %s %s %s", entityName(p, e.Collider1), verb, entityName(p, e.Collider2)))
	}
	return out
}

func entityName(p *system.Physics, h physics.ColliderHandle) string {
	if id, ok := p.Maps.ColliderEntity(h); ok {
		return fmt.Sprintf("entity %d", id)
	}
	return h.String()
}
