// Package scene holds the demo scenes: small worlds that exercise one part
// of the physics synchronization each.
package scene

import (
	"sort"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/system"

	"github.com/jakecoffman/cp"
)

// Frame is what a scene sees of the current frame.
type Frame struct {
	Elapsed float64   // seconds since the scene was set up
	Move    cp.Vector // player steering axes, each in [-1, 1]
}

// UpdateFunc runs once per frame after the world was stepped. It returns
// lines worth showing to the user.
type UpdateFunc func(w *ecs.World, p *system.Physics, f Frame) []string

// Scene is a demo world.
type Scene struct {
	Name        string
	Description string
	Focus       cp.Vector // camera target
	Zoom        float64   // rows per world unit
	// Setup spawns the scene's entities and may adjust p.Config. The returned
	// UpdateFunc may be nil.
	Setup func(w *ecs.World, p *system.Physics) UpdateFunc
}

var registry = map[string]Scene{}

func register(s Scene) {
	if _, dup := registry[s.Name]; dup {
		panic("scene: duplicate " + s.Name)
	}
	registry[s.Name] = s
}

// ByName looks a scene up.
func ByName(name string) (Scene, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns every scene name in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every scene in name order.
func All() []Scene {
	var out []Scene
	for _, n := range Names() {
		out = append(out, registry[n])
	}
	return out
}

// Default is the scene shown when none is requested.
const Default = "boxes"
