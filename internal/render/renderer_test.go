package render

import (
	"testing"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
)

// newSimScreen returns an initialized 40x20 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(40, 20)
	t.Cleanup(s.Fini)
	return s
}

func buildWorld(t *testing.T, cs ...[]ecs.Component) (*ecs.World, *system.Physics, []ecs.EntityID) {
	t.Helper()
	w := ecs.NewWorld()
	p := system.Setup(w, system.DefaultConfig())
	var ids []ecs.EntityID
	for _, c := range cs {
		ids = append(ids, w.Spawn(c...))
	}
	if err := system.CreateBodiesAndColliders(w, p); err != nil {
		t.Fatal(err)
	}
	return w, p, ids
}

func TestDrawFrameColors(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s, 2)
	red := tcell.NewHexColor(0xFF0000)
	w, p, _ := buildWorld(t,
		[]ecs.Component{
			component.BodyBuilder{Spec: physics.NewStaticBody().WithTranslation(0, -2)},
			component.ColliderBuilder{Spec: physics.NewCollider(physics.Cuboid(4, 0.5))},
		},
		[]ecs.Component{
			component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(0, 2)},
			component.ColliderBuilder{Spec: physics.NewCollider(physics.Ball(1))},
		},
		[]ecs.Component{
			component.BodyBuilder{Spec: physics.NewDynamicBody().WithTranslation(3, 2)},
			component.ColliderBuilder{Spec: physics.NewCollider(physics.Ball(0.5)).AsSensor()},
			component.RenderColor{Color: red},
		},
	)
	r.DrawFrame(w, p)

	check := func(name string, at cp.Vector, glyph rune, color tcell.Color) {
		t.Helper()
		sx, sy, ok := r.Camera().WorldToScreen(at)
		if !ok {
			t.Fatalf("%s: %v off screen", name, at)
		}
		mainc, _, style, _ := s.GetContent(sx, sy)
		fg, _, _ := style.Decompose()
		if mainc != glyph || fg != color {
			t.Errorf("%s: got %q %v; want %q %v", name, mainc, fg, glyph, color)
		}
	}
	check("ground", cp.Vector{X: 0, Y: -2}, SolidGlyph, GroundColor)
	check("ball", cp.Vector{X: 0, Y: 2}, SolidGlyph, Palette[1])
	check("sensor", cp.Vector{X: 3, Y: 2}, SensorGlyph, red)

	if mainc, _, _, _ := s.GetContent(0, 0); mainc != ' ' {
		t.Errorf("corner should be empty; got %q", mainc)
	}
}

func TestDrawHUD(t *testing.T) {
	s := newSimScreen(t)
	r := NewRenderer(s, 2)
	r.DrawHUD(Stats{Scene: "boxes", FPS: 60}, "q quit", []string{"one", "two", "three"})
	_, h := s.Size()
	var line []rune
	for x := 0; x < 5; x++ {
		c, _, _, _ := s.GetContent(x, h-HUDHeight+1)
		line = append(line, c)
	}
	if string(line) != "boxes" {
		t.Errorf("stats line starts %q; want %q", string(line), "boxes")
	}
	if c, _, _, _ := s.GetContent(0, h-1); c != 't' {
		t.Errorf("last message row starts with %q; want 't' of \"three\"", c)
	}
}
