// Package demo drives the scenes in a terminal: it owns the frame loop, maps
// keys to actions and draws the world with the render package.
package demo

import (
	"fmt"
	"log"
	"time"

	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/render"
	"ecs-chipmunk/internal/scene"
	"ecs-chipmunk/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
)

const (
	// MaxFrameDelta caps the time fed to the simulation after a stall.
	MaxFrameDelta = 0.25
	// steerHold is how long a steering key stays pressed. Terminals report
	// key presses and repeats but never releases.
	steerHold   = 0.3
	maxMessages = 50
)

// Options configure a Demo.
type Options struct {
	Scene     string        // initial scene; scene.Default when empty
	Config    system.Config // applied to every scene before its setup
	FrameRate int           // frames per second; 60 when zero
	Logger    *log.Logger   // physics traces; nil disables them
}

// Demo is the top-level orchestrator.
type Demo struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	scenes   []scene.Scene
	current  int

	world   *ecs.World
	physics *system.Physics
	update  scene.UpdateFunc
	elapsed float64

	paused    bool
	steer     cp.Vector
	steerLeft float64
	messages  []string
	stats     render.Stats
	session   SessionLog
}

// NewTerminal creates a Demo on the process terminal.
func NewTerminal(opts Options) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, opts)
}

// New creates a Demo drawing on an initialized screen and loads the
// requested scene.
func New(screen tcell.Screen, opts Options) (*Demo, error) {
	if opts.Scene == "" {
		opts.Scene = scene.Default
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	d := &Demo{screen: screen, opts: opts, scenes: scene.All()}
	d.current = -1
	for i, s := range d.scenes {
		if s.Name == opts.Scene {
			d.current = i
		}
	}
	if d.current < 0 {
		return nil, fmt.Errorf("unknown scene %q", opts.Scene)
	}
	screen.EnableMouse()
	d.load(d.current)
	return d, nil
}

// Scene is the scene currently shown.
func (d *Demo) Scene() scene.Scene { return d.scenes[d.current] }

// World exposes the current scene's world and physics resources.
func (d *Demo) World() (*ecs.World, *system.Physics) { return d.world, d.physics }

// Messages returns the message log, oldest first.
func (d *Demo) Messages() []string { return d.messages }

// Paused reports whether the simulation is frozen.
func (d *Demo) Paused() bool { return d.paused }

// load builds scene i from scratch, closing the session of the previous one.
func (d *Demo) load(i int) {
	if d.world != nil {
		d.finishSession()
	}
	d.current = i
	s := d.scenes[i]

	d.world = ecs.NewWorld()
	d.physics = system.Setup(d.world, d.opts.Config)
	d.physics.Logger = d.opts.Logger
	d.update = s.Setup(d.world, d.physics)
	d.elapsed = 0
	d.steer = cp.Vector{}
	d.steerLeft = 0

	d.renderer = render.NewRenderer(d.screen, s.Zoom)
	d.renderer.CenterOn(s.Focus)
	d.session = SessionLog{
		Scene:         s.Name,
		Started:       time.Now(),
		FixedTimestep: d.physics.Config.FixedTimestep,
	}
	d.addMessage(fmt.Sprintf("%s: %s", s.Name, s.Description))
}

func (d *Demo) finishSession() {
	d.session.Seconds = d.elapsed
	saveSessionLog(d.session)
}

// Run is the frame loop. It returns when the user quits or the screen stops
// delivering events.
func (d *Demo) Run() {
	defer d.screen.Fini()
	defer d.finishSession()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.FrameRate))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !d.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			d.Frame(now.Sub(last).Seconds())
			last = now
			d.Draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether the loop should
// keep running.
func (d *Demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		d.renderer.Resize()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			d.Inspect(ev.Position())
		}
	case *tcell.EventKey:
		return d.Do(keyToAction(ev))
	}
	return true
}

// Do performs action and reports whether the loop should keep running.
func (d *Demo) Do(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionPause:
		d.paused = !d.paused
	case ActionStep:
		if d.paused {
			d.advance(d.physics.Params.Dt)
		}
	case ActionNextScene:
		d.load((d.current + 1) % len(d.scenes))
	case ActionPrevScene:
		d.load((d.current - 1 + len(d.scenes)) % len(d.scenes))
	case ActionReset:
		d.load(d.current)
	case ActionMoveUp:
		d.steerTo(cp.Vector{X: d.steer.X, Y: 1})
	case ActionMoveDown:
		d.steerTo(cp.Vector{X: d.steer.X, Y: -1})
	case ActionMoveLeft:
		d.steerTo(cp.Vector{X: -1, Y: d.steer.Y})
	case ActionMoveRight:
		d.steerTo(cp.Vector{X: 1, Y: d.steer.Y})
	}
	return true
}

func (d *Demo) steerTo(v cp.Vector) {
	d.steer = v
	d.steerLeft = steerHold
}

// Frame advances the demo by dt seconds of wall time unless paused.
func (d *Demo) Frame(dt float64) {
	if dt > 0 {
		d.stats.FPS = 1 / dt
	}
	if d.paused {
		return
	}
	d.advance(min(dt, MaxFrameDelta))
}

func (d *Demo) advance(dt float64) {
	start := time.Now()
	steps, err := system.Update(d.world, d.physics, dt)
	if err != nil {
		d.session.Errors++
		d.addMessage(err.Error())
	}
	d.elapsed += dt

	if d.steerLeft -= dt; d.steerLeft <= 0 {
		d.steer = cp.Vector{}
	}
	if d.update != nil {
		for _, msg := range d.update(d.world, d.physics, scene.Frame{Elapsed: d.elapsed, Move: d.steer}) {
			d.addMessage(msg)
		}
	}

	bodies, colliders, joints := d.physics.Maps.Len()
	d.session.Frames++
	d.session.Steps += steps
	d.session.MaxBodies = max(d.session.MaxBodies, bodies)
	d.session.MaxColliders = max(d.session.MaxColliders, colliders)
	d.session.MaxJoints = max(d.session.MaxJoints, joints)

	d.stats.Bodies, d.stats.Colliders, d.stats.Joints = bodies, colliders, joints
	d.stats.PhysicsTime = d.physics.Pipeline.Counters.LastStep
	d.stats.FrameTime = time.Since(start)
}

// Inspect reports the entities whose colliders cover screen cell (sx, sy).
func (d *Demo) Inspect(sx, sy int) {
	p := d.renderer.Camera().ScreenToWorld(sx, sy)
	hits := d.physics.Query.IntersectionsWithPoint(p)
	if len(hits) == 0 {
		d.addMessage(fmt.Sprintf("nothing at (%.1f, %.1f)", p.X, p.Y))
		return
	}
	for _, h := range hits {
		id, ok := d.physics.Maps.ColliderEntity(h)
		if !ok {
			continue
		}
		c, ok := d.physics.Colliders.Get(h)
		if !ok {
			continue
		}
		kind := "collider"
		if c.IsSensor() {
			kind = "sensor"
		}
		d.addMessage(fmt.Sprintf("entity %d: %s on %v at (%.1f, %.1f)", id, kind, c.Parent(), p.X, p.Y))
	}
}

// Draw renders the world and the HUD.
func (d *Demo) Draw() {
	d.stats.Scene = d.Scene().Name
	d.stats.Paused = d.paused
	d.renderer.DrawFrame(d.world, d.physics)
	d.renderer.DrawHUD(d.stats, HelpLine, d.messages)
	d.renderer.Show()
}

// addMessage appends a message to the log (capped at 50). A message equal to
// the last one is dropped.
func (d *Demo) addMessage(msg string) {
	if n := len(d.messages); n > 0 && d.messages[n-1] == msg {
		return
	}
	d.messages = append(d.messages, msg)
	if len(d.messages) > maxMessages {
		d.messages = d.messages[len(d.messages)-maxMessages:]
	}
}
