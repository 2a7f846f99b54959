package render

import (
	"math"

	"ecs-chipmunk/internal/component"
	"ecs-chipmunk/internal/ecs"
	"ecs-chipmunk/internal/physics"
	"ecs-chipmunk/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
)

// Renderer draws colliders onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen with zoom rows per
// world unit. The camera starts at the origin.
func NewRenderer(screen tcell.Screen, zoom float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(cp.Vector{}, zoom, w, max(h-HUDHeight, 0)),
	}
}

func (r *Renderer) Camera() *Camera { return r.camera }

// Resize picks up a new screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDHeight, 0)
}

// CenterOn recenters the camera on world position p.
func (r *Renderer) CenterOn(p cp.Vector) { r.camera.Center(p) }

// Show flushes the frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawFrame clears the screen and draws every collider that has a handle
// component. Static bodies use GroundColor; other bodies get a palette color
// each unless the collider entity or its body entity has a RenderColor.
// Bodies with an Interpolation component are drawn between their previous and
// current pose.
func (r *Renderer) DrawFrame(w *ecs.World, p *system.Physics) {
	r.screen.Clear()
	r.screen.Fill(' ', tcell.StyleDefault.Background(Background))

	alpha := p.Alpha()
	bodyColors := make(map[physics.BodyHandle]tcell.Color)
	next := 0
	for _, id := range w.Query(component.CColliderHandle) {
		ch := w.Get(id, component.CColliderHandle).(component.ColliderHandle)
		col, ok := p.Colliders.Get(ch.Handle)
		if !ok {
			continue
		}
		body, ok := p.Bodies.Get(col.Parent())
		if !ok {
			continue
		}

		color := GroundColor
		if !body.IsStatic() {
			c, seen := bodyColors[col.Parent()]
			if !seen {
				next++
				c = Palette[next%len(Palette)]
				bodyColors[col.Parent()] = c
			}
			color = c
		}
		if rc := w.Get(ch.Body, component.CRenderColor); rc != nil {
			color = rc.(component.RenderColor).Color
		}
		if rc := w.Get(id, component.CRenderColor); rc != nil {
			color = rc.(component.RenderColor).Color
		}

		current := body.Position()
		pose := current
		if ip := w.Get(ch.Body, component.CInterpolation); ip != nil {
			pose = ip.(component.Interpolation).Lerp(current, alpha)
		}
		glyph := SolidGlyph
		if col.IsSensor() {
			glyph = SensorGlyph
		}
		style := tcell.StyleDefault.Foreground(color).Background(Background)
		r.drawCollider(col, current, pose, glyph, style)
	}
}

// drawCollider fills every cell whose center lies inside col when its body
// sits at pose instead of current, the transform cp last placed it at. Cells
// are mapped back into the current frame and tested against the cp shape.
// Segments are traced instead, so thin ones stay visible.
func (r *Renderer) drawCollider(col *physics.Collider, current, pose physics.Isometry, glyph rune, style tcell.Style) {
	toPose := func(p cp.Vector) cp.Vector { return pose.Transform(current.InverseTransform(p)) }

	if shape := col.Shape(); shape.Kind == physics.ShapeSegment {
		at := pose.Compose(col.Offset())
		r.traceSegment(at.Transform(shape.A), at.Transform(shape.B), glyph, style)
		return
	}

	bb := col.AABB()
	x0, y0, x1, y1 := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
	for _, corner := range []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}} {
		sx, sy, _ := r.camera.WorldToScreen(toPose(corner))
		x0, y0 = min(x0, sx), min(y0, sy)
		x1, y1 = max(x1, sx), max(y1, sy)
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.camera.ViewWidth-1), min(y1, r.camera.ViewHeight-1)

	drawn := false
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			p := current.Transform(pose.InverseTransform(r.camera.ScreenToWorld(sx, sy)))
			if col.ContainsPoint(p) {
				r.screen.SetContent(sx, sy, glyph, nil, style)
				drawn = true
			}
		}
	}
	if !drawn {
		// smaller than a cell
		center := pose.Compose(col.Offset()).Translation
		if sx, sy, ok := r.camera.WorldToScreen(center); ok {
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

func (r *Renderer) traceSegment(a, b cp.Vector, glyph rune, style tcell.Style) {
	cell := r.camera.CellSize()
	step := math.Min(cell.X, cell.Y) / 2
	n := int(a.Distance(b)/step) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		p := cp.Vector{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if sx, sy, ok := r.camera.WorldToScreen(p); ok {
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}
