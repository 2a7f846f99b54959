package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Camera translates between world coordinates (meters, y up) and screen
// cells (y down). A cell is about twice as tall as it is wide, so one world
// unit spans Zoom rows and 2*Zoom columns.
type Camera struct {
	Focus      cp.Vector // world point drawn at the middle of the view
	Zoom       float64   // rows per world unit
	ViewWidth  int       // in terminal columns
	ViewHeight int       // in terminal rows
}

// NewCamera creates a camera looking at focus.
func NewCamera(focus cp.Vector, zoom float64, viewW, viewH int) *Camera {
	return &Camera{Focus: focus, Zoom: zoom, ViewWidth: viewW, ViewHeight: viewH}
}

// Center moves the camera so that world position p is in the middle.
func (c *Camera) Center(p cp.Vector) { c.Focus = p }

// matrix maps homogeneous world coordinates to screen coordinates.
func (c *Camera) matrix() mgl64.Mat3 {
	toView := mgl64.Translate2D(float64(c.ViewWidth)/2, float64(c.ViewHeight)/2)
	scale := mgl64.Scale2D(2*c.Zoom, -c.Zoom)
	fromFocus := mgl64.Translate2D(-c.Focus.X, -c.Focus.Y)
	return toView.Mul3(scale).Mul3(fromFocus)
}

// WorldToScreen converts world p to a screen cell. visible is false when the
// cell falls outside the viewport.
func (c *Camera) WorldToScreen(p cp.Vector) (sx, sy int, visible bool) {
	v := c.matrix().Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	sx, sy = int(math.Floor(v.X())), int(math.Floor(v.Y()))
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld returns the world position at the center of cell (sx, sy).
func (c *Camera) ScreenToWorld(sx, sy int) cp.Vector {
	v := c.matrix().Inv().Mul3x1(mgl64.Vec3{float64(sx) + 0.5, float64(sy) + 0.5, 1})
	return cp.Vector{X: v.X(), Y: v.Y()}
}

// CellSize returns the world size of one screen cell.
func (c *Camera) CellSize() cp.Vector {
	return cp.Vector{X: 1 / (2 * c.Zoom), Y: 1 / c.Zoom}
}
