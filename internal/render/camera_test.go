package render

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(cp.Vector{X: 10, Y: 5}, 2, 80, 20)
	tests := []struct {
		name    string
		p       cp.Vector
		sx, sy  int
		visible bool
	}{
		{"focus at middle", cp.Vector{X: 10, Y: 5}, 40, 10, true},
		{"up is smaller row", cp.Vector{X: 10, Y: 6}, 40, 8, true},
		{"right doubles columns", cp.Vector{X: 11, Y: 5}, 44, 10, true},
		{"off the left edge", cp.Vector{X: -1, Y: 5}, -4, 10, false},
		{"below the view", cp.Vector{X: 10, Y: -1}, 40, 22, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, vis := c.WorldToScreen(tt.p)
			if sx != tt.sx || sy != tt.sy || vis != tt.visible {
				t.Errorf("got (%d, %d, %t); want (%d, %d, %t)", sx, sy, vis, tt.sx, tt.sy, tt.visible)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(cp.Vector{X: -3, Y: 7}, 1.5, 61, 17)
	for sy := 0; sy < c.ViewHeight; sy += 4 {
		for sx := 0; sx < c.ViewWidth; sx += 7 {
			p := c.ScreenToWorld(sx, sy)
			gx, gy, vis := c.WorldToScreen(p)
			if gx != sx || gy != sy || !vis {
				t.Fatalf("cell (%d, %d) -> %v -> (%d, %d, %t)", sx, sy, p, gx, gy, vis)
			}
		}
	}
	cell := c.CellSize()
	if math.Abs(cell.X-1/3.0) > 1e-12 || math.Abs(cell.Y-2/3.0) > 1e-12 {
		t.Errorf("cell size %v", cell)
	}
}
