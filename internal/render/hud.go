package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Stats are shown on the first line of the HUD.
type Stats struct {
	Scene       string
	PhysicsTime time.Duration
	FrameTime   time.Duration
	FPS         float64
	Bodies      int
	Colliders   int
	Joints      int
	Paused      bool
}

func (s Stats) String() string {
	line := fmt.Sprintf("%s  physics %.2fms  frame %.2fms  FPS %.0f  bodies %d colliders %d joints %d",
		s.Scene,
		float64(s.PhysicsTime.Microseconds())/1000,
		float64(s.FrameTime.Microseconds())/1000,
		s.FPS, s.Bodies, s.Colliders, s.Joints)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}

// HUDHeight is the number of rows reserved at the bottom of the screen.
const HUDHeight = 5

// DrawHUD renders the stats line, a key help line and the last messages at
// the bottom of the screen.
func (r *Renderer) DrawHUD(stats Stats, help string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, stats.String(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	// Last 2 messages.
	start := max(len(messages)-2, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
}
