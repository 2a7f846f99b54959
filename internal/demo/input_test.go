package demo

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNextScene},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionMoveUp},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), ActionMoveRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{"dot", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), ActionStep},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), ActionNextScene},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPrevScene},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionReset},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyToAction(tt.ev); got != tt.want {
				t.Errorf("got %d; want %d", got, tt.want)
			}
		})
	}
}
