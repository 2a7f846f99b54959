package demo

import "github.com/gdamore/tcell/v2"

// Action is a user request to the demo loop.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionStep
	ActionNextScene
	ActionPrevScene
	ActionReset
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
)

// keyToAction maps a tcell key event to a demo action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyTab:
		return ActionNextScene
	case tcell.KeyBacktab:
		return ActionPrevScene
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveUp
	case 's', 'S':
		return ActionMoveDown
	case 'd', 'D':
		return ActionMoveRight
	case 'a', 'A':
		return ActionMoveLeft
	case ' ':
		return ActionPause
	case '.':
		return ActionStep
	case 'n', 'N':
		return ActionNextScene
	case 'p', 'P':
		return ActionPrevScene
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// HelpLine lists the keys keyToAction understands.
const HelpLine = "q quit  space pause  . step  n/p scene  r reset  wasd/arrows steer  click inspect"
