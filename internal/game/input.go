package game

import "github.com/gdamore/tcell/v2"

// Intent is a player-requested action, already decoupled from the keyboard.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentToggleDisplayMode
	IntentExit
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentMoveLeft:
		return "move-left"
	case IntentMoveRight:
		return "move-right"
	case IntentToggleDisplayMode:
		return "toggle-display"
	case IntentExit:
		return "exit"
	}
	return "unknown"
}

// KeyToIntent maps a tcell key event to an intent.
func KeyToIntent(ev *tcell.EventKey) Intent {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyRight:
		return IntentMoveRight
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyEscape:
		return IntentExit
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return IntentToggleDisplayMode
		}
		return IntentNone
	}

	if ev.Key() != tcell.KeyRune {
		return IntentNone
	}
	switch ev.Rune() {
	case 'k', 'K':
		return IntentMoveUp
	case 'j', 'J':
		return IntentMoveDown
	case 'l', 'L':
		return IntentMoveRight
	case 'h', 'H':
		return IntentMoveLeft
	case 't', 'T':
		return IntentToggleDisplayMode
	case 'q', 'Q':
		return IntentExit
	}
	return IntentNone
}

// intentToDelta converts a movement intent to (dx, dy).
func intentToDelta(i Intent) (int, int) {
	switch i {
	case IntentMoveUp:
		return 0, -1
	case IntentMoveDown:
		return 0, 1
	case IntentMoveRight:
		return 1, 0
	case IntentMoveLeft:
		return -1, 0
	}
	return 0, 0
}
