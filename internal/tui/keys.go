package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents a grid action triggered by a key press. Keys typed
// while the viewer or a form is open never reach the KeyHandler.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionOpenSearch
	ActionFind
	ActionRefresh
	ActionOpenReel
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionGoToTop
	ActionGoToBottom
	ActionPageUp
	ActionPageDown
)

// KeyHandler handles key input and maintains key buffer.
type KeyHandler struct {
	keyBuffer string
}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle processes a key message and returns the action and its repeat
// count.
func (k *KeyHandler) Handle(msg tea.KeyMsg) (KeyAction, int) {
	key := msg.String()

	// Numeric keys build up the buffer
	if isNumericKey(key) {
		k.keyBuffer += key
		return ActionNone, 0
	}

	count := 1
	if k.keyBuffer != "" {
		if n, err := strconv.Atoi(k.keyBuffer); err == nil && n > 0 {
			count = n
		}
	}
	k.keyBuffer = ""

	return keyToAction(key), count
}

// KeyBuffer returns the current key buffer.
func (k *KeyHandler) KeyBuffer() string {
	return k.keyBuffer
}

// ClearBuffer clears the key buffer.
func (k *KeyHandler) ClearBuffer() {
	k.keyBuffer = ""
}

func keyToAction(key string) KeyAction {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "?":
		return ActionToggleHelp
	case "/", "s":
		return ActionOpenSearch
	case "f":
		return ActionFind
	case "r":
		return ActionRefresh
	case "enter", "o":
		return ActionOpenReel
	case "k", "up":
		return ActionMoveUp
	case "j", "down":
		return ActionMoveDown
	case "h", "left":
		return ActionMoveLeft
	case "l", "right":
		return ActionMoveRight
	case "g", "home":
		return ActionGoToTop
	case "G", "end":
		return ActionGoToBottom
	case "pgup", "ctrl+u":
		return ActionPageUp
	case "pgdown", "ctrl+d":
		return ActionPageDown
	default:
		return ActionNone
	}
}

func isNumericKey(key string) bool {
	return len(key) == 1 && key >= "0" && key <= "9"
}
