package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelkit/reel/internal/ring"
)

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isHelp(msg tea.KeyMsg) bool {
	return isKey(msg, "?")
}

func isFocusToggle(msg tea.KeyMsg) bool {
	return isKey(msg, "tab", "shift+tab")
}

// isStepNext reports whether msg steps one item toward later along axis.
func isStepNext(msg tea.KeyMsg, axis ring.Axis, vim bool) bool {
	if axis == ring.Vertical {
		return isKey(msg, "down") || (vim && isKey(msg, "j"))
	}
	return isKey(msg, "right") || (vim && isKey(msg, "l"))
}

// isStepPrev reports whether msg steps one item toward earlier along axis.
func isStepPrev(msg tea.KeyMsg, axis ring.Axis, vim bool) bool {
	if axis == ring.Vertical {
		return isKey(msg, "up") || (vim && isKey(msg, "k"))
	}
	return isKey(msg, "left") || (vim && isKey(msg, "h"))
}
