package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintContainsKeyAndDescription(t *testing.T) {
	h := Hint("tab", "focus")
	assert.Contains(t, h, "tab")
	assert.Contains(t, h, "focus")
}

func TestStatusBarRendersAllHintsWhenUnbounded(t *testing.T) {
	bar := StatusBar([]string{Hint("q", "quit"), Hint("?", "help")}, 0)
	assert.Contains(t, bar, "quit")
	assert.Contains(t, bar, "help")
}

func TestStatusBarDropsHintsThatDoNotFit(t *testing.T) {
	bar := StatusBar([]string{Hint("q", "quit"), Hint("?", "a very long description")}, 14)
	assert.Contains(t, bar, "quit")
	assert.NotContains(t, bar, "very long")
}
