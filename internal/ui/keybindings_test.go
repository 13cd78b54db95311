package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reelkit/reel/internal/ring"
)

func TestQuitKeys(t *testing.T) {
	assert.True(t, isQuit(keyMsg("q")))
	assert.True(t, isQuit(keyMsg("ctrl+c")))
	assert.False(t, isQuit(keyMsg("x")))
}

func TestBackKeys(t *testing.T) {
	assert.True(t, isBack(keyMsg("esc")))
	assert.False(t, isBack(keyMsg("q")))
}

func TestFocusToggleKeys(t *testing.T) {
	assert.True(t, isFocusToggle(keyMsg("tab")))
	assert.False(t, isFocusToggle(keyMsg("enter")))
}

func TestStepKeysPerAxis(t *testing.T) {
	assert.True(t, isStepNext(keyMsg("right"), ring.Horizontal, false))
	assert.False(t, isStepNext(keyMsg("right"), ring.Vertical, false))
	assert.True(t, isStepNext(keyMsg("down"), ring.Vertical, false))
	assert.True(t, isStepPrev(keyMsg("left"), ring.Horizontal, false))
	assert.True(t, isStepPrev(keyMsg("up"), ring.Vertical, false))
}

func TestStepKeysVim(t *testing.T) {
	assert.True(t, isStepNext(keyMsg("l"), ring.Horizontal, true))
	assert.False(t, isStepNext(keyMsg("l"), ring.Horizontal, false))
	assert.True(t, isStepPrev(keyMsg("h"), ring.Horizontal, true))
	assert.True(t, isStepNext(keyMsg("j"), ring.Vertical, true))
	assert.True(t, isStepPrev(keyMsg("k"), ring.Vertical, true))
	assert.False(t, isStepPrev(keyMsg("k"), ring.Vertical, false))
}
