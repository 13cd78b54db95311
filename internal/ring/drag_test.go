package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dragWindow(t *testing.T) (*Window[int], *int) {
	t.Helper()
	w := newIntWindow(t, 3)
	require.NoError(t, w.Rebuild([]int{1, 2, 3}))
	rotations := new(int)
	w.OnWindowChanged(func([]int) { *rotations++ })
	return w, rotations
}

func TestDragBelowThresholdIsIdempotent(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragChanged(4)
	assert.Equal(t, 4.0, w.DragVisual())
	assert.Zero(t, *rotations)

	w.OnDragEnded(3)
	assert.Equal(t, []int{1, 2, 3}, w.Visible())
	assert.Zero(t, *rotations)
	assert.Zero(t, w.dragStart)
	assert.Zero(t, w.dragOffset)
}

func TestDragThresholdCrossingRotatesOnce(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragChanged(10)
	assert.Equal(t, 1, *rotations)
	assert.Equal(t, []int{2, 3, 4}, w.Visible())
	assert.Equal(t, 10.0, w.dragStart, "dragStart re-bases by one item")

	// Same delta again: already accounted for, no second rotation.
	w.OnDragChanged(10)
	assert.Equal(t, 1, *rotations)
	assert.Equal(t, []int{2, 3, 4}, w.Visible())
}

func TestDragBackwardThresholdCrossing(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragChanged(-10)
	assert.Equal(t, 1, *rotations)
	assert.Equal(t, []int{0, 1, 2}, w.Visible())
	assert.Equal(t, -10.0, w.dragStart)
}

func TestDragOvershootSettlesEveryCrossing(t *testing.T) {
	w, rotations := dragWindow(t)

	// A fling worth 3.2 items rotates three times, not once.
	w.OnDragChanged(32)
	assert.Equal(t, 3, *rotations)
	assert.Equal(t, []int{4, 5, 6}, w.Visible())
	assert.InDelta(t, 2.0, w.DragVisual(), 1e-9)
}

func TestDragEndCommitsCloserHalf(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragEnded(6)
	assert.Equal(t, 1, *rotations)
	assert.Equal(t, []int{2, 3, 4}, w.Visible())
	assert.Zero(t, w.dragStart)
	assert.Zero(t, w.dragOffset)

	w.OnDragEnded(-6)
	assert.Equal(t, 2, *rotations)
	assert.Equal(t, []int{1, 2, 3}, w.Visible())
}

func TestDragEndBelowCommitSettlesBack(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragEnded(4)
	assert.Zero(t, *rotations)
	assert.Equal(t, []int{1, 2, 3}, w.Visible())
}

func TestDragEndAfterFlingSettlesThenCommits(t *testing.T) {
	w, rotations := dragWindow(t)

	// 3 whole items of travel plus 0.7 of one more: 3 settles + 1 commit.
	w.OnDragEnded(37)
	assert.Equal(t, 4, *rotations)
	assert.Equal(t, []int{5, 6, 7}, w.Visible())
	assert.Zero(t, w.dragStart)
	assert.Zero(t, w.dragOffset)
}

func TestCancelDragActsAsEndWithLastDelta(t *testing.T) {
	w, rotations := dragWindow(t)

	w.OnDragChanged(4)
	w.CancelDrag()
	assert.Zero(t, *rotations)
	assert.Zero(t, w.dragStart)
	assert.Zero(t, w.dragOffset)

	w.OnDragChanged(8)
	w.CancelDrag()
	assert.Equal(t, 1, *rotations, "cancel past commit threshold still commits")
	assert.Equal(t, []int{2, 3, 4}, w.Visible())
}

func TestCustomCommitFraction(t *testing.T) {
	w, err := New(intProvider(), Options{VisibleCount: 3, ItemSize: 10, CommitFraction: 0.2})
	require.NoError(t, err)
	require.NoError(t, w.Rebuild([]int{1, 2, 3}))

	w.OnDragEnded(3)
	assert.Equal(t, []int{2, 3, 4}, w.Visible())
}

// --- Axis lock ---

func TestAxisLockWithinSlackIsUnresolved(t *testing.T) {
	lock := NewAxisLock(Horizontal, 3)

	_, ok := lock.Filter(1, 1)
	assert.False(t, ok)
	assert.False(t, lock.Engaged())
}

func TestAxisLockEngagesOnMatchingAxis(t *testing.T) {
	lock := NewAxisLock(Horizontal, 3)

	v, ok := lock.Filter(5, 1)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)
	assert.True(t, lock.Engaged())

	// Once engaged, later vectors pass through even if vertical dominates.
	v, ok = lock.Filter(4, 9)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
}

func TestAxisLockRefusalHoldsUntilEnd(t *testing.T) {
	lock := NewAxisLock(Horizontal, 0)

	_, ok := lock.Filter(1, 5)
	assert.False(t, ok)

	// Refusal latches for the rest of the gesture.
	_, ok = lock.Filter(50, 0)
	assert.False(t, ok)

	_, ok = lock.End(50, 0)
	assert.False(t, ok)

	// A fresh gesture is judged again.
	v, ok := lock.Filter(50, 0)
	assert.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestAxisLockEndReturnsFinalComponent(t *testing.T) {
	lock := NewAxisLock(Vertical, 0)

	_, ok := lock.Filter(1, 6)
	require.True(t, ok)

	v, ok := lock.End(2, 14)
	assert.True(t, ok)
	assert.Equal(t, 14.0, v)
	assert.False(t, lock.Engaged())
}
