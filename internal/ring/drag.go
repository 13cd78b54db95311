package ring

import "math"

// Drag state machine: Idle -> Dragging -> Idle. The only state that
// survives between updates is the pair of drag scalars, and both reset to
// zero on every commit. Positive deltas scroll toward later items
// (provider.After); the gesture adapter owns any platform sign flip.

// OnDragChanged records the current raw drag delta and performs every
// rotation the accumulated distance has earned. Deltas larger than one item
// are settled loop-until-stable rather than capped at a single step, so a
// fast fling cannot under-rotate.
func (w *Window[T]) OnDragChanged(delta float64) {
	w.dragOffset = delta
	w.settle()
}

// OnDragEnded finishes the gesture: remaining whole-item travel is settled,
// then one final rotation commits if the leftover crosses the commit
// threshold in either direction. The drag scalars always reset afterwards,
// whatever happened before.
func (w *Window[T]) OnDragEnded(delta float64) {
	w.dragOffset = delta
	w.settle()
	rel := w.dragOffset - w.dragStart
	threshold := w.opts.ItemSize * w.opts.CommitFraction
	switch {
	case rel >= threshold:
		w.RotateForward()
	case rel <= -threshold:
		w.RotateBackward()
	}
	w.dragStart = 0
	w.dragOffset = 0
}

// CancelDrag treats a platform-cancelled gesture as a drag end at the last
// known delta, guaranteeing the scalars never dangle.
func (w *Window[T]) CancelDrag() {
	w.OnDragEnded(w.dragOffset)
}

// DragVisual returns the uncommitted drag distance, the continuous offset a
// renderer applies between snaps. Always within (-ItemSize, ItemSize).
func (w *Window[T]) DragVisual() float64 {
	return w.dragOffset - w.dragStart
}

// settle rotates once per full item of accumulated travel, re-basing
// dragStart each step, until less than one item remains.
func (w *Window[T]) settle() {
	for w.dragOffset-w.dragStart >= w.opts.ItemSize {
		w.dragStart += w.opts.ItemSize
		w.RotateForward()
	}
	for w.dragOffset-w.dragStart <= -w.opts.ItemSize {
		w.dragStart -= w.opts.ItemSize
		w.RotateBackward()
	}
}

// --- Axis lock ---

// Axis selects which component of a two-dimensional gesture vector feeds
// the controller.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// AxisLock implements the direction-lock gesture variant: a drag must
// establish a dominant axis matching the configured scroll axis before any
// delta is accepted, and whichever verdict is reached holds until the
// gesture ends.
type AxisLock struct {
	axis    Axis
	slack   float64
	engaged bool
	refused bool
}

// NewAxisLock creates a lock for the given scroll axis. slack is the travel
// radius below which no verdict is made; zero judges the very first vector.
func NewAxisLock(axis Axis, slack float64) *AxisLock {
	return &AxisLock{axis: axis, slack: slack}
}

// Filter maps a gesture vector to the scroll-axis scalar. ok is false while
// the lock is unresolved, and stays false for the rest of a refused gesture.
func (l *AxisLock) Filter(dx, dy float64) (float64, bool) {
	if l.refused {
		return 0, false
	}
	if !l.engaged {
		if math.Abs(dx) < l.slack && math.Abs(dy) < l.slack {
			return 0, false
		}
		dominant := Horizontal
		if math.Abs(dy) > math.Abs(dx) {
			dominant = Vertical
		}
		if dominant != l.axis {
			l.refused = true
			return 0, false
		}
		l.engaged = true
	}
	return l.component(dx, dy), true
}

// End resolves the gesture with its final vector and resets the lock for
// the next one. ok is false when the gesture never engaged.
func (l *AxisLock) End(dx, dy float64) (float64, bool) {
	engaged := l.engaged
	v := l.component(dx, dy)
	l.engaged = false
	l.refused = false
	if !engaged {
		return 0, false
	}
	return v, true
}

// Engaged reports whether the current gesture has locked onto the scroll
// axis.
func (l *AxisLock) Engaged() bool { return l.engaged }

func (l *AxisLock) component(dx, dy float64) float64 {
	if l.axis == Vertical {
		return dy
	}
	return dx
}
