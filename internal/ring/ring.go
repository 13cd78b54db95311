// Package ring implements a fixed-size window over a conceptually unbounded
// sequence of items. The window owns a circular buffer of visibleCount+2
// item values (the visible items plus one pre-staged sentinel on each end)
// and a position map: a permutation from logical render order to ring
// storage index. Scrolling one item rotates the permutation and overwrites
// a single ring cell with a freshly generated neighbor; no other item moves
// storage, which keeps every snap O(1) in item payloads no matter how far
// the user has scrolled.
package ring

import (
	"errors"
	"fmt"
	"slices"
)

// --- Errors ---

var (
	ErrNilProvider     = errors.New("ring: provider must not be nil")
	ErrVisibleCount    = errors.New("ring: visible count must be at least 1")
	ErrItemSize        = errors.New("ring: item size must be positive")
	ErrCommitFraction  = errors.New("ring: commit fraction must be in (0, 1]")
	ErrEmptyReference  = errors.New("ring: reference items must not be empty")
	ErrReferenceLength = errors.New("ring: reference items length must equal visible count")
)

// Options configure a Window. VisibleCount is fixed for the life of the
// window; showing a different number of items means building a new one.
type Options struct {
	// VisibleCount is the number of items shown at once.
	VisibleCount int

	// ItemSize is the drag distance corresponding to one item, in whatever
	// unit the gesture source reports (terminal cells here, points or
	// pixels elsewhere).
	ItemSize float64

	// CommitFraction is the fraction of ItemSize a released drag must have
	// covered to commit one final rotation. Zero selects the default 0.5;
	// pointer-precise embedders may want something smaller.
	CommitFraction float64
}

const defaultCommitFraction = 0.5

// Rotation reports the outcome of a single rotation step so a renderer can
// decide in its own vocabulary what to do with the slot that was just
// repopulated (typically: skip its entry transition for one frame).
type Rotation[T any] struct {
	// Window is the visible window after the step.
	Window []T

	// Recycled is the logical slot, in 0..visibleCount+1, whose content
	// was regenerated by this step.
	Recycled int
}

const noRecycled = -1

// Window is the windowing controller. It is not safe for concurrent use;
// all mutation is expected to happen on the single goroutine that owns the
// rendering surface.
type Window[T comparable] struct {
	provider Provider[T]
	opts     Options

	ring []T   // slot storage, len visibleCount+2, never resized
	pos  []int // logical slot -> ring index, always a permutation

	dragStart  float64 // committed offset baseline
	dragOffset float64 // raw pointer offset since gesture start

	last     []T // last published visible window
	recycled int // logical slot marker, cleared on read

	observers []func([]T)
	binding   func([]T)
}

// New creates an empty window. Rebuild must be called with the initial
// reference items before the window is useful.
func New[T comparable](provider Provider[T], opts Options) (*Window[T], error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if opts.VisibleCount < 1 {
		return nil, ErrVisibleCount
	}
	if opts.ItemSize <= 0 {
		return nil, ErrItemSize
	}
	if opts.CommitFraction == 0 {
		opts.CommitFraction = defaultCommitFraction
	}
	if opts.CommitFraction < 0 || opts.CommitFraction > 1 {
		return nil, ErrCommitFraction
	}
	n := opts.VisibleCount + 2
	w := &Window[T]{
		provider: provider,
		opts:     opts,
		ring:     make([]T, n),
		pos:      make([]int, n),
		recycled: noRecycled,
	}
	for i := range w.pos {
		w.pos[i] = i
	}
	return w, nil
}

// VisibleCount returns the fixed window length.
func (w *Window[T]) VisibleCount() int { return w.opts.VisibleCount }

// ItemSize returns the drag distance corresponding to one item.
func (w *Window[T]) ItemSize() float64 { return w.opts.ItemSize }

// Rebuild replaces the ring and position map from scratch: the reference
// items become logical slots 1..visibleCount, with freshly generated
// sentinels staged on both ends, and publishes the (unchanged) window.
func (w *Window[T]) Rebuild(items []T) error {
	if len(items) == 0 {
		return ErrEmptyReference
	}
	if len(items) != w.opts.VisibleCount {
		return fmt.Errorf("%w: got %d, want %d", ErrReferenceLength, len(items), w.opts.VisibleCount)
	}
	w.ring[0] = w.provider.Before(items[0])
	copy(w.ring[1:], items)
	w.ring[len(w.ring)-1] = w.provider.After(items[len(items)-1])
	for i := range w.pos {
		w.pos[i] = i
	}
	w.recycled = noRecycled
	w.publish()
	return nil
}

// SetReferenceItems is the external reset path. An update that matches the
// last published window is the controller's own value echoed back and is
// ignored, which breaks the synchronization feedback loop. Anything else
// discards in-flight drag state and rebuilds.
func (w *Window[T]) SetReferenceItems(items []T) error {
	if slices.Equal(items, w.last) {
		return nil
	}
	w.dragStart = 0
	w.dragOffset = 0
	return w.Rebuild(items)
}

// Visible returns the current visible window: logical slots 1..visibleCount,
// excluding the sentinel on each end. The returned slice is a fresh copy.
func (w *Window[T]) Visible() []T {
	out := make([]T, w.opts.VisibleCount)
	for i := range out {
		out[i] = w.ring[w.slot(i+1)]
	}
	return out
}

// Slots returns every logical slot in render order, sentinels included.
func (w *Window[T]) Slots() []T {
	out := make([]T, len(w.pos))
	for i := range out {
		out[i] = w.ring[w.slot(i)]
	}
	return out
}

// RingIndex returns the storage index backing a logical slot. Renderers key
// their cells by ring index, so a rotation relabels cells instead of
// destroying and recreating ones that only shifted logically.
func (w *Window[T]) RingIndex(logical int) int { return w.slot(logical) }

// RotateForward recycles the slot leaving view at the leading edge into the
// next generated item entering at the trailing edge. Only the position map
// rotates (left by one) and a single ring cell is overwritten.
func (w *Window[T]) RotateForward() Rotation[T] {
	dismantle := w.slot(0)
	target := w.slot(len(w.pos) - 1)
	w.ring[dismantle] = w.provider.After(w.ring[target])

	head := w.pos[0]
	copy(w.pos, w.pos[1:])
	w.pos[len(w.pos)-1] = head

	w.recycled = len(w.pos) - 1
	w.publish()
	return Rotation[T]{Window: w.last, Recycled: len(w.pos) - 1}
}

// RotateBackward is the mirror of RotateForward: the trailing slot is
// recycled into a newly generated predecessor and the position map rotates
// right by one.
func (w *Window[T]) RotateBackward() Rotation[T] {
	dismantle := w.slot(len(w.pos) - 1)
	target := w.slot(0)
	w.ring[dismantle] = w.provider.Before(w.ring[target])

	tail := w.pos[len(w.pos)-1]
	copy(w.pos[1:], w.pos[:len(w.pos)-1])
	w.pos[0] = tail

	w.recycled = 0
	w.publish()
	return Rotation[T]{Window: w.last, Recycled: 0}
}

// Recycled reports the logical slot repopulated by the most recent rotation.
// The marker is valid for exactly one read: it clears once observed, so a
// renderer suppresses the entry transition for a single render pass only.
func (w *Window[T]) Recycled() (int, bool) {
	slot := w.recycled
	w.recycled = noRecycled
	return slot, slot != noRecycled
}

// OnWindowChanged registers fn to be invoked with the visible window after
// every rebuild and every rotation.
func (w *Window[T]) OnWindowChanged(fn func([]T)) {
	w.observers = append(w.observers, fn)
}

// BindReference registers the write-back half of the synchronization
// contract: after every publish the visible window is written into the
// externally owned reference sequence, so external state and the
// controller's derived view never diverge. A window already published at
// registration time is written through immediately.
func (w *Window[T]) BindReference(fn func([]T)) {
	w.binding = fn
	if w.last != nil {
		fn(w.last)
	}
}

func (w *Window[T]) publish() {
	visible := w.Visible()
	w.last = visible
	for _, fn := range w.observers {
		fn(visible)
	}
	if w.binding != nil {
		w.binding(visible)
	}
}

// slot resolves a logical slot to its ring index. An out-of-range result is
// a logic defect, never a user error: panic rather than silently corrupt
// the ring, since corruption would desynchronize the published window
// permanently.
func (w *Window[T]) slot(logical int) int {
	if logical < 0 || logical >= len(w.pos) {
		panic(fmt.Sprintf("ring: logical slot %d out of range [0, %d)", logical, len(w.pos)))
	}
	idx := w.pos[logical]
	if idx < 0 || idx >= len(w.ring) {
		panic(fmt.Sprintf("ring: position map corrupt: slot %d -> %d", logical, idx))
	}
	return idx
}
