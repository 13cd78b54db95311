package ui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelkit/reel/internal/ring"
	"github.com/reelkit/reel/internal/ui/components"
)

// axisSlack is the pointer travel, in cells, below which a drag's dominant
// axis is not judged yet. Terminal cells are coarse; one diagonal cell of
// motion is not enough to tell a horizontal drag from a vertical one.
const axisSlack = 2

// Reel adapts one window controller to the terminal: it translates mouse
// and key input into the controller's drag interface and renders the slot
// strip. Construct with NewReel; the zero value is unusable.
type Reel[T comparable] struct {
	win   *ring.Window[T]
	lock  *ring.AxisLock
	axis  ring.Axis
	label func(T) string
	title string

	cellWidth  int
	cellHeight int
	vimKeys    bool

	dragging bool
	originX  int
	originY  int

	focused bool

	// seen tracks the last rendered value per ring index, so a cell whose
	// content was regenerated gets an entry highlight for one render pass
	// unless the rotation marked it suppressed.
	seen map[int]T
}

// ReelOptions size the cells and tune the gesture behavior of one reel.
type ReelOptions struct {
	Axis           ring.Axis
	CellWidth      int
	CellHeight     int
	CommitFraction float64
	VimKeys        bool
}

// NewReel builds a reel with the initial reference items already applied.
// One item of drag distance equals one cell extent along the scroll axis.
func NewReel[T comparable](title string, provider ring.Provider[T], initial []T, label func(T) string, opts ReelOptions) (Reel[T], error) {
	size := float64(opts.CellWidth)
	if opts.Axis == ring.Vertical {
		size = float64(opts.CellHeight)
	}
	win, err := ring.New(provider, ring.Options{
		VisibleCount:   len(initial),
		ItemSize:       size,
		CommitFraction: opts.CommitFraction,
	})
	if err != nil {
		return Reel[T]{}, err
	}
	if err := win.Rebuild(initial); err != nil {
		return Reel[T]{}, err
	}
	return Reel[T]{
		win:        win,
		lock:       ring.NewAxisLock(opts.Axis, axisSlack),
		axis:       opts.Axis,
		label:      label,
		title:      title,
		cellWidth:  opts.CellWidth,
		cellHeight: opts.CellHeight,
		vimKeys:    opts.VimKeys,
		seen:       make(map[int]T),
	}, nil
}

// Window exposes the underlying controller for the external override path.
func (r Reel[T]) Window() *ring.Window[T] { return r.win }

// Dragging reports whether a mouse drag is in flight on this reel.
func (r Reel[T]) Dragging() bool { return r.dragging }

// Snap advances the window by whole items through the controller's drag
// interface, so keyboard and wheel input share the commit path with
// pointer drags.
func (r Reel[T]) Snap(steps int) {
	if steps == 0 {
		return
	}
	r.win.OnDragEnded(float64(steps) * r.win.ItemSize())
}

func (r Reel[T]) Update(msg tea.Msg) (Reel[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !r.focused {
			return r, nil
		}
		switch {
		case isStepNext(msg, r.axis, r.vimKeys):
			r.Snap(1)
		case isStepPrev(msg, r.axis, r.vimKeys):
			r.Snap(-1)
		}
	case tea.MouseMsg:
		return r.handleMouse(msg)
	}
	return r, nil
}

func (r Reel[T]) handleMouse(msg tea.MouseMsg) (Reel[T], tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			r.dragging = true
			r.originX, r.originY = msg.X, msg.Y
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			r.Snap(-1)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			r.Snap(1)
		}
	case tea.MouseActionMotion:
		if !r.dragging {
			break
		}
		dx, dy := r.pointerDelta(msg)
		if v, ok := r.lock.Filter(dx, dy); ok {
			// Pointer travel moves the content, so its sign is opposite
			// to the scroll direction.
			r.win.OnDragChanged(-v)
		}
	case tea.MouseActionRelease:
		if !r.dragging {
			break
		}
		r.dragging = false
		dx, dy := r.pointerDelta(msg)
		if v, ok := r.lock.End(dx, dy); ok {
			r.win.OnDragEnded(-v)
		}
	}
	return r, nil
}

// CancelDrag abandons an in-flight drag, e.g. when the program loses focus
// mid-gesture. Equivalent to a release at the last known position.
func (r *Reel[T]) CancelDrag() {
	if !r.dragging {
		return
	}
	r.dragging = false
	r.lock.End(0, 0)
	r.win.CancelDrag()
}

// pointerDelta returns pointer travel since the press, in cells.
func (r Reel[T]) pointerDelta(msg tea.MouseMsg) (float64, float64) {
	return float64(msg.X - r.originX), float64(msg.Y - r.originY)
}

// --- Rendering ---

func (r Reel[T]) View() string {
	// A rotation marks the slot it repopulated; that cell skips the entry
	// highlight for this render pass. The marker clears on read.
	suppressed := -1
	if slot, ok := r.win.Recycled(); ok {
		suppressed = r.win.RingIndex(slot)
	}

	slots := r.win.Slots()
	center := len(slots) / 2
	cells := make([]string, len(slots))
	for i, item := range slots {
		idx := r.win.RingIndex(i)
		prev, ok := r.seen[idx]
		fresh := (!ok || prev != item) && idx != suppressed
		r.seen[idx] = item
		cells[i] = r.renderCell(item, i == center, fresh)
	}

	title := SectionTitleStyle.Render(r.title)
	if r.focused {
		title = SectionTitleFocusedStyle.Render(r.title)
	}

	var strip string
	if r.axis == ring.Vertical {
		offset := int(math.Round(r.win.DragVisual()))
		strip = components.VerticalStrip(cells, r.cellHeight, r.win.VisibleCount(), offset)
	} else {
		strip = components.HorizontalStrip(cells[1 : len(cells)-1])
	}

	gauge := components.DragGauge(r.win.DragVisual()/r.win.ItemSize(), r.stripWidth())
	return title + "\n" + strip + "\n" + gauge
}

// Height returns the number of rows View occupies.
func (r Reel[T]) Height() int {
	if r.axis == ring.Vertical {
		return 1 + r.win.VisibleCount()*r.cellHeight + 1
	}
	return 1 + r.cellHeight + 1
}

func (r Reel[T]) stripWidth() int {
	if r.axis == ring.Vertical {
		return r.cellWidth
	}
	return r.win.VisibleCount() * r.cellWidth
}

func (r Reel[T]) renderCell(item T, center, fresh bool) string {
	text := components.SanitizeLabel(r.label(item))

	if r.axis == ring.Vertical {
		style := RowStyle
		switch {
		case fresh:
			style = RowFreshStyle
		case center:
			style = RowCenterStyle
		}
		value := style.Width(r.cellWidth).Render(text)
		rule := RowRuleStyle.Render(strings.Repeat("┄", r.cellWidth))
		lines := []string{value}
		for len(lines) < r.cellHeight {
			lines = append(lines, rule)
		}
		return strings.Join(lines, "\n")
	}

	style := CellStyle
	switch {
	case fresh:
		style = CellFreshStyle
	case center:
		style = CellCenterStyle
	}
	// Border adds one column per side; total cell width stays cellWidth.
	return style.Width(r.cellWidth - 2).Render(text)
}
