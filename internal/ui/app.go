package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reelkit/reel/internal/config"
	"github.com/reelkit/reel/internal/ring"
	"github.com/reelkit/reel/internal/ui/components"
)

// --- Reels ---

const (
	reelDays = 0
	reelInts = 1
	reelNone = -1
)

const dayFormat = "Mon 02 Jan"

// --- Messages ---

type clearToastMsg struct{}

const toastFor = 2 * time.Second

// --- App Model ---

// App is the root TUI model: a horizontal day strip and a vertical integer
// reel, each wired to its own window controller.
type App struct {
	cfg config.Config

	days Reel[time.Time]
	ints Reel[int]

	// Externally owned reference sequences. The controllers write every
	// published window back into them, and the jump commands reset
	// through them, so they are the single source of truth outside the
	// rings.
	dayRef *[]time.Time
	intRef *[]int

	// updates counts window publishes across both reels.
	updates *int

	focus       int
	mouseTarget int

	width    int
	height   int
	helpOpen bool
	toast    string
	err      string
}

// NewApp creates the root application model.
func NewApp(cfg config.Config) (App, error) {
	dayProvider := ring.Cached(ring.Funcs(
		func(t time.Time) time.Time { return t.AddDate(0, 0, -1) },
		func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
	), 128)
	days, err := NewReel("days", dayProvider, centeredDays(today(), cfg.VisibleCount),
		func(t time.Time) string { return t.Format(dayFormat) },
		ReelOptions{
			Axis:           ring.Horizontal,
			CellWidth:      14,
			CellHeight:     3,
			CommitFraction: cfg.CommitFraction,
			VimKeys:        cfg.VimKeys,
		})
	if err != nil {
		return App{}, fmt.Errorf("build day reel: %w", err)
	}

	intProvider := ring.Funcs(
		func(i int) int { return i - 1 },
		func(i int) int { return i + 1 },
	)
	ints, err := NewReel("integers", intProvider, centeredInts(0, cfg.VisibleCount),
		strconv.Itoa,
		ReelOptions{
			Axis:           ring.Vertical,
			CellWidth:      14,
			CellHeight:     2,
			CommitFraction: cfg.CommitFraction,
			VimKeys:        cfg.VimKeys,
		})
	if err != nil {
		return App{}, fmt.Errorf("build integer reel: %w", err)
	}

	dayRef := new([]time.Time)
	intRef := new([]int)
	updates := new(int)
	days.Window().BindReference(func(items []time.Time) { *dayRef = items })
	ints.Window().BindReference(func(items []int) { *intRef = items })
	days.Window().OnWindowChanged(func([]time.Time) { *updates++ })
	ints.Window().OnWindowChanged(func([]int) { *updates++ })

	days.focused = true
	return App{
		cfg:         cfg,
		days:        days,
		ints:        ints,
		dayRef:      dayRef,
		intRef:      intRef,
		updates:     updates,
		focus:       reelDays,
		mouseTarget: reelNone,
	}, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case clearToastMsg:
		a.toast = ""
		return a, nil

	case tea.KeyMsg:
		if a.helpOpen {
			if isBack(msg) || isHelp(msg) || isQuit(msg) {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		switch {
		case isQuit(msg):
			return a, tea.Quit
		case isHelp(msg):
			a.helpOpen = true
			return a, nil
		case isFocusToggle(msg):
			a.setFocus(1 - a.focus)
			return a, nil
		case isKey(msg, "g"):
			return a.jumpDaysToToday()
		case isKey(msg, "0"):
			return a.jumpIntsToZero()
		}

		// Delegate to the focused reel.
		var cmd tea.Cmd
		if a.focus == reelDays {
			a.days, cmd = a.days.Update(msg)
		} else {
			a.ints, cmd = a.ints.Update(msg)
		}
		return a, cmd

	case tea.MouseMsg:
		return a.routeMouse(msg)
	}
	return a, nil
}

func (a *App) setFocus(target int) {
	a.focus = target
	a.days.focused = target == reelDays
	a.ints.focused = target == reelInts
}

// routeMouse forwards mouse events to the reel under the pointer, keeping
// an in-flight drag pinned to the reel it started on.
func (a App) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target := a.mouseTarget
	if target == reelNone {
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		target = a.reelAt(msg.Y)
		if msg.Button == tea.MouseButtonLeft {
			a.setFocus(target)
		}
	}

	var cmd tea.Cmd
	if target == reelDays {
		a.days, cmd = a.days.Update(msg)
	} else {
		a.ints, cmd = a.ints.Update(msg)
	}

	switch {
	case a.days.Dragging():
		a.mouseTarget = reelDays
	case a.ints.Dragging():
		a.mouseTarget = reelInts
	default:
		a.mouseTarget = reelNone
	}
	return a, cmd
}

// reelAt maps a terminal row to the reel rendered there. Keep in sync with
// the View layout.
func (a App) reelAt(y int) int {
	if y < a.daysSectionEnd() {
		return reelDays
	}
	return reelInts
}

func (a App) daysSectionEnd() int {
	// header (2 rows) + day reel view + trailing blank row
	return 2 + a.days.Height() + 1
}

// jumpDaysToToday resets the day reel through the external override path.
// When the reel is already centered on today, the controller recognizes
// its own published window and performs no rebuild.
func (a App) jumpDaysToToday() (tea.Model, tea.Cmd) {
	target := centeredDays(today(), a.cfg.VisibleCount)
	changed := !slices.Equal(target, *a.dayRef)
	if err := a.days.Window().SetReferenceItems(target); err != nil {
		a.err = err.Error()
		return a, nil
	}
	if changed {
		return a.setToast("jumped to today")
	}
	return a.setToast("already centered on today")
}

func (a App) jumpIntsToZero() (tea.Model, tea.Cmd) {
	target := centeredInts(0, a.cfg.VisibleCount)
	changed := !slices.Equal(target, *a.intRef)
	if err := a.ints.Window().SetReferenceItems(target); err != nil {
		a.err = err.Error()
		return a, nil
	}
	if changed {
		return a.setToast("jumped to zero")
	}
	return a.setToast("already centered on zero")
}

func (a App) setToast(text string) (tea.Model, tea.Cmd) {
	a.toast = text
	return a, tea.Tick(toastFor, func(time.Time) tea.Msg { return clearToastMsg{} })
}

// --- View ---

func (a App) View() string {
	if a.helpOpen {
		return a.helpView()
	}

	var b strings.Builder
	b.WriteString(" " + AppTitleStyle.Render("reel") + "  " +
		AppSubtitleStyle.Render("drag, scroll, or step: the strip never ends"))
	b.WriteString("\n\n")
	b.WriteString(a.days.View())
	b.WriteString("\n\n")
	b.WriteString(a.ints.View())
	b.WriteString("\n\n")
	b.WriteString(a.statusLine())
	b.WriteString("\n")
	b.WriteString(components.StatusBar([]string{
		components.Hint("drag", "scroll"),
		components.Hint("←→ ↑↓", "step"),
		components.Hint("tab", "focus"),
		components.Hint("g", "today"),
		components.Hint("0", "zero"),
		components.Hint("?", "help"),
		components.Hint("q", "quit"),
	}, a.width))
	return b.String()
}

// statusLine summarizes the bound reference sequences, the external half of
// the synchronization contract.
func (a App) statusLine() string {
	if a.err != "" {
		return ErrorStyle.Render("error: " + a.err)
	}
	if a.toast != "" {
		return ToastStyle.Render(a.toast)
	}
	days := *a.dayRef
	ints := *a.intRef
	if len(days) == 0 || len(ints) == 0 {
		return ""
	}
	return StatusLineStyle.Render(fmt.Sprintf(
		"days %s – %s  ·  ints %d…%d  ·  %d window updates",
		days[0].Format("02 Jan"), days[len(days)-1].Format("02 Jan"),
		ints[0], ints[len(ints)-1], *a.updates))
}

func (a App) helpView() string {
	rows := []string{
		components.KeyRow("drag", "scroll a reel with the mouse"),
		components.KeyRow("wheel", "step one item"),
		components.KeyRow("← → ↑ ↓", "step the focused reel"),
		components.KeyRow("tab", "switch focus"),
		components.KeyRow("g", "center the day strip on today"),
		components.KeyRow("0", "center the integer reel on zero"),
		components.KeyRow("?", "toggle this help"),
		components.KeyRow("q", "quit"),
	}
	if a.cfg.VimKeys {
		rows = append(rows[:3], append([]string{components.KeyRow("h j k l", "step (vim keys)")}, rows[3:]...)...)
	}
	return RenderBanner() + "\n" + components.Dialog("Keys", rows, 52)
}

// --- Demo sequences ---

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// centeredDays returns count consecutive days with center in the middle.
func centeredDays(center time.Time, count int) []time.Time {
	out := make([]time.Time, count)
	start := center.AddDate(0, 0, -count/2)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// centeredInts returns count consecutive integers with center in the middle.
func centeredInts(center, count int) []int {
	out := make([]int, count)
	start := center - count/2
	for i := range out {
		out[i] = start + i
	}
	return out
}
