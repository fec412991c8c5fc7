// Package tcelldrv implements the toolkit backend contract over a
// tcell screen. Where the ansi backend talks to the terminal directly,
// this one delegates capability handling, input decoding and cell
// buffering to tcell and only performs the vocabulary translation.
package tcelldrv

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/varnwick/termvane/backend"
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/theme"
)

// pollTimeout bounds how long PollEvent blocks before reporting "no
// event", mirroring the ansi backend's pseudo-timeout.
const pollTimeout = 100 * time.Millisecond

// Adapter routes the backend contract onto a tcell.Screen. tcell owns
// the cell buffer, so paint state lives in a cached Style instead of
// being written to the terminal immediately.
type Adapter struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	currentStyle theme.ColorPair
	style        tcell.Style

	heldButtons tcell.ButtonMask
	lastButton  event.MouseButton
}

var _ backend.Backend = (*Adapter)(nil)

// Init allocates and activates a tcell screen backend.
func Init() (backend.Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocate screen: %w", err)
	}
	return InitWithScreen(screen)
}

// InitWithScreen activates the backend over an existing screen, e.g. a
// simulation screen in tests. The screen must not be initialized yet.
func InitWithScreen(screen tcell.Screen) (backend.Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	a := &Adapter{
		screen:       screen,
		events:       make(chan tcell.Event, 16),
		quit:         make(chan struct{}),
		currentStyle: theme.DefaultPair,
		style:        tcell.StyleDefault,
	}
	go screen.ChannelEvents(a.events, a.quit)
	return a, nil
}

// Finish tears the screen down and restores the terminal. tcell's Fini
// handles alternate screen, cursor, raw mode and colors in one call.
func (a *Adapter) Finish() {
	close(a.quit)
	a.screen.Fini()
}

// PollEvent retrieves and normalizes the next event. Pure motion events
// (mouse moved with no buttons held) have no toolkit equivalent and are
// skipped within the same poll window.
func (a *Adapter) PollEvent() (event.Event, bool) {
	timer := time.NewTimer(pollTimeout)
	defer timer.Stop()

	for {
		select {
		case raw, ok := <-a.events:
			if !ok {
				return event.Event{}, false
			}
			if ev, ok := a.mapEvent(raw); ok {
				return ev, true
			}
		case <-timer.C:
			return event.Event{}, false
		}
	}
}

func (a *Adapter) mapEvent(raw tcell.Event) (event.Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		return mapKeyEvent(ev), true
	case *tcell.EventMouse:
		return a.mapMouseEvent(ev)
	case *tcell.EventResize:
		return event.WindowResize(), true
	case *tcell.EventError:
		return event.Unknown(ev.Error()), true
	default:
		return event.Event{}, false
	}
}

const trackedButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// mapMouseEvent derives press/release/hold transitions from button mask
// diffs, since tcell reports state snapshots rather than transitions.
func (a *Adapter) mapMouseEvent(ev *tcell.EventMouse) (event.Event, bool) {
	x, y := ev.Position()
	pos := event.Pos{X: x, Y: y}
	buttons := ev.Buttons()

	// Both scroll directions map to WheelDown, matching the ansi backend
	if buttons&(tcell.WheelUp|tcell.WheelDown) != 0 {
		return event.Mouse(event.WheelDown(), pos), true
	}

	held := buttons & trackedButtons
	prev := a.heldButtons
	a.heldButtons = held

	switch {
	case held&^prev != 0:
		btn := mapButtonMask(held &^ prev)
		a.lastButton = btn
		return event.Mouse(event.Press(btn), pos), true
	case prev&^held != 0:
		return event.Mouse(event.Release(mapButtonMask(prev&^held)), pos), true
	case held != 0:
		return event.Mouse(event.Hold(a.lastButton), pos), true
	default:
		// Motion with no buttons held, nothing to report
		return event.Event{}, false
	}
}

// mapButtonMask names the lowest set button bit. Button1 is the primary
// (left) button, Button2 the secondary (right), Button3 the middle.
func mapButtonMask(m tcell.ButtonMask) event.MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return event.MouseLeft
	case m&tcell.Button2 != 0:
		return event.MouseRight
	case m&tcell.Button3 != 0:
		return event.MouseMiddle
	default:
		return event.MouseOther
	}
}

// Refresh makes the cell buffer visible
func (a *Adapter) Refresh() {
	a.screen.Show()
}

// HasColors reports whether the underlying terminal supports color
func (a *Adapter) HasColors() bool {
	return a.screen.Colors() > 0
}

// ScreenSize returns the screen dimensions in cells
func (a *Adapter) ScreenSize() (int, int) {
	return a.screen.Size()
}

// PrintAt writes text starting at pos and shows it immediately
func (a *Adapter) PrintAt(pos event.Pos, text string) {
	a.putString(pos.X, pos.Y, text)
	a.screen.Show()
}

// PrintAtRep writes text repetitions times contiguously, batched until
// the next Refresh
func (a *Adapter) PrintAtRep(pos event.Pos, repetitions int, text string) {
	x := pos.X
	for i := 0; i < repetitions; i++ {
		x = a.putString(x, pos.Y, text)
	}
}

// putString writes text at x,y and returns the column after the last cell
func (a *Adapter) putString(x, y int, text string) int {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, a.style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Clear fills the whole screen with color on both planes. The cached
// paint state is left untouched.
func (a *Adapter) Clear(color theme.Color) {
	c := mapColor(color)
	a.screen.Fill(' ', tcell.StyleDefault.Foreground(c).Background(c))
}

// SetColor makes pair the active paint state and returns the previous one
func (a *Adapter) SetColor(pair theme.ColorPair) theme.ColorPair {
	prev := a.currentStyle
	if prev != pair {
		a.style = a.style.
			Foreground(mapColor(pair.Front)).
			Background(mapColor(pair.Back))
		a.currentStyle = pair
	}
	return prev
}

// SetEffect enables a text attribute on the paint state; Simple is a no-op
func (a *Adapter) SetEffect(effect theme.Effect) {
	a.style = applyEffect(a.style, effect, true)
}

// UnsetEffect disables a text attribute on the paint state; Simple is a no-op
func (a *Adapter) UnsetEffect(effect theme.Effect) {
	a.style = applyEffect(a.style, effect, false)
}

func applyEffect(s tcell.Style, effect theme.Effect, on bool) tcell.Style {
	switch effect {
	case theme.EffectReverse:
		return s.Reverse(on)
	case theme.EffectBold:
		return s.Bold(on)
	case theme.EffectItalic:
		return s.Italic(on)
	case theme.EffectUnderline:
		return s.Underline(on)
	default:
		return s
	}
}

// Name identifies this backend in diagnostics
func (a *Adapter) Name() string {
	return "tcell"
}
