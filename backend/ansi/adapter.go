// Package ansi implements the toolkit backend contract over the in-repo
// ANSI terminal driver.
package ansi

import (
	"fmt"
	"sync"

	"github.com/varnwick/termvane/backend"
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/terminal"
	"github.com/varnwick/termvane/theme"
)

// Adapter routes the backend contract onto a terminal.Driver. It owns the
// driver handle for its whole lifetime and tracks the minimal cross-event
// state the contract needs: the active color pair and the last pressed
// mouse button. Single-threaded by contract; only the print path locks,
// to keep move/write/flush sequences from interleaving on the stream.
type Adapter struct {
	drv terminal.Driver

	currentStyle theme.ColorPair
	lastButton   event.MouseButton
	buttonHeld   bool

	// Guards the write stream across multi-command print sequences
	streamMu sync.Mutex
}

var _ backend.Backend = (*Adapter)(nil)

// Init opens the controlling terminal and activates the backend: enters
// the alternate screen (best-effort; some terminals lack it), enables raw
// mode and hides the cursor (both fatal on failure), and turns on mouse
// reporting.
func Init() (backend.Backend, error) {
	drv, err := terminal.New()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return InitWithDriver(drv)
}

// InitWithDriver activates the backend over an existing driver.
func InitWithDriver(drv terminal.Driver) (backend.Backend, error) {
	drv.EnterAltScreen() // tolerated failure, cosmetic only

	if err := drv.EnableRawMode(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	if err := drv.HideCursor(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	drv.EnableMouse()

	return &Adapter{
		drv:          drv,
		currentStyle: theme.DefaultPair,
	}, nil
}

// Finish restores the terminal state. Every step runs regardless of
// earlier failures; leaving raw mode is the single most important one to
// avoid corrupting the user's shell. Closing the driver last stops its
// input reader and resize watcher so keystrokes flow back to the shell.
func (a *Adapter) Finish() {
	a.drv.DisableMouse()
	a.drv.LeaveAltScreen()
	a.drv.ShowCursor()
	a.drv.DisableRawMode()
	a.drv.ResetColor()
	a.drv.Close()
}

// PollEvent retrieves and normalizes the next raw event. Returns false
// when the driver reports no event within its poll timeout or input has
// closed.
func (a *Adapter) PollEvent() (event.Event, bool) {
	raw, ok := a.drv.PollEvent()
	if !ok || raw.Type == terminal.EventError || raw.Type == terminal.EventClosed {
		return event.Event{}, false
	}
	return a.mapEvent(raw), true
}

func (a *Adapter) mapEvent(raw terminal.Event) event.Event {
	switch raw.Type {
	case terminal.EventKey:
		return mapKeyEvent(raw)
	case terminal.EventMouse:
		return a.mapMouseEvent(raw)
	case terminal.EventResize:
		return event.WindowResize()
	default:
		return event.Unknown(string(raw.Bytes))
	}
}

// mapMouseEvent normalizes a raw mouse transition. Press records the
// button so the later release/drag can name it; a release or drag with no
// tracked press is a protocol violation from the driver, not a state this
// layer can recover from.
func (a *Adapter) mapMouseEvent(raw terminal.Event) event.Event {
	pos := event.Pos{X: raw.MouseX, Y: raw.MouseY}

	var me event.MouseEvent
	switch {
	case raw.Button == terminal.MouseBtnWheelUp || raw.Button == terminal.MouseBtnWheelDown:
		// Both scroll directions map to WheelDown; there is no WheelUp
		// in the event vocabulary emitted by this backend.
		me = event.WheelDown()
	case raw.Action == terminal.MouseActionPress:
		btn := mapButton(raw.Button)
		a.lastButton = btn
		a.buttonHeld = true
		me = event.Press(btn)
	case raw.Action == terminal.MouseActionRelease:
		if !a.buttonHeld {
			panic("ansi: mouse release with no tracked press")
		}
		a.buttonHeld = false
		me = event.Release(a.lastButton)
	case raw.Action == terminal.MouseActionDrag:
		if !a.buttonHeld {
			panic("ansi: mouse drag with no tracked press")
		}
		me = event.Hold(a.lastButton)
	default:
		return event.Unknown("")
	}

	return event.Mouse(me, pos)
}

// fail aborts on a driver error. A terminal that stops accepting writes
// leaves no way to render anything, so the render path does not attempt
// recovery; lifecycle teardown is the one place errors are tolerated.
func fail(err error) {
	if err != nil {
		panic(fmt.Sprintf("ansi: driver failure: %v", err))
	}
}

// Refresh flushes batched output so a render pass becomes visible at once
func (a *Adapter) Refresh() {
	fail(a.drv.Flush())
}

// HasColors always reports true; there is no runtime capability probing.
// Documented limitation, not a defect.
func (a *Adapter) HasColors() bool {
	return true
}

// ScreenSize queries the driver. A terminal that cannot report its own
// dimensions is unsupported, so failure here is fatal.
func (a *Adapter) ScreenSize() (int, int) {
	w, h, err := a.drv.Size()
	if err != nil {
		panic(fmt.Sprintf("ansi: terminal cannot report its size: %v", err))
	}
	return w, h
}

// PrintAt moves the cursor, writes text and flushes
func (a *Adapter) PrintAt(pos event.Pos, text string) {
	a.streamMu.Lock()
	defer a.streamMu.Unlock()

	fail(a.drv.MoveCursor(pos.X, pos.Y))
	_, err := a.drv.Write([]byte(text))
	fail(err)
	fail(a.drv.Flush())
}

// PrintAtRep moves the cursor once, then writes text repetitions times
// contiguously. Batched; the caller's Refresh makes it visible.
func (a *Adapter) PrintAtRep(pos event.Pos, repetitions int, text string) {
	if repetitions <= 0 {
		return
	}

	a.streamMu.Lock()
	defer a.streamMu.Unlock()

	fail(a.drv.MoveCursor(pos.X, pos.Y))
	b := []byte(text)
	for i := 0; i < repetitions; i++ {
		_, err := a.drv.Write(b)
		fail(err)
	}
}

// Clear paints the whole screen with color on both planes
func (a *Adapter) Clear(color theme.Color) {
	a.applyColors(theme.ColorPair{Front: color, Back: color})
	fail(a.drv.ClearScreen())
}

// SetColor makes pair active, skipping redundant driver calls, and
// returns the previously active pair for the save/restore idiom
func (a *Adapter) SetColor(pair theme.ColorPair) theme.ColorPair {
	prev := a.currentStyle
	if prev != pair {
		a.applyColors(pair)
		a.currentStyle = pair
	}
	return prev
}

func (a *Adapter) applyColors(pair theme.ColorPair) {
	fail(a.drv.SetForeground(mapColor(pair.Front)))
	fail(a.drv.SetBackground(mapColor(pair.Back)))
}

// SetEffect enables a text attribute; Simple is a no-op
func (a *Adapter) SetEffect(effect theme.Effect) {
	switch effect {
	case theme.EffectReverse:
		fail(a.drv.SetAttr(terminal.AttrReverse))
	case theme.EffectBold:
		fail(a.drv.SetAttr(terminal.AttrBold))
	case theme.EffectItalic:
		fail(a.drv.SetAttr(terminal.AttrItalic))
	case theme.EffectUnderline:
		fail(a.drv.SetAttr(terminal.AttrUnderline))
	}
}

// UnsetEffect disables a text attribute; Simple is a no-op
func (a *Adapter) UnsetEffect(effect theme.Effect) {
	switch effect {
	case theme.EffectReverse:
		fail(a.drv.UnsetAttr(terminal.AttrReverse))
	case theme.EffectBold:
		fail(a.drv.UnsetAttr(terminal.AttrBold))
	case theme.EffectItalic:
		fail(a.drv.UnsetAttr(terminal.AttrItalic))
	case theme.EffectUnderline:
		fail(a.drv.UnsetAttr(terminal.AttrUnderline))
	}
}

// Name identifies this backend in diagnostics
func (a *Adapter) Name() string {
	return "ansi"
}
