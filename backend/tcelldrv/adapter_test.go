package tcelldrv

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/varnwick/termvane/backend"
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/theme"
)

func newTestBackend(t *testing.T) (backend.Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	b, err := InitWithScreen(screen)
	if err != nil {
		t.Fatalf("InitWithScreen: %v", err)
	}
	t.Cleanup(b.Finish)
	return b, screen
}

// nextEvent polls until a non-resize event arrives. Screens post a resize
// event on init, which most tests do not care about.
func nextEvent(t *testing.T, b backend.Backend) event.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := b.PollEvent()
		if !ok {
			continue
		}
		if ev.Type == event.TypeWindowResize {
			continue
		}
		return ev
	}
	t.Fatal("timed out waiting for an event")
	return event.Event{}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mods tcell.ModMask
		want event.Event
	}{
		{"plain rune", tcell.KeyRune, 'x', tcell.ModNone, event.Char('x')},
		{"shifted rune stays plain", tcell.KeyRune, 'X', tcell.ModShift, event.Char('X')},
		{"alt rune", tcell.KeyRune, 'f', tcell.ModAlt, event.AltChar('f')},
		{"ctrl c is exit", tcell.KeyCtrlC, 0, tcell.ModCtrl, event.Exit()},
		{"ctrl letter", tcell.KeyCtrlX, 0, tcell.ModCtrl, event.CtrlChar('x')},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, event.KeyPress(event.KeyEsc)},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, event.KeyPress(event.KeyEnter)},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, event.KeyPress(event.KeyTab)},
		{"back tab is shift tab", tcell.KeyBacktab, 0, tcell.ModNone, event.Shift(event.KeyTab)},
		{"arrow", tcell.KeyUp, 0, tcell.ModNone, event.KeyPress(event.KeyUp)},
		{"ctrl arrow", tcell.KeyLeft, 0, tcell.ModCtrl, event.Ctrl(event.KeyLeft)},
		{"alt home", tcell.KeyHome, 0, tcell.ModAlt, event.Alt(event.KeyHome)},
		{"shift f5", tcell.KeyF5, 0, tcell.ModShift, event.Shift(event.KeyF5)},
		{"ctrl alt delete", tcell.KeyDelete, 0, tcell.ModCtrl | tcell.ModAlt, event.CtrlAlt(event.KeyDel)},
		{"ctrl shift end", tcell.KeyEnd, 0, tcell.ModCtrl | tcell.ModShift, event.CtrlShift(event.KeyEnd)},
		{"function key", tcell.KeyF12, 0, tcell.ModNone, event.KeyPress(event.KeyF12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, screen := newTestBackend(t)
			screen.InjectKey(tt.key, tt.r, tt.mods)
			got := nextEvent(t, b)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMouseTransitions(t *testing.T) {
	b, screen := newTestBackend(t)

	screen.InjectMouse(3, 4, tcell.Button1, tcell.ModNone)
	got := nextEvent(t, b)
	want := event.Mouse(event.Press(event.MouseLeft), event.Pos{X: 3, Y: 4})
	if got != want {
		t.Errorf("press: got %s, want %s", got, want)
	}

	screen.InjectMouse(5, 4, tcell.Button1, tcell.ModNone)
	got = nextEvent(t, b)
	want = event.Mouse(event.Hold(event.MouseLeft), event.Pos{X: 5, Y: 4})
	if got != want {
		t.Errorf("drag: got %s, want %s", got, want)
	}

	screen.InjectMouse(5, 4, tcell.ButtonNone, tcell.ModNone)
	got = nextEvent(t, b)
	want = event.Mouse(event.Release(event.MouseLeft), event.Pos{X: 5, Y: 4})
	if got != want {
		t.Errorf("release: got %s, want %s", got, want)
	}
}

func TestMouseSecondaryButtons(t *testing.T) {
	b, screen := newTestBackend(t)

	screen.InjectMouse(0, 0, tcell.Button2, tcell.ModNone)
	got := nextEvent(t, b)
	if got.Mouse != event.Press(event.MouseRight) {
		t.Errorf("button2: got %s, want right press", got)
	}
	screen.InjectMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	nextEvent(t, b)

	screen.InjectMouse(0, 0, tcell.Button3, tcell.ModNone)
	got = nextEvent(t, b)
	if got.Mouse != event.Press(event.MouseMiddle) {
		t.Errorf("button3: got %s, want middle press", got)
	}
}

func TestBothScrollDirectionsAreWheelDown(t *testing.T) {
	b, screen := newTestBackend(t)

	screen.InjectMouse(1, 1, tcell.WheelUp, tcell.ModNone)
	got := nextEvent(t, b)
	if got.Mouse != event.WheelDown() {
		t.Errorf("scroll up: got %s, want WheelDown", got)
	}

	screen.InjectMouse(1, 1, tcell.WheelDown, tcell.ModNone)
	got = nextEvent(t, b)
	if got.Mouse != event.WheelDown() {
		t.Errorf("scroll down: got %s, want WheelDown", got)
	}
}

func TestPrintAtWritesCells(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(20, 5)

	b.PrintAt(event.Pos{X: 2, Y: 1}, "ok")

	r, _, _, _ := screen.GetContent(2, 1)
	if r != 'o' {
		t.Errorf("cell 2,1 = %q, want 'o'", r)
	}
	r, _, _, _ = screen.GetContent(3, 1)
	if r != 'k' {
		t.Errorf("cell 3,1 = %q, want 'k'", r)
	}
}

func TestPrintAtRepRepeats(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(20, 5)

	b.PrintAtRep(event.Pos{X: 0, Y: 0}, 3, "ab")
	b.Refresh()

	want := "ababab"
	for i, expected := range want {
		r, _, _, _ := screen.GetContent(i, 0)
		if r != expected {
			t.Errorf("cell %d,0 = %q, want %q", i, r, expected)
		}
	}
}

func TestSetColorAppliesToCells(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(20, 5)

	pair := theme.ColorPair{
		Front: theme.Light(theme.Yellow),
		Back:  theme.Dark(theme.Blue),
	}
	prev := b.SetColor(pair)
	if prev != theme.DefaultPair {
		t.Errorf("first SetColor returned %+v, want default pair", prev)
	}

	b.PrintAt(event.Pos{X: 0, Y: 0}, "x")
	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("foreground = %v, want yellow", fg)
	}
	if bg != tcell.ColorNavy {
		t.Errorf("background = %v, want navy", bg)
	}
}

func TestSetColorSaveRestore(t *testing.T) {
	b, _ := newTestBackend(t)

	first := theme.ColorPair{Front: theme.Dark(theme.Red), Back: theme.TerminalDefault}
	second := theme.ColorPair{Front: theme.Light(theme.White), Back: theme.Dark(theme.Black)}

	b.SetColor(first)
	saved := b.SetColor(second)
	if saved != first {
		t.Fatalf("SetColor returned %+v, want %+v", saved, first)
	}
	if restored := b.SetColor(saved); restored != second {
		t.Errorf("restore returned %+v, want %+v", restored, second)
	}
}

func TestClearFillsScreen(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(10, 3)

	b.Clear(theme.Dark(theme.Green))
	b.Refresh()

	_, _, style, _ := screen.GetContent(4, 1)
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorGreen || bg != tcell.ColorGreen {
		t.Errorf("cleared cell style = %v/%v, want green/green", fg, bg)
	}
}

func TestEffectsApplyToCells(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(10, 3)

	b.SetEffect(theme.EffectBold)
	b.PrintAt(event.Pos{X: 0, Y: 0}, "b")
	b.UnsetEffect(theme.EffectBold)
	b.PrintAt(event.Pos{X: 1, Y: 0}, "n")

	_, _, style, _ := screen.GetContent(0, 0)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("first cell is not bold")
	}
	_, _, style, _ = screen.GetContent(1, 0)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold != 0 {
		t.Error("second cell is still bold")
	}
}

func TestScreenSize(t *testing.T) {
	b, screen := newTestBackend(t)
	screen.SetSize(42, 17)

	w, h := b.ScreenSize()
	if w != 42 || h != 17 {
		t.Errorf("ScreenSize = %d,%d, want 42,17", w, h)
	}
}

func TestResizeEvent(t *testing.T) {
	b, screen := newTestBackend(t)

	screen.SetSize(100, 30)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok := b.PollEvent()
		if ok && ev == event.WindowResize() {
			return
		}
	}
	t.Fatal("no resize event after SetSize")
}

func TestHasColorsAndName(t *testing.T) {
	b, _ := newTestBackend(t)

	if !b.HasColors() {
		t.Error("HasColors = false, want true")
	}
	if b.Name() != "tcell" {
		t.Errorf("Name = %q, want %q", b.Name(), "tcell")
	}
}
