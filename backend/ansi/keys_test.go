package ansi

import (
	"testing"

	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/terminal"
)

func TestMapKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  terminal.Event
		want event.Event
	}{
		{
			name: "ctrl c is exit",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'c', Mod: terminal.ModCtrl},
			want: event.Exit(),
		},
		{
			name: "ctrl char",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'x', Mod: terminal.ModCtrl},
			want: event.CtrlChar('x'),
		},
		{
			name: "alt char",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'q', Mod: terminal.ModAlt},
			want: event.AltChar('q'),
		},
		{
			name: "shift char collapses to plain char",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'A', Mod: terminal.ModShift},
			want: event.Char('A'),
		},
		{
			name: "plain char",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'j'},
			want: event.Char('j'),
		},
		{
			name: "ctrl alt key",
			raw:  terminal.Event{Key: terminal.KeyUp, Mod: terminal.ModCtrl | terminal.ModAlt},
			want: event.CtrlAlt(event.KeyUp),
		},
		{
			name: "ctrl shift key",
			raw:  terminal.Event{Key: terminal.KeyEnd, Mod: terminal.ModCtrl | terminal.ModShift},
			want: event.CtrlShift(event.KeyEnd),
		},
		{
			name: "alt shift key",
			raw:  terminal.Event{Key: terminal.KeyDelete, Mod: terminal.ModAlt | terminal.ModShift},
			want: event.AltShift(event.KeyDel),
		},
		{
			name: "ctrl key",
			raw:  terminal.Event{Key: terminal.KeyLeft, Mod: terminal.ModCtrl},
			want: event.Ctrl(event.KeyLeft),
		},
		{
			name: "alt key",
			raw:  terminal.Event{Key: terminal.KeyPageDown, Mod: terminal.ModAlt},
			want: event.Alt(event.KeyPageDown),
		},
		{
			name: "shift key",
			raw:  terminal.Event{Key: terminal.KeyF3, Mod: terminal.ModShift},
			want: event.Shift(event.KeyF3),
		},
		{
			name: "back tab normalizes to shift tab",
			raw:  terminal.Event{Key: terminal.KeyBackTab},
			want: event.Shift(event.KeyTab),
		},
		{
			name: "shifted back tab stays shift tab",
			raw:  terminal.Event{Key: terminal.KeyBackTab, Mod: terminal.ModShift},
			want: event.Shift(event.KeyTab),
		},
		{
			name: "bare escape",
			raw:  terminal.Event{Key: terminal.KeyEscape},
			want: event.KeyPress(event.KeyEsc),
		},
		{
			name: "bare enter",
			raw:  terminal.Event{Key: terminal.KeyEnter},
			want: event.KeyPress(event.KeyEnter),
		},
		{
			name: "bare tab",
			raw:  terminal.Event{Key: terminal.KeyTab},
			want: event.KeyPress(event.KeyTab),
		},
		{
			name: "function key",
			raw:  terminal.Event{Key: terminal.KeyF12},
			want: event.KeyPress(event.KeyF12),
		},
		{
			name: "modified char beyond single modifier hits placeholder",
			raw:  terminal.Event{Key: terminal.KeyChar, Rune: 'x', Mod: terminal.ModCtrl | terminal.ModAlt},
			want: event.CtrlAlt(event.KeyTab),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapKeyEvent(tt.raw)
			if got != tt.want {
				t.Errorf("mapKeyEvent(%+v) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMapKeyEventAllSymbols(t *testing.T) {
	// Every recognized key code has a symbol distinct from the Tab
	// placeholder, except Tab itself.
	codes := map[terminal.KeyCode]event.Key{
		terminal.KeyEscape:    event.KeyEsc,
		terminal.KeyBackspace: event.KeyBackspace,
		terminal.KeyEnter:     event.KeyEnter,
		terminal.KeyUp:        event.KeyUp,
		terminal.KeyDown:      event.KeyDown,
		terminal.KeyLeft:      event.KeyLeft,
		terminal.KeyRight:     event.KeyRight,
		terminal.KeyHome:      event.KeyHome,
		terminal.KeyEnd:       event.KeyEnd,
		terminal.KeyPageUp:    event.KeyPageUp,
		terminal.KeyPageDown:  event.KeyPageDown,
		terminal.KeyInsert:    event.KeyIns,
		terminal.KeyDelete:    event.KeyDel,
		terminal.KeyF1:        event.KeyF1,
		terminal.KeyF6:        event.KeyF6,
		terminal.KeyF12:       event.KeyF12,
	}
	for code, want := range codes {
		got := mapKeyEvent(terminal.Event{Key: code})
		if got != event.KeyPress(want) {
			t.Errorf("key %d mapped to %s, want Key(%s)", code, got, want)
		}
	}
}

func TestMapButton(t *testing.T) {
	tests := []struct {
		in   terminal.MouseButton
		want event.MouseButton
	}{
		{terminal.MouseBtnLeft, event.MouseLeft},
		{terminal.MouseBtnMiddle, event.MouseMiddle},
		{terminal.MouseBtnRight, event.MouseRight},
		{terminal.MouseBtnNone, event.MouseOther},
	}
	for _, tt := range tests {
		if got := mapButton(tt.in); got != tt.want {
			t.Errorf("mapButton(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
