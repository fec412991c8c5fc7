package ansi

import (
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/terminal"
)

// keySymbols maps driver key codes to toolkit key symbols. Character,
// null and unrecognized codes fall back to Tab: those are intercepted by
// the character rules in mapKeyEvent, so reaching the placeholder through
// this table means the table has a gap, not that Tab was pressed.
var keySymbols = [...]event.Key{
	terminal.KeyNone:      event.KeyTab,
	terminal.KeyChar:      event.KeyTab,
	terminal.KeyNull:      event.KeyTab,
	terminal.KeyEscape:    event.KeyEsc,
	terminal.KeyBackspace: event.KeyBackspace,
	terminal.KeyEnter:     event.KeyEnter,
	terminal.KeyTab:       event.KeyTab,
	terminal.KeyBackTab:   event.KeyTab, // normalized to Shift+Tab in mapKeyEvent
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
	terminal.KeyF2:        event.KeyF2,
	terminal.KeyF3:        event.KeyF3,
	terminal.KeyF4:        event.KeyF4,
	terminal.KeyF5:        event.KeyF5,
	terminal.KeyF6:        event.KeyF6,
	terminal.KeyF7:        event.KeyF7,
	terminal.KeyF8:        event.KeyF8,
	terminal.KeyF9:        event.KeyF9,
	terminal.KeyF10:       event.KeyF10,
	terminal.KeyF11:       event.KeyF11,
	terminal.KeyF12:       event.KeyF12,
}

func keySymbol(k terminal.KeyCode) event.Key {
	if int(k) < len(keySymbols) {
		return keySymbols[k]
	}
	return event.KeyTab
}

// mapKeyEvent normalizes a raw key event into the toolkit vocabulary.
// The checks run most-specific first because modifier bitsets overlap:
// character rules before combined modifiers, combined before single, and
// only then the bare fallbacks.
func mapKeyEvent(ev terminal.Event) event.Event {
	const (
		ctrlAlt   = terminal.ModCtrl | terminal.ModAlt
		ctrlShift = terminal.ModCtrl | terminal.ModShift
		altShift  = terminal.ModAlt | terminal.ModShift
	)

	isChar := ev.Key == terminal.KeyChar

	switch {
	// Character + single modifier
	case isChar && ev.Mod == terminal.ModCtrl && ev.Rune == 'c':
		return event.Exit()
	case isChar && ev.Mod == terminal.ModCtrl:
		return event.CtrlChar(ev.Rune)
	case isChar && ev.Mod == terminal.ModAlt:
		return event.AltChar(ev.Rune)
	case isChar && ev.Mod == terminal.ModShift:
		// Shift on a character is indistinguishable from the shifted
		// glyph itself
		return event.Char(ev.Rune)

	// Key + multiple modifiers
	case ev.Mod == ctrlAlt:
		return event.CtrlAlt(keySymbol(ev.Key))
	case ev.Mod == ctrlShift:
		return event.CtrlShift(keySymbol(ev.Key))
	case ev.Mod == altShift:
		return event.AltShift(keySymbol(ev.Key))

	// Key + single modifier
	case ev.Mod == terminal.ModCtrl:
		return event.Ctrl(keySymbol(ev.Key))
	case ev.Mod == terminal.ModAlt:
		return event.Alt(keySymbol(ev.Key))
	case ev.Mod == terminal.ModShift:
		return event.Shift(keySymbol(ev.Key))

	case isChar:
		return event.Char(ev.Rune)

	// Back-tab arrives without a Shift bit; normalize it rather than
	// pass the quirk through
	case ev.Key == terminal.KeyBackTab:
		return event.Shift(event.KeyTab)

	default:
		return event.KeyPress(keySymbol(ev.Key))
	}
}

// mapButton converts driver button identity. Wheel buttons never reach
// this; they are handled as transitions in mapMouseEvent.
func mapButton(b terminal.MouseButton) event.MouseButton {
	switch b {
	case terminal.MouseBtnLeft:
		return event.MouseLeft
	case terminal.MouseBtnMiddle:
		return event.MouseMiddle
	case terminal.MouseBtnRight:
		return event.MouseRight
	default:
		return event.MouseOther
	}
}
