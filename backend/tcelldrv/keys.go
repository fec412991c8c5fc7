package tcelldrv

import (
	"github.com/gdamore/tcell/v2"

	"github.com/varnwick/termvane/event"
)

// specialKeys maps tcell named keys to toolkit symbols. Keys absent here
// are handled separately: runes, back-tab and the ctrl-letter range.
var specialKeys = map[tcell.Key]event.Key{
	tcell.KeyEsc:        event.KeyEsc,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
	tcell.KeyInsert:     event.KeyIns,
	tcell.KeyDelete:     event.KeyDel,
	tcell.KeyF1:         event.KeyF1,
	tcell.KeyF2:         event.KeyF2,
	tcell.KeyF3:         event.KeyF3,
	tcell.KeyF4:         event.KeyF4,
	tcell.KeyF5:         event.KeyF5,
	tcell.KeyF6:         event.KeyF6,
	tcell.KeyF7:         event.KeyF7,
	tcell.KeyF8:         event.KeyF8,
	tcell.KeyF9:         event.KeyF9,
	tcell.KeyF10:        event.KeyF10,
	tcell.KeyF11:        event.KeyF11,
	tcell.KeyF12:        event.KeyF12,
}

// mapKeyEvent normalizes a tcell key event into the toolkit vocabulary.
func mapKeyEvent(ev *tcell.EventKey) event.Event {
	mods := ev.Modifiers()

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case mods&tcell.ModAlt != 0:
			return event.AltChar(r)
		default:
			// Shift is already folded into the rune
			return event.Char(r)
		}
	}

	// Back-tab means Shift+Tab whatever the reported modifiers say
	if ev.Key() == tcell.KeyBacktab {
		return event.Shift(event.KeyTab)
	}

	if sym, ok := specialKeys[ev.Key()]; ok {
		return modifiedKey(sym, mods)
	}

	// Ctrl+letter arrives as a dedicated key code, not a rune. Tab, Enter
	// and Escape share codes in this range and were already matched above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		if r == 'c' {
			return event.Exit()
		}
		return event.CtrlChar(r)
	}

	return event.Unknown(ev.Name())
}

// modifiedKey wraps a key symbol in the constructor matching the modifier
// combination, most-specific first.
func modifiedKey(sym event.Key, mods tcell.ModMask) event.Event {
	ctrl := mods&tcell.ModCtrl != 0
	alt := mods&tcell.ModAlt != 0
	shift := mods&tcell.ModShift != 0

	switch {
	case ctrl && alt:
		return event.CtrlAlt(sym)
	case ctrl && shift:
		return event.CtrlShift(sym)
	case alt && shift:
		return event.AltShift(sym)
	case ctrl:
		return event.Ctrl(sym)
	case alt:
		return event.Alt(sym)
	case shift:
		return event.Shift(sym)
	default:
		return event.KeyPress(sym)
	}
}
