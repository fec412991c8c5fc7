// Package event defines the closed event vocabulary the toolkit consumes.
// Backends normalize heterogeneous driver input (key codes, modifier
// bitsets, mouse transitions) into these values; nothing outside a backend
// should ever see a raw driver event.
package event

import "fmt"

// Key is a non-printable key symbol, disjoint from character input.
type Key uint8

const (
	KeyEsc Key = iota
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDel
	KeyIns
	KeyEnter
	KeyTab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// F returns the symbol for function key n. n must be in [1,12].
func F(n uint8) Key {
	if n < 1 || n > 12 {
		panic(fmt.Sprintf("event: unknown function key F%d", n))
	}
	return KeyF1 + Key(n-1)
}

// String returns the key symbol name.
func (k Key) String() string {
	switch k {
	case KeyEsc:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyDel:
		return "Del"
	case KeyIns:
		return "Ins"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	default:
		if k >= KeyF1 && k <= KeyF12 {
			return fmt.Sprintf("F%d", k-KeyF1+1)
		}
		return "Unknown"
	}
}

// Pos is a column/row position on screen.
type Pos struct {
	X int
	Y int
}

// MouseButton identifies which mouse button an event refers to.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseOther
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	case MouseOther:
		return "Other"
	default:
		return "None"
	}
}

// MouseKind tags the variant held by a MouseEvent.
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseHold
	MouseWheelUp
	MouseWheelDown
)

// MouseEvent is a normalized mouse transition. Comparable with ==.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
}

// Press reports button going down.
func Press(b MouseButton) MouseEvent { return MouseEvent{Kind: MousePress, Button: b} }

// Release reports button coming back up.
func Release(b MouseButton) MouseEvent { return MouseEvent{Kind: MouseRelease, Button: b} }

// Hold reports motion while button stays down.
func Hold(b MouseButton) MouseEvent { return MouseEvent{Kind: MouseHold, Button: b} }

// WheelUp reports upward scroll.
func WheelUp() MouseEvent { return MouseEvent{Kind: MouseWheelUp} }

// WheelDown reports downward scroll.
func WheelDown() MouseEvent { return MouseEvent{Kind: MouseWheelDown} }

// String returns a readable form of the mouse event.
func (m MouseEvent) String() string {
	switch m.Kind {
	case MousePress:
		return "Press(" + m.Button.String() + ")"
	case MouseRelease:
		return "Release(" + m.Button.String() + ")"
	case MouseHold:
		return "Hold(" + m.Button.String() + ")"
	case MouseWheelUp:
		return "WheelUp"
	default:
		return "WheelDown"
	}
}

// Type tags the variant held by an Event.
type Type uint8

const (
	TypeChar Type = iota
	TypeCtrlChar
	TypeAltChar
	TypeKey
	TypeCtrl
	TypeAlt
	TypeShift
	TypeCtrlAlt
	TypeCtrlShift
	TypeAltShift
	TypeMouse
	TypeWindowResize
	TypeExit
	TypeUnknown
)

// Event is one normalized input event. Only the fields relevant to the
// variant tag carry meaning; unknown byte payloads are stored as a string
// so events stay comparable with ==.
type Event struct {
	Type   Type
	Rune   rune       // Char, CtrlChar, AltChar
	Key    Key        // Key, Ctrl, Alt, Shift, CtrlAlt, CtrlShift, AltShift
	Mouse  MouseEvent // Mouse
	Pos    Pos        // Mouse: raw column/row
	Offset Pos        // Mouse: viewport offset, always zero at this layer
	Seq    string     // Unknown: raw bytes, possibly empty
}

// Char is plain character input, including shifted glyphs.
func Char(r rune) Event { return Event{Type: TypeChar, Rune: r} }

// CtrlChar is Control plus a printable character other than 'c'.
func CtrlChar(r rune) Event { return Event{Type: TypeCtrlChar, Rune: r} }

// AltChar is Alt plus a printable character.
func AltChar(r rune) Event { return Event{Type: TypeAltChar, Rune: r} }

// KeyPress is a bare non-printable key.
func KeyPress(k Key) Event { return Event{Type: TypeKey, Key: k} }

// Ctrl is Control plus a non-printable key.
func Ctrl(k Key) Event { return Event{Type: TypeCtrl, Key: k} }

// Alt is Alt plus a non-printable key.
func Alt(k Key) Event { return Event{Type: TypeAlt, Key: k} }

// Shift is Shift plus a non-printable key.
func Shift(k Key) Event { return Event{Type: TypeShift, Key: k} }

// CtrlAlt is Control+Alt plus a non-printable key.
func CtrlAlt(k Key) Event { return Event{Type: TypeCtrlAlt, Key: k} }

// CtrlShift is Control+Shift plus a non-printable key.
func CtrlShift(k Key) Event { return Event{Type: TypeCtrlShift, Key: k} }

// AltShift is Alt+Shift plus a non-printable key.
func AltShift(k Key) Event { return Event{Type: TypeAltShift, Key: k} }

// Mouse wraps a normalized mouse transition with its screen position.
func Mouse(m MouseEvent, pos Pos) Event {
	return Event{Type: TypeMouse, Mouse: m, Pos: pos}
}

// WindowResize reports that the terminal changed size; consumers re-query
// the backend for the new dimensions.
func WindowResize() Event { return Event{Type: TypeWindowResize} }

// Exit is the interrupt request (Control+'c').
func Exit() Event { return Event{Type: TypeExit} }

// Unknown carries input the backend could not classify.
func Unknown(seq string) Event { return Event{Type: TypeUnknown, Seq: seq} }

// String returns a readable form, mostly for diagnostics and test output.
func (e Event) String() string {
	switch e.Type {
	case TypeChar:
		return fmt.Sprintf("Char(%q)", e.Rune)
	case TypeCtrlChar:
		return fmt.Sprintf("CtrlChar(%q)", e.Rune)
	case TypeAltChar:
		return fmt.Sprintf("AltChar(%q)", e.Rune)
	case TypeKey:
		return "Key(" + e.Key.String() + ")"
	case TypeCtrl:
		return "Ctrl(" + e.Key.String() + ")"
	case TypeAlt:
		return "Alt(" + e.Key.String() + ")"
	case TypeShift:
		return "Shift(" + e.Key.String() + ")"
	case TypeCtrlAlt:
		return "CtrlAlt(" + e.Key.String() + ")"
	case TypeCtrlShift:
		return "CtrlShift(" + e.Key.String() + ")"
	case TypeAltShift:
		return "AltShift(" + e.Key.String() + ")"
	case TypeMouse:
		return fmt.Sprintf("Mouse(%s at %d,%d)", e.Mouse, e.Pos.X, e.Pos.Y)
	case TypeWindowResize:
		return "WindowResize"
	case TypeExit:
		return "Exit"
	default:
		return fmt.Sprintf("Unknown(%q)", e.Seq)
	}
}
