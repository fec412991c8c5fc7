package terminal

// EventType distinguishes raw input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventUnknown // valid but unrecognized escape sequence
	EventError   // read error
	EventClosed  // input closed
)

// Event is a raw driver event, prior to any toolkit normalization.
type Event struct {
	Type EventType

	// Key event fields
	Key  KeyCode
	Rune rune // valid when Key == KeyChar
	Mod  Modifier

	// Mouse event fields
	MouseX int
	MouseY int
	Button MouseButton
	Action MouseAction

	// Resize event fields
	Width  int
	Height int

	// Unrecognized sequence bytes (EventUnknown)
	Bytes []byte

	// Read failure (EventError)
	Err error
}
