package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"
	"time"
)

// defaultPollTimeout bounds how long PollEvent blocks before reporting
// "no event". Callers loop on PollEvent, so this only sets the latency of
// shutdown checks, not input latency.
const defaultPollTimeout = 100 * time.Millisecond

// Driver is the low-level command surface the backend adapters drive.
// It exists as an interface so adapters can be tested against a recording
// fake instead of a live terminal.
type Driver interface {
	// Lifecycle
	EnableRawMode() error
	DisableRawMode() error
	EnterAltScreen() error
	LeaveAltScreen() error
	HideCursor() error
	ShowCursor() error
	EnableMouse() error
	DisableMouse() error
	Close() error

	// Capabilities
	Size() (width, height int, err error)

	// Paint state
	SetForeground(Color) error
	SetBackground(Color) error
	ResetColor() error
	SetAttr(Attr) error
	UnsetAttr(Attr) error

	// Output. MoveCursor and Write batch into the output buffer; Flush
	// makes batched output visible. ClearScreen takes effect immediately.
	MoveCursor(x, y int) error
	ClearScreen() error
	Write(p []byte) (int, error)
	Flush() error

	// Input. Blocks until an event arrives or the poll timeout elapses;
	// the second result is false when no event was retrieved.
	PollEvent() (Event, bool)
}

// Attr is a driver-level text attribute
type Attr uint8

const (
	AttrBold Attr = iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
)

// SGR set/reset parameter codes per attribute. Bold and dim share the
// normal-intensity reset (22).
var attrCodes = [...]struct{ on, off int }{
	AttrBold:      {1, 22},
	AttrDim:       {2, 22},
	AttrItalic:    {3, 23},
	AttrUnderline: {4, 24},
	AttrBlink:     {5, 25},
	AttrReverse:   {7, 27},
}

// Term implements Driver over a unix tty
type Term struct {
	tty       *tty
	colorMode ColorMode

	mu sync.Mutex
	w  *bufio.Writer

	input       *inputReader
	resizeCh    chan Event
	pollTimeout time.Duration

	closed bool
}

var _ Driver = (*Term)(nil)

// New opens the controlling terminal (/dev/tty, falling back to stdio)
// and starts the input and resize watchers. It does not change terminal
// modes; EnableRawMode and friends do that explicitly.
func New() (*Term, error) {
	return newTerm(openTTY())
}

// NewWithFiles builds a driver over an explicit device pair, e.g. a pty
// opened by tests.
func NewWithFiles(in, out *os.File) (*Term, error) {
	return newTerm(newTTY(in, out))
}

func newTerm(t *tty) (*Term, error) {
	term := &Term{
		tty:         t,
		colorMode:   DetectColorMode(),
		w:           bufio.NewWriterSize(t.out, 8192),
		resizeCh:    make(chan Event, 1),
		pollTimeout: defaultPollTimeout,
	}

	term.input = newInputReader(t)
	term.input.start()

	t.notifyResize(func(w, h int) {
		ev := Event{Type: EventResize, Width: w, Height: h}
		// Latest size wins; never block the signal watcher
		select {
		case term.resizeCh <- ev:
		default:
			select {
			case <-term.resizeCh:
			default:
			}
			select {
			case term.resizeCh <- ev:
			default:
			}
		}
	})

	return term, nil
}

// SetPollTimeout overrides the pseudo-timeout after which PollEvent
// reports "no event"
func (t *Term) SetPollTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pollTimeout = d
}

// ColorMode returns the detected color capability
func (t *Term) ColorMode() ColorMode {
	return t.colorMode
}

// EnableRawMode puts the input device into raw mode
func (t *Term) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tty.makeRaw()
}

// DisableRawMode restores the input device to its original mode
func (t *Term) DisableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tty.restore()
}

// EnterAltScreen switches to the alternate screen buffer
func (t *Term) EnterAltScreen() error {
	return t.writeNow(csiAltScreenEnter)
}

// LeaveAltScreen restores the primary screen buffer
func (t *Term) LeaveAltScreen() error {
	return t.writeNow(csiAltScreenExit)
}

// HideCursor makes the cursor invisible
func (t *Term) HideCursor() error {
	return t.writeNow(csiCursorHide)
}

// ShowCursor makes the cursor visible
func (t *Term) ShowCursor() error {
	return t.writeNow(csiCursorShow)
}

// EnableMouse turns on SGR mouse reporting with click and drag tracking
func (t *Term) EnableMouse() error {
	return t.writeNow(csiMouseOn)
}

// DisableMouse turns mouse reporting back off
func (t *Term) DisableMouse() error {
	return t.writeNow(csiMouseOff)
}

// Size returns current terminal dimensions
func (t *Term) Size() (int, int, error) {
	return t.tty.size()
}

// SetForeground sets the foreground color, effective immediately
func (t *Term) SetForeground(c Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	writeFg(t.w, c, t.colorMode)
	return t.w.Flush()
}

// SetBackground sets the background color, effective immediately
func (t *Term) SetBackground(c Color) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	writeBg(t.w, c, t.colorMode)
	return t.w.Flush()
}

// ResetColor resets colors and attributes to the terminal default
func (t *Term) ResetColor() error {
	return t.writeNow(csiSGR0)
}

// SetAttr enables a text attribute, effective immediately
func (t *Term) SetAttr(a Attr) error {
	return t.writeSGR(attrCodes[a].on)
}

// UnsetAttr disables a text attribute, effective immediately
func (t *Term) UnsetAttr(a Attr) error {
	return t.writeSGR(attrCodes[a].off)
}

func (t *Term) writeSGR(code int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w.Write(csi)
	writeInt(t.w, code)
	t.w.WriteByte('m')
	return t.w.Flush()
}

// MoveCursor positions the cursor (0-indexed), batched
func (t *Term) MoveCursor(x, y int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	writeCursorPos(t.w, x, y)
	return nil
}

// ClearScreen clears the whole screen using the current paint state,
// effective immediately
func (t *Term) ClearScreen() error {
	return t.writeNow(csiClear)
}

// Write batches raw bytes into the output buffer
func (t *Term) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Write(p)
}

// Flush makes all batched output visible
func (t *Term) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.w.Flush()
}

// PollEvent blocks until an input or resize event arrives, or the poll
// timeout elapses. Returns false on timeout or when input has closed.
func (t *Term) PollEvent() (Event, bool) {
	t.mu.Lock()
	timeout := t.pollTimeout
	t.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.input.events():
		if !ok {
			return Event{Type: EventClosed}, false
		}
		if ev.Type == EventClosed {
			return ev, false
		}
		return ev, true
	case ev := <-t.resizeCh:
		return ev, true
	case <-timer.C:
		return Event{}, false
	}
}

// Close stops the watchers and releases the device handle. Raw mode is
// restored if still active.
func (t *Term) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	t.input.stop()
	t.tty.close()
	return nil
}

// writeNow writes a control sequence and flushes immediately
func (t *Term) writeNow(seq []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.w.Write(seq); err != nil {
		return err
	}
	return t.w.Flush()
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when the normal teardown path cannot run.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset
	resetTerminalMode()
}
