package terminal

import (
	"sync"
	"time"
)

// byteSource is the raw input side of the tty, separated out so the parser
// can be exercised without a live terminal.
type byteSource interface {
	read(stopCh <-chan struct{}) ([]byte, error)
}

// inputReader assembles the raw byte stream into driver events
type inputReader struct {
	src     byteSource
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Persistent buffer for stream assembly; partial escape or UTF-8
	// sequences survive across reads
	buf []byte
}

// escapeTimeout is how long a lone ESC byte may sit in the buffer before
// it is emitted as a standalone Escape key rather than a sequence start
const escapeTimeout = 50 * time.Millisecond

func newInputReader(src byteSource) *inputReader {
	return &inputReader{
		src:     src,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Wait with timeout - don't block forever if the read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

// events returns the event channel
func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.src.read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout or empty read; emit a pending lone ESC
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.sendEvent(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)

		consumed := r.parseInput(r.buf)

		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

// parseInput parses raw bytes into events and returns bytes consumed,
// stopping at an incomplete trailing sequence
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyChar, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			if i+1 >= n {
				return i // wait for more data
			}
			consumed, ev := r.parseEscape(data[i:])
			if consumed == 0 {
				return i // incomplete sequence
			}
			r.sendEvent(ev)
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			r.sendEvent(parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			// Invalid start byte, skip
			i++
			continue
		}
		if i+seqLen > n {
			return i // incomplete UTF-8
		}
		rn, size := decodeRune(data[i:])
		r.sendEvent(Event{Type: EventKey, Key: KeyChar, Rune: rn})
		i += size
	}
	return i
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func (r *inputReader) parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Type: EventKey, Key: KeyEscape, Mod: ModAlt}
	}

	if data[1] == '[' {
		return r.parseCSI(data)
	}
	if data[1] == 'O' {
		return r.parseSS3(data)
	}

	// Alt+control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Mod |= ModAlt
		return 2, ev
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, Event{Type: EventKey, Key: KeyChar, Rune: rune(data[1]), Mod: ModAlt}
	}

	return 0, Event{}
}

// parseCSI parses a CSI sequence without allocation
func (r *inputReader) parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// SGR mouse: ESC [ < Btn ; X ; Y M/m
	if data[2] == '<' {
		return r.parseSGRMouse(data)
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			return 0, Event{}
		}
		end++
	}

	if end <= 2 || end > maxScan {
		return 0, Event{}
	}

	lastByte := data[end-1]
	if !((lastByte >= 'A' && lastByte <= 'Z') || (lastByte >= 'a' && lastByte <= 'z') || lastByte == '~') {
		return 0, Event{} // no terminator yet
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Type: EventKey, Key: key, Mod: mod}
	}

	// Valid CSI syntax, unrecognized meaning
	seq := make([]byte, end)
	copy(seq, data[:end])
	return end, Event{Type: EventUnknown, Bytes: seq}
}

// parseSS3 parses an SS3 sequence; consumes unknown ones to keep the
// stream aligned
func (r *inputReader) parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Mod: mod}
	}
	seq := make([]byte, 3)
	copy(seq, data[:3])
	return 3, Event{Type: EventUnknown, Bytes: seq}
}

// parseControl maps control bytes to driver key events. Letters surface as
// Char plus the Control modifier so character-level dispatch sees them;
// Tab, Enter, Backspace and Escape keep their dedicated codes.
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyNull}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	if b <= 0x1a {
		// Ctrl+A .. Ctrl+Z
		return Event{Type: EventKey, Key: KeyChar, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	// 0x1c-0x1f: Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
	return Event{Type: EventKey, Key: KeyChar, Rune: rune(b + 0x40), Mod: ModCtrl}
}

// parseSGRMouse parses mouse SGR sequences
func (r *inputReader) parseSGRMouse(data []byte) (int, Event) {
	// Format: ESC [ < Btn ; X ; Y M/m
	// Minimum: ESC [ < 0 ; 1 ; 1 M = 9 bytes
	if len(data) < 9 {
		return 0, Event{}
	}

	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) || (data[end] != 'M' && data[end] != 'm') {
		return 0, Event{}
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return 0, Event{}
	}

	ev := Event{Type: EventMouse, MouseX: x - 1, MouseY: y - 1} // 0-indexed

	// Button byte layout:
	// bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
	// bit 5 (32): motion, bit 6 (64): scroll
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	if isScroll {
		if buttonID == 0 {
			ev.Button = MouseBtnWheelUp
		} else {
			ev.Button = MouseBtnWheelDown
		}
		ev.Action = MouseActionPress // scroll is instantaneous
	} else {
		switch buttonID {
		case 0:
			ev.Button = MouseBtnLeft
		case 1:
			ev.Button = MouseBtnMiddle
		case 2:
			ev.Button = MouseBtnRight
		case 3:
			ev.Button = MouseBtnNone // release reported without identity
		}

		if data[end] == 'M' {
			if isMotion {
				ev.Action = MouseActionDrag
			} else {
				ev.Action = MouseActionPress
			}
		} else {
			ev.Action = MouseActionRelease
		}
	}

	// Modifiers ride along in the button byte
	if btn&4 != 0 {
		ev.Mod |= ModShift
	}
	if btn&8 != 0 {
		ev.Mod |= ModAlt
	}
	if btn&16 != 0 {
		ev.Mod |= ModCtrl
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y"
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0

	for _, b := range data {
		if b == ';' {
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			if val > 9999 {
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop
	}
}

// utf8SeqLen returns expected UTF-8 sequence length from a start byte,
// 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0
}

// decodeRune decodes the first UTF-8 rune from data
func decodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	b := data[0]
	if b < 0x80 {
		return rune(b), 1
	}

	var size int
	var min rune
	var r rune

	switch {
	case b&0xe0 == 0xc0:
		size = 2
		min = 0x80
		r = rune(b & 0x1f)
	case b&0xf0 == 0xe0:
		size = 3
		min = 0x800
		r = rune(b & 0x0f)
	case b&0xf8 == 0xf0:
		size = 4
		min = 0x10000
		r = rune(b & 0x07)
	default:
		return 0xFFFD, 1
	}

	if len(data) < size {
		return 0xFFFD, 1
	}

	for i := 1; i < size; i++ {
		if data[i]&0xc0 != 0x80 {
			return 0xFFFD, 1
		}
		r = r<<6 | rune(data[i]&0x3f)
	}

	if r < min {
		return 0xFFFD, 1 // overlong encoding
	}

	return r, size
}
