package terminal

// KeyCode identifies a parsed input key at the driver level. Printable
// input (including multibyte runes) arrives as KeyChar with the rune in
// Event.Rune.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyChar
	KeyNull
	KeyEscape
	KeyBackspace
	KeyEnter
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
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

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// escapeSequence maps an escape sequence tail to a key.
// Key of the map: bytes after ESC [ (e.g. "A" for up arrow).
type escapeSequence struct {
	key KeyCode
	mod Modifier
}

// Base CSI sequences (ESC [ ...) without modifier parameters.
var csiBase = map[string]escapeSequence{
	// Arrow keys
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},

	// Back-tab. Reported without a Shift bit by the terminal; the
	// backend key mapper normalizes it to Shift+Tab.
	"Z": {KeyBackTab, ModNone},

	// Navigation
	"H":  {KeyHome, ModNone},
	"F":  {KeyEnd, ModNone},
	"1~": {KeyHome, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},
	"7~": {KeyHome, ModNone},
	"8~": {KeyEnd, ModNone},

	// Function keys (xterm)
	"11~": {KeyF1, ModNone},
	"12~": {KeyF2, ModNone},
	"13~": {KeyF3, ModNone},
	"14~": {KeyF4, ModNone},
	"15~": {KeyF5, ModNone},
	"17~": {KeyF6, ModNone},
	"18~": {KeyF7, ModNone},
	"19~": {KeyF8, ModNone},
	"20~": {KeyF9, ModNone},
	"21~": {KeyF10, ModNone},
	"23~": {KeyF11, ModNone},
	"24~": {KeyF12, ModNone},

	// Function keys (vt style)
	"[A": {KeyF1, ModNone},
	"[B": {KeyF2, ModNone},
	"[C": {KeyF3, ModNone},
	"[D": {KeyF4, ModNone},
	"[E": {KeyF5, ModNone},
}

// SS3 sequences (ESC O ...)
var ss3Map = map[string]escapeSequence{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
	"P": {KeyF1, ModNone},
	"Q": {KeyF2, ModNone},
	"R": {KeyF3, ModNone},
	"S": {KeyF4, ModNone},
}

var csiMap = buildCSIMap()

// buildCSIMap extends the base table with xterm modifier-parameter
// variants. The xterm encoding is mod = 1 + (shift?1) + (alt?2) + (ctrl?4),
// so Modifier(mod-1) recovers the bitset directly.
func buildCSIMap() map[string]escapeSequence {
	m := make(map[string]escapeSequence, 256)
	for seq, e := range csiBase {
		m[seq] = e
	}

	// ESC [ 1 ; mod <final> for arrows, Home/End and F1-F4
	finals := map[byte]KeyCode{
		'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
		'H': KeyHome, 'F': KeyEnd,
		'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
	}
	// ESC [ base ; mod ~ for navigation and F5-F12
	tildes := map[string]KeyCode{
		"2": KeyInsert, "3": KeyDelete, "5": KeyPageUp, "6": KeyPageDown,
		"15": KeyF5, "17": KeyF6, "18": KeyF7, "19": KeyF8,
		"20": KeyF9, "21": KeyF10, "23": KeyF11, "24": KeyF12,
	}

	for mod := 2; mod <= 8; mod++ {
		mc := byte('0' + mod)
		for final, key := range finals {
			m["1;"+string(mc)+string(final)] = escapeSequence{key, Modifier(mod - 1)}
		}
		for base, key := range tildes {
			m[base+";"+string(mc)+"~"] = escapeSequence{key, Modifier(mod - 1)}
		}
	}
	return m
}

// lookupCSI performs zero-alloc map lookup; the string([]byte) conversion
// inline in map access does not allocate.
func lookupCSI(seq []byte) (KeyCode, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (KeyCode, Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}
