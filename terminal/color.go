package terminal

import (
	"bufio"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// Color variant tags
const (
	colorDefault uint8 = iota // reset to terminal default
	colorNamed                // 16-color ANSI, idx 0-15
	colorPalette              // 256-color palette, idx 0-255
	colorRGB                  // 24-bit
)

// Color is the driver's color representation: a named ANSI color, a
// 256-palette index, a true-color triple, or an explicit reset to the
// terminal default.
type Color struct {
	kind    uint8
	idx     uint8
	r, g, b uint8
}

// Default resets to the terminal's configured default color.
var Default = Color{kind: colorDefault}

// Named ANSI colors, in palette order. Indices 0-7 are the dark variants,
// 8-15 the bright ones.
var (
	Black       = named(0)
	DarkRed     = named(1)
	DarkGreen   = named(2)
	DarkYellow  = named(3)
	DarkBlue    = named(4)
	DarkMagenta = named(5)
	DarkCyan    = named(6)
	Grey        = named(7)
	DarkGrey    = named(8)
	Red         = named(9)
	Green       = named(10)
	Yellow      = named(11)
	Blue        = named(12)
	Magenta     = named(13)
	Cyan        = named(14)
	White       = named(15)
)

func named(i uint8) Color { return Color{kind: colorNamed, idx: i} }

// Palette returns the 256-color palette entry n.
func Palette(n uint8) Color { return Color{kind: colorPalette, idx: n} }

// RGB returns a 24-bit color. On 256-color terminals it degrades to the
// nearest palette entry when emitted.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube index 0-5, pre-computed at init
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := absInt(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			d := absInt(i - int(cubeValues[j]))
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rgbTo256 finds the nearest 256-color palette index for an RGB value.
// Checks the grayscale ramp (232-255) when the components are close, the
// 6x6x6 cube otherwise.
func rgbTo256(r, g, b uint8) uint8 {
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(absInt(int(r)-gray), absInt(int(g)-gray), absInt(int(b)-gray))

	if maxDiff < 10 {
		if gray < 4 {
			return 16 // cube (0,0,0)
		}
		if gray > 243 {
			return 231 // cube (5,5,5)
		}
		grayIdx := uint8(232 + (gray-8)/10)

		// Compare grayscale match vs color cube match
		grayLevel := 8 + int(grayIdx-232)*10
		grayDist := absInt(int(r)-grayLevel) + absInt(int(g)-grayLevel) + absInt(int(b)-grayLevel)

		cr, cg, cb := cubeIndex[r], cubeIndex[g], cubeIndex[b]
		cubeDist := absInt(int(r)-int(cubeValues[cr])) +
			absInt(int(g)-int(cubeValues[cg])) +
			absInt(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return grayIdx
		}
	}

	return 16 + 36*cubeIndex[r] + 6*cubeIndex[g] + cubeIndex[b]
}

// writeFg writes the complete foreground SGR sequence for c
func writeFg(w *bufio.Writer, c Color, mode ColorMode) {
	switch c.kind {
	case colorDefault:
		w.Write(csiDefaultFg)
	case colorNamed:
		w.Write(csi)
		if c.idx < 8 {
			writeInt(w, 30+int(c.idx))
		} else {
			writeInt(w, 90+int(c.idx-8))
		}
		w.WriteByte('m')
	case colorPalette:
		w.Write(csi)
		w.WriteString("38;5;")
		writeInt(w, int(c.idx))
		w.WriteByte('m')
	default: // colorRGB
		if mode == ColorModeTrueColor {
			w.Write(csi)
			w.WriteString("38;2;")
			writeInt(w, int(c.r))
			w.WriteByte(';')
			writeInt(w, int(c.g))
			w.WriteByte(';')
			writeInt(w, int(c.b))
			w.WriteByte('m')
		} else {
			w.Write(csi)
			w.WriteString("38;5;")
			writeInt(w, int(rgbTo256(c.r, c.g, c.b)))
			w.WriteByte('m')
		}
	}
}

// writeBg writes the complete background SGR sequence for c
func writeBg(w *bufio.Writer, c Color, mode ColorMode) {
	switch c.kind {
	case colorDefault:
		w.Write(csiDefaultBg)
	case colorNamed:
		w.Write(csi)
		if c.idx < 8 {
			writeInt(w, 40+int(c.idx))
		} else {
			writeInt(w, 100+int(c.idx-8))
		}
		w.WriteByte('m')
	case colorPalette:
		w.Write(csi)
		w.WriteString("48;5;")
		writeInt(w, int(c.idx))
		w.WriteByte('m')
	default: // colorRGB
		if mode == ColorModeTrueColor {
			w.Write(csi)
			w.WriteString("48;2;")
			writeInt(w, int(c.r))
			w.WriteByte(';')
			writeInt(w, int(c.g))
			w.WriteByte(';')
			writeInt(w, int(c.b))
			w.WriteByte('m')
		} else {
			w.Write(csi)
			w.WriteString("48;5;")
			writeInt(w, int(rgbTo256(c.r, c.g, c.b)))
			w.WriteByte('m')
		}
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
