// Package theme defines the abstract color and effect vocabulary the
// toolkit uses to describe visuals, independent of what the underlying
// terminal can actually display. Backends translate these values into
// whatever palette their driver exposes; the translation is lossy by
// design and aims for best visual approximation, not color accuracy.
package theme

import "fmt"

// BaseColor is one of the eight named terminal hues.
type BaseColor uint8

const (
	Black BaseColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// String returns the hue name.
func (b BaseColor) String() string {
	switch b {
	case Black:
		return "Black"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Magenta:
		return "Magenta"
	case Cyan:
		return "Cyan"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// ColorKind tags the variant held by a Color value.
type ColorKind uint8

const (
	// ColorTerminalDefault is the zero value: reset to the terminal's
	// own default, not any concrete named or RGB value.
	ColorTerminalDefault ColorKind = iota
	ColorDark
	ColorLight
	ColorRgb
	ColorRgbLowRes
)

// Color is a tagged color variant: a named dark or light hue, a true-color
// RGB triple, a 6x6x6 cube index, or the terminal default. Values are
// comparable with ==.
type Color struct {
	kind    ColorKind
	base    BaseColor
	r, g, b uint8
}

// TerminalDefault resets to the terminal's configured default color.
var TerminalDefault = Color{kind: ColorTerminalDefault}

// Dark returns the dark (ANSI) variant of a named hue.
func Dark(base BaseColor) Color {
	return Color{kind: ColorDark, base: base}
}

// Light returns the bright variant of a named hue.
func Light(base BaseColor) Color {
	return Color{kind: ColorLight, base: base}
}

// Rgb returns a 24-bit true color.
func Rgb(r, g, b uint8) Color {
	return Color{kind: ColorRgb, r: r, g: g, b: b}
}

// RgbLowRes returns a color from the 6x6x6 palette cube. Each component
// must lie in [0,5]; out-of-range values are a caller contract violation
// and panic rather than being clamped.
func RgbLowRes(r, g, b uint8) Color {
	if r > 5 || g > 5 || b > 5 {
		panic(fmt.Sprintf("theme: RgbLowRes component out of range: (%d,%d,%d), each must be <= 5", r, g, b))
	}
	return Color{kind: ColorRgbLowRes, r: r, g: g, b: b}
}

// Kind returns the variant tag.
func (c Color) Kind() ColorKind { return c.kind }

// Base returns the named hue for Dark and Light colors.
func (c Color) Base() BaseColor { return c.base }

// RGB returns the color components for Rgb and RgbLowRes colors.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// String returns a readable form, mostly for diagnostics and test output.
func (c Color) String() string {
	switch c.kind {
	case ColorDark:
		return "Dark(" + c.base.String() + ")"
	case ColorLight:
		return "Light(" + c.base.String() + ")"
	case ColorRgb:
		return fmt.Sprintf("Rgb(%d,%d,%d)", c.r, c.g, c.b)
	case ColorRgbLowRes:
		return fmt.Sprintf("RgbLowRes(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "TerminalDefault"
	}
}

// ColorPair is a foreground/background combination treated as one paint
// state unit. Comparable with ==.
type ColorPair struct {
	Front Color
	Back  Color
}

// DefaultPair is the paint state before any SetColor call.
var DefaultPair = ColorPair{Front: TerminalDefault, Back: TerminalDefault}

// Effect is a text attribute toggled independently of color.
type Effect uint8

const (
	// EffectSimple is the neutral effect; setting or unsetting it is a no-op.
	EffectSimple Effect = iota
	EffectReverse
	EffectBold
	EffectItalic
	EffectUnderline
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectSimple:
		return "Simple"
	case EffectReverse:
		return "Reverse"
	case EffectBold:
		return "Bold"
	case EffectItalic:
		return "Italic"
	case EffectUnderline:
		return "Underline"
	default:
		return "Unknown"
	}
}
