package ansi

import (
	"github.com/varnwick/termvane/terminal"
	"github.com/varnwick/termvane/theme"
)

// darkColors maps named dark hues to the driver's ANSI variants. Dark
// white has no true dark-gray equivalent in a basic 16-color terminal and
// is approximated as light gray.
var darkColors = [...]terminal.Color{
	theme.Black:   terminal.Black,
	theme.Red:     terminal.DarkRed,
	theme.Green:   terminal.DarkGreen,
	theme.Yellow:  terminal.DarkYellow,
	theme.Blue:    terminal.DarkBlue,
	theme.Magenta: terminal.DarkMagenta,
	theme.Cyan:    terminal.DarkCyan,
	theme.White:   terminal.Grey,
}

// lightColors maps named light hues to the driver's bright variants.
// Light black is approximated as gray.
var lightColors = [...]terminal.Color{
	theme.Black:   terminal.Grey,
	theme.Red:     terminal.Red,
	theme.Green:   terminal.Green,
	theme.Yellow:  terminal.Yellow,
	theme.Blue:    terminal.Blue,
	theme.Magenta: terminal.Magenta,
	theme.Cyan:    terminal.Cyan,
	theme.White:   terminal.White,
}

// mapColor converts an abstract color into the driver's representation.
// Total: every theme color has a driver rendition, approximated where the
// palette cannot express it exactly.
func mapColor(c theme.Color) terminal.Color {
	switch c.Kind() {
	case theme.ColorDark:
		return darkColors[c.Base()]
	case theme.ColorLight:
		return lightColors[c.Base()]
	case theme.ColorRgb:
		r, g, b := c.RGB()
		return terminal.RGB(r, g, b)
	case theme.ColorRgbLowRes:
		// Standard 6x6x6 cube offset in the 256-color palette.
		// Components are constrained to [0,5] at construction.
		r, g, b := c.RGB()
		return terminal.Palette(16 + 36*r + 6*g + b)
	default:
		return terminal.Default
	}
}
