package tcelldrv

import (
	"github.com/gdamore/tcell/v2"

	"github.com/varnwick/termvane/theme"
)

// darkColors maps named dark hues onto tcell's palette names. Dark white
// has no dark-gray slot in the 16-color palette; silver is the nearest.
var darkColors = [...]tcell.Color{
	theme.Black:   tcell.ColorBlack,
	theme.Red:     tcell.ColorMaroon,
	theme.Green:   tcell.ColorGreen,
	theme.Yellow:  tcell.ColorOlive,
	theme.Blue:    tcell.ColorNavy,
	theme.Magenta: tcell.ColorPurple,
	theme.Cyan:    tcell.ColorTeal,
	theme.White:   tcell.ColorSilver,
}

// lightColors maps named light hues onto tcell's bright palette names.
// Light black is approximated as gray.
var lightColors = [...]tcell.Color{
	theme.Black:   tcell.ColorGray,
	theme.Red:     tcell.ColorRed,
	theme.Green:   tcell.ColorLime,
	theme.Yellow:  tcell.ColorYellow,
	theme.Blue:    tcell.ColorBlue,
	theme.Magenta: tcell.ColorFuchsia,
	theme.Cyan:    tcell.ColorAqua,
	theme.White:   tcell.ColorWhite,
}

// mapColor converts an abstract color into tcell's representation.
func mapColor(c theme.Color) tcell.Color {
	switch c.Kind() {
	case theme.ColorDark:
		return darkColors[c.Base()]
	case theme.ColorLight:
		return lightColors[c.Base()]
	case theme.ColorRgb:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case theme.ColorRgbLowRes:
		r, g, b := c.RGB()
		return tcell.PaletteColor(16 + 36*int(r) + 6*int(g) + int(b))
	default:
		return tcell.ColorDefault
	}
}
