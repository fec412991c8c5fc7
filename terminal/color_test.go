package terminal

import (
	"bufio"
	"strings"
	"testing"
)

func render(f func(w *bufio.Writer)) string {
	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	f(w)
	w.Flush()
	return sb.String()
}

func TestWriteFg(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		mode ColorMode
		want string
	}{
		{"default", Default, ColorMode256, "\x1b[39m"},
		{"dark named", Black, ColorMode256, "\x1b[30m"},
		{"dark named high", Grey, ColorMode256, "\x1b[37m"},
		{"bright named", DarkGrey, ColorMode256, "\x1b[90m"},
		{"bright named high", White, ColorMode256, "\x1b[97m"},
		{"palette", Palette(100), ColorMode256, "\x1b[38;5;100m"},
		{"rgb truecolor", RGB(1, 2, 3), ColorModeTrueColor, "\x1b[38;2;1;2;3m"},
		{"rgb pure red degrades to cube", RGB(255, 0, 0), ColorMode256, "\x1b[38;5;196m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(w *bufio.Writer) { writeFg(w, tt.c, tt.mode) })
			if got != tt.want {
				t.Errorf("writeFg(%+v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestWriteBg(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		mode ColorMode
		want string
	}{
		{"default", Default, ColorMode256, "\x1b[49m"},
		{"dark named", DarkRed, ColorMode256, "\x1b[41m"},
		{"bright named", Blue, ColorMode256, "\x1b[104m"},
		{"palette", Palette(16), ColorMode256, "\x1b[48;5;16m"},
		{"rgb truecolor", RGB(200, 100, 50), ColorModeTrueColor, "\x1b[48;2;200;100;50m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(func(w *bufio.Writer) { writeBg(w, tt.c, tt.mode) })
			if got != tt.want {
				t.Errorf("writeBg(%+v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestRgbTo256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},        // cube black
		{255, 255, 255, 231}, // cube white
		{255, 0, 0, 196},     // pure red
		{0, 255, 0, 46},      // pure green
		{0, 0, 255, 21},      // pure blue
		{95, 95, 95, 59},     // exact cube gray hits the cube
		{128, 128, 128, 244}, // mid gray hits the grayscale ramp
	}
	for _, tt := range tests {
		if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("rgbTo256(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRgbTo256GrayRampBounds(t *testing.T) {
	if got := rgbTo256(1, 1, 1); got != 16 {
		t.Errorf("near-black = %d, want 16", got)
	}
	if got := rgbTo256(250, 250, 250); got != 231 {
		t.Errorf("near-white = %d, want 231", got)
	}
}

func TestDetectColorMode(t *testing.T) {
	clear := func(t *testing.T) {
		for _, v := range []string{
			"COLORTERM", "TERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION",
			"ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE",
		} {
			t.Setenv(v, "")
		}
	}

	t.Run("colorterm truecolor", func(t *testing.T) {
		clear(t)
		t.Setenv("COLORTERM", "truecolor")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("got %v, want truecolor", got)
		}
	})

	t.Run("term direct", func(t *testing.T) {
		clear(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("got %v, want truecolor", got)
		}
	})

	t.Run("terminal program marker", func(t *testing.T) {
		clear(t)
		t.Setenv("KITTY_WINDOW_ID", "1")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("got %v, want truecolor", got)
		}
	})

	t.Run("plain 256", func(t *testing.T) {
		clear(t)
		t.Setenv("TERM", "xterm-256color")
		if got := DetectColorMode(); got != ColorMode256 {
			t.Errorf("got %v, want 256", got)
		}
	})
}
