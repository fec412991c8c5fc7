// Package backend defines the contract a terminal backend satisfies for
// the toolkit. The toolkit's event loop pulls normalized events from
// PollEvent and issues rendering commands through the remaining methods;
// it never touches the underlying driver directly.
package backend

import (
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/theme"
)

// Backend is the rendering and input surface the toolkit drives. A
// backend is constructed by its package's Init function, used from a
// single goroutine, and torn down exactly once with Finish.
type Backend interface {
	// PollEvent blocks until one normalized event is available or the
	// backend's pseudo-timeout is reached; the second result is false
	// when no event was retrieved.
	PollEvent() (event.Event, bool)

	// Refresh makes all batched output visible. Called once per render
	// pass boundary so partial writes appear atomically.
	Refresh()

	// HasColors reports whether the backend can display colors.
	HasColors() bool

	// ScreenSize returns the terminal dimensions in columns and rows.
	ScreenSize() (cols, rows int)

	// PrintAt moves the cursor, writes text and flushes. An unbatched
	// primitive for infrequent absolute placements.
	PrintAt(pos event.Pos, text string)

	// PrintAtRep moves the cursor once and writes text repetitions times
	// contiguously, without flushing. repetitions == 0 is a no-op.
	PrintAtRep(pos event.Pos, repetitions int, text string)

	// Clear sets both foreground and background to color, then clears
	// the entire screen.
	Clear(color theme.Color)

	// SetColor makes pair the active paint state, skipping the driver
	// call when pair is already active. Returns the previously active
	// pair so callers can restore it (scoped-styling idiom).
	SetColor(pair theme.ColorPair) theme.ColorPair

	// SetEffect enables a text attribute. EffectSimple is a no-op.
	SetEffect(effect theme.Effect)

	// UnsetEffect disables a text attribute. EffectSimple is a no-op.
	UnsetEffect(effect theme.Effect)

	// Name returns a fixed identifying label, used for diagnostics only.
	Name() string

	// Finish restores the terminal: leaves the alternate screen, shows
	// the cursor, disables raw mode and resets colors. It always runs to
	// completion regardless of earlier failures.
	Finish()
}
