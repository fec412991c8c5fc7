// Command termvane-demo echoes normalized input events until Ctrl+C.
// It exercises both backends behind the same contract: run with
// -driver=ansi (default) or -driver=tcell.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/varnwick/termvane/backend"
	"github.com/varnwick/termvane/backend/ansi"
	"github.com/varnwick/termvane/backend/tcelldrv"
	"github.com/varnwick/termvane/event"
	"github.com/varnwick/termvane/terminal"
	"github.com/varnwick/termvane/theme"
)

const headerRows = 3

func main() {
	driver := flag.String("driver", "ansi", "backend driver: ansi or tcell")
	flag.Parse()

	var (
		b   backend.Backend
		err error
	)
	switch *driver {
	case "ansi":
		b, err = ansi.Init()
	case "tcell":
		b, err = tcelldrv.Init()
	default:
		log.Fatalf("unknown driver %q", *driver)
	}
	if err != nil {
		log.Fatalf("init %s backend: %v", *driver, err)
	}

	err = runSafe(b)
	b.Finish()
	if err != nil {
		log.Fatal(err)
	}
}

// runSafe restores the terminal before reporting a crash; a panic with
// raw mode still active would leave the shell unusable.
func runSafe(b backend.Backend) (err error) {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			err = fmt.Errorf("crashed: %v", r)
		}
	}()
	run(b)
	return nil
}

func run(b backend.Backend) {
	cols, rows := b.ScreenSize()
	b.Clear(theme.TerminalDefault)
	drawHeader(b, cols)

	line := headerRows
	count := 0
	for {
		ev, ok := b.PollEvent()
		if !ok {
			continue
		}

		switch ev.Type {
		case event.TypeExit:
			return
		case event.TypeWindowResize:
			cols, rows = b.ScreenSize()
			b.Clear(theme.TerminalDefault)
			drawHeader(b, cols)
			line = headerRows
			continue
		}

		count++
		if line >= rows {
			line = headerRows
		}
		b.PrintAt(event.Pos{X: 2, Y: line}, fmt.Sprintf("%4d  %-60s", count, ev))
		line++
	}
}

func drawHeader(b backend.Backend, cols int) {
	title := theme.ColorPair{
		Front: theme.Light(theme.White),
		Back:  theme.Dark(theme.Blue),
	}
	prev := b.SetColor(title)
	b.SetEffect(theme.EffectBold)
	b.PrintAtRep(event.Pos{X: 0, Y: 0}, cols, " ")
	b.PrintAt(event.Pos{X: 2, Y: 0}, fmt.Sprintf("termvane event echo [%s]  Ctrl+C quits", b.Name()))
	b.UnsetEffect(theme.EffectBold)
	b.SetColor(prev)

	sep := b.SetColor(theme.ColorPair{
		Front: theme.Dark(theme.Cyan),
		Back:  theme.TerminalDefault,
	})
	b.PrintAtRep(event.Pos{X: 0, Y: 1}, cols, "─")
	b.SetColor(sep)

	if !b.HasColors() {
		b.PrintAt(event.Pos{X: 2, Y: 2}, "(monochrome terminal)")
	}
	b.Refresh()
}
