//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// tty owns the device handle pair and raw-mode state
type tty struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	ownsDev bool // close the handle on Close when we opened /dev/tty
	oldTerm *term.State

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

// openTTY opens the controlling terminal, falling back to the stdio pair
// when /dev/tty is unavailable (e.g. under some test harnesses)
func openTTY() *tty {
	if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		fd := int(f.Fd())
		return &tty{in: f, out: f, inFd: fd, outFd: fd, ownsDev: true}
	}
	return newTTY(os.Stdin, os.Stdout)
}

func newTTY(in, out *os.File) *tty {
	return &tty{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (t *tty) makeRaw() error {
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("input is not a terminal")
	}
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.oldTerm = old
	return nil
}

func (t *tty) restore() error {
	if t.oldTerm == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.oldTerm)
	t.oldTerm = nil
	return err
}

// size queries the terminal dimensions. A terminal that cannot report its
// own size is unsupported, so the error propagates instead of falling back
// to a guess.
func (t *tty) size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// read blocks until input is available, the stop channel is closed, or an
// error occurs. Returns empty data on poll timeout so callers can flush
// pending partial state.
func (t *tty) read(stopCh <-chan struct{}) ([]byte, error) {
	buf := make([]byte, 256)

	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		// Poll with timeout to allow checking stopCh
		fds := []unix.PollFd{
			{Fd: int32(t.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}

		if n == 0 {
			return nil, nil // timeout
		}

		rn, err := unix.Read(t.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}

		if rn == 0 {
			return nil, nil // EOF
		}

		ret := make([]byte, rn)
		copy(ret, buf[:rn])
		return ret, nil
	}
}

// notifyResize starts a SIGWINCH watcher invoking handler with the new size
func (t *tty) notifyResize(handler func(width, height int)) {
	t.resizeStopCh = make(chan struct{})
	t.resizeDoneCh = make(chan struct{})

	go func() {
		defer close(t.resizeDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-t.resizeStopCh:
				return
			case <-sigCh:
				if w, h, err := t.size(); err == nil {
					handler(w, h)
				}
			}
		}
	}()
}

func (t *tty) close() {
	if t.resizeStopCh != nil {
		close(t.resizeStopCh)
		<-t.resizeDoneCh
		t.resizeStopCh = nil
	}
	t.restore()
	if t.ownsDev {
		t.in.Close()
	}
}

// resetTerminalMode attempts to restore terminal to cooked mode.
// Best-effort for crash recovery; errors ignored.
func resetTerminalMode() {
	// Restore via /dev/tty, which works even if stdin was redirected
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
