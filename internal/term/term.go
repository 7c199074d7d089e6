// Package term owns the tty: raw mode, window size, key decoding and the
// single write per frame.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const resetScreen = "\x1b[2J\x1b[H"

// Terminal is a tty in raw mode.
type Terminal struct {
	in       *os.File
	out      *os.File
	state    *term.State
	dec      *Decoder
	restored sync.Once
}

// Open switches in to raw mode. Call Close on every exit path.
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	st, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	if err := setReadTimeout(fd); err != nil {
		_ = term.Restore(fd, st)
		return nil, err
	}
	dec := NewDecoder(in)
	dec.timeouts = true
	return &Terminal{in: in, out: out, state: st, dec: dec}, nil
}

// Close clears the screen and restores the saved tty state. It is safe to
// call more than once and from a signal handler.
func (t *Terminal) Close() error {
	var err error
	t.restored.Do(func() {
		_, _ = io.WriteString(t.out, resetScreen)
		err = term.Restore(int(t.in.Fd()), t.state)
	})
	return err
}

// Size returns the current window size in cells.
func (t *Terminal) Size() (cols, rows int, err error) {
	return term.GetSize(int(t.out.Fd()))
}

// setReadTimeout makes a read return after a tenth of a second without
// input (VMIN=0, VTIME=1), so a lone ESC is not joined to later keys.
func setReadTimeout(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("read termios: %w", err)
	}
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, t); err != nil {
		return fmt.Errorf("write termios: %w", err)
	}
	return nil
}

// ReadEvent blocks until one key is available.
func (t *Terminal) ReadEvent() (Event, error) {
	return t.dec.ReadEvent()
}

// Write sends p with a single write call.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
