package term

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Event is what ReadEvent produces: a *tcell.EventKey or an *EventEscape.
type Event = tcell.Event

// EventEscape carries an escape sequence that is not an arrow key.
type EventEscape struct {
	t   time.Time
	Seq []byte
}

func (ev *EventEscape) When() time.Time { return ev.t }

func (ev *EventEscape) String() string { return fmt.Sprintf("%q", ev.Seq) }

// Decoder turns the raw byte stream of a tty into key events. ESC is
// followed by exactly two more bytes unless the input pauses first.
type Decoder struct {
	r io.Reader
	// timeouts is set for a tty with VMIN=0, where an empty read means no
	// input arrived in time rather than end of input.
	timeouts bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadEvent reads one key.
func (d *Decoder) ReadEvent() (Event, error) {
	c, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if c != 0x1b {
		return keyForByte(c), nil
	}
	seq := make([]byte, 2)
	for i := range seq {
		b, ok := d.readNext()
		if !ok {
			return tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), nil
		}
		seq[i] = b
	}
	if seq[0] == '[' {
		switch seq[1] {
		case 'A':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), nil
		case 'B':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), nil
		case 'C':
			return tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), nil
		case 'D':
			return tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), nil
		}
	}
	return &EventEscape{t: time.Now(), Seq: seq}, nil
}

// keyForByte follows tcell's own legacy input handling: tab, backspace and
// carriage return keep their names, other control bytes become ctrl keys.
// LF stays ctrl+j so it can be bound separately from enter.
func keyForByte(c byte) *tcell.EventKey {
	switch c {
	case '\t':
		return tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	case '\b', 0x7f:
		return tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone)
	case '\r':
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	}
	if c < ' ' {
		return tcell.NewEventKey(tcell.KeyCtrlSpace+tcell.Key(c), 0, tcell.ModCtrl)
	}
	return tcell.NewEventKey(tcell.KeyRune, rune(c), tcell.ModNone)
}

// readByte blocks until one byte arrives. Empty reads are retried, and so
// is EOF when the decoder reads a tty with a read timeout.
func (d *Decoder) readByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := d.r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil && !(d.timeouts && errors.Is(err, io.EOF)) {
			return 0, err
		}
	}
}

// readNext reads the byte following ESC. Any read that yields nothing,
// including an error, ends the sequence.
func (d *Decoder) readNext() (byte, bool) {
	var buf [1]byte
	n, _ := d.r.Read(buf[:])
	return buf[0], n == 1
}
