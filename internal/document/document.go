// Package document holds one open file: its rows, the cursor, the scroll
// window and the editing mode.
package document

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ErrNoFileName is returned by Save when the document is not bound to a path.
var ErrNoFileName = errors.New("no filename")

type Mode int

const (
	ModeEdit Mode = iota
	ModeCommand
	ModeJump
)

func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeJump:
		return "jump"
	default:
		return "edit"
	}
}

// Cursor is a 0-based position in the rows of a document.
type Cursor struct {
	Row int
	Col int
}

// Document owns its rows exclusively. Every exported mutator leaves the
// cursor clamped to the rows and the scroll offset recomputed.
type Document struct {
	id         int
	name       string
	path       string
	lines      []string
	savedLines []string
	cursor     Cursor
	scroll     int
	mode       Mode
	command    []byte
	dirty      bool
	changeTick uint64
	viewCols   int
	viewRows   int
}

// New returns an empty document with a single empty row.
func New(id, cols, rows int) *Document {
	d := &Document{
		id:         id,
		lines:      []string{""},
		savedLines: []string{""},
		viewCols:   cols,
		viewRows:   rows,
	}
	d.scrollToCursor()
	return d
}

// NewFromLines returns a document whose rows and saved snapshot are lines.
func NewFromLines(id, cols, rows int, lines ...string) *Document {
	d := New(id, cols, rows)
	if len(lines) > 0 {
		d.lines = slices.Clone(lines)
		d.savedLines = slices.Clone(lines)
	}
	return d
}

func (d *Document) ID() int             { return d.id }
func (d *Document) Name() string        { return d.name }
func (d *Document) Path() string        { return d.path }
func (d *Document) Mode() Mode          { return d.mode }
func (d *Document) Dirty() bool         { return d.dirty }
func (d *Document) Cursor() Cursor      { return d.cursor }
func (d *Document) ScrollRow() int      { return d.scroll }
func (d *Document) CommandText() string { return string(d.command) }
func (d *Document) LineCount() int      { return len(d.lines) }

// ChangeTick increases whenever the rows change.
func (d *Document) ChangeTick() uint64 { return d.changeTick }

// Line returns row i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Lines returns a copy of the rows.
func (d *Document) Lines() []string { return slices.Clone(d.lines) }

// Content returns the rows joined by newlines, without a trailing newline.
func (d *Document) Content() string { return strings.Join(d.lines, "\n") }

// Bind sets the persistence target and display name without touching rows.
func (d *Document) Bind(path string) {
	d.path = path
	d.name = path
}

// SetViewport records the terminal dimensions used by the scroll rule.
func (d *Document) SetViewport(cols, rows int) {
	d.viewCols = cols
	d.viewRows = rows
	d.scrollToCursor()
}

func (d *Document) Viewport() (cols, rows int) { return d.viewCols, d.viewRows }

// SetCursor moves the cursor to pos, clamped.
func (d *Document) SetCursor(pos Cursor) {
	d.cursor = pos
	d.scrollToCursor()
}

// Load replaces the rows with the contents of path. A file that cannot be
// opened leaves a fresh single-row document bound to path, so that a later
// Save creates it; the open error is still returned for non-missing files.
func (d *Document) Load(path string) error {
	d.Bind(path)
	d.lines = []string{""}
	d.cursor = Cursor{}
	d.mode = ModeEdit
	d.command = d.command[:0]
	data, err := os.ReadFile(path)
	if err == nil {
		d.lines = splitLines(data)
	}
	d.savedLines = slices.Clone(d.lines)
	d.changeTick++
	d.updateDirty()
	d.scrollToCursor()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Save writes every row followed by a newline to the bound path.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoFileName
	}
	if err := os.WriteFile(d.path, []byte(joinLines(d.lines)), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", d.path, err)
	}
	d.savedLines = slices.Clone(d.lines)
	d.updateDirty()
	return nil
}

// AppendLine adds a row at the end of the document. It is how diagnostics
// become visible.
func (d *Document) AppendLine(text string) {
	d.lines = append(d.lines, text)
	d.touch()
}

// StatusLine summarises the document for the bottom row of the screen.
func (d *Document) StatusLine() string {
	switch d.mode {
	case ModeCommand:
		return "Command: " + string(d.command)
	case ModeJump:
		return "Jump: "
	}
	var b strings.Builder
	if d.dirty {
		b.WriteByte('*')
	}
	b.WriteString(d.name)
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(d.cursor.Col))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(d.cursor.Row))
	b.WriteByte(')')
	return b.String()
}

func (d *Document) String() string {
	return fmt.Sprintf("document id=%d name=%q rows=%d", d.id, d.name, len(d.lines))
}

func splitLines(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	n := 0
	for _, line := range lines {
		n += len(line) + 1
	}
	var b strings.Builder
	b.Grow(n)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
