package document

import (
	"slices"
	"strings"
)

const tabSpaces = 4

// InsertChar inserts c at the cursor and advances one column. A cursor past
// the end of the row pads the row with spaces first.
func (d *Document) InsertChar(c byte) {
	d.normalize()
	line := d.lines[d.cursor.Row]
	if d.cursor.Col > len(line) {
		line += strings.Repeat(" ", d.cursor.Col-len(line))
	}
	col := max(d.cursor.Col, 0)
	d.lines[d.cursor.Row] = line[:col] + string([]byte{c}) + line[col:]
	d.cursor.Col = col + 1
	d.touch()
}

// InsertTab inserts spaces; tab characters are never stored.
func (d *Document) InsertTab() {
	d.InsertSpaces(tabSpaces)
}

// InsertSpaces inserts n spaces at the cursor.
func (d *Document) InsertSpaces(n int) {
	for i := 0; i < n; i++ {
		d.InsertChar(' ')
	}
}

// InsertNewline splits the row at the cursor and moves to the start of the
// new row.
func (d *Document) InsertNewline() {
	d.clampCursor()
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	d.lines[row] = line[:col]
	d.lines = slices.Insert(d.lines, row+1, line[col:])
	d.cursor = Cursor{Row: row + 1, Col: 0}
	d.touch()
}

// DeleteForward removes the byte under the cursor, or joins the next row
// onto this one at the end of a row.
func (d *Document) DeleteForward() {
	d.clampCursor()
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	if col == len(line) {
		if row < len(d.lines)-1 {
			d.lines[row] = line + d.lines[row+1]
			d.lines = slices.Delete(d.lines, row+1, row+2)
		}
	} else {
		d.lines[row] = line[:col] + line[col+1:]
	}
	d.touch()
}

// DeleteBackward removes the byte before the cursor. At the start of a row
// it joins the row onto the previous one; an empty first row is removed.
func (d *Document) DeleteBackward() {
	d.clampCursor()
	row, col := d.cursor.Row, d.cursor.Col
	line := d.lines[row]
	switch {
	case col > 0:
		d.lines[row] = line[:col-1] + line[col:]
		d.cursor.Col--
	case row > 0:
		prev := d.lines[row-1]
		d.lines[row-1] = prev + line
		d.lines = slices.Delete(d.lines, row, row+1)
		d.cursor = Cursor{Row: row - 1, Col: len(prev)}
	case line == "":
		d.lines = slices.Delete(d.lines, 0, 1)
	}
	d.touch()
}

// KillToRowEnd truncates the row at the cursor. On an empty row or at the
// end of a row it behaves like DeleteForward.
func (d *Document) KillToRowEnd() {
	d.clampCursor()
	line := d.lines[d.cursor.Row]
	if line == "" || d.cursor.Col == len(line) {
		d.DeleteForward()
		return
	}
	d.lines[d.cursor.Row] = line[:d.cursor.Col]
	d.touch()
}

// EnterCommand switches to command mode with an empty command line.
func (d *Document) EnterCommand() {
	d.command = d.command[:0]
	d.mode = ModeCommand
}

// EnterJump switches to jump mode. Jump mode only accepts Cancel; what it
// will eventually jump to is not decided, so it consumes no other input.
func (d *Document) EnterJump() {
	d.mode = ModeJump
}

// InsertCommandChar appends c to the command line.
func (d *Document) InsertCommandChar(c byte) {
	d.command = append(d.command, c)
}

// DeleteCommandChar removes the last byte of the command line.
func (d *Document) DeleteCommandChar() {
	if len(d.command) > 0 {
		d.command = d.command[:len(d.command)-1]
	}
}

// Cancel leaves command or jump mode. In edit mode it throws away every
// change since the last load or save.
func (d *Document) Cancel() {
	switch d.mode {
	case ModeCommand:
		d.command = d.command[:0]
		d.mode = ModeEdit
	case ModeJump:
		d.mode = ModeEdit
	default:
		d.lines = slices.Clone(d.savedLines)
		d.touch()
	}
}

// touch runs after every structural change.
func (d *Document) touch() {
	d.normalize()
	d.changeTick++
	d.updateDirty()
	d.scrollToCursor()
}

func (d *Document) updateDirty() {
	d.dirty = !slices.Equal(d.lines, d.savedLines)
}
