package document

// MoveColumn moves the cursor delta bytes along the current row.
func (d *Document) MoveColumn(delta int) {
	d.cursor.Col += delta
	d.scrollToCursor()
}

// MoveRow moves the cursor delta rows up or down.
func (d *Document) MoveRow(delta int) {
	d.cursor.Row += delta
	d.scrollToCursor()
}

func (d *Document) StartOfRow() {
	d.cursor.Col = 0
	d.scrollToCursor()
}

func (d *Document) EndOfRow() {
	d.cursor.Col = len(d.currentLine())
	d.scrollToCursor()
}

// StartOfColumn moves to the first row.
func (d *Document) StartOfColumn() {
	d.cursor.Row = 0
	d.scrollToCursor()
}

// EndOfColumn moves to the last row.
func (d *Document) EndOfColumn() {
	d.cursor.Row = len(d.lines) - 1
	d.scrollToCursor()
}

func (d *Document) currentLine() string {
	d.normalize()
	return d.lines[d.cursor.Row]
}

// normalize keeps the document non-empty.
func (d *Document) normalize() {
	if len(d.lines) == 0 {
		d.lines = []string{""}
	}
}

func (d *Document) clampCursor() {
	d.normalize()
	d.cursor.Row = clampRange(d.cursor.Row, 0, len(d.lines)-1)
	d.cursor.Col = clampRange(d.cursor.Col, 0, len(d.lines[d.cursor.Row]))
}

// scrollToCursor clamps the cursor and keeps it vertically centred once it
// has passed half of the viewport.
func (d *Document) scrollToCursor() {
	d.clampCursor()
	d.scroll = max(0, d.cursor.Row-d.viewRows/2)
}

func clampRange(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
