package buffer

// Movement methods clamp the cursor to buffer bounds and commit any
// open undo batch before moving (a cursor move always ends a batch of
// inserts/deletes — see undo.Tree.Begin's adjacency check, which keys
// off the row/col the next edit starts at, not off movement itself;
// committing here keeps pending from silently surviving across an
// unrelated cursor jump).

func (b *Buffer) commitPending() { b.undo.Commit() }

func (b *Buffer) clampCol(row, col int) int {
	n := b.LineLen(row)
	switch {
	case col < 0:
		return 0
	case col > n:
		return n
	default:
		return col
	}
}

func (b *Buffer) clampRow(row int) int {
	n := b.NRows()
	switch {
	case row < 0:
		return 0
	case n == 0:
		return 0
	case row >= n:
		return n - 1
	default:
		return row
	}
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Point { return b.cursor }

// SetCursor places the cursor at p, clamped to buffer bounds.
func (b *Buffer) SetCursor(p Point) {
	b.commitPending()
	row := b.clampRow(p.Row)
	b.cursor = Point{Row: row, Col: b.clampCol(row, p.Col)}
}

// MoveLeft moves the cursor left count columns (count < 1 treated as
// 1), wrapping to the end of the previous line at column 0.
func (b *Buffer) MoveLeft(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	for ; count > 0; count-- {
		if b.cursor.Col > 0 {
			b.cursor.Col--
			continue
		}
		if b.cursor.Row > 0 {
			b.cursor.Row--
			b.cursor.Col = b.LineLen(b.cursor.Row)
		}
	}
}

// MoveRight moves the cursor right count columns, wrapping to the
// start of the next line at end-of-line.
func (b *Buffer) MoveRight(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	for ; count > 0; count-- {
		if b.cursor.Col < b.LineLen(b.cursor.Row) {
			b.cursor.Col++
			continue
		}
		if b.cursor.Row+1 < b.NRows() {
			b.cursor.Row++
			b.cursor.Col = 0
		}
	}
}

// MoveUp moves the cursor up count rows, clamping the column to the
// destination line's length.
func (b *Buffer) MoveUp(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	row := b.cursor.Row - count
	row = b.clampRow(row)
	b.cursor = Point{Row: row, Col: b.clampCol(row, b.cursor.Col)}
}

// MoveDown moves the cursor down count rows, clamping the column to the
// destination line's length.
func (b *Buffer) MoveDown(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	row := b.cursor.Row + count
	row = b.clampRow(row)
	b.cursor = Point{Row: row, Col: b.clampCol(row, b.cursor.Col)}
}

// MoveLineStart moves the cursor to column 0 of the current line.
func (b *Buffer) MoveLineStart() {
	b.commitPending()
	b.cursor.Col = 0
}

// MoveLineEnd moves the cursor to the end of the current line.
func (b *Buffer) MoveLineEnd() {
	b.commitPending()
	b.cursor.Col = b.LineLen(b.cursor.Row)
}

// MoveDocStart moves the cursor to (0, 0).
func (b *Buffer) MoveDocStart() {
	b.commitPending()
	b.cursor = Point{}
}

// MoveDocEnd moves the cursor to the end of the last line.
func (b *Buffer) MoveDocEnd() {
	b.commitPending()
	row := b.clampRow(b.NRows() - 1)
	b.cursor = Point{Row: row, Col: b.LineLen(row)}
}

// MoveWordForward moves the cursor to the next word boundary, wrapping
// onto following lines when the current line is exhausted.
func (b *Buffer) MoveWordForward(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	for ; count > 0; count-- {
		line := []rune(b.Line(b.cursor.Row))
		if b.cursor.Col >= len(line) {
			if b.cursor.Row+1 < b.NRows() {
				b.cursor.Row++
				b.cursor.Col = 0
			}
			continue
		}
		b.cursor.Col = wordNextCol(line, b.cursor.Col)
	}
}

// MoveWordBackward moves the cursor to the previous word boundary,
// wrapping onto preceding lines when at column 0.
func (b *Buffer) MoveWordBackward(count int) {
	b.commitPending()
	if count < 1 {
		count = 1
	}
	for ; count > 0; count-- {
		if b.cursor.Col == 0 {
			if b.cursor.Row > 0 {
				b.cursor.Row--
				b.cursor.Col = b.LineLen(b.cursor.Row)
			}
			continue
		}
		line := []rune(b.Line(b.cursor.Row))
		b.cursor.Col = wordPrevCol(line, b.cursor.Col)
	}
}

// --- viewport ---

// Viewport returns the current scroll offsets (row, col).
func (b *Buffer) Viewport() (row, col int) { return b.rowoffs, b.coloffs }

// ScrollTo sets the scroll offsets directly (clamped to non-negative).
func (b *Buffer) ScrollTo(row, col int) {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	b.rowoffs, b.coloffs = row, col
}

// ScrollIntoView adjusts the viewport so the cursor is visible within a
// viewport of height rows and width cols.
func (b *Buffer) ScrollIntoView(height, width int) {
	if height > 0 {
		if b.cursor.Row < b.rowoffs {
			b.rowoffs = b.cursor.Row
		} else if b.cursor.Row >= b.rowoffs+height {
			b.rowoffs = b.cursor.Row - height + 1
		}
	}
	if width > 0 {
		if b.cursor.Col < b.coloffs {
			b.coloffs = b.cursor.Col
		} else if b.cursor.Col >= b.coloffs+width {
			b.coloffs = b.cursor.Col - width + 1
		}
	}
}
