package buffer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/keystorm/internal/engine/undo"
)

// ErrEmbeddedNewline is returned by InsertAtCursor when text contains a
// '\n'; use Newline for line splits instead.
var ErrEmbeddedNewline = errors.New("buffer: insert text must not contain a newline")

// InsertAtCursor inserts text at the cursor count times (count < 1 is
// treated as 1), batching the edit as an Insert node in the undo tree,
// and advances the cursor past the inserted text.
func (b *Buffer) InsertAtCursor(text string, count int) error {
	if strings.ContainsRune(text, '\n') {
		return ErrEmbeddedNewline
	}
	if count < 1 {
		count = 1
	}
	full := strings.Repeat(text, count)
	if full == "" {
		return nil
	}
	row, col := b.cursor.Row, b.cursor.Col
	b.undo.Begin(undo.KindInsert, row, col)
	b.InsertText(row, col, full)
	b.undo.Append(full, false)
	b.cursor.Col = col + utf8.RuneCountInString(full)
	b.recomputeDirty()
	return nil
}

// Newline splits the current line at the cursor and commits the split
// immediately (single-step, never batched).
func (b *Buffer) Newline() {
	row, col := b.cursor.Row, b.cursor.Col
	b.undo.Begin(undo.KindNewline, row, col)
	b.SplitLine(row, col)
	b.undo.Commit()
	b.cursor = Point{Row: row + 1, Col: 0}
	b.recomputeDirty()
}

// Backspace deletes the character left of the cursor, or joins the
// current line with the previous one if the cursor is at column 0.
func (b *Buffer) Backspace() {
	row, col := b.cursor.Row, b.cursor.Col
	if col > 0 {
		runes := []rune(b.Line(row))
		if col > len(runes) {
			col = len(runes)
		}
		b.undo.Begin(undo.KindDelete, row, col)
		deleted := b.DeleteText(row, col-1, 1)
		b.undo.Append(deleted, true)
		b.cursor.Col = col - 1
		b.recomputeDirty()
		return
	}
	if row > 0 {
		prevLen := b.LineLen(row - 1)
		b.undo.Begin(undo.KindNewline, row-1, prevLen)
		b.undo.SetReversed(true)
		b.JoinLines(row - 1)
		b.undo.Commit()
		b.cursor = Point{Row: row - 1, Col: prevLen}
		b.recomputeDirty()
	}
}

// DeleteCharForward deletes the character under/right of the cursor
// (the "delete key"), or joins the next line up if the cursor is at the
// end of the line.
func (b *Buffer) DeleteCharForward() {
	row, col := b.cursor.Row, b.cursor.Col
	lineLen := b.LineLen(row)
	if col < lineLen {
		b.undo.Begin(undo.KindDelete, row, col)
		deleted := b.DeleteText(row, col, 1)
		b.undo.Append(deleted, false)
		b.recomputeDirty()
		return
	}
	if row+1 < b.NRows() {
		b.undo.Begin(undo.KindNewline, row, col)
		b.undo.SetReversed(true)
		b.JoinLines(row)
		b.undo.Commit()
		b.recomputeDirty()
	}
}

// killRangeRaw deletes the half-open range r and records it as a single
// committed Delete node (never batched — kill-style deletions are each
// their own undo step), returning the removed text.
func (b *Buffer) killRangeRaw(r Range) string {
	r = r.Normalize()
	startOff := int(b.pt.LineColToByteOffset(r.Start.Row, r.Start.Col))
	endOff := int(b.pt.LineColToByteOffset(r.End.Row, r.End.Col))
	if endOff <= startOff {
		return ""
	}
	text := string(b.pt.Slice(startOff, endOff))
	b.undo.Begin(undo.KindDelete, r.Start.Row, r.Start.Col)
	b.pt.Delete(startOff, endOff-startOff)
	b.bump(r.Start.Row)
	b.undo.SetText(text)
	b.undo.Commit()
	b.recomputeDirty()
	return text
}

// KillToEOL deletes from the cursor to the end of the current line and
// returns the removed text (empty if already at EOL).
func (b *Buffer) KillToEOL() string {
	row := b.cursor.Row
	end := Point{Row: row, Col: b.LineLen(row)}
	return b.killRangeRaw(Range{Start: b.cursor, End: end})
}

// KillLine deletes the current line and, if a line remains below it,
// the newline that terminated it, placing the cursor at column 0.
func (b *Buffer) KillLine() string {
	row := b.cursor.Row
	text := b.DeleteRow(row)
	b.undo.Begin(undo.KindDeleteRow, row, 0)
	b.undo.SetText(text)
	b.undo.Commit()
	if row >= b.NRows() {
		row = b.NRows() - 1
	}
	b.cursor = Point{Row: row, Col: 0}
	b.recomputeDirty()
	return text
}

// KillRegion deletes the text between mark and cursor (in whichever
// order they fall) and returns it. No-op if no mark is set.
func (b *Buffer) KillRegion() (string, bool) {
	mark, ok := b.Mark()
	if !ok {
		return "", false
	}
	r := Range{Start: mark, End: b.cursor}.Normalize()
	text := b.killRangeRaw(r)
	b.cursor = r.Start
	b.ClearMark()
	return text, true
}

// CopyRegion returns the text between mark and cursor without deleting
// it. No-op if no mark is set.
func (b *Buffer) CopyRegion() (string, bool) {
	mark, ok := b.Mark()
	if !ok {
		return "", false
	}
	r := Range{Start: mark, End: b.cursor}.Normalize()
	startOff := int(b.pt.LineColToByteOffset(r.Start.Row, r.Start.Col))
	endOff := int(b.pt.LineColToByteOffset(r.End.Row, r.End.Col))
	return string(b.pt.Slice(startOff, endOff)), true
}

// Yank inserts text count times at the cursor (the Yank command's
// buffer-side half; clearing the kill-chain flag is the Editor's job).
func (b *Buffer) Yank(text string, count int) error {
	return b.InsertAtCursor(text, count)
}

// isWordRune classifies letters, digits, and underscore as word
// characters; everything else (including all whitespace and
// punctuation) is a boundary.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordPrevCol returns the column one word-boundary left of col on line.
func wordPrevCol(line []rune, col int) int {
	i := col
	for i > 0 && !isWordRune(line[i-1]) {
		i--
	}
	for i > 0 && isWordRune(line[i-1]) {
		i--
	}
	return i
}

// wordNextCol returns the column one word-boundary right of col on line.
func wordNextCol(line []rune, col int) int {
	i := col
	n := len(line)
	for i < n && isWordRune(line[i]) {
		i++
	}
	for i < n && !isWordRune(line[i]) {
		i++
	}
	return i
}

// DeleteWordPrev deletes from the start of the previous word through
// the cursor and returns the removed text.
func (b *Buffer) DeleteWordPrev() string {
	row, col := b.cursor.Row, b.cursor.Col
	line := []rune(b.Line(row))
	start := wordPrevCol(line, col)
	text := b.killRangeRaw(Range{Start: Point{row, start}, End: Point{row, col}})
	b.cursor.Col = start
	return text
}

// DeleteWordNext deletes from the cursor through the end of the next
// word and returns the removed text.
func (b *Buffer) DeleteWordNext() string {
	row, col := b.cursor.Row, b.cursor.Col
	line := []rune(b.Line(row))
	end := wordNextCol(line, col)
	return b.killRangeRaw(Range{Start: Point{row, col}, End: Point{row, end}})
}

// IndentRegion inserts one leading tab on every line in [mark, cursor].
// Requires a mark.
func (b *Buffer) IndentRegion() bool {
	mark, ok := b.Mark()
	if !ok {
		return false
	}
	r := Range{Start: mark, End: b.cursor}.Normalize()
	for row := r.Start.Row; row <= r.End.Row; row++ {
		b.undo.Begin(undo.KindInsert, row, 0)
		b.InsertText(row, 0, "\t")
		b.undo.Append("\t", false)
		b.undo.Commit()
	}
	b.recomputeDirty()
	return true
}

// UnindentRegion removes up to one leading tab, or up to 8 leading
// spaces, from every line in [mark, cursor]. Requires a mark.
func (b *Buffer) UnindentRegion() bool {
	mark, ok := b.Mark()
	if !ok {
		return false
	}
	r := Range{Start: mark, End: b.cursor}.Normalize()
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := []rune(b.Line(row))
		n := leadingWhitespaceToStrip(line)
		if n == 0 {
			continue
		}
		b.undo.Begin(undo.KindDelete, row, 0)
		deleted := b.DeleteText(row, 0, n)
		b.undo.Append(deleted, false)
		b.undo.Commit()
	}
	b.recomputeDirty()
	return true
}

func leadingWhitespaceToStrip(line []rune) int {
	if len(line) > 0 && line[0] == '\t' {
		return 1
	}
	n := 0
	for n < len(line) && n < 8 && line[n] == ' ' {
		n++
	}
	return n
}

// ReflowParagraph collapses whitespace and greedy-wraps the paragraph
// containing the cursor (bounded by blank lines) to width columns
// (width <= 0 defaults to 72).
func (b *Buffer) ReflowParagraph(width int) {
	if width <= 0 {
		width = 72
	}
	row := b.cursor.Row
	first, last := row, row
	for first > 0 && strings.TrimSpace(b.Line(first-1)) != "" {
		first--
	}
	for last+1 < b.NRows() && strings.TrimSpace(b.Line(last+1)) != "" {
		last++
	}

	var words []string
	for r := first; r <= last; r++ {
		words = append(words, strings.Fields(b.Line(r))...)
	}
	wrapped := wrapWords(words, width)

	for r := last; r >= first; r-- {
		b.killRangeRawFullLine(r)
	}
	for i, line := range wrapped {
		b.undo.Begin(undo.KindInsert, first+i, 0)
		b.InsertRow(first+i, line)
		b.undo.SetText(line)
		b.undo.Commit()
	}
	b.cursor = Point{Row: first, Col: 0}
	b.recomputeDirty()
}

// Undo reverts the most recent committed edit and clamps the cursor
// back into the (possibly now-shorter) buffer.
func (b *Buffer) Undo() error {
	if err := b.undo.Undo(b); err != nil {
		return err
	}
	b.cursor = Point{Row: b.clampRow(b.cursor.Row), Col: 0}
	b.cursor.Col = b.clampCol(b.cursor.Row, b.cursor.Col)
	b.recomputeDirty()
	return nil
}

// Redo reapplies the most recently undone edit.
func (b *Buffer) Redo() error {
	if err := b.undo.Redo(b); err != nil {
		return err
	}
	b.cursor = Point{Row: b.clampRow(b.cursor.Row), Col: 0}
	b.cursor.Col = b.clampCol(b.cursor.Row, b.cursor.Col)
	b.recomputeDirty()
	return nil
}

// killRangeRawFullLine removes logical line row including its newline,
// recording a DeleteRow undo step; used internally by ReflowParagraph
// ahead of reinserting the rewrapped lines.
func (b *Buffer) killRangeRawFullLine(row int) {
	text := b.DeleteRow(row)
	b.undo.Begin(undo.KindDeleteRow, row, 0)
	b.undo.SetText(text)
	b.undo.Commit()
}

func wrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	lines = append(lines, cur)
	return lines
}
