package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/keystorm/internal/engine/piecetable"
	"github.com/dshills/keystorm/internal/engine/undo"
)

// Invalidator is the highlighter-side contract a Buffer notifies on
// every mutation. Kept as a narrow interface (rather than importing
// internal/highlight directly) so the document engine has no
// dependency on the highlighter's cache implementation.
type Invalidator interface {
	InvalidateFrom(row int)
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateFrom(int) {}

// Buffer wraps a PieceTable with the editing metadata described in
// spec §3: cursor, mark, viewport, flags, filetype, filename, version,
// and the owning UndoSystem.
type Buffer struct {
	pt *piecetable.PieceTable

	cursor Point
	rx     int // tab-expanded render column of cursor
	mark   *Point

	rowoffs, coloffs int

	dirty         bool
	readOnly      bool
	fileBacked    bool
	syntaxEnabled bool

	filetype string
	filename string

	version uint64

	lineEnding LineEnding
	tabWidth   int

	undo        *undo.Tree
	highlighter Invalidator
}

// New returns an empty buffer (the state of a brand-new, unnamed file).
func New(opts ...Option) *Buffer {
	b := &Buffer{
		pt:            piecetable.New(),
		syntaxEnabled: true,
		tabWidth:      8,
		lineEnding:    LF,
		undo:          undo.New(),
		highlighter:   noopInvalidator{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString returns a buffer preloaded with text (not file-backed).
func NewFromString(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.pt = piecetable.FromString(text)
	return b
}

// SetHighlighter installs the Invalidator notified on every mutation.
func (b *Buffer) SetHighlighter(h Invalidator) {
	if h == nil {
		h = noopInvalidator{}
	}
	b.highlighter = h
}

// UndoSystem returns the buffer's owned undo tree.
func (b *Buffer) UndoSystem() *undo.Tree { return b.undo }

// --- content queries ---

// Rows returns every logical line's text, materialized.
func (b *Buffer) Rows() []string {
	n := b.pt.LineCount()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(b.pt.GetLine(i))
	}
	return out
}

// NRows returns the number of logical lines.
func (b *Buffer) NRows() int { return b.pt.LineCount() }

// Line returns the text of logical line row, or "" if out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.pt.LineCount() {
		return ""
	}
	return string(b.pt.GetLine(row))
}

// LineLen returns the UTF-8 scalar count of logical line row.
func (b *Buffer) LineLen(row int) int {
	return len([]rune(b.Line(row)))
}

// FullText materializes the entire document.
func (b *Buffer) FullText() string { return b.pt.String() }

// Version returns the buffer's monotonically increasing edit counter.
func (b *Buffer) Version() uint64 { return b.version }

// IsEmpty reports whether the document has zero bytes.
func (b *Buffer) IsEmpty() bool { return b.pt.ByteSize() == 0 }

// Dirty reports whether the buffer has unsaved changes, derived from
// the undo tree's save-point per §4.3's mark_saved contract.
func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) recomputeDirty() {
	b.dirty = b.undo.Dirty()
}

// ReadOnly, SetReadOnly, ToggleReadOnly manage the read-only flag.
func (b *Buffer) ReadOnly() bool      { return b.readOnly }
func (b *Buffer) SetReadOnly(ro bool) { b.readOnly = ro }
func (b *Buffer) ToggleReadOnly()     { b.readOnly = !b.readOnly }

// FileBacked reports whether the buffer corresponds to an existing,
// loaded file (vs. a new/untitled buffer).
func (b *Buffer) FileBacked() bool { return b.fileBacked }

// Filename returns the buffer's associated path, which may be empty.
func (b *Buffer) Filename() string { return b.filename }

// SetVirtualName assigns a display filename without marking the buffer
// file-backed (used for untitled buffers given a provisional name).
func (b *Buffer) SetVirtualName(name string) { b.filename = name }

// SyntaxEnabled, SetSyntaxEnabled gate highlighter invocation. Turning
// syntax back on tells the highlighter that every row is stale.
func (b *Buffer) SyntaxEnabled() bool       { return b.syntaxEnabled }
func (b *Buffer) SetSyntaxEnabled(on bool) {
	if on && !b.syntaxEnabled {
		b.highlighter.InvalidateFrom(0)
	}
	b.syntaxEnabled = on
}

// Filetype, SetFiletype manage the highlighter/LSP language tag.
func (b *Buffer) Filetype() string { return b.filetype }
func (b *Buffer) SetFiletype(ft string) {
	b.filetype = ft
	b.highlighter.InvalidateFrom(0)
}

// TabWidth, SetTabWidth manage tab-stop width for render-column math.
func (b *Buffer) TabWidth() int      { return b.tabWidth }
func (b *Buffer) SetTabWidth(w int)  { if w > 0 { b.tabWidth = w } }

// LineEnding, SetLineEnding manage the newline convention Newline()
// inserts going forward. Existing bytes are never rewritten.
func (b *Buffer) LineEnding() LineEnding     { return b.lineEnding }
func (b *Buffer) SetLineEnding(e LineEnding) { b.lineEnding = e }

// --- mark ---

// SetMark drops the mark at the current cursor position.
func (b *Buffer) SetMark() {
	p := b.cursor
	b.mark = &p
}

// ClearMark removes the mark.
func (b *Buffer) ClearMark() { b.mark = nil }

// MarkSet reports whether a mark is active.
func (b *Buffer) MarkSet() bool { return b.mark != nil }

// Mark returns the mark position and whether one is set.
func (b *Buffer) Mark() (Point, bool) {
	if b.mark == nil {
		return Point{}, false
	}
	return *b.mark, true
}

// ToggleMark sets the mark if unset, clears it otherwise.
func (b *Buffer) ToggleMark() {
	if b.mark == nil {
		b.SetMark()
	} else {
		b.ClearMark()
	}
}

// --- raw edit primitives (undo.BufferOps) ---
//
// These never record undo history and never move the cursor; they are
// the mechanism undo.Tree replays for both forward (redo) and inverse
// (undo) application.

// bump records that a mutation touched row: version increases and the
// highlighter is told every cache entry at or below row is stale.
// Dirty-flag recomputation is the caller's job (recomputeDirty), since
// raw primitives are also how undo/redo replay edits, and undoing back
// to the save-point must leave the buffer clean again.
func (b *Buffer) bump(row int) {
	b.version++
	b.highlighter.InvalidateFrom(row)
}

// InsertText inserts text at (row, col) without moving the cursor.
func (b *Buffer) InsertText(row, col int, text string) {
	offset := int(b.pt.LineColToByteOffset(row, col))
	b.pt.Insert(offset, []byte(text))
	b.bump(row)
}

// DeleteText deletes length UTF-8 scalars starting at (row, col) and
// returns the deleted text.
func (b *Buffer) DeleteText(row, col, length int) string {
	start := int(b.pt.LineColToByteOffset(row, col))
	// Walk `length` scalars forward from start to find the byte end.
	full := b.pt.Data()
	end := start
	n := 0
	for i := start; i < len(full) && n < length; {
		_, size := utf8.DecodeRune(full[i:])
		i += size
		end = i
		n++
	}
	deleted := string(full[start:end])
	b.pt.Delete(start, end-start)
	b.bump(row)
	return deleted
}

// SplitLine splits the line at (row, col) into two lines.
func (b *Buffer) SplitLine(row, col int) {
	offset := int(b.pt.LineColToByteOffset(row, col))
	b.pt.Insert(offset, []byte(b.lineEnding.newlineBytes()))
	b.bump(row)
}

// JoinLines joins logical line row with the line following it,
// removing the newline between them.
func (b *Buffer) JoinLines(row int) {
	if row < 0 || row+1 >= b.pt.LineCount() {
		return
	}
	_, end := b.pt.GetLineRange(row)
	nextStart, _ := b.pt.GetLineRange(row + 1)
	b.pt.Delete(end, nextStart-end)
	b.bump(row)
}

// InsertRow inserts a new logical line containing text before row.
func (b *Buffer) InsertRow(row int, text string) {
	start, _ := b.pt.GetLineRange(row)
	if row >= b.pt.LineCount() {
		full := b.FullText()
		start = len(full)
		if start > 0 && !strings.HasSuffix(full, "\n") {
			b.pt.Insert(start, []byte("\n"))
			start++
		}
	}
	b.pt.Insert(start, []byte(text+"\n"))
	b.bump(row)
}

// DeleteRow removes logical line row entirely (including its trailing
// newline) and returns its text.
func (b *Buffer) DeleteRow(row int) string {
	if row < 0 || row >= b.pt.LineCount() {
		return ""
	}
	start, end := b.pt.GetLineRange(row)
	text := string(b.pt.Slice(start, end))
	delEnd := end
	if delEnd < b.pt.ByteSize() {
		delEnd++ // consume the trailing '\n' too
	} else if start > 0 {
		start-- // last line with no trailing \n: eat the preceding one
	}
	b.pt.Delete(start, delEnd-start)
	b.bump(row)
	return text
}

func (e LineEnding) newlineBytes() string { return e.Sequence() }
