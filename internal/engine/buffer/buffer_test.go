package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInsertAtCursorAdvancesCursor(t *testing.T) {
	b := NewFromString("hello")
	b.SetCursor(Point{0, 5})
	if err := b.InsertAtCursor(" world", 1); err != nil {
		t.Fatalf("InsertAtCursor: %v", err)
	}
	if got := b.FullText(); got != "hello world" {
		t.Fatalf("FullText = %q", got)
	}
	if b.Cursor() != (Point{0, 11}) {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
}

func TestInsertAtCursorRejectsNewline(t *testing.T) {
	b := New()
	if err := b.InsertAtCursor("a\nb", 1); err != ErrEmbeddedNewline {
		t.Fatalf("err = %v, want ErrEmbeddedNewline", err)
	}
}

func TestNewlineSplitsAndUndoRejoins(t *testing.T) {
	b := NewFromString("abcd")
	b.SetCursor(Point{0, 2})
	b.Newline()
	if got := b.FullText(); got != "ab\ncd" {
		t.Fatalf("FullText = %q", got)
	}
	if err := b.UndoSystem().Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.FullText(); got != "abcd" {
		t.Fatalf("after undo FullText = %q", got)
	}
	if err := b.UndoSystem().Redo(b); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := b.FullText(); got != "ab\ncd" {
		t.Fatalf("after redo FullText = %q", got)
	}
}

// TestBackspaceJoinUndoesBySplitting exercises the Reversed polarity:
// a Backspace-triggered join must undo by splitting back at the exact
// point of the join, not by joining again.
func TestBackspaceJoinUndoesBySplitting(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetCursor(Point{1, 0})
	b.Backspace()
	if got := b.FullText(); got != "abcd" {
		t.Fatalf("FullText after join = %q", got)
	}
	if b.Cursor() != (Point{0, 2}) {
		t.Fatalf("cursor after join = %+v", b.Cursor())
	}
	if err := b.UndoSystem().Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.FullText(); got != "ab\ncd" {
		t.Fatalf("FullText after undo = %q", got)
	}
	if err := b.UndoSystem().Redo(b); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := b.FullText(); got != "abcd" {
		t.Fatalf("FullText after redo = %q", got)
	}
}

func TestBackspaceInLineDeletesLeft(t *testing.T) {
	b := NewFromString("abc")
	b.SetCursor(Point{0, 3})
	b.Backspace()
	b.Backspace()
	if got := b.FullText(); got != "a" {
		t.Fatalf("FullText = %q", got)
	}
	if b.Cursor() != (Point{0, 1}) {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
	if err := b.UndoSystem().Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.FullText(); got != "abc" {
		t.Fatalf("FullText after single undo = %q", got)
	}
}

func TestDeleteCharForwardJoinsNextLine(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetCursor(Point{0, 2})
	b.DeleteCharForward()
	if got := b.FullText(); got != "abcd" {
		t.Fatalf("FullText = %q", got)
	}
	if err := b.UndoSystem().Undo(b); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.FullText(); got != "ab\ncd" {
		t.Fatalf("FullText after undo = %q", got)
	}
}

func TestKillToEOLAndLine(t *testing.T) {
	b := NewFromString("hello world\nsecond")
	b.SetCursor(Point{0, 5})
	killed := b.KillToEOL()
	if killed != " world" {
		t.Fatalf("killed = %q", killed)
	}
	if got := b.FullText(); got != "hello\nsecond" {
		t.Fatalf("FullText = %q", got)
	}

	b2 := NewFromString("one\ntwo\nthree")
	b2.SetCursor(Point{1, 0})
	killedLine := b2.KillLine()
	if killedLine != "two" {
		t.Fatalf("killedLine = %q", killedLine)
	}
	if got := b2.FullText(); got != "one\nthree" {
		t.Fatalf("FullText = %q", got)
	}
}

func TestKillRegionAndCopyRegion(t *testing.T) {
	b := NewFromString("abcdef")
	b.SetCursor(Point{0, 1})
	b.SetMark()
	b.SetCursor(Point{0, 4})
	text, ok := b.CopyRegion()
	if !ok || text != "bcd" {
		t.Fatalf("CopyRegion = %q, %v", text, ok)
	}
	if !b.MarkSet() {
		t.Fatalf("CopyRegion should not clear the mark")
	}
	killed, ok := b.KillRegion()
	if !ok || killed != "bcd" {
		t.Fatalf("KillRegion = %q, %v", killed, ok)
	}
	if got := b.FullText(); got != "aef" {
		t.Fatalf("FullText = %q", got)
	}
	if b.MarkSet() {
		t.Fatalf("KillRegion should clear the mark")
	}
}

func TestDeleteWordPrevAndNext(t *testing.T) {
	b := NewFromString("foo bar baz")
	b.SetCursor(Point{0, 7})
	b.DeleteWordPrev()
	if got := b.FullText(); got != "foo  baz" {
		t.Fatalf("FullText after DeleteWordPrev = %q", got)
	}
	b.SetCursor(Point{0, 0})
	b.DeleteWordNext()
	if got := b.FullText(); got != "baz" {
		t.Fatalf("FullText after DeleteWordNext = %q", got)
	}
}

func TestMovementClampsToBounds(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetCursor(Point{0, 0})
	b.MoveLeft(5)
	if b.Cursor() != (Point{0, 0}) {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
	b.MoveDown(10)
	if b.Cursor().Row != 1 {
		t.Fatalf("row = %d", b.Cursor().Row)
	}
	b.MoveRight(10)
	if b.Cursor() != (Point{1, 2}) {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
}

func TestWordMotionWrapsLines(t *testing.T) {
	b := NewFromString("foo\nbar")
	b.SetCursor(Point{0, 3})
	b.MoveWordForward(1)
	if b.Cursor() != (Point{1, 0}) {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
}

func TestIndentAndUnindentRegion(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")
	b.SetCursor(Point{0, 0})
	b.SetMark()
	b.SetCursor(Point{1, 0})
	b.IndentRegion()
	if got := b.Line(0); got != "\tone" {
		t.Fatalf("line0 = %q", got)
	}
	if got := b.Line(1); got != "\ttwo" {
		t.Fatalf("line1 = %q", got)
	}
	if got := b.Line(2); got != "three" {
		t.Fatalf("line2 = %q", got)
	}

	b.ClearMark()
	b.SetCursor(Point{0, 0})
	b.SetMark()
	b.SetCursor(Point{1, 0})
	b.UnindentRegion()
	if got := b.Line(0); got != "one" {
		t.Fatalf("line0 after unindent = %q", got)
	}
}

func TestSaveAsAndOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")

	b := NewFromString("line one\nline two\n")
	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if b.Dirty() {
		t.Fatalf("buffer should be clean after SaveAs")
	}
	if !b.FileBacked() {
		t.Fatalf("buffer should be file-backed after SaveAs")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "line one\nline two\n" {
		t.Fatalf("file contents = %q", string(data))
	}

	opened, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := opened.FullText(); got != "line one\nline two\n" {
		t.Fatalf("opened FullText = %q", got)
	}
	if opened.Dirty() {
		t.Fatalf("freshly opened buffer should be clean")
	}
}

func TestSaveWithNoFilenameErrors(t *testing.T) {
	b := New()
	if err := b.Save(); err != ErrNoFilename {
		t.Fatalf("err = %v, want ErrNoFilename", err)
	}
}
