package undo

import "testing"

// fakeBuffer is a minimal BufferOps double that models a single line of
// text so undo/redo round-trips can be verified without depending on
// internal/engine/buffer.
type fakeBuffer struct {
	line string
}

func (b *fakeBuffer) InsertText(row, col int, text string) {
	r := []rune(b.line)
	out := append([]rune{}, r[:col]...)
	out = append(out, []rune(text)...)
	out = append(out, r[col:]...)
	b.line = string(out)
}

func (b *fakeBuffer) DeleteText(row, col, length int) string {
	r := []rune(b.line)
	end := col + length
	removed := string(r[col:end])
	b.line = string(append(append([]rune{}, r[:col]...), r[end:]...))
	return removed
}

func (b *fakeBuffer) SplitLine(row, col int)         {}
func (b *fakeBuffer) JoinLines(row int)              {}
func (b *fakeBuffer) InsertRow(row int, text string) {}
func (b *fakeBuffer) DeleteRow(row int) string        { return "" }

func TestInsertUndoRedo(t *testing.T) {
	buf := &fakeBuffer{}
	tr := New()

	tr.Begin(KindInsert, 0, 0)
	buf.InsertText(0, 0, "Hello")
	tr.Append("Hello", false)

	if buf.line != "Hello" {
		t.Fatalf("line = %q", buf.line)
	}

	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.line != "" {
		t.Fatalf("after undo, line = %q, want empty", buf.line)
	}

	if err := tr.Redo(buf); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if buf.line != "Hello" {
		t.Fatalf("after redo, line = %q, want Hello", buf.line)
	}
}

func TestUndoAtRootIsNoop(t *testing.T) {
	tr := New()
	buf := &fakeBuffer{}
	if err := tr.Undo(buf); err != ErrNothingToUndo {
		t.Fatalf("Undo at root: %v, want ErrNothingToUndo", err)
	}
}

func TestRedoWithNoForwardIsNoop(t *testing.T) {
	tr := New()
	buf := &fakeBuffer{}
	if err := tr.Redo(buf); err != ErrNothingToRedo {
		t.Fatalf("Redo with nothing pending: %v, want ErrNothingToRedo", err)
	}
}

func TestBatchingExtendsAdjacentInserts(t *testing.T) {
	buf := &fakeBuffer{}
	tr := New()

	tr.Begin(KindInsert, 0, 0)
	buf.InsertText(0, 0, "a")
	tr.Append("a", false)

	tr.Begin(KindInsert, 0, 1) // adjacent: right after "a"
	buf.InsertText(0, 1, "b")
	tr.Append("b", false)

	tr.Commit()
	if tr.current.Text != "ab" {
		t.Fatalf("batched text = %q, want %q", tr.current.Text, "ab")
	}

	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if buf.line != "" {
		t.Fatalf("single undo should remove the whole batch, got %q", buf.line)
	}
}

func TestNewEditAfterUndoPreservesAbandonedBranchAsSibling(t *testing.T) {
	buf := &fakeBuffer{}
	tr := New()

	tr.Begin(KindInsert, 0, 0)
	buf.InsertText(0, 0, "x")
	tr.Append("x", false)
	tr.Commit()
	firstChild := tr.current

	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	tr.Begin(KindInsert, 0, 0)
	buf.InsertText(0, 0, "y")
	tr.Append("y", false)
	tr.Commit()

	if tr.root != tr.current {
		t.Fatalf("new node should become the new root-level current")
	}
	if tr.current.Next != firstChild {
		t.Fatalf("abandoned branch should survive as a sibling via Next")
	}
}

func TestMarkSavedAndDirty(t *testing.T) {
	buf := &fakeBuffer{}
	tr := New()
	if tr.Dirty() {
		t.Fatalf("fresh tree should not be dirty")
	}

	tr.Begin(KindInsert, 0, 0)
	buf.InsertText(0, 0, "z")
	tr.Append("z", false)
	tr.Commit()

	if !tr.Dirty() {
		t.Fatalf("after an edit, tree should be dirty")
	}
	tr.MarkSaved()
	if tr.Dirty() {
		t.Fatalf("after MarkSaved, tree should not be dirty")
	}

	if err := tr.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !tr.Dirty() {
		t.Fatalf("after undo past the save point, tree should be dirty again")
	}
}
