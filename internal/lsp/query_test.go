package lsp

import (
	"testing"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

func TestNewQueryAdapter(t *testing.T) {
	q := NewQueryAdapter(NewManager())
	if q.nav == nil || q.act == nil || q.comp == nil {
		t.Fatal("NewQueryAdapter left a nil service")
	}
}

func TestRequirePathRejectsUnbackedBuffer(t *testing.T) {
	buf := buffer.NewFromString("hello")
	if _, err := requirePath(buf); err == nil {
		t.Fatal("expected an error for a buffer with no backing file")
	}
}

func TestIdentifierPrefixStopsAtNonWordRune(t *testing.T) {
	buf := buffer.NewFromString("fmt.Prin")
	buf.SetCursor(buffer.Point{Row: 0, Col: 8})
	if got := identifierPrefix(buf); got != "Prin" {
		t.Fatalf("identifierPrefix = %q, want %q", got, "Prin")
	}
}

func TestIdentifierPrefixEmptyAtLineStart(t *testing.T) {
	buf := buffer.NewFromString("hello")
	buf.SetCursor(buffer.Point{Row: 0, Col: 0})
	if got := identifierPrefix(buf); got != "" {
		t.Fatalf("identifierPrefix = %q, want empty", got)
	}
}

func TestIsFullDocumentEditRecognizesWholeBufferRange(t *testing.T) {
	buf := buffer.NewFromString("line one\nline two")
	lastRow := buf.NRows() - 1
	edit := TextEdit{Range: Range{Start: Position{Line: 0, Character: 0}, End: Position{Line: lastRow, Character: 8}}}
	if !isFullDocumentEdit(buf, edit) {
		t.Fatal("expected a range spanning every line to count as a full-document edit")
	}
}

func TestIsFullDocumentEditRejectsPartialRange(t *testing.T) {
	buf := buffer.NewFromString("line one\nline two\n")
	edit := TextEdit{Range: Range{Start: Position{Line: 0, Character: 2}, End: Position{Line: 0, Character: 5}}}
	if isFullDocumentEdit(buf, edit) {
		t.Fatal("a single-line partial range should not count as a full-document edit")
	}
}

func TestApplyFullDocumentEditReplacesContent(t *testing.T) {
	buf := buffer.NewFromString("old line one\nold line two\n")
	applyFullDocumentEdit(buf, TextEdit{NewText: "new content\nacross two lines\n"})
	if got := buf.FullText(); got != "new content\nacross two lines\n" {
		t.Fatalf("FullText() = %q", got)
	}
	if cur := buf.Cursor(); cur.Row != 0 || cur.Col != 0 {
		t.Fatalf("cursor = %+v, want 0,0", cur)
	}
}
