package editor

import (
	"testing"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

func TestPromptBeginAndAppend(t *testing.T) {
	var p PromptState
	p.Begin(PromptGotoLine)
	if !p.Active() {
		t.Fatal("prompt should be active after Begin")
	}
	p.Append("4")
	p.Append("2")
	if p.Text != "42" {
		t.Fatalf("Text = %q, want %q", p.Text, "42")
	}
}

func TestPromptBackspace(t *testing.T) {
	var p PromptState
	p.Begin(PromptCommand)
	p.Append("abc")
	p.Backspace()
	if p.Text != "ab" {
		t.Fatalf("Text after Backspace = %q, want %q", p.Text, "ab")
	}
}

func TestPromptAcceptClosesAndReturnsText(t *testing.T) {
	var p PromptState
	p.Begin(PromptSaveAs)
	p.Append("out.go")
	text := p.Accept()
	if text != "out.go" {
		t.Fatalf("Accept() = %q, want %q", text, "out.go")
	}
	if p.Active() {
		t.Fatal("prompt should be closed after Accept")
	}
}

func TestPromptCancelRestoresOrigin(t *testing.T) {
	buf := buffer.NewFromString("line one\nline two\nline three")
	buf.SetCursor(buffer.Point{Row: 0, Col: 3})

	var p PromptState
	p.BeginWithOrigin(PromptSearch, buf)
	buf.SetCursor(buffer.Point{Row: 2, Col: 0})

	p.Cancel(buf)
	if buf.Cursor() != (buffer.Point{Row: 0, Col: 3}) {
		t.Fatalf("Cancel should restore cursor, got %+v", buf.Cursor())
	}
	if p.Active() {
		t.Fatal("prompt should be closed after Cancel")
	}
}

func TestPromptCancelWithoutOriginLeavesCursor(t *testing.T) {
	buf := buffer.NewFromString("abc")
	buf.SetCursor(buffer.Point{Row: 0, Col: 2})

	var p PromptState
	p.Begin(PromptCommand)
	p.Cancel(buf)
	if buf.Cursor() != (buffer.Point{Row: 0, Col: 2}) {
		t.Fatalf("Cancel without recorded origin should leave cursor, got %+v", buf.Cursor())
	}
}
