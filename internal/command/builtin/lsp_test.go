package builtin

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// fakeLSPQuery is a scripted editor.LSPQuery for exercising the
// command handlers without a real language server.
type fakeLSPQuery struct {
	defLocs  []editor.Location
	refLocs  []editor.Location
	hover    string
	complete []string
	renameN  int
	formatN  int
	err      error
}

func (f *fakeLSPQuery) Definition(context.Context, *buffer.Buffer) ([]editor.Location, error) {
	return f.defLocs, f.err
}
func (f *fakeLSPQuery) Hover(context.Context, *buffer.Buffer) (string, error) {
	return f.hover, f.err
}
func (f *fakeLSPQuery) References(context.Context, *buffer.Buffer) ([]editor.Location, error) {
	return f.refLocs, f.err
}
func (f *fakeLSPQuery) Rename(context.Context, *buffer.Buffer, string) (int, error) {
	return f.renameN, f.err
}
func (f *fakeLSPQuery) Format(context.Context, *buffer.Buffer) (int, error) {
	return f.formatN, f.err
}
func (f *fakeLSPQuery) Complete(context.Context, *buffer.Buffer) ([]string, error) {
	return f.complete, f.err
}

func TestLSPCommandsReportNoServerWhenQueryUnset(t *testing.T) {
	for _, name := range []string{"goto-definition", "hover", "find-references", "rename-symbol", "complete-at-point", "format-buffer"} {
		d, ed := newTestEditor("package main\n")
		dispatch(t, d, ed, name, "", 1)
		status, _ := ed.Status()
		if status != "no language server for this buffer" {
			t.Fatalf("%s: status = %q, want no-server message", name, status)
		}
	}
}

func TestGotoDefinitionReportsNoneFound(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{})
	dispatch(t, d, ed, "goto-definition", "", 1)
	status, _ := ed.Status()
	if status != "no definition found" {
		t.Fatalf("status = %q", status)
	}
}

func TestGotoDefinitionReportsOpenFailureForUnreadablePath(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{defLocs: []editor.Location{{Path: "/nonexistent/does-not-exist.go", Row: 0}}})
	dispatch(t, d, ed, "goto-definition", "", 1)
	status, _ := ed.Status()
	if status == "" {
		t.Fatal("expected an open-failure status")
	}
}

func TestHoverReportsFirstLine(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{hover: "func Foo() int\nreturns a constant"})
	dispatch(t, d, ed, "hover", "", 1)
	status, _ := ed.Status()
	if status != "func Foo() int" {
		t.Fatalf("status = %q", status)
	}
}

func TestHoverReportsNoInformation(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{hover: ""})
	dispatch(t, d, ed, "hover", "", 1)
	status, _ := ed.Status()
	if status != "no hover information" {
		t.Fatalf("status = %q", status)
	}
}

func TestFindReferencesReportsCount(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{refLocs: []editor.Location{{Path: "a.go", Row: 4}, {Path: "b.go", Row: 9}}})
	dispatch(t, d, ed, "find-references", "", 1)
	status, _ := ed.Status()
	if status != "2 reference(s); first at a.go:5" {
		t.Fatalf("status = %q", status)
	}
}

func TestFindReferencesReportsNoneFound(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{})
	dispatch(t, d, ed, "find-references", "", 1)
	status, _ := ed.Status()
	if status != "no references found" {
		t.Fatalf("status = %q", status)
	}
}

func TestRenameSymbolOpensPromptAndReportsCount(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{renameN: 3})
	dispatch(t, d, ed, "rename-symbol", "", 1)
	if ed.Prompt().Kind != editor.PromptRenameSymbol {
		t.Fatalf("prompt kind = %v, want PromptRenameSymbol", ed.Prompt().Kind)
	}
	ed.Prompt().Append("newName")
	d.DispatchByID(command.IDPromptAccept, &command.Context{Editor: ed})
	status, _ := ed.Status()
	if status != `rename to "newName" touches 3 location(s) (apply by hand)` {
		t.Fatalf("status = %q", status)
	}
}

func TestCompleteAtPointListsLabels(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{complete: []string{"foo", "foobar"}})
	dispatch(t, d, ed, "complete-at-point", "", 1)
	status, _ := ed.Status()
	if status != "foo foobar" {
		t.Fatalf("status = %q", status)
	}
}

func TestFormatBufferReportsAppliedCount(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{formatN: 1})
	mutated := dispatch(t, d, ed, "format-buffer", "", 1)
	if !mutated {
		t.Fatal("format-buffer should report mutation when edits were applied")
	}
	status, _ := ed.Status()
	if status != "applied 1 formatting edit(s)" {
		t.Fatalf("status = %q", status)
	}
}

func TestFormatBufferReportsErrorFromQuery(t *testing.T) {
	d, ed := newTestEditor("x")
	ed.SetLSPQuery(&fakeLSPQuery{err: errors.New("server crashed")})
	dispatch(t, d, ed, "format-buffer", "", 1)
	status, _ := ed.Status()
	if status != "format: server crashed" {
		t.Fatalf("status = %q", status)
	}
}
