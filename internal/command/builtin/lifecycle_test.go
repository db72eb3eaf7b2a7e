package builtin

import (
	"strings"
	"testing"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
)

func TestQuitOnCleanBufferRequestsQuit(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "quit", "", 1)
	if !ed.QuitRequested() {
		t.Fatal("quit should be requested immediately for a clean buffer")
	}
}

func TestQuitOnDirtyBufferPromptsConfirm(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "newline", "", 1)
	dispatch(t, d, ed, "quit", "", 1)
	if ed.QuitRequested() {
		t.Fatal("quit should not run immediately on a dirty buffer")
	}
	if !ed.QuitConfirmPending() {
		t.Fatal("quit-confirm should be pending")
	}
	if ed.Prompt().Kind != editor.PromptConfirm {
		t.Fatalf("prompt kind = %v, want PromptConfirm", ed.Prompt().Kind)
	}
}

func TestUArgBeginThenDigitOverridesDefault(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "uarg-begin", "", 1)
	d.DispatchByID(command.IDUArgDigit, &command.Context{Editor: ed, Arg: "7"})
	if got := ed.UArg().Take(); got != 7 {
		t.Fatalf("UArg().Take() = %d, want 7", got)
	}
}

func TestUArgNegate(t *testing.T) {
	d, ed := newTestEditor("")
	d.DispatchByID(command.IDUArgDigit, &command.Context{Editor: ed, Arg: "3"})
	d.DispatchByID(command.IDUArgNegate, &command.Context{Editor: ed})
	if got := ed.UArg().Take(); got != -3 {
		t.Fatalf("UArg().Take() = %d, want -3", got)
	}
}

func TestQuitNowBypassesDirtyConfirm(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "newline", "", 1)
	dispatch(t, d, ed, "quit-now", "", 1)
	if !ed.QuitRequested() {
		t.Fatal("quit-now should request quit regardless of dirty buffers")
	}
	if ed.QuitConfirmPending() {
		t.Fatal("quit-now should never set quit-confirm-pending")
	}
}

func TestSyntaxOnOff(t *testing.T) {
	d, ed := newTestEditor("")
	buf := ed.Current()
	dispatch(t, d, ed, "syntax", "off", 1)
	if buf.SyntaxEnabled() {
		t.Fatal("syntax off should disable highlighting")
	}
	dispatch(t, d, ed, "syntax", "on", 1)
	if !buf.SyntaxEnabled() {
		t.Fatal("syntax on should enable highlighting")
	}
}

func TestSetFiletype(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "set", "filetype=go", 1)
	if got := ed.Current().Filetype(); got != "go" {
		t.Fatalf("Filetype() = %q, want \"go\"", got)
	}
}

func TestShowHelpListsPublicCommands(t *testing.T) {
	d, ed := newTestEditor("")
	dispatch(t, d, ed, "show-help", "", 1)
	status, _ := ed.Status()
	for _, name := range []string{"quit", "save", "insert", "undo"} {
		if !strings.Contains(status, name) {
			t.Fatalf("show-help status missing %q: %q", name, status)
		}
	}
}

func TestMoveCursorToAbsolute(t *testing.T) {
	d, ed := newTestEditor("abc\ndef\nghi")
	dispatch(t, d, ed, "move-cursor-to", "2:1", 1)
	if c := ed.Current().Cursor(); c.Row != 2 || c.Col != 1 {
		t.Fatalf("cursor = %+v, want {2 1}", c)
	}
}
