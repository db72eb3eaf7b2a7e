package builtin

import (
	"testing"

	"github.com/dshills/keystorm/internal/command"
)

func TestSearchBeginFindsMatchAndMovesCursor(t *testing.T) {
	d, ed := newTestEditor("foo bar foo")
	dispatch(t, d, ed, "find-start", "", 1)
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "f"})
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "o"})
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "o"})

	if len(ed.Search().Matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(ed.Search().Matches))
	}
	if c := ed.Current().Cursor(); c.Col != 0 {
		t.Fatalf("cursor col = %d, want 0 (first match)", c.Col)
	}
}

func TestSearchNextAndAccept(t *testing.T) {
	d, ed := newTestEditor("foo bar foo")
	dispatch(t, d, ed, "find-start", "", 1)
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "f"})
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "o"})
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "o"})

	dispatch(t, d, ed, "search-next", "", 1)
	if c := ed.Current().Cursor(); c.Col != 8 {
		t.Fatalf("cursor col after search-next = %d, want 8", c.Col)
	}
	dispatch(t, d, ed, "search-accept", "", 1)
	if ed.Prompt().Active() {
		t.Fatal("prompt should be closed after accept")
	}
}

func TestSearchCancelRestoresCursor(t *testing.T) {
	d, ed := newTestEditor("foo bar foo")
	dispatch(t, d, ed, "find-start", "", 1)
	d.DispatchByID(command.IDPromptChar, &command.Context{Editor: ed, Arg: "b"})
	dispatch(t, d, ed, "search-cancel", "", 1)
	if c := ed.Current().Cursor(); c.Col != 0 {
		t.Fatalf("cursor col after cancel = %d, want 0 (origin)", c.Col)
	}
}

func TestReplaceAllSubstitutesEveryOccurrence(t *testing.T) {
	_, ed := newTestEditor("foo bar foo")
	buf := ed.Current()
	n := replaceAll(buf, "foo", "baz", false)
	if n != 2 {
		t.Fatalf("replaced = %d, want 2", n)
	}
	if buf.Line(0) != "baz bar baz" {
		t.Fatalf("line = %q", buf.Line(0))
	}
}
