package builtin

import (
	"testing"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

func TestBufferNextPrevWraps(t *testing.T) {
	d, ed := newTestEditor("one")
	ed.AddBuffer(buffer.NewFromString("two"))
	// editor.New's scratch buffer, "one", "two": "two" is index 2.
	if ed.CurrentIndex() != 2 {
		t.Fatalf("current index = %d, want 2", ed.CurrentIndex())
	}
	dispatch(t, d, ed, "buffer-next", "", 1)
	if ed.CurrentIndex() != 0 {
		t.Fatalf("current index after wrap = %d, want 0", ed.CurrentIndex())
	}
	dispatch(t, d, ed, "buffer-prev", "", 1)
	if ed.CurrentIndex() != 2 {
		t.Fatalf("current index after prev = %d, want 2", ed.CurrentIndex())
	}
}

func TestCloseBufferKeepsAtLeastOne(t *testing.T) {
	d, ed := newTestEditor("one")
	d.DispatchByID(command.IDCloseBuffer, &command.Context{Editor: ed})
	if ed.Current() == nil {
		t.Fatal("Current() should never be nil")
	}
}

func TestBufferSwitchBeginShowsDisplayNames(t *testing.T) {
	d, ed := newTestEditor("one")
	dispatch(t, d, ed, "buffer-switch-start", "", 1)
	status, _ := ed.Status()
	// the scratch buffer and "one" are both unnamed
	if status != "[no name]  [no name]" {
		t.Fatalf("status = %q, want %q", status, "[no name]  [no name]")
	}
}

func TestSaveFailsWithoutFilename(t *testing.T) {
	d, ed := newTestEditor("one")
	dispatch(t, d, ed, "save", "", 1)
	status, _ := ed.Status()
	if status == "saved" {
		t.Fatal("save of an unnamed buffer should not report success")
	}
}
