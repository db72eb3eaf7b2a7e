package builtin

import (
	"testing"

	"github.com/dshills/keystorm/internal/command"
)

func TestKillToEOLPushesRing(t *testing.T) {
	d, ed := newTestEditor("hello world")
	dispatch(t, d, ed, "kill-to-eol", "", 1)
	if ed.Current().Line(0) != "" {
		t.Fatalf("line = %q, want empty", ed.Current().Line(0))
	}
	if ed.KillRing().Head() != "hello world" {
		t.Fatalf("ring head = %q", ed.KillRing().Head())
	}
}

func TestKillChainClearedByMovement(t *testing.T) {
	d, ed := newTestEditor("ab\ncd")
	dispatch(t, d, ed, "kill-to-eol", "", 1)
	dispatch(t, d, ed, "down", "", 1)
	dispatch(t, d, ed, "home", "", 1)
	// kill chain only survives kill-like commands; movement clears it,
	// so this second kill should push a fresh entry, not append.
	dispatch(t, d, ed, "kill-to-eol", "", 1)
	if ed.KillRing().Len() != 2 {
		t.Fatalf("ring len = %d, want 2 (chain cleared by movement)", ed.KillRing().Len())
	}
}

func TestYankInsertsHeadAndClearsChain(t *testing.T) {
	d, ed := newTestEditor("")
	ed.KillRing().Push("payload")
	d.DispatchByID(command.IDYank, &command.Context{Editor: ed})
	if ed.Current().Line(0) != "payload" {
		t.Fatalf("line = %q, want %q", ed.Current().Line(0), "payload")
	}
	if ed.KillChain() {
		t.Fatal("yank should clear the kill chain")
	}
}

func TestKillRegionRequiresMark(t *testing.T) {
	d, ed := newTestEditor("hello")
	d.DispatchByName("kill-region", &command.Context{Editor: ed})
	if ed.Current().Line(0) != "hello" {
		t.Fatal("kill-region without a mark should be a no-op")
	}
}
