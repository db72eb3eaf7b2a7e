package editor

import (
	"testing"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

func TestNewHasOneScratchBuffer(t *testing.T) {
	e := New()
	if len(e.Buffers()) != 1 {
		t.Fatalf("Buffers() len = %d, want 1", len(e.Buffers()))
	}
	if e.Current() == nil {
		t.Fatal("Current() should not be nil")
	}
}

func TestAddBufferMakesItCurrent(t *testing.T) {
	e := New()
	b := buffer.New()
	e.AddBuffer(b)
	if e.Current() != b {
		t.Fatal("AddBuffer should make the new buffer current")
	}
	if e.CurrentIndex() != 1 {
		t.Fatalf("CurrentIndex() = %d, want 1", e.CurrentIndex())
	}
}

func TestSwitchToOutOfRangeFails(t *testing.T) {
	e := New()
	if e.SwitchTo(5) {
		t.Fatal("SwitchTo should fail for an out-of-range index")
	}
}

func TestCloseBufferKeepsOneAlive(t *testing.T) {
	e := New()
	e.CloseBuffer(0)
	if len(e.Buffers()) != 1 {
		t.Fatalf("Buffers() len = %d, want 1 (substituted scratch buffer)", len(e.Buffers()))
	}
	if e.Current() == nil {
		t.Fatal("Current() should not be nil after closing the only buffer")
	}
}

func TestCloseBufferAdjustsCurrentIndex(t *testing.T) {
	e := New()
	e.AddBuffer(buffer.New())
	e.AddBuffer(buffer.New())
	e.SwitchTo(2)
	e.CloseBuffer(0)
	if e.CurrentIndex() != 1 {
		t.Fatalf("CurrentIndex() = %d, want 1 after removing an earlier buffer", e.CurrentIndex())
	}
}

func TestKillChainFlag(t *testing.T) {
	e := New()
	if e.KillChain() {
		t.Fatal("KillChain should start false")
	}
	e.SetKillChain(true)
	if !e.KillChain() {
		t.Fatal("SetKillChain(true) should stick")
	}
}

func TestQuitFlags(t *testing.T) {
	e := New()
	e.RequestQuit()
	if !e.QuitRequested() {
		t.Fatal("RequestQuit should set the flag")
	}
	e.SetQuitConfirmPending(true)
	if !e.QuitConfirmPending() {
		t.Fatal("SetQuitConfirmPending(true) should stick")
	}
	e.CancelQuit()
	if e.QuitRequested() {
		t.Fatal("CancelQuit should clear the flag")
	}
}

func TestSetStatusRecordsTimestamp(t *testing.T) {
	e := New()
	e.SetStatus("saved")
	msg, ts := e.Status()
	if msg != "saved" {
		t.Fatalf("Status() msg = %q, want %q", msg, "saved")
	}
	if ts.IsZero() {
		t.Fatal("Status() timestamp should not be zero")
	}
}
