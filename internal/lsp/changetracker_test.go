package lsp

import "testing"

func TestBufferChangeTrackerCoalescesToFullText(t *testing.T) {
	tr := NewBufferChangeTracker()
	if tr.Dirty() {
		t.Fatal("fresh tracker should not be dirty")
	}

	tr.RecordInsertion("hello")
	tr.RecordInsertion("hello world")
	if !tr.Dirty() {
		t.Fatal("tracker should be dirty after a recorded edit")
	}

	changes := tr.Changes()
	if len(changes) != 1 {
		t.Fatalf("len(changes) = %d, want 1", len(changes))
	}
	if changes[0].Text != "hello world" {
		t.Fatalf("changes[0].Text = %q, want latest full text", changes[0].Text)
	}
	if changes[0].Range != nil {
		t.Fatal("phase-1 coalesced change must be a full-text replacement with no range")
	}
}

func TestBufferChangeTrackerClearResetsDirty(t *testing.T) {
	tr := NewBufferChangeTracker()
	tr.RecordDeletion("x")
	tr.ClearChanges()
	if tr.Dirty() {
		t.Fatal("ClearChanges should reset dirty")
	}
	if tr.Changes() != nil {
		t.Fatal("Changes() should be nil once cleared")
	}
}
