package lsp

import "sync"

// BufferChangeTracker coalesces edits made to a single buffer between
// two didChange flushes into one full-text TextDocumentContentChangeEvent.
// This is the phase-1 design: every recordInsertion/recordDeletion call
// just sets a dirty flag and bumps the version, regardless of the edit's
// position or content. A future phase could narrow this to ranged
// incremental changes, but full-text sync is always a valid degenerate
// case of TextDocumentSyncKind.Incremental and never needs the buffer's
// actual edit history to compute.
type BufferChangeTracker struct {
	mu      sync.Mutex
	dirty   bool
	version int
	text    string
}

// NewBufferChangeTracker returns a tracker seeded at version 0 with no
// pending changes.
func NewBufferChangeTracker() *BufferChangeTracker {
	return &BufferChangeTracker{}
}

// RecordInsertion marks the tracker dirty and bumps its version. The
// position and inserted text are intentionally ignored in phase 1.
func (t *BufferChangeTracker) RecordInsertion(fullText string) {
	t.record(fullText)
}

// RecordDeletion marks the tracker dirty and bumps its version. The
// position and deleted range are intentionally ignored in phase 1.
func (t *BufferChangeTracker) RecordDeletion(fullText string) {
	t.record(fullText)
}

func (t *BufferChangeTracker) record(fullText string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = true
	t.version++
	t.text = fullText
}

// Dirty reports whether any edit has been recorded since the last
// ClearChanges.
func (t *BufferChangeTracker) Dirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dirty
}

// Changes returns the coalesced change set to send in the next
// didChange notification: a single full-text replacement when dirty, or
// nil when there is nothing pending.
func (t *BufferChangeTracker) Changes() []TextDocumentContentChangeEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.dirty {
		return nil
	}
	return []TextDocumentContentChangeEvent{{Text: t.text}}
}

// ClearChanges resets the dirty flag after its pending changes have
// been sent.
func (t *BufferChangeTracker) ClearChanges() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirty = false
}
