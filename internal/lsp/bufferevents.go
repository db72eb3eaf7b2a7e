package lsp

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

// BufferBridge wires a Manager to buffer open/change/close/save events,
// tracking per-buffer LSP URIs and BufferChangeTracker coalescing state.
// Buffers without a backing file (FileBacked() == false) are assigned a
// random "untitled:<uuid>" URI the first time they're opened; named
// buffers use the standard file:// form.
type BufferBridge struct {
	mgr   *Manager
	diags *DiagnosticsService

	mu       sync.Mutex
	uris     map[*buffer.Buffer]DocumentURI
	trackers map[*buffer.Buffer]*BufferChangeTracker
}

// NewBufferBridge returns a bridge forwarding buffer lifecycle events to
// mgr. diags may be nil if the caller has no use for aggregated
// diagnostics (OnBufferClosed then skips clearing any store).
func NewBufferBridge(mgr *Manager, diags *DiagnosticsService) *BufferBridge {
	return &BufferBridge{
		mgr:      mgr,
		diags:    diags,
		uris:     make(map[*buffer.Buffer]DocumentURI),
		trackers: make(map[*buffer.Buffer]*BufferChangeTracker),
	}
}

func bufferURI(b *buffer.Buffer) DocumentURI {
	if b.FileBacked() {
		return FilePathToURI(b.Filename())
	}
	id := uuid.New()
	return DocumentURI(fmt.Sprintf("untitled:%x", id[:]))
}

// OnBufferOpened spawns (or reuses) the language server for buf's
// filetype, if any is configured, and sends didOpen with the buffer's
// full current text.
func (br *BufferBridge) OnBufferOpened(ctx context.Context, buf *buffer.Buffer) error {
	br.mu.Lock()
	uri := bufferURI(buf)
	br.uris[buf] = uri
	br.trackers[buf] = NewBufferChangeTracker()
	br.mu.Unlock()

	return br.mgr.OpenDocument(ctx, pathForURI(uri, buf), buf.FullText())
}

// OnBufferChanged records the edit in buf's change tracker and, if the
// tracker has accumulated changes, flushes them as a didChange.
func (br *BufferBridge) OnBufferChanged(ctx context.Context, buf *buffer.Buffer) error {
	br.mu.Lock()
	tracker, ok := br.trackers[buf]
	uri := br.uris[buf]
	br.mu.Unlock()
	if !ok {
		return nil
	}

	tracker.RecordInsertion(buf.FullText())
	changes := tracker.Changes()
	if changes == nil {
		return nil
	}
	if err := br.mgr.ChangeDocument(ctx, pathForURI(uri, buf), changes); err != nil {
		return err
	}
	tracker.ClearChanges()
	return nil
}

// OnBufferSaved sends didSave with buf's current on-disk content.
func (br *BufferBridge) OnBufferSaved(ctx context.Context, buf *buffer.Buffer) error {
	br.mu.Lock()
	uri := br.uris[buf]
	br.mu.Unlock()
	return br.mgr.SaveDocument(ctx, pathForURI(uri, buf), buf.FullText())
}

// OnBufferClosed sends didClose and clears the buffer's diagnostics and
// tracked state.
func (br *BufferBridge) OnBufferClosed(ctx context.Context, buf *buffer.Buffer) error {
	br.mu.Lock()
	uri := br.uris[buf]
	delete(br.uris, buf)
	delete(br.trackers, buf)
	br.mu.Unlock()

	if br.diags != nil {
		br.diags.ClearFile(pathForURI(uri, buf))
	}
	return br.mgr.CloseDocument(ctx, pathForURI(uri, buf))
}

// pathForURI returns the filesystem path to hand to Manager's
// path-keyed methods: the buffer's real filename when file-backed, or
// the untitled URI string itself otherwise (Manager/Server key
// unnamed documents by whatever path string OpenDocument was given, so
// using the URI text directly keeps open/change/close/save consistent
// for a buffer that never touches disk).
func pathForURI(uri DocumentURI, buf *buffer.Buffer) string {
	if buf.FileBacked() {
		return buf.Filename()
	}
	return string(uri)
}
