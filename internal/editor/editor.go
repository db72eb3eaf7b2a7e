package editor

import (
	"context"
	"time"

	"github.com/dshills/keystorm/internal/engine/buffer"
	"github.com/dshills/keystorm/internal/engine/killring"
)

// LSPBridge is the narrow view of the LSP layer that buffer lifecycle
// commands notify. Defined here rather than imported from internal/lsp
// so editor (and its tests) never needs an LSP dependency when no
// bridge is installed.
type LSPBridge interface {
	OnBufferOpened(ctx context.Context, buf *buffer.Buffer) error
	OnBufferChanged(ctx context.Context, buf *buffer.Buffer) error
	OnBufferSaved(ctx context.Context, buf *buffer.Buffer) error
	OnBufferClosed(ctx context.Context, buf *buffer.Buffer) error
}

// Location names a position a navigation query jumped to or found: a
// file path and a zero-based row/column, mirroring buffer.Point without
// requiring callers to depend on the LSP wire types.
type Location struct {
	Path string
	Row  int
	Col  int
}

// LSPQuery is the narrow view of the LSP layer that on-demand
// navigation and refactoring commands (goto-definition, hover,
// find-references, rename, complete-at-point, format) call against the
// buffer under the cursor. Defined here, not imported from internal/lsp,
// for the same reason as LSPBridge: editor stays usable with no LSP
// dependency at all when no query backend is installed.
type LSPQuery interface {
	Definition(ctx context.Context, buf *buffer.Buffer) ([]Location, error)
	Hover(ctx context.Context, buf *buffer.Buffer) (string, error)
	References(ctx context.Context, buf *buffer.Buffer) ([]Location, error)
	Rename(ctx context.Context, buf *buffer.Buffer, newName string) (int, error)
	Format(ctx context.Context, buf *buffer.Buffer) (int, error)
	Complete(ctx context.Context, buf *buffer.Buffer) ([]string, error)
}

// Editor owns the buffer list, the kill ring, the status line, and the
// prompt/search/universal-argument state shared across commands. It is
// not safe for concurrent use from multiple goroutines: per the
// cooperative single-threaded main loop, only the command dispatcher
// touches it.
type Editor struct {
	buffers []*buffer.Buffer
	current int

	kill      *killring.Ring
	killChain bool

	statusLine string
	statusTime time.Time

	prompt PromptState
	search SearchState
	uarg   UArg

	quitRequested      bool
	quitConfirmPending bool

	lsp      LSPBridge
	lspQuery LSPQuery
}

// New returns an Editor with a single empty scratch buffer current.
func New() *Editor {
	e := &Editor{
		kill: killring.New(killring.DefaultMaxEntries),
	}
	e.buffers = append(e.buffers, buffer.New())
	return e
}

// Buffers returns the buffer list in open order. Callers must not
// mutate the returned slice.
func (e *Editor) Buffers() []*buffer.Buffer { return e.buffers }

// Current returns the active buffer, or nil if the buffer list is
// somehow empty (only reachable mid-CloseBuffer).
func (e *Editor) Current() *buffer.Buffer {
	if e.current < 0 || e.current >= len(e.buffers) {
		return nil
	}
	return e.buffers[e.current]
}

// CurrentIndex returns the index of the current buffer.
func (e *Editor) CurrentIndex() int { return e.current }

// AddBuffer appends buf to the buffer list and makes it current.
func (e *Editor) AddBuffer(buf *buffer.Buffer) {
	e.buffers = append(e.buffers, buf)
	e.current = len(e.buffers) - 1
}

// SwitchTo makes the buffer at index current. Reports false if index
// is out of range.
func (e *Editor) SwitchTo(index int) bool {
	if index < 0 || index >= len(e.buffers) {
		return false
	}
	e.current = index
	return true
}

// CloseBuffer removes the buffer at index. If it was current, the
// buffer before it becomes current (or the new index 0, if the closed
// buffer was first). If the list would become empty, a fresh scratch
// buffer is substituted so Current() never returns nil.
func (e *Editor) CloseBuffer(index int) bool {
	if index < 0 || index >= len(e.buffers) {
		return false
	}
	e.buffers = append(e.buffers[:index], e.buffers[index+1:]...)
	if len(e.buffers) == 0 {
		e.buffers = append(e.buffers, buffer.New())
		e.current = 0
		return true
	}
	switch {
	case e.current > index:
		e.current--
	case e.current == index:
		if e.current > 0 {
			e.current--
		}
	}
	return true
}

// KillRing returns the kill ring.
func (e *Editor) KillRing() *killring.Ring { return e.kill }

// Prompt returns the prompt state machine for mutation by command
// handlers and inspection by the dispatcher's read-only gate.
func (e *Editor) Prompt() *PromptState { return &e.prompt }

// Search returns the incremental-search state.
func (e *Editor) Search() *SearchState { return &e.search }

// UArg returns the universal-argument accumulator.
func (e *Editor) UArg() *UArg { return &e.uarg }

// KillChain reports whether the next kill-like command should
// append/prepend to the ring's head instead of pushing a new entry.
func (e *Editor) KillChain() bool { return e.killChain }

// SetKillChain sets the chain flag; kill-like commands set it true
// after running, and the dispatcher clears it before any non-kill
// command.
func (e *Editor) SetKillChain(on bool) { e.killChain = on }

// SetStatus records a status line message with the current time.
func (e *Editor) SetStatus(msg string) {
	e.statusLine = msg
	e.statusTime = time.Now()
}

// Status returns the current status line text and when it was set.
func (e *Editor) Status() (string, time.Time) { return e.statusLine, e.statusTime }

// QuitRequested reports whether a quit command has run.
func (e *Editor) QuitRequested() bool { return e.quitRequested }

// RequestQuit sets the quit-requested flag.
func (e *Editor) RequestQuit() { e.quitRequested = true }

// CancelQuit clears the quit-requested flag (e.g. a cancelled
// quit-confirm prompt).
func (e *Editor) CancelQuit() { e.quitRequested = false }

// QuitConfirmPending reports whether a quit confirmation prompt is
// awaiting an answer.
func (e *Editor) QuitConfirmPending() bool { return e.quitConfirmPending }

// SetQuitConfirmPending sets or clears the quit-confirm flag.
func (e *Editor) SetQuitConfirmPending(on bool) { e.quitConfirmPending = on }

// SetLSPBridge installs the language-server bridge that buffer
// lifecycle commands notify. A nil bridge (the default) makes every
// LSP hook a no-op, so editors built for tests never need one.
func (e *Editor) SetLSPBridge(b LSPBridge) { e.lsp = b }

// LSP returns the installed language-server bridge, or nil if none was
// set.
func (e *Editor) LSP() LSPBridge { return e.lsp }

// SetLSPQuery installs the backend for on-demand navigation and
// refactoring commands. A nil query (the default) makes those commands
// report "no language server" rather than panic.
func (e *Editor) SetLSPQuery(q LSPQuery) { e.lspQuery = q }

// LSPQuery returns the installed navigation/refactoring query backend,
// or nil if none was set.
func (e *Editor) LSPQuery() LSPQuery { return e.lspQuery }
