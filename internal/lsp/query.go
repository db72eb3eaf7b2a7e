package lsp

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// QueryAdapter implements editor.LSPQuery over the navigation, actions,
// and completion services, translating between buffer cursor state and
// LSP wire positions so the command layer never needs to import this
// package's protocol types directly. It is the one caller of
// NavigationService/ActionsService/CompletionService in this kernel —
// the caching, history, and rename/format bookkeeping those services
// already do is otherwise unreachable from anywhere a user's keystroke
// can trigger.
//
// Only file-backed buffers are navigable: an untitled scratch buffer
// has no stable path a language server can be asked about, so every
// method here reports that plainly rather than guessing at a URI.
type QueryAdapter struct {
	nav  *NavigationService
	act  *ActionsService
	comp *CompletionService
}

// NewQueryAdapter returns a QueryAdapter backed by mgr.
func NewQueryAdapter(mgr *Manager) *QueryAdapter {
	return &QueryAdapter{
		nav:  NewNavigationService(mgr),
		act:  NewActionsService(mgr),
		comp: NewCompletionService(mgr),
	}
}

func cursorPosition(buf *buffer.Buffer) Position {
	cur := buf.Cursor()
	return Position{Line: cur.Row, Character: byteToUTF16Offset(buf.Line(cur.Row), cur.Col)}
}

func requirePath(buf *buffer.Buffer) (string, error) {
	if !buf.FileBacked() {
		return "", fmt.Errorf("buffer has no language-server session (not file-backed)")
	}
	return buf.Filename(), nil
}

func locationToEditorLocation(loc Location) editor.Location {
	return editor.Location{Path: URIToFilePath(loc.URI), Row: loc.Range.Start.Line, Col: loc.Range.Start.Character}
}

func navResultLocations(r *NavigationResult) []editor.Location {
	if r == nil {
		return nil
	}
	out := make([]editor.Location, len(r.Locations))
	for i, l := range r.Locations {
		out[i] = locationToEditorLocation(l)
	}
	return out
}

// Definition resolves the symbol under buf's cursor to its declaration
// site(s), recording the jump in the navigation service's back/forward
// history.
func (q *QueryAdapter) Definition(ctx context.Context, buf *buffer.Buffer) ([]editor.Location, error) {
	path, err := requirePath(buf)
	if err != nil {
		return nil, err
	}
	result, err := q.nav.GoToDefinition(ctx, path, cursorPosition(buf))
	if err != nil {
		return nil, err
	}
	return navResultLocations(result), nil
}

// Hover returns the language server's hover text for the symbol under
// buf's cursor, or "" if the server reported nothing there.
func (q *QueryAdapter) Hover(ctx context.Context, buf *buffer.Buffer) (string, error) {
	path, err := requirePath(buf)
	if err != nil {
		return "", err
	}
	h, err := q.nav.manager.Hover(ctx, path, cursorPosition(buf))
	if err != nil {
		return "", err
	}
	if h == nil {
		return "", nil
	}
	return h.Contents.Value, nil
}

// References resolves every reference to the symbol under buf's
// cursor, including its declaration.
func (q *QueryAdapter) References(ctx context.Context, buf *buffer.Buffer) ([]editor.Location, error) {
	path, err := requirePath(buf)
	if err != nil {
		return nil, err
	}
	result, err := q.nav.FindReferences(ctx, path, cursorPosition(buf))
	if err != nil {
		return nil, err
	}
	return navResultLocations(result), nil
}

// Rename asks the language server what a rename of the symbol under
// buf's cursor to newName would touch, and reports how many changes it
// found across every affected file. Applying a cross-file
// WorkspaceEdit to buffers other than buf is out of scope for this
// command (see DESIGN.md); the count lets the caller judge the blast
// radius before making the change by hand.
func (q *QueryAdapter) Rename(ctx context.Context, buf *buffer.Buffer, newName string) (int, error) {
	path, err := requirePath(buf)
	if err != nil {
		return 0, err
	}
	result, err := q.act.Rename(ctx, path, cursorPosition(buf), newName)
	if err != nil {
		return 0, err
	}
	if result == nil {
		return 0, nil
	}
	return result.TotalChanges, nil
}

// Format applies the language server's formatting edits to buf in
// place when they take the common shape of a single edit replacing the
// buffer's full text; multi-edit reformats are reported (count
// returned) but not applied, since splicing a result with partial,
// possibly overlapping ranges onto a live piece-table cursor is
// sensitive enough that this build would rather hand control back to
// the user than guess at it (see DESIGN.md).
func (q *QueryAdapter) Format(ctx context.Context, buf *buffer.Buffer) (int, error) {
	path, err := requirePath(buf)
	if err != nil {
		return 0, err
	}
	result, err := q.act.FormatDocument(ctx, path)
	if err != nil {
		return 0, err
	}
	if result == nil || result.Skipped {
		return 0, nil
	}
	if result.EditCount == 1 && isFullDocumentEdit(buf, result.Edits[0]) {
		applyFullDocumentEdit(buf, result.Edits[0])
	}
	return result.EditCount, nil
}

// Complete returns completion labels for the identifier prefix ending
// at buf's cursor.
func (q *QueryAdapter) Complete(ctx context.Context, buf *buffer.Buffer) ([]string, error) {
	path, err := requirePath(buf)
	if err != nil {
		return nil, err
	}
	prefix := identifierPrefix(buf)
	result, err := q.comp.Complete(ctx, path, cursorPosition(buf), prefix)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	labels := make([]string, len(result.Items))
	for i, item := range result.Items {
		labels[i] = item.Label
	}
	return labels, nil
}

// identifierPrefix returns the run of identifier characters immediately
// before buf's cursor on its current line.
func identifierPrefix(buf *buffer.Buffer) string {
	cur := buf.Cursor()
	line := buf.Line(cur.Row)
	if cur.Col > len(line) {
		return ""
	}
	start := cur.Col
	for start > 0 {
		r := rune(line[start-1])
		if r != '_' && !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			break
		}
		start--
	}
	return line[start:cur.Col]
}

func isFullDocumentEdit(buf *buffer.Buffer, e TextEdit) bool {
	lastRow := buf.NRows() - 1
	return e.Range.Start.Line == 0 && e.Range.Start.Character == 0 &&
		e.Range.End.Line >= lastRow
}

// applyFullDocumentEdit replaces buf's entire contents with e.NewText.
// It joins every line down to a single row (JoinLines only removes the
// newline between two rows, so this is lossless), deletes that row's
// full rune span, and re-inserts the replacement text in one shot —
// InsertText splices raw bytes at a byte offset, so newlines embedded
// in e.NewText become new logical lines on their own once the piece
// table re-scans for line boundaries.
func applyFullDocumentEdit(buf *buffer.Buffer, e TextEdit) {
	for buf.NRows() > 1 {
		buf.JoinLines(0)
	}
	buf.DeleteText(0, 0, utf8.RuneCountInString(buf.Line(0)))
	buf.InsertText(0, 0, e.NewText)
	buf.SetCursor(buffer.Point{Row: 0, Col: 0})
}
