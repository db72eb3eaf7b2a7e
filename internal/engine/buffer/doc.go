// Package buffer implements the editable document: a PieceTable plus
// the editing metadata that rides alongside it — cursor, mark,
// viewport offsets, dirty/read-only/file-backed/syntax flags, filetype,
// filename, a per-buffer version counter, and the owning UndoSystem.
//
// Buffer is not safe for concurrent use except for the narrow contract
// the highlighter warmer relies on: reading bytes through a *Buffer
// without holding any lock is safe because all Buffer mutation happens
// on the single main-loop goroutine, and every mutation bumps version
// before the warmer could observe the new bytes under a stale version
// number.
//
// Raw edit primitives (InsertText, DeleteText, SplitLine, JoinLines,
// InsertRow, DeleteRow) never record undo history and never move the
// cursor — they are the mechanism the undo package replays when
// undoing or redoing. Higher-level operations (InsertAtCursor,
// Newline, Backspace, ...) are what command handlers call; those do
// record undo and do move the cursor.
package buffer

import "errors"

// ErrNoFilename is returned by Save when the buffer has no associated
// path; callers should fall back to prompting for one and calling
// SaveAs.
var ErrNoFilename = errors.New("buffer: no filename to save to")
