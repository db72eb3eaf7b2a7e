package buffer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/keystorm/internal/engine/piecetable"
)

// ExpandPath resolves a leading "~" to the user's home directory, then
// returns a cleaned absolute path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, path[2:])
		}
	}
	return filepath.Abs(path)
}

// Open reads path (expanding a leading ~) into a new file-backed
// Buffer, detecting its line ending from content.
func Open(path string, opts ...Option) (*Buffer, error) {
	full, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	text := string(data)
	b := New(opts...)
	b.pt = piecetable.FromString(text)
	b.lineEnding = DetectLineEnding(text)
	b.filename = full
	b.fileBacked = true
	b.undo.MarkSaved()
	b.recomputeDirty()
	return b, nil
}

// Save writes the buffer's full text back to its associated filename.
// Returns ErrNoFilename if the buffer has never been named.
func (b *Buffer) Save() error {
	if b.filename == "" {
		return ErrNoFilename
	}
	return b.SaveAs(b.filename)
}

// Reload re-reads the buffer's associated file from disk, replacing
// its contents, line ending, undo history, and cursor/mark state as if
// freshly opened. Returns ErrNoFilename if the buffer has never been
// named, and leaves the buffer untouched on a read failure.
func (b *Buffer) Reload() error {
	if b.filename == "" {
		return ErrNoFilename
	}
	data, err := os.ReadFile(b.filename)
	if err != nil {
		return err
	}
	text := string(data)
	b.pt = piecetable.FromString(text)
	b.lineEnding = DetectLineEnding(text)
	b.undo.Clear()
	b.undo.MarkSaved()
	b.cursor = Point{}
	b.mark = nil
	b.rowoffs, b.coloffs = 0, 0
	b.bump(0)
	b.recomputeDirty()
	return nil
}

// SaveAs writes the buffer's full text to path (expanding a leading ~),
// then adopts path as the buffer's filename and marks it file-backed
// and clean.
func (b *Buffer) SaveAs(path string) error {
	full, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(full, []byte(b.FullText()), 0o644); err != nil {
		return err
	}
	b.filename = full
	b.fileBacked = true
	b.undo.MarkSaved()
	b.recomputeDirty()
	return nil
}
