// Package watch notifies the editor when a file-backed buffer's
// on-disk file changes outside the editor, so the status line can
// point a user at `reload-buffer` instead of silently going stale.
package watch

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

// Watcher tracks a set of file-backed buffers and reports which ones
// changed on disk since they were added, without touching their
// content: applying the change is always an explicit `reload-buffer`.
type Watcher struct {
	log zerolog.Logger
	fsw *fsnotify.Watcher

	mu      sync.Mutex
	byPath  map[string]*buffer.Buffer
	changed map[*buffer.Buffer]bool
}

// New starts a Watcher backed by an OS-level fsnotify watch. The
// caller must call Close when done.
func New(log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		log:     log,
		fsw:     fsw,
		byPath:  make(map[string]*buffer.Buffer),
		changed: make(map[*buffer.Buffer]bool),
	}
	go w.loop()
	return w, nil
}

// Add starts watching buf's file. No-op for a buffer with no backing
// file.
func (w *Watcher) Add(buf *buffer.Buffer) {
	if !buf.FileBacked() || buf.Filename() == "" {
		return
	}
	path := buf.Filename()
	w.mu.Lock()
	w.byPath[path] = buf
	w.mu.Unlock()
	if err := w.fsw.Add(path); err != nil {
		w.log.Debug().Err(err).Str("path", path).Msg("watch add failed")
	}
}

// Changed reports whether buf's file changed on disk since it was
// added (or since the last ClearChanged(buf)).
func (w *Watcher) Changed(buf *buffer.Buffer) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.changed[buf]
}

// ClearChanged resets buf's changed flag, typically after reload.
func (w *Watcher) ClearChanged(buf *buffer.Buffer) {
	w.mu.Lock()
	delete(w.changed, buf)
	w.mu.Unlock()
}

// Close stops the underlying OS watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			if buf, ok := w.byPath[ev.Name]; ok {
				w.changed[buf] = true
			}
			w.mu.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Debug().Err(err).Msg("watch error")
		}
	}
}
