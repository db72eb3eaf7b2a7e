package highlight

import (
	"sync"
)

// BufferSource is the narrow view of a document the engine needs to
// compute highlights: line text and line count. Buffer satisfies this
// directly.
type BufferSource interface {
	Line(row int) string
	NRows() int
}

// LineHighlight is one line's cached highlighting, stamped with the
// buffer version it was computed against.
type LineHighlight struct {
	Spans   []Token
	Version uint64
}

type stateEntry struct {
	state   LexerState
	version uint64
}

// warmRequest describes a pending background prefetch. A new request
// always replaces whatever is pending — the worker never queues.
type warmRequest struct {
	buf     BufferSource
	first   int
	last    int
	version uint64
}

// Engine is the per-buffer incremental highlighter cache described by
// HighlighterEngine: a line-span cache plus a parallel lexer-state
// cache, both keyed by buffer version, with a background warmer that
// prefetches the rows around the viewport.
//
// One mutex protects both caches and the pending warm request; the
// warmer goroutine blocks on a condition variable between requests and
// checks a stop flag on wake. For a stateful highlighter the draw path
// (GetLine) lexes every row from the nearest row with a current cached
// state up to the requested row; with a cold cache that starts at row 0.
type Engine struct {
	mu sync.Mutex

	highlighter Highlighter

	lineCache  map[int]LineHighlight
	stateCache map[int]stateEntry

	cond    *sync.Cond
	pending *warmRequest
	stopped bool
}

// NewEngine returns an Engine with its warmer goroutine running. Stop
// must be called to shut the warmer down.
func NewEngine() *Engine {
	e := &Engine{
		lineCache:  make(map[int]LineHighlight),
		stateCache: make(map[int]stateEntry),
	}
	e.cond = sync.NewCond(&e.mu)
	go e.warmerLoop()
	return e
}

// SetHighlighter installs the active language highlighter, clearing
// both caches (a different highlighter invalidates every row's spans
// and state).
func (e *Engine) SetHighlighter(h Highlighter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.highlighter = h
	e.clearCacheLocked()
}

// HasHighlighter reports whether a highlighter is installed.
func (e *Engine) HasHighlighter() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highlighter != nil
}

// InvalidateFrom deletes every cache entry at row or after: a change at
// row can only affect that row and everything after it, never anything
// before it.
func (e *Engine) InvalidateFrom(row int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.invalidateFromLocked(row)
}

func (e *Engine) invalidateFromLocked(row int) {
	for k := range e.lineCache {
		if k >= row {
			delete(e.lineCache, k)
		}
	}
	for k := range e.stateCache {
		if k >= row {
			delete(e.stateCache, k)
		}
	}
}

func (e *Engine) clearCacheLocked() {
	e.lineCache = make(map[int]LineHighlight)
	e.stateCache = make(map[int]stateEntry)
}

// GetLine returns the highlighted spans for row, computing (and
// caching) them if necessary. version is the buffer's current version;
// a cache hit whose stored version differs is stale and recomputed.
func (e *Engine) GetLine(buf BufferSource, row int, version uint64) []Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.lineCache[row]; ok && cached.Version == version {
		return cached.Spans
	}
	if e.highlighter == nil {
		return nil
	}

	if !e.highlighter.Stateful() {
		spans, _ := e.highlighter.HighlightLine(buf.Line(row), LexerStateNormal)
		e.lineCache[row] = LineHighlight{Spans: spans, Version: version}
		return spans
	}

	prevState, start := e.coherentStateLocked(row, version)
	var spans []Token
	state := prevState
	for r := start; r <= row; r++ {
		var lineSpans []Token
		lineSpans, state = e.highlighter.HighlightLine(buf.Line(r), state)
		e.stateCache[r] = stateEntry{state: state, version: version}
		if r == row {
			spans = lineSpans
			e.lineCache[r] = LineHighlight{Spans: spans, Version: version}
		}
	}
	return spans
}

// coherentStateLocked finds the greatest r* <= row-1 whose cached state
// matches version, returning that state and r*+1 as the first row that
// still needs lexing (0, LexerStateNormal if none is found).
func (e *Engine) coherentStateLocked(row int, version uint64) (LexerState, int) {
	for r := row - 1; r >= 0; r-- {
		if s, ok := e.stateCache[r]; ok && s.version == version {
			return s.state, r + 1
		}
	}
	return LexerStateNormal, 0
}

// PrefetchViewport synchronously highlights [firstRow, firstRow+count)
// then enqueues a background warm request covering that range padded
// by warmMargin on each side, replacing any request already pending.
func (e *Engine) PrefetchViewport(buf BufferSource, firstRow, count int, version uint64, warmMargin int) {
	for r := firstRow; r < firstRow+count; r++ {
		e.GetLine(buf, r, version)
	}

	first := firstRow - warmMargin
	if first < 0 {
		first = 0
	}
	last := firstRow + count - 1 + warmMargin
	if n := buf.NRows(); last >= n {
		last = n - 1
	}
	if last < first {
		return
	}

	e.mu.Lock()
	e.pending = &warmRequest{buf: buf, first: first, last: last, version: version}
	e.cond.Signal()
	e.mu.Unlock()
}

// Stop shuts the warmer goroutine down. Safe to call at most once.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.cond.Signal()
	e.mu.Unlock()
}

func (e *Engine) warmerLoop() {
	for {
		e.mu.Lock()
		for e.pending == nil && !e.stopped {
			e.cond.Wait()
		}
		if e.stopped {
			e.mu.Unlock()
			return
		}
		req := e.pending
		e.pending = nil
		e.mu.Unlock()

		for r := req.first; r <= req.last; r++ {
			e.mu.Lock()
			supersededOrStopped := e.pending != nil || e.stopped
			if supersededOrStopped {
				e.mu.Unlock()
				break
			}
			e.mu.Unlock()
			e.GetLine(req.buf, r, req.version)
		}
	}
}
