package editor

import "github.com/dshills/keystorm/internal/engine/buffer"

// SearchState tracks an in-progress incremental search: the matches
// found for the current query, which one is selected, and the point
// search began from (so cancel can return there).
type SearchState struct {
	Query   string
	Regex   bool
	Matches []buffer.Range
	Index   int
	Origin  buffer.Point
	started bool
}

// Start begins a new search from buf's current cursor position.
func (s *SearchState) Start(buf *buffer.Buffer, regex bool) {
	*s = SearchState{Regex: regex, Origin: buf.Cursor(), started: true}
}

// Active reports whether a search is in progress.
func (s *SearchState) Active() bool { return s.started }

// SetMatches installs the match list found for the current query and
// selects the match nearest Origin (or the first, if none precede it).
func (s *SearchState) SetMatches(matches []buffer.Range) {
	s.Matches = matches
	s.Index = 0
	for i, m := range matches {
		if rangeBefore(m, s.Origin) {
			s.Index = i
		}
	}
}

func rangeBefore(r buffer.Range, p buffer.Point) bool {
	start := r.Normalize().Start
	if start.Row != p.Row {
		return start.Row < p.Row
	}
	return start.Col <= p.Col
}

// Next selects the next match, wrapping to the first.
func (s *SearchState) Next() (buffer.Range, bool) {
	if len(s.Matches) == 0 {
		return buffer.Range{}, false
	}
	s.Index = (s.Index + 1) % len(s.Matches)
	return s.Matches[s.Index], true
}

// Prev selects the previous match, wrapping to the last.
func (s *SearchState) Prev() (buffer.Range, bool) {
	if len(s.Matches) == 0 {
		return buffer.Range{}, false
	}
	s.Index = (s.Index - 1 + len(s.Matches)) % len(s.Matches)
	return s.Matches[s.Index], true
}

// Current returns the currently selected match, if any.
func (s *SearchState) Current() (buffer.Range, bool) {
	if len(s.Matches) == 0 {
		return buffer.Range{}, false
	}
	return s.Matches[s.Index], true
}

// Commit ends the search, keeping the cursor where it is.
func (s *SearchState) Commit() {
	*s = SearchState{}
}

// Cancel ends the search and restores buf's cursor to Origin.
func (s *SearchState) Cancel(buf *buffer.Buffer) {
	if s.started && buf != nil {
		buf.SetCursor(s.Origin)
	}
	*s = SearchState{}
}
