package editor

import (
	"testing"

	"github.com/dshills/keystorm/internal/engine/buffer"
)

func TestSearchStartAndCommit(t *testing.T) {
	buf := buffer.NewFromString("abc")
	buf.SetCursor(buffer.Point{Row: 0, Col: 1})

	var s SearchState
	s.Start(buf, false)
	if !s.Active() {
		t.Fatal("search should be active after Start")
	}
	s.Commit()
	if s.Active() {
		t.Fatal("search should be inactive after Commit")
	}
}

func TestSearchNextWraps(t *testing.T) {
	var s SearchState
	s.SetMatches([]buffer.Range{
		{Start: buffer.Point{Row: 0, Col: 0}, End: buffer.Point{Row: 0, Col: 1}},
		{Start: buffer.Point{Row: 1, Col: 0}, End: buffer.Point{Row: 1, Col: 1}},
	})
	if _, ok := s.Next(); !ok {
		t.Fatal("Next should succeed with matches present")
	}
	if s.Index != 1 {
		t.Fatalf("Index = %d, want 1", s.Index)
	}
	if _, ok := s.Next(); !ok {
		t.Fatal("Next should succeed")
	}
	if s.Index != 0 {
		t.Fatalf("Index = %d, want 0 (wrapped)", s.Index)
	}
}

func TestSearchPrevWraps(t *testing.T) {
	var s SearchState
	s.SetMatches([]buffer.Range{
		{Start: buffer.Point{Row: 0, Col: 0}, End: buffer.Point{Row: 0, Col: 1}},
		{Start: buffer.Point{Row: 1, Col: 0}, End: buffer.Point{Row: 1, Col: 1}},
	})
	if _, ok := s.Prev(); !ok {
		t.Fatal("Prev should succeed with matches present")
	}
	if s.Index != 1 {
		t.Fatalf("Index = %d, want 1 (wrapped backward)", s.Index)
	}
}

func TestSearchCancelRestoresOrigin(t *testing.T) {
	buf := buffer.NewFromString("abc\ndef")
	buf.SetCursor(buffer.Point{Row: 0, Col: 0})

	var s SearchState
	s.Start(buf, false)
	buf.SetCursor(buffer.Point{Row: 1, Col: 2})
	s.Cancel(buf)

	if buf.Cursor() != (buffer.Point{Row: 0, Col: 0}) {
		t.Fatalf("Cancel should restore cursor, got %+v", buf.Cursor())
	}
	if s.Active() {
		t.Fatal("search should be inactive after Cancel")
	}
}

func TestSearchNextOnEmptyMatches(t *testing.T) {
	var s SearchState
	if _, ok := s.Next(); ok {
		t.Fatal("Next should fail with no matches")
	}
}
