package undo

import "unicode/utf8"

// Kind identifies the edit an UndoNode records.
type Kind uint8

const (
	// KindInsert records text inserted at (Row, Col).
	KindInsert Kind = iota
	// KindDelete records text removed starting at (Row, Col); Col is
	// always the left edge of the deleted range regardless of whether
	// the deletion was driven by Backspace or DeleteChar.
	KindDelete
	// KindPaste records a yank/paste insertion. Behaves like KindInsert
	// for inversion purposes but is tracked separately so callers can
	// distinguish "typed" from "pasted" history entries if they choose.
	KindPaste
	// KindNewline records a line split at (Row, Col). Carries no text.
	KindNewline
	// KindDeleteRow records a whole-line deletion; Text holds the full
	// line content that was removed (needed to reconstruct it on undo).
	KindDeleteRow
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindDelete:
		return "Delete"
	case KindPaste:
		return "Paste"
	case KindNewline:
		return "Newline"
	case KindDeleteRow:
		return "DeleteRow"
	default:
		return "Unknown"
	}
}

// Node is one entry in the undo tree.
type Node struct {
	Kind Kind
	Row  int
	Col  int
	Text string

	// Child is the forward timeline from this node: the branch that
	// wins on redo (the most recently committed one).
	Child *Node
	// Next links alternative redo branches that share Parent: abandoned
	// branches left behind after undo, then superseded by a new edit.
	Next *Node

	// Reversed flips which half of a Newline/Join pair this node's
	// "redo" direction performs. A plain Enter keypress splits a line
	// forward on redo and joins on undo (Reversed == false). Backspace
	// joining two lines at column 0 performs the join as the action
	// that just happened, so redo must join again and undo must split
	// — the same pairing, opposite polarity (Reversed == true). Only
	// meaningful for KindNewline.
	Reversed bool

	parent *Node
}

// adjacent reports whether a new batch of the given kind, starting at
// (row, col), should extend n instead of starting a fresh node.
func (n *Node) adjacent(kind Kind, row, col int) bool {
	if n == nil || n.Kind != kind {
		return false
	}
	switch kind {
	case KindInsert, KindPaste:
		return row == n.Row && col == n.Col+utf8.RuneCountInString(n.Text)
	case KindDelete:
		return row == n.Row && col == n.Col
	default:
		return false
	}
}
