// Package piecetable implements the document's core text representation:
// two immutable byte sequences (the original file contents and an
// append-only edit buffer) addressed by an ordered list of pieces.
//
// Unlike a rope, a piece table never copies existing bytes on edit: every
// insertion appends to the add buffer and only the piece list is spliced.
// This keeps edits cheap even for very large files, at the cost of an
// eventually-fragmented piece list that get_line/data must still resolve
// in line-start order.
//
// A PieceTable is not safe for concurrent use; callers (Buffer) serialize
// access themselves.
package piecetable
