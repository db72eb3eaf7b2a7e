// Package undo implements the branching undo/redo history described for
// a Buffer: a tree of UndoNodes rather than a linear stack, so that
// undoing and then making a new edit preserves the abandoned redo
// branch as a sibling instead of discarding it.
//
// A Tree does not hold a reference to the Buffer it edits; callers pass
// a BufferOps implementation to Undo/Redo so this package has no import
// dependency on internal/engine/buffer.
package undo
