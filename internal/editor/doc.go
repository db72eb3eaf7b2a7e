// Package editor implements the top-level, multi-buffer coordinator:
// the buffer list and current index, the kill ring and chain flag, the
// status line, the prompt state machine, the search state, and the
// universal-argument accumulator.
//
// Editor owns many buffer.Buffer instances and tracks which one is
// current. It holds no rendering or dispatch logic of its own;
// internal/command calls into it through command handlers.
package editor
