package command

import (
	"github.com/dshills/keystorm/internal/editor"
)

// ID identifies a built-in command independent of its display name, so
// renaming a command's `:`-prompt name never breaks a keymap bound by
// id.
type ID int

// Context is passed to every command handler.
type Context struct {
	Editor *editor.Editor
	Arg    string
	Count  int
}

// Handler performs a command's effect and reports whether it mutated
// editor/buffer state (used for status-line feedback and tests; the
// read-only gate below decides whether it's allowed to run at all).
type Handler func(ctx *Context) bool

// Command is a single dispatchable unit of editor behavior.
type Command struct {
	ID       ID
	Name     string
	Help     string
	Handler  Handler
	IsPublic bool
}

// Mutating is the set of commands gated by a buffer's read-only flag.
// Keyed by ID since that's stable across renames.
var Mutating = map[ID]bool{}

// KillLike is the set of commands that extend the kill chain instead
// of clearing it. Keyed by ID.
var KillLike = map[ID]bool{}

// MarkMutating flags ids as mutating, for use in each builtin package's
// init-time registration.
func MarkMutating(ids ...ID) {
	for _, id := range ids {
		Mutating[id] = true
	}
}

// MarkKillLike flags ids as kill-chain commands.
func MarkKillLike(ids ...ID) {
	for _, id := range ids {
		KillLike[id] = true
	}
}
