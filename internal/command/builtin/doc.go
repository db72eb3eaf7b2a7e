// Package builtin implements the core editing, movement, kill-ring,
// search/replace, and editor-lifecycle commands and registers them
// under stable ids with internal/command.Registry.
package builtin
