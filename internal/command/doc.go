// Package command implements the command registry and dispatcher: a
// command has {id, name, help, handler, is_public}, and dispatch looks
// a command up by id or name, clears transient editor flags, enforces
// the read-only mutation gate, then calls the handler.
//
// The registry's map+mutex shape and Context's narrow per-concern
// interface follow the teacher's dispatcher package, simplified to a
// single-handler-per-command model (a multi-handler-per-action,
// priority-sorted registry serves a plugin-style extensibility this
// core doesn't need).
package command
