package builtin

import "github.com/dshills/keystorm/internal/command"

// RegisterAll registers every built-in command with reg. Callers wire
// a single Registry once at startup and hand it to command.Dispatcher.
func RegisterAll(reg *command.Registry) {
	registerMovement(reg)
	registerEditing(reg)
	registerKill(reg)
	registerSearch(reg)
	registerPrompt(reg)
	registerBuffers(reg)
	registerLifecycle(reg)
	registerLSP(reg)
}
