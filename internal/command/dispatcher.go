package command

import "context"

// Dispatcher mediates every command invocation against a Registry and
// the editor's transient flags (kill chain, quit-confirm, read-only
// gate), per the five-step algorithm: look up, clear quit-confirm,
// clear kill chain, enforce the read-only gate, call the handler.
type Dispatcher struct {
	Registry *Registry
}

// NewDispatcher returns a Dispatcher over reg.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{Registry: reg}
}

// DispatchByID looks a command up by id and runs it. See DispatchByName
// for the shared dispatch algorithm.
func (d *Dispatcher) DispatchByID(id ID, ctx *Context) bool {
	cmd, ok := d.Registry.ByID(id)
	if !ok {
		return false
	}
	return d.run(cmd, ctx)
}

// DispatchByName looks a command up by name and runs it.
func (d *Dispatcher) DispatchByName(name string, ctx *Context) bool {
	cmd, ok := d.Registry.ByName(name)
	if !ok {
		return false
	}
	return d.run(cmd, ctx)
}

func (d *Dispatcher) run(cmd *Command, ctx *Context) bool {
	ed := ctx.Editor

	if ed.QuitConfirmPending() && cmd.ID != IDQuit && cmd.ID != IDKPrefix {
		ed.SetQuitConfirmPending(false)
	}

	if !KillLike[cmd.ID] {
		ed.SetKillChain(false)
	}

	if Mutating[cmd.ID] && !ed.Prompt().Active() {
		if buf := ed.Current(); buf != nil && buf.ReadOnly() {
			ed.SetStatus("Read-only buffer")
			return true
		}
	}

	mutated := cmd.Handler(ctx)

	if mutated && Mutating[cmd.ID] {
		if bridge := ed.LSP(); bridge != nil {
			if buf := ed.Current(); buf != nil {
				_ = bridge.OnBufferChanged(context.Background(), buf)
			}
		}
	}

	return mutated
}
