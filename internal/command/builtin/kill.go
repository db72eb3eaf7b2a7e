package builtin

import "github.com/dshills/keystorm/internal/command"

// pushKilled records text per the chain flag: a fresh push if the
// chain is cold; while it is warm, a prepend for the backward-reaching
// kills (word-prev) and an append for every other kill (EOL/word-next/
// region), whatever the previous kill's direction, matching "kill backward extends
// left, kill forward extends right".
func pushKilled(ctx *command.Context, text string, backward bool) {
	if text == "" {
		return
	}
	ring := ctx.Editor.KillRing()
	switch {
	case !ctx.Editor.KillChain():
		ring.Push(text)
	case backward:
		ring.Prepend(text)
	default:
		ring.Append(text)
	}
	ctx.Editor.SetKillChain(true)
}

func registerKill(reg *command.Registry) {
	command.MarkMutating(
		command.IDKillToEOL, command.IDKillLine, command.IDKillRegion,
		command.IDDeleteWordPrev, command.IDDeleteWordNext, command.IDYank,
	)
	command.MarkKillLike(
		command.IDKillToEOL, command.IDKillLine, command.IDKillRegion,
		command.IDCopyRegion, command.IDDeleteWordPrev, command.IDDeleteWordNext,
	)

	reg.Register(&command.Command{ID: command.IDKillToEOL, Name: "kill-to-eol", Handler: func(ctx *command.Context) bool {
		pushKilled(ctx, ctx.Editor.Current().KillToEOL(), false)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDKillLine, Name: "kill-line", Handler: func(ctx *command.Context) bool {
		pushKilled(ctx, ctx.Editor.Current().KillLine(), false)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDKillRegion, Name: "kill-region", Handler: func(ctx *command.Context) bool {
		text, ok := ctx.Editor.Current().KillRegion()
		if ok {
			pushKilled(ctx, text, false)
		}
		return ok
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDCopyRegion, Name: "copy-region", Handler: func(ctx *command.Context) bool {
		text, ok := ctx.Editor.Current().CopyRegion()
		if ok {
			ctx.Editor.KillRing().Push(text)
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDDeleteWordPrev, Name: "delete-word-prev", Handler: func(ctx *command.Context) bool {
		pushKilled(ctx, ctx.Editor.Current().DeleteWordPrev(), true)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDDeleteWordNext, Name: "delete-word-next", Handler: func(ctx *command.Context) bool {
		pushKilled(ctx, ctx.Editor.Current().DeleteWordNext(), false)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDYank, Name: "yank", Handler: func(ctx *command.Context) bool {
		text := ctx.Editor.KillRing().Head()
		if text == "" {
			return false
		}
		_ = ctx.Editor.Current().Yank(text, countOrOne(ctx.Count))
		ctx.Editor.SetKillChain(false)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDFlushKillRing, Name: "flush-kill-ring", Handler: func(ctx *command.Context) bool {
		ctx.Editor.KillRing().Clear()
		ctx.Editor.SetKillChain(false)
		return false
	}, IsPublic: true})
}
