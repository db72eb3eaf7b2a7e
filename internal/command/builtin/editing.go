package builtin

import "github.com/dshills/keystorm/internal/command"

func registerEditing(reg *command.Registry) {
	command.MarkMutating(
		command.IDInsert, command.IDNewline, command.IDBackspace, command.IDDeleteChar,
		command.IDIndentRegion, command.IDUnindentRegion, command.IDReflowParagraph,
		command.IDUndo, command.IDRedo,
	)

	reg.Register(&command.Command{ID: command.IDInsert, Name: "insert", Handler: func(ctx *command.Context) bool {
		_ = ctx.Editor.Current().InsertAtCursor(ctx.Arg, countOrOne(ctx.Count))
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDNewline, Name: "newline", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().Newline()
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDBackspace, Name: "backspace", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().Backspace()
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDDeleteChar, Name: "delete-char", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().DeleteCharForward()
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDIndentRegion, Name: "indent-region", Handler: func(ctx *command.Context) bool {
		return ctx.Editor.Current().IndentRegion()
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDUnindentRegion, Name: "unindent-region", Handler: func(ctx *command.Context) bool {
		return ctx.Editor.Current().UnindentRegion()
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDReflowParagraph, Name: "reflow-paragraph", Handler: func(ctx *command.Context) bool {
		width := ctx.Count
		if width < 1 {
			width = 72
		}
		ctx.Editor.Current().ReflowParagraph(width)
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDUndo, Name: "undo", Handler: func(ctx *command.Context) bool {
		return ctx.Editor.Current().Undo() == nil
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDRedo, Name: "redo", Handler: func(ctx *command.Context) bool {
		return ctx.Editor.Current().Redo() == nil
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSetMark, Name: "set-mark", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().SetMark()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDToggleMark, Name: "toggle-mark", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().ToggleMark()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDJumpToMark, Name: "jump-to-mark", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		if mark, ok := buf.Mark(); ok {
			buf.SetCursor(mark)
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDToggleReadOnly, Name: "toggle-read-only", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().ToggleReadOnly()
		return false
	}, IsPublic: true})
}
