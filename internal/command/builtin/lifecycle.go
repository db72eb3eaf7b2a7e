package builtin

import (
	"os"
	"strconv"
	"strings"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// registerLifecycle wires quit (with the dirty-buffer confirm prompt),
// the prefix-key passthrough that lets a quit-confirm prompt survive a
// following prefix key, the `:` command prompt, the universal argument
// accumulator, and the miscellaneous single-shot commands (refresh,
// help, syntax/set toggles, working-directory).
func registerLifecycle(reg *command.Registry) {
	reg.Register(&command.Command{ID: command.IDQuit, Name: "quit", Handler: func(ctx *command.Context) bool {
		for _, b := range ctx.Editor.Buffers() {
			if b.Dirty() {
				ctx.Editor.SetQuitConfirmPending(true)
				ctx.Editor.Prompt().Begin(editor.PromptConfirm)
				return false
			}
		}
		ctx.Editor.RequestQuit()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDQuitNow, Name: "quit-now", Handler: func(ctx *command.Context) bool {
		ctx.Editor.RequestQuit()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSaveQuit, Name: "save-quit", Handler: func(ctx *command.Context) bool {
		if err := ctx.Editor.Current().Save(); err != nil {
			ctx.Editor.SetStatus("save failed: " + err.Error())
			return false
		}
		ctx.Editor.RequestQuit()
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDRefresh, Name: "refresh", Handler: func(ctx *command.Context) bool {
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDKPrefix, Name: "k-prefix", Handler: func(ctx *command.Context) bool {
		return false
	}})

	reg.Register(&command.Command{ID: command.IDCommandPromptBegin, Name: "command-prompt-start", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptCommand)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDGotoLineBegin, Name: "goto-line", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptGotoLine)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDChdirBegin, Name: "change-working-directory", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptChdir)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDShowCwd, Name: "show-working-directory", Handler: func(ctx *command.Context) bool {
		dir, err := os.Getwd()
		if err != nil {
			ctx.Editor.SetStatus("pwd failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus(dir)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDShowHelp, Name: "show-help", Handler: func(ctx *command.Context) bool {
		names := make([]string, 0, len(reg.Public()))
		for _, c := range reg.Public() {
			names = append(names, c.Name)
		}
		ctx.Editor.SetStatus(strings.Join(names, " "))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSyntax, Name: "syntax", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		switch ctx.Arg {
		case "on":
			buf.SetSyntaxEnabled(true)
		case "off":
			buf.SetSyntaxEnabled(false)
		case "reload":
			buf.SetSyntaxEnabled(false)
			buf.SetSyntaxEnabled(true)
		default:
			ctx.Editor.SetStatus("usage: syntax on|off|reload")
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSet, Name: "set", Handler: func(ctx *command.Context) bool {
		key, value, ok := strings.Cut(ctx.Arg, "=")
		if !ok {
			ctx.Editor.SetStatus("usage: set key=value")
			return false
		}
		switch key {
		case "filetype":
			ctx.Editor.Current().SetFiletype(value)
		default:
			ctx.Editor.SetStatus("set: unknown key " + key)
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveCursorTo, Name: "move-cursor-to", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		arg := ctx.Arg
		screenRelative := strings.HasPrefix(arg, "@")
		arg = strings.TrimPrefix(arg, "@")
		rowStr, colStr, ok := strings.Cut(arg, ":")
		if !ok {
			return false
		}
		row, err1 := strconv.Atoi(rowStr)
		col, err2 := strconv.Atoi(colStr)
		if err1 != nil || err2 != nil {
			return false
		}
		if screenRelative {
			viewRow, viewCol := buf.Viewport()
			row += viewRow
			col += viewCol
		}
		buf.SetCursor(buffer.Point{Row: row, Col: col})
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDUArgBegin, Name: "uarg-begin", Handler: func(ctx *command.Context) bool {
		ctx.Editor.UArg().Begin()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDUArgDigit, Name: "uarg-digit", Handler: func(ctx *command.Context) bool {
		d := 0
		for _, r := range ctx.Arg {
			if r >= '0' && r <= '9' {
				d = int(r - '0')
			}
		}
		ctx.Editor.UArg().Digit(d)
		return false
	}})

	reg.Register(&command.Command{ID: command.IDUArgNegate, Name: "uarg-negate", Handler: func(ctx *command.Context) bool {
		ctx.Editor.UArg().Negate()
		return false
	}})
}
