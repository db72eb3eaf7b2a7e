package builtin

import (
	"context"
	"strings"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
)

func registerBuffers(reg *command.Registry) {
	command.MarkMutating(command.IDCloseBuffer)

	reg.Register(&command.Command{ID: command.IDOpenFileBegin, Name: "open-file-start", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptOpenFile)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSaveAsBegin, Name: "save-as", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptSaveAs)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSave, Name: "save", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		if err := buf.Save(); err != nil {
			ctx.Editor.SetStatus("save failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus("saved")
		if bridge := ctx.Editor.LSP(); bridge != nil {
			_ = bridge.OnBufferSaved(context.Background(), buf)
		}
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDReloadBuffer, Name: "reload-buffer", Handler: func(ctx *command.Context) bool {
		if err := ctx.Editor.Current().Reload(); err != nil {
			ctx.Editor.SetStatus("reload failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus("reloaded")
		return true
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDBufferSwitchBegin, Name: "buffer-switch-start", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptBufferSwitch)
		ctx.Editor.SetStatus(strings.Join(bufferDisplayNames(ctx.Editor), "  "))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDBufferNext, Name: "buffer-next", Handler: func(ctx *command.Context) bool {
		bufs := ctx.Editor.Buffers()
		if len(bufs) == 0 {
			return false
		}
		ctx.Editor.SwitchTo((ctx.Editor.CurrentIndex() + 1) % len(bufs))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDBufferPrev, Name: "buffer-prev", Handler: func(ctx *command.Context) bool {
		bufs := ctx.Editor.Buffers()
		if len(bufs) == 0 {
			return false
		}
		ctx.Editor.SwitchTo((ctx.Editor.CurrentIndex() - 1 + len(bufs)) % len(bufs))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDCloseBuffer, Name: "buffer-close", Handler: func(ctx *command.Context) bool {
		closing := ctx.Editor.Current()
		ok := ctx.Editor.CloseBuffer(ctx.Editor.CurrentIndex())
		if ok && closing != nil {
			if bridge := ctx.Editor.LSP(); bridge != nil {
				_ = bridge.OnBufferClosed(context.Background(), closing)
			}
		}
		return ok
	}, IsPublic: true})
}

// bufferDisplayNames returns the shortest-unique-suffix display name
// for every open buffer, in open order, for status-line and
// buffer-switch-prompt rendering.
func bufferDisplayNames(ed *editor.Editor) []string {
	paths := make([]string, 0, len(ed.Buffers()))
	for _, b := range ed.Buffers() {
		paths = append(paths, b.Filename())
	}
	return editor.DisplayNames(paths)
}
