package builtin

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// registerPrompt wires the four generic prompt keys (char input,
// backspace, accept, cancel). Accept's effect depends on which prompt
// kind is open; the open/close transitions themselves (Begin) live
// with the command that opens each prompt (search.go, buffers.go,
// lifecycle.go).
func registerPrompt(reg *command.Registry) {
	reg.Register(&command.Command{ID: command.IDPromptChar, Name: "prompt-char", Handler: func(ctx *command.Context) bool {
		p := ctx.Editor.Prompt()
		if !p.Active() {
			return false
		}
		p.Append(ctx.Arg)
		if p.Kind == editor.PromptSearch || p.Kind == editor.PromptRegexSearch {
			ctx.Editor.Search().Query = p.Text
			rerunSearch(ctx)
		}
		return false
	}})

	reg.Register(&command.Command{ID: command.IDPromptBackspace, Name: "prompt-backspace", Handler: func(ctx *command.Context) bool {
		p := ctx.Editor.Prompt()
		if !p.Active() {
			return false
		}
		p.Backspace()
		if p.Kind == editor.PromptSearch || p.Kind == editor.PromptRegexSearch {
			ctx.Editor.Search().Query = p.Text
			rerunSearch(ctx)
		}
		return false
	}})

	reg.Register(&command.Command{ID: command.IDPromptAccept, Name: "prompt-accept", Handler: func(ctx *command.Context) bool {
		return acceptPrompt(ctx)
	}})

	reg.Register(&command.Command{ID: command.IDPromptCancel, Name: "prompt-cancel", Handler: func(ctx *command.Context) bool {
		p := ctx.Editor.Prompt()
		if !p.Active() {
			return false
		}
		buf := ctx.Editor.Current()
		if p.Kind == editor.PromptSearch || p.Kind == editor.PromptRegexSearch {
			ctx.Editor.Search().Cancel(buf)
		}
		pendingReplaceFind = ""
		p.Cancel(buf)
		return false
	}})
}

// pendingReplaceFind holds the find-text accepted out of a
// PromptReplaceFind/PromptRegexReplaceFind prompt until its paired
// PromptReplaceWith/PromptRegexReplaceWith prompt is accepted.
var pendingReplaceFind string

func acceptPrompt(ctx *command.Context) bool {
	p := ctx.Editor.Prompt()
	if !p.Active() {
		return false
	}
	buf := ctx.Editor.Current()
	kind := p.Kind
	text := p.Accept()

	switch kind {
	case editor.PromptSearch, editor.PromptRegexSearch:
		ctx.Editor.Search().Commit()
		return false

	case editor.PromptCommand:
		ctx.Editor.SetStatus(text)
		return false

	case editor.PromptOpenFile:
		b, err := buffer.Open(text)
		if err != nil {
			ctx.Editor.SetStatus("open failed: " + err.Error())
			return false
		}
		ctx.Editor.AddBuffer(b)
		if bridge := ctx.Editor.LSP(); bridge != nil {
			_ = bridge.OnBufferOpened(context.Background(), b)
		}
		return true

	case editor.PromptSaveAs:
		if err := buf.SaveAs(text); err != nil {
			ctx.Editor.SetStatus("save failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus("saved " + text)
		if bridge := ctx.Editor.LSP(); bridge != nil {
			_ = bridge.OnBufferSaved(context.Background(), buf)
		}
		return true

	case editor.PromptChdir:
		dir, err := buffer.ExpandPath(text)
		if err == nil {
			err = os.Chdir(dir)
		}
		if err != nil {
			ctx.Editor.SetStatus("chdir failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus("changed directory to " + dir)
		return false

	case editor.PromptConfirm:
		if text == "y" || text == "yes" {
			ctx.Editor.RequestQuit()
		}
		ctx.Editor.SetQuitConfirmPending(false)
		return false

	case editor.PromptGotoLine:
		if n, err := strconv.Atoi(text); err == nil && n > 0 {
			row := n - 1
			if row >= buf.NRows() {
				row = buf.NRows() - 1
			}
			buf.SetCursor(buffer.Point{Row: row, Col: 0})
		}
		return false

	case editor.PromptReplaceFind, editor.PromptRegexReplaceFind:
		pendingReplaceFind = text
		next := editor.PromptReplaceWith
		if kind == editor.PromptRegexReplaceFind {
			next = editor.PromptRegexReplaceWith
		}
		ctx.Editor.Prompt().Begin(next)
		return false

	case editor.PromptReplaceWith, editor.PromptRegexReplaceWith:
		n := replaceAll(buf, pendingReplaceFind, text, kind == editor.PromptRegexReplaceWith)
		pendingReplaceFind = ""
		ctx.Editor.SetStatus(replacedCountStatus(n))
		return n > 0

	case editor.PromptBufferSwitch:
		if n, err := strconv.Atoi(text); err == nil {
			ctx.Editor.SwitchTo(n)
		}
		return false

	case editor.PromptRenameSymbol:
		q := ctx.Editor.LSPQuery()
		if q == nil || text == "" {
			return false
		}
		n, err := q.Rename(context.Background(), buf, text)
		if err != nil {
			ctx.Editor.SetStatus("rename failed: " + err.Error())
			return false
		}
		ctx.Editor.SetStatus(fmt.Sprintf("rename to %q touches %d location(s) (apply by hand)", text, n))
		return false
	}
	return false
}

func replacedCountStatus(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return strconv.Itoa(n) + " replacements"
}
