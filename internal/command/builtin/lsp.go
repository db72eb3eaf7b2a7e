package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// registerLSP wires the on-demand language-server commands: jumping to
// a definition, showing hover text, listing references, starting a
// rename, completing at point, and reformatting the buffer. Each is a
// thin call into editor.LSPQuery, so with no query backend installed
// (tests, or a build with no language server configured) every one of
// these reports "no language server" on the status line instead of
// doing nothing silently.
func registerLSP(reg *command.Registry) {
	command.MarkMutating(command.IDFormatBuffer)

	reg.Register(&command.Command{ID: command.IDGotoDefinition, Name: "goto-definition", Handler: func(ctx *command.Context) bool {
		q := ctx.Editor.LSPQuery()
		if q == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		locs, err := q.Definition(context.Background(), ctx.Editor.Current())
		if err != nil {
			ctx.Editor.SetStatus("goto-definition: " + err.Error())
			return false
		}
		return jumpToFirst(ctx, locs, "no definition found")
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDHover, Name: "hover", Handler: func(ctx *command.Context) bool {
		q := ctx.Editor.LSPQuery()
		if q == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		text, err := q.Hover(context.Background(), ctx.Editor.Current())
		if err != nil {
			ctx.Editor.SetStatus("hover: " + err.Error())
			return false
		}
		if text == "" {
			ctx.Editor.SetStatus("no hover information")
			return false
		}
		ctx.Editor.SetStatus(firstLine(text))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDFindReferences, Name: "find-references", Handler: func(ctx *command.Context) bool {
		q := ctx.Editor.LSPQuery()
		if q == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		locs, err := q.References(context.Background(), ctx.Editor.Current())
		if err != nil {
			ctx.Editor.SetStatus("find-references: " + err.Error())
			return false
		}
		if len(locs) == 0 {
			ctx.Editor.SetStatus("no references found")
			return false
		}
		ctx.Editor.SetStatus(fmt.Sprintf("%d reference(s); first at %s:%d", len(locs), locs[0].Path, locs[0].Row+1))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDRenameSymbolBegin, Name: "rename-symbol", Handler: func(ctx *command.Context) bool {
		if ctx.Editor.LSPQuery() == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		ctx.Editor.Prompt().Begin(editor.PromptRenameSymbol)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDCompleteAtPoint, Name: "complete-at-point", Handler: func(ctx *command.Context) bool {
		q := ctx.Editor.LSPQuery()
		if q == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		labels, err := q.Complete(context.Background(), ctx.Editor.Current())
		if err != nil {
			ctx.Editor.SetStatus("complete-at-point: " + err.Error())
			return false
		}
		if len(labels) == 0 {
			ctx.Editor.SetStatus("no completions")
			return false
		}
		shown := labels
		if len(shown) > 8 {
			shown = shown[:8]
		}
		ctx.Editor.SetStatus(strings.Join(shown, " "))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDFormatBuffer, Name: "format-buffer", Handler: func(ctx *command.Context) bool {
		q := ctx.Editor.LSPQuery()
		if q == nil {
			ctx.Editor.SetStatus("no language server for this buffer")
			return false
		}
		n, err := q.Format(context.Background(), ctx.Editor.Current())
		if err != nil {
			ctx.Editor.SetStatus("format: " + err.Error())
			return false
		}
		if n == 0 {
			ctx.Editor.SetStatus("already formatted")
			return false
		}
		ctx.Editor.SetStatus(fmt.Sprintf("applied %d formatting edit(s)", n))
		return true
	}, IsPublic: true})
}

// jumpToFirst switches to locs[0]'s buffer (opening it if it isn't
// already loaded) and moves the cursor there; everything past the
// first location is reported on the status line for the user to
// navigate to by hand (there is no multi-result picker in this kernel).
func jumpToFirst(ctx *command.Context, locs []editor.Location, emptyMsg string) bool {
	if len(locs) == 0 {
		ctx.Editor.SetStatus(emptyMsg)
		return false
	}
	loc := locs[0]
	target := bufferForPath(ctx.Editor, loc.Path)
	if target == nil {
		b, err := buffer.Open(loc.Path)
		if err != nil {
			ctx.Editor.SetStatus("goto-definition: open " + loc.Path + ": " + err.Error())
			return false
		}
		ctx.Editor.AddBuffer(b)
		target = b
	}
	for i, b := range ctx.Editor.Buffers() {
		if b == target {
			ctx.Editor.SwitchTo(i)
			break
		}
	}
	target.SetCursor(buffer.Point{Row: loc.Row, Col: loc.Col})
	if len(locs) > 1 {
		ctx.Editor.SetStatus(fmt.Sprintf("jumped to %s:%d (%d more match(es))", loc.Path, loc.Row+1, len(locs)-1))
	}
	return false
}

func bufferForPath(ed *editor.Editor, path string) *buffer.Buffer {
	for _, b := range ed.Buffers() {
		if b.FileBacked() && b.Filename() == path {
			return b
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
