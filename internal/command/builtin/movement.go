package builtin

import (
	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

func countOrOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// registerMovement registers the cursor-motion commands under the
// names the external keymap contract requires (left/right/up/down,
// home/end, file-start/file-end, word-prev/word-next, page-up/down).
func registerMovement(reg *command.Registry) {
	reg.Register(&command.Command{ID: command.IDMoveLeft, Name: "left", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveLeft(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveRight, Name: "right", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveRight(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveUp, Name: "up", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveUp(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveDown, Name: "down", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveDown(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveLineStart, Name: "home", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveLineStart()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveLineEnd, Name: "end", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveLineEnd()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveDocStart, Name: "file-start", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveDocStart()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveDocEnd, Name: "file-end", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveDocEnd()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveWordForward, Name: "word-next", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveWordForward(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDMoveWordBackward, Name: "word-prev", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Current().MoveWordBackward(countOrOne(ctx.Count))
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDPageUp, Name: "page-up", Handler: func(ctx *command.Context) bool {
		pageMove(ctx, -1)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDPageDown, Name: "page-down", Handler: func(ctx *command.Context) bool {
		pageMove(ctx, 1)
		return false
	}, IsPublic: true})
}

// pageMove advances the viewport by (visibleRows-1)*count rows in dir's
// direction and places the cursor at the first visible line, column 0.
// visibleRows is carried on ctx.Arg as a decimal string set by the
// caller (the renderer knows its own viewport height; this core has no
// visibility into it otherwise).
func pageMove(ctx *command.Context, dir int) {
	buf := ctx.Editor.Current()
	visible := parseVisibleRows(ctx.Arg)
	count := countOrOne(ctx.Count)
	delta := (visible - 1) * count * dir

	row, col := buf.Viewport()
	row += delta
	if row < 0 {
		row = 0
	}
	buf.ScrollTo(row, col)
	newRow, _ := buf.Viewport()
	buf.SetCursor(buffer.Point{Row: newRow, Col: 0})
}

func parseVisibleRows(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 24
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 24
	}
	return n
}
