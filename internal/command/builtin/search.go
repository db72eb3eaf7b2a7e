package builtin

import (
	"regexp"
	"strings"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
)

// findMatches scans every line of buf for query, literal or regex, and
// returns every match as a Range. Regex compile failure yields no
// matches rather than an error, since incremental search re-runs on
// every keystroke and a half-typed pattern is the common case.
func findMatches(buf *buffer.Buffer, query string, isRegex bool) []buffer.Range {
	if query == "" {
		return nil
	}
	var re *regexp.Regexp
	if isRegex {
		var err error
		re, err = regexp.Compile(query)
		if err != nil {
			return nil
		}
	}

	var out []buffer.Range
	for row := 0; row < buf.NRows(); row++ {
		line := buf.Line(row)
		if isRegex {
			for _, loc := range re.FindAllStringIndex(line, -1) {
				out = append(out, buffer.Range{
					Start: buffer.Point{Row: row, Col: runeIndex(line, loc[0])},
					End:   buffer.Point{Row: row, Col: runeIndex(line, loc[1])},
				})
			}
			continue
		}
		start := 0
		for {
			idx := strings.Index(line[start:], query)
			if idx < 0 {
				break
			}
			absByte := start + idx
			out = append(out, buffer.Range{
				Start: buffer.Point{Row: row, Col: runeIndex(line, absByte)},
				End:   buffer.Point{Row: row, Col: runeIndex(line, absByte+len(query))},
			})
			start = absByte + len(query)
			if start > len(line) {
				break
			}
		}
	}
	return out
}

// runeIndex converts a byte offset into s to a rune (column) offset.
func runeIndex(s string, byteOff int) int {
	return len([]rune(s[:byteOff]))
}

func rerunSearch(ctx *command.Context) {
	s := ctx.Editor.Search()
	buf := ctx.Editor.Current()
	s.SetMatches(findMatches(buf, s.Query, s.Regex))
	if r, ok := s.Current(); ok {
		buf.SetCursor(r.Start)
	}
}

func registerSearch(reg *command.Registry) {
	command.MarkMutating(command.IDReplaceBegin, command.IDRegexReplaceBegin)

	reg.Register(&command.Command{ID: command.IDSearchBegin, Name: "find-start", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		ctx.Editor.Search().Start(buf, false)
		ctx.Editor.Prompt().BeginWithOrigin(editor.PromptSearch, buf)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDRegexSearchBegin, Name: "regex-find-start", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		ctx.Editor.Search().Start(buf, true)
		ctx.Editor.Prompt().BeginWithOrigin(editor.PromptRegexSearch, buf)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSearchNext, Name: "search-next", Handler: func(ctx *command.Context) bool {
		if r, ok := ctx.Editor.Search().Next(); ok {
			ctx.Editor.Current().SetCursor(r.Start)
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSearchPrev, Name: "search-prev", Handler: func(ctx *command.Context) bool {
		if r, ok := ctx.Editor.Search().Prev(); ok {
			ctx.Editor.Current().SetCursor(r.Start)
		}
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSearchAccept, Name: "search-accept", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Search().Commit()
		ctx.Editor.Prompt().Accept()
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDSearchCancel, Name: "search-cancel", Handler: func(ctx *command.Context) bool {
		buf := ctx.Editor.Current()
		ctx.Editor.Search().Cancel(buf)
		ctx.Editor.Prompt().Cancel(buf)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDReplaceBegin, Name: "search-replace", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptReplaceFind)
		return false
	}, IsPublic: true})

	reg.Register(&command.Command{ID: command.IDRegexReplaceBegin, Name: "regex-replace", Handler: func(ctx *command.Context) bool {
		ctx.Editor.Prompt().Begin(editor.PromptRegexReplaceFind)
		return false
	}, IsPublic: true})
}

// replaceAll substitutes every occurrence of find with with in buf,
// literal or regex, each occurrence driven through the mark/cursor
// kill-and-insert path so every substitution is recorded as a delete
// undo step followed by an insert undo step, and returns the count
// replaced. Matches are processed last-to-first so
// an earlier match's column shift never invalidates a later one.
func replaceAll(buf *buffer.Buffer, find, with string, isRegex bool) int {
	matches := findMatches(buf, find, isRegex)
	n := 0
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		buf.SetCursor(m.Start)
		buf.SetMark()
		buf.SetCursor(m.End)
		if _, ok := buf.KillRegion(); ok {
			_ = buf.InsertAtCursor(with, 1)
			n++
		}
	}
	return n
}
