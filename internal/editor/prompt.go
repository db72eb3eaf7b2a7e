package editor

import "github.com/dshills/keystorm/internal/engine/buffer"

// PromptKind identifies which minibuffer-style prompt is active.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptCommand
	PromptOpenFile
	PromptSaveAs
	PromptChdir
	PromptConfirm
	PromptGotoLine
	PromptSearch
	PromptRegexSearch
	PromptReplaceFind
	PromptReplaceWith
	PromptRegexReplaceFind
	PromptRegexReplaceWith
	PromptBufferSwitch
	PromptRenameSymbol
)

// origin records what to restore if a prompt with a recorded search
// origin is cancelled.
type origin struct {
	recorded bool
	cursor   buffer.Point
	row      int
	col      int
}

// PromptState is the minibuffer prompt state machine. Text input
// appends to Text; Newline accepts; a cancel command restores the
// recorded cursor/viewport origin when one was set (only search-style
// prompts record an origin, since only they can preview a match before
// commit).
type PromptState struct {
	Kind PromptKind
	Text string

	origin origin
}

// Active reports whether any prompt is open.
func (p *PromptState) Active() bool { return p.Kind != PromptNone }

// Begin opens a prompt of the given kind with empty text.
func (p *PromptState) Begin(kind PromptKind) {
	p.Kind = kind
	p.Text = ""
	p.origin = origin{}
}

// BeginWithOrigin opens a prompt and records buf's cursor/viewport so
// Cancel can restore it. Used for Search/RegexSearch, where navigating
// between candidate matches moves the cursor before the prompt is
// accepted or cancelled.
func (p *PromptState) BeginWithOrigin(kind PromptKind, buf *buffer.Buffer) {
	p.Begin(kind)
	row, col := buf.Viewport()
	p.origin = origin{recorded: true, cursor: buf.Cursor(), row: row, col: col}
}

// Append adds text to the prompt string (typed input).
func (p *PromptState) Append(s string) {
	p.Text += s
}

// Backspace removes the last rune of the prompt string.
func (p *PromptState) Backspace() {
	r := []rune(p.Text)
	if len(r) == 0 {
		return
	}
	p.Text = string(r[:len(r)-1])
}

// Accept returns the prompt text and closes the prompt without
// restoring any recorded origin (the caller committed the prompt's
// effect).
func (p *PromptState) Accept() string {
	text := p.Text
	*p = PromptState{}
	return text
}

// Cancel closes the prompt. If an origin was recorded, it restores
// buf's cursor and viewport to what they were when the prompt opened.
func (p *PromptState) Cancel(buf *buffer.Buffer) {
	if p.origin.recorded && buf != nil {
		buf.SetCursor(p.origin.cursor)
		buf.ScrollTo(p.origin.row, p.origin.col)
	}
	*p = PromptState{}
}
