package buffer

import "strings"

// LineEnding identifies the line-terminator sequence a buffer was
// detected (or configured) to use. The core is byte-transparent: the
// PieceTable stores whatever bytes were loaded, untranslated; LineEnding
// only informs Newline's choice of bytes to insert on this buffer going
// forward.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
	CR
)

// Sequence returns the literal byte sequence for e.
func (e LineEnding) Sequence() string {
	switch e {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

func (e LineEnding) String() string {
	switch e {
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	default:
		return "LF"
	}
}

// DetectLineEnding inspects text's terminator bytes and returns the
// most frequent convention. A tie involving CRLF goes to CRLF, a tie
// between CR and LF goes to LF, and terminator-free text is LF.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	totalCR := strings.Count(text, "\r")
	lf := strings.Count(text, "\n") - crlf
	cr := totalCR - crlf

	switch {
	case crlf == 0 && cr == 0:
		return LF
	case crlf >= lf && crlf >= cr:
		return CRLF
	case cr > lf:
		return CR
	default:
		return LF
	}
}

// Option configures a new Buffer.
type Option func(*Buffer)

// WithLineEnding fixes the buffer's line ending instead of detecting it.
func WithLineEnding(e LineEnding) Option {
	return func(b *Buffer) { b.lineEnding = e }
}

// WithTabWidth sets the tab stop width used for render-column (rx)
// computation. Default is 8.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithFiletype preassigns a filetype tag (normally set by extension/
// shebang detection at open time).
func WithFiletype(ft string) Option {
	return func(b *Buffer) { b.filetype = ft }
}

// WithReadOnly marks the buffer read-only at construction.
func WithReadOnly(ro bool) Option {
	return func(b *Buffer) { b.readOnly = ro }
}
