package syntax

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/keystorm/internal/highlight"
)

// chromaExtras lists the languages this package has no purpose-built
// lexer for but that chroma/v2 covers, so they still get real
// highlighting instead of falling through to NullHighlighter.
var chromaExtras = []string{
	"yaml", "toml", "html", "css", "ruby", "php",
	"csharp", "java", "kotlin", "swift", "haskell", "dockerfile", "xml", "diff",
}

// chromaHighlighter adapts a chroma/v2 lexer to highlight.Highlighter.
// It relexes every line independently from LexerStateNormal: chroma
// tokenizes a whole source string rather than resuming from a caller-
// supplied state, so a block comment or triple-quoted string that
// spans a line boundary may be split incorrectly when seen one line at
// a time. Stateful() reports false for exactly this reason.
type chromaHighlighter struct {
	lexer      chroma.Lexer
	language   string
	extensions []string
}

// ChromaHighlighter returns a Highlighter backed by chroma/v2's lexer
// registered under name, or false if chroma has none.
func ChromaHighlighter(name string) (highlight.Highlighter, bool) {
	lx := lexers.Get(name)
	if lx == nil {
		return nil, false
	}
	cfg := lx.Config()
	return &chromaHighlighter{
		lexer:      lx,
		language:   strings.ToLower(cfg.Name),
		extensions: extsFromGlobs(cfg.Filenames),
	}, true
}

func (c *chromaHighlighter) Language() string         { return c.language }
func (c *chromaHighlighter) FileExtensions() []string { return c.extensions }
func (c *chromaHighlighter) Stateful() bool           { return false }

func (c *chromaHighlighter) HighlightLine(line string, _ highlight.LexerState) ([]highlight.Token, highlight.LexerState) {
	it, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, highlight.LexerStateNormal
	}
	var col uint32
	var tokens []highlight.Token
	for _, tok := range chroma.Tokens(it) {
		n := uint32(len([]rune(tok.Value)))
		if n == 0 {
			continue
		}
		tokens = append(tokens, highlight.Token{
			Type:     tokenTypeFromChroma(tok.Type),
			StartCol: col,
			EndCol:   col + n,
			Text:     tok.Value,
		})
		col += n
	}
	return tokens, highlight.LexerStateNormal
}

// extsFromGlobs keeps only the simple "*.ext" filename globs chroma
// configs list, converting them to plain extensions; patterns with any
// other wildcard shape are dropped since FileExtensions callers expect
// a literal suffix.
func extsFromGlobs(globs []string) []string {
	var out []string
	for _, g := range globs {
		if strings.HasPrefix(g, "*.") && !strings.ContainsAny(g[2:], "*?[") {
			out = append(out, g[1:])
		}
	}
	return out
}

// tokenTypeFromChroma maps a chroma token category to this package's
// TokenType vocabulary. Matched by category membership rather than by
// chroma's String() formatting, which is not part of its stable API.
func tokenTypeFromChroma(t chroma.TokenType) highlight.TokenType {
	switch {
	case t == chroma.Error:
		return highlight.TokenInvalid
	case t == chroma.LiteralStringDoc:
		return highlight.TokenCommentDoc
	case t == chroma.CommentMultiline, t == chroma.CommentPreproc, t == chroma.CommentPreprocFile, t == chroma.CommentSpecial:
		return highlight.TokenCommentBlock
	case t.InCategory(chroma.Comment):
		return highlight.TokenCommentLine
	case t == chroma.KeywordDeclaration, t == chroma.KeywordType:
		return highlight.TokenKeywordDeclaration
	case t == chroma.KeywordNamespace:
		return highlight.TokenKeywordOther
	case t == chroma.KeywordConstant:
		return highlight.TokenConstantLanguage
	case t.InCategory(chroma.Keyword):
		return highlight.TokenKeywordControl
	case t == chroma.NameFunction, t == chroma.NameFunctionMagic:
		return highlight.TokenFunctionDeclaration
	case t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo:
		return highlight.TokenFunctionBuiltin
	case t == chroma.NameClass, t == chroma.NameException:
		return highlight.TokenTypeClass
	case t == chroma.NameNamespace:
		return highlight.TokenNamespace
	case t == chroma.NameTag:
		return highlight.TokenTag
	case t == chroma.NameAttribute:
		return highlight.TokenAttribute
	case t == chroma.NameDecorator:
		return highlight.TokenSupportFunction
	case t == chroma.NameLabel:
		return highlight.TokenLabel
	case t == chroma.NameConstant:
		return highlight.TokenConstant
	case t == chroma.NameVariable, t == chroma.NameVariableInstance, t == chroma.NameVariableClass, t == chroma.NameVariableGlobal:
		return highlight.TokenVariable
	case t.InCategory(chroma.LiteralString):
		return highlight.TokenString
	case t.InCategory(chroma.LiteralNumber):
		return highlight.TokenNumber
	case t == chroma.Operator, t == chroma.OperatorWord:
		return highlight.TokenOperator
	case t == chroma.Punctuation:
		return highlight.TokenPunctuation
	case t.InCategory(chroma.Generic):
		return highlight.TokenMarkup
	case t == chroma.Text, t == chroma.TextWhitespace:
		return highlight.TokenNone
	default:
		return highlight.TokenIdentifier
	}
}
