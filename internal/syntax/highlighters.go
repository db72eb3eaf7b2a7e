package syntax

import "github.com/dshills/keystorm/internal/highlight"

// JsonHighlighter lexes JSON: strings, numbers, and the three literal
// keywords, stateless (JSON has no multi-line tokens).
func JsonHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("json", []string{".json"})
	h.AddRule(`"(?:[^"\\]|\\.)*"\s*:`, highlight.TokenAttribute)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`-?\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, highlight.TokenNumber)
	h.AddKeywords(highlight.TokenConstantLanguage, "true", "false", "null")
	return h
}

// ShellHighlighter lexes POSIX-ish shell scripts: comments, quoted
// strings, variables, and the common control keywords.
func ShellHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("shell", []string{".sh", ".bash", ".zsh", ".ksh", ".fish"})
	h.AddRule(`#.*$`, highlight.TokenCommentLine)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`'[^']*'`, highlight.TokenString)
	h.AddRule(`\$\{?\w+\}?`, highlight.TokenVariable)
	h.AddKeywords(highlight.TokenKeywordControl,
		"if", "then", "elif", "else", "fi", "for", "while", "until", "do",
		"done", "case", "esac", "select", "in", "break", "continue", "return")
	h.AddKeywords(highlight.TokenKeywordDeclaration, "function", "local", "declare", "export", "readonly")
	h.AddKeywords(highlight.TokenFunctionBuiltin,
		"echo", "printf", "cd", "exit", "test", "read", "shift", "set", "unset",
		"source", "eval", "exec", "trap", "wait")
	return h
}

// LispHighlighter lexes s-expression languages (Lisp, Scheme, Clojure,
// elisp): line comments, strings, and a shared core-form keyword set.
// Stateless — unbalanced parens carry no cross-line lexer state here.
func LispHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("lisp", []string{".lisp", ".scm", ".rkt", ".el", ".clj", ".cljc", ".cl"})
	h.AddRule(`;.*$`, highlight.TokenCommentLine)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`:[\w-]+`, highlight.TokenConstant) // keywords/symbols
	h.AddKeywords(highlight.TokenKeywordDeclaration,
		"defun", "defvar", "defparameter", "defmacro", "define", "lambda",
		"let", "let*", "letrec", "setq", "set!")
	h.AddKeywords(highlight.TokenKeywordControl,
		"if", "cond", "case", "when", "unless", "do", "loop", "begin",
		"and", "or", "not")
	h.AddKeywords(highlight.TokenConstantLanguage, "nil", "t", "true", "false")
	return h
}

// ErlangHighlighter lexes Erlang: %-comments, strings, atoms, and the
// reserved-word set.
func ErlangHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("erlang", []string{".erl", ".hrl"})
	h.AddRule(`%.*$`, highlight.TokenCommentLine)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`\b[a-z][a-zA-Z0-9_]*@?[a-zA-Z0-9_]*\b`, highlight.TokenIdentifier)
	h.AddKeywords(highlight.TokenKeywordControl,
		"after", "begin", "case", "catch", "cond", "end", "fun", "if",
		"let", "of", "receive", "when", "try")
	h.AddKeywords(highlight.TokenKeywordOperator,
		"div", "rem", "and", "andalso", "orelse", "not", "band", "bor",
		"bxor", "bnot", "xor")
	h.AddKeywords(highlight.TokenKeywordOther,
		"module", "export", "import", "record", "define", "undef",
		"include", "include_lib")
	return h
}

// ForthHighlighter lexes Forth: backslash/paren comments, string words,
// and the standard word set.
func ForthHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("forth", []string{".fs", ".fth", ".4th"})
	h.AddRule(`\\.*$`, highlight.TokenCommentLine)
	h.AddRule(`\([^)]*\)`, highlight.TokenCommentBlock)
	h.AddRule(`\.?"\s[^"]*"`, highlight.TokenString)
	h.AddKeywords(highlight.TokenKeywordControl,
		":", ";", "if", "else", "then", "begin", "until", "while",
		"repeat", "do", "loop", "+loop", "leave", "again", "case", "of",
		"endof", "endcase")
	h.AddKeywords(highlight.TokenKeywordDeclaration,
		"variable", "constant", "value", "to", "create", "does>", "allot")
	h.AddKeywords(highlight.TokenFunctionBuiltin,
		"dup", "drop", "swap", "over", "rot", "-rot", "nip", "tuck",
		"pick", "roll", "emit", "type", "key", "cr")
	return h
}

// SqlHighlighter lexes SQL: line comments, quoted strings, statement
// keywords, and built-in column types.
func SqlHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("sql", []string{".sql"})
	h.AddRule(`--.*$`, highlight.TokenCommentLine)
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)*'`, highlight.TokenString)
	h.AddRule(`\b\d+\.?\d*\b`, highlight.TokenNumber)
	h.AddKeywords(highlight.TokenKeywordControl,
		"select", "insert", "update", "delete", "from", "where", "group",
		"by", "order", "limit", "offset", "values", "into", "join",
		"left", "right", "inner", "outer", "cross", "using", "union",
		"case", "when", "then", "else", "end")
	h.AddKeywords(highlight.TokenKeywordDeclaration,
		"create", "table", "index", "unique", "primary", "key",
		"constraint", "foreign", "references", "drop", "alter", "add",
		"column", "rename", "view", "trigger")
	h.AddKeywords(highlight.TokenKeywordOther,
		"and", "or", "not", "null", "is", "as", "distinct", "having",
		"all", "set", "pragma", "transaction", "begin", "commit",
		"rollback", "replace", "exists", "if", "to", "on")
	h.AddKeywords(highlight.TokenTypeBuiltin,
		"integer", "real", "text", "blob", "numeric", "boolean", "date",
		"datetime", "varchar", "char", "int", "bigint", "float", "double")
	return h
}

// nullHighlighter returns every line untokenized: the fallback for
// filetypes with no registered lexer.
type nullHighlighter struct{}

func (nullHighlighter) HighlightLine(line string, prev highlight.LexerState) ([]highlight.Token, highlight.LexerState) {
	return nil, highlight.LexerStateNormal
}
func (nullHighlighter) Language() string        { return "" }
func (nullHighlighter) FileExtensions() []string { return nil }
func (nullHighlighter) Stateful() bool          { return false }

// NullHighlighter returns the no-op highlighter used when a buffer's
// filetype has no registered lexer.
func NullHighlighter() highlight.Highlighter { return nullHighlighter{} }

// CppHighlighter lexes C/C++: block comments, line comments, quoted and
// raw (R"delim(...)delim") strings. Stateful: a block comment carries
// into the next line. A raw string is highlighted only when it closes on
// the line where it opens; an unterminated raw string does not carry
// into the next line.
func CppHighlighter() *highlight.SimpleHighlighter {
	h := highlight.NewSimpleHighlighter("cpp", []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hpp", ".hh"})
	h.AddMultiLine("/*", "*/", highlight.TokenCommentBlock, highlight.LexerStateBlockComment)
	h.AddRule(`//.*$`, highlight.TokenCommentLine)
	h.AddRule(`R"[^(]*\([^)]*\)[^"]*"`, highlight.TokenString) // raw strings completed on one line
	h.AddRule(`"(?:[^"\\]|\\.)*"`, highlight.TokenString)
	h.AddRule(`'(?:[^'\\]|\\.)'`, highlight.TokenString)
	h.AddRule(`\b0[xX][0-9a-fA-F]+\b`, highlight.TokenNumberHex)
	h.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?[fFlLuU]*\b`, highlight.TokenNumber)
	h.AddRule(`#\s*\w+`, highlight.TokenMeta)
	h.AddKeywords(highlight.TokenKeywordControl,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "goto", "try", "catch", "throw")
	h.AddKeywords(highlight.TokenKeywordDeclaration,
		"struct", "class", "namespace", "using", "template", "typename",
		"enum", "union", "typedef")
	h.AddKeywords(highlight.TokenKeywordOther,
		"public", "private", "protected", "virtual", "override", "const",
		"constexpr", "static", "inline", "operator", "new", "delete",
		"friend", "extern", "volatile", "mutable", "noexcept", "sizeof",
		"this")
	h.AddKeywords(highlight.TokenConstantLanguage, "true", "false", "nullptr", "NULL")
	h.AddKeywords(highlight.TokenTypeBuiltin,
		"int", "long", "short", "char", "signed", "unsigned", "float",
		"double", "void", "bool", "wchar_t", "size_t", "ptrdiff_t",
		"uint8_t", "uint16_t", "uint32_t", "uint64_t", "int8_t",
		"int16_t", "int32_t", "int64_t", "auto")
	return h
}
