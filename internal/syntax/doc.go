// Package syntax supplies the language-specific lexers (LanguageHighlighter
// implementations) and the filetype-detection table that picks one for a
// given path. Each lexer is built on highlight.SimpleHighlighter, the
// same regex/keyword-table shape the Go, Python, Rust, JavaScript, and
// Markdown highlighters already used; this package adds the rest of the
// stateless set (JSON, Shell, Lisp, Erlang, Forth, SQL, a Null fallback)
// plus the one additional stateful lexer, C++, whose block comments carry
// end-of-line state; its raw strings are matched within a single line only.
package syntax
