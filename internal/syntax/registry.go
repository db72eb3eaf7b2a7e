package syntax

import (
	"path/filepath"
	"strings"

	"github.com/dshills/keystorm/internal/highlight"
)

// Normalize canonicalizes a filetype alias (as typed by a user or
// detected from an extension) to the registry's canonical language
// name.
func Normalize(filetype string) string {
	f := strings.ToLower(filetype)
	switch f {
	case "c", "c++", "cc", "hpp", "hh", "h", "cxx":
		return "cpp"
	case "md", "mkd", "mdown":
		return "markdown"
	case "sh", "bash", "zsh", "ksh", "fish":
		return "shell"
	case "golang":
		return "go"
	case "py":
		return "python"
	case "rs":
		return "rust"
	case "scheme", "scm", "rkt", "el", "clj", "cljc", "cl":
		return "lisp"
	case "js", "jsx", "ts", "tsx", "mjs", "cjs":
		return "javascript"
	case "erl", "hrl":
		return "erlang"
	case "fs", "fth", "4th":
		return "forth"
	default:
		return f
	}
}

var extToFiletype = map[string]string{
	".c": "cpp", ".cc": "cpp", ".cpp": "cpp", ".cxx": "cpp", ".h": "cpp", ".hpp": "cpp", ".hh": "cpp",
	".json": "json",
	".md":   "markdown", ".markdown": "markdown", ".mkd": "markdown",
	".sh": "shell", ".bash": "shell", ".zsh": "shell", ".ksh": "shell", ".fish": "shell",
	".go": "go",
	".py": "python", ".pyw": "python", ".pyi": "python",
	".rs": "rust",
	".lisp": "lisp", ".scm": "lisp", ".rkt": "lisp", ".el": "lisp", ".clj": "lisp", ".cljc": "lisp", ".cl": "lisp",
	".js": "javascript", ".jsx": "javascript", ".ts": "javascript", ".tsx": "javascript", ".mjs": "javascript", ".cjs": "javascript",
	".erl": "erlang", ".hrl": "erlang",
	".fs": "forth", ".fth": "forth", ".4th": "forth",
	".sql": "sql",

	// chroma-backed extras (see chroma.go): DetectForPath needs these
	// entries too since chroma's own Filenames globs don't feed DetectForPath.
	".yaml": "yaml", ".yml": "yaml",
	".toml": "toml",
	".html": "html", ".htm": "html",
	".css": "css",
	".rb": "ruby",
	".php": "php",
	".cs": "csharp",
	".java": "java",
	".kt": "kotlin", ".kts": "kotlin",
	".swift": "swift",
	".hs": "haskell",
	".xml": "xml",
	".diff": "diff", ".patch": "diff",
}

// shebangTokens maps a substring found in a "#!" first line to a
// filetype; checked in map order is undefined, so callers needing a
// specific priority should check "python"/"shell" cases first via
// DetectForPath, which does.
var shebangTokens = []struct {
	substr   string
	filetype string
}{
	{"python", "python"},
	{"bash", "shell"},
	{"zsh", "shell"},
	{"fish", "shell"},
	{"sh", "shell"},
	{"scheme", "lisp"},
	{"racket", "lisp"},
	{"guile", "lisp"},
}

// shebangFiletype inspects a file's first line for a "#!" interpreter
// directive and returns the filetype it implies, or "" if none match.
func shebangFiletype(firstLine string) string {
	if !strings.HasPrefix(firstLine, "#!") {
		return ""
	}
	low := strings.ToLower(firstLine)
	for _, tok := range shebangTokens {
		if strings.Contains(low, tok.substr) {
			return tok.filetype
		}
	}
	return ""
}

// DetectForPath returns the filetype for path, trying its extension
// first and falling back to a shebang check against firstLine (the
// buffer's first line, or "" if unavailable/not applicable).
func DetectForPath(path, firstLine string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ft, ok := extToFiletype[ext]; ok {
		return ft
	}
	return shebangFiletype(firstLine)
}

// DefaultRegistry returns a highlight.Registry preloaded with every
// lexer this package and the highlight package provide.
func DefaultRegistry() *highlight.Registry {
	r := highlight.NewRegistry()
	r.Register(highlight.GoHighlighter())
	r.Register(highlight.PythonHighlighter())
	r.Register(highlight.JavaScriptHighlighter())
	r.Register(highlight.RustHighlighter())
	r.Register(highlight.MarkdownHighlighter())
	r.Register(JsonHighlighter())
	r.Register(ShellHighlighter())
	r.Register(LispHighlighter())
	r.Register(ErlangHighlighter())
	r.Register(ForthHighlighter())
	r.Register(SqlHighlighter())
	r.Register(CppHighlighter())
	for _, name := range chromaExtras {
		if h, ok := ChromaHighlighter(name); ok {
			r.Register(h)
		}
	}
	return r
}

// ForFiletype returns the registered highlighter for a normalized
// filetype, or the null fallback if none is registered.
func ForFiletype(r *highlight.Registry, filetype string) highlight.Highlighter {
	if h, ok := r.GetByLanguage(Normalize(filetype)); ok {
		return h
	}
	return NullHighlighter()
}
