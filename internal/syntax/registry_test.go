package syntax

import "testing"

func TestNormalizeAliases(t *testing.T) {
	cases := map[string]string{
		"c++":    "cpp",
		"h":      "cpp",
		"md":     "markdown",
		"bash":   "shell",
		"golang": "go",
		"py":     "python",
		"scm":    "lisp",
		"ts":     "javascript",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDetectForPathByExtension(t *testing.T) {
	if got := DetectForPath("main.go", ""); got != "go" {
		t.Fatalf("got %q", got)
	}
	if got := DetectForPath("script.PY", ""); got != "python" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectForPathByShebang(t *testing.T) {
	if got := DetectForPath("noext", "#!/usr/bin/env python3"); got != "python" {
		t.Fatalf("got %q", got)
	}
	if got := DetectForPath("noext", "#!/bin/bash"); got != "shell" {
		t.Fatalf("got %q", got)
	}
	if got := DetectForPath("noext", "not a shebang"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultRegistryCoversSpecLanguages(t *testing.T) {
	r := DefaultRegistry()
	for _, lang := range []string{"go", "python", "rust", "markdown", "json", "shell", "lisp", "erlang", "forth", "sql", "cpp"} {
		if _, ok := r.GetByLanguage(lang); !ok {
			t.Errorf("language %q not registered", lang)
		}
	}
}

func TestForFiletypeFallsBackToNull(t *testing.T) {
	r := DefaultRegistry()
	h := ForFiletype(r, "some-unknown-language")
	if h.Language() != "" {
		t.Fatalf("expected null fallback, got %q", h.Language())
	}
	tokens, state := h.HighlightLine("anything", 0)
	if tokens != nil || state != 0 {
		t.Fatalf("null highlighter should be a no-op")
	}
}

func TestJsonHighlighterTokenizesKeyAndLiteral(t *testing.T) {
	h := JsonHighlighter()
	tokens, _ := h.HighlightLine(`{"ok": true}`, 0)
	if len(tokens) == 0 {
		t.Fatalf("expected tokens for JSON line")
	}
}

func TestCppHighlighterIsStateful(t *testing.T) {
	h := CppHighlighter()
	if !h.Stateful() {
		t.Fatalf("CppHighlighter should be stateful (block comments)")
	}
	tokens, state := h.HighlightLine("/* start of a", 0)
	if state == 0 {
		t.Fatalf("expected non-normal state after unterminated block comment")
	}
	if len(tokens) == 0 {
		t.Fatalf("expected a comment token")
	}
}
