package highlight

import (
	"testing"
)

type fakeLines struct {
	lines []string
}

func (f fakeLines) Line(row int) string {
	if row < 0 || row >= len(f.lines) {
		return ""
	}
	return f.lines[row]
}
func (f fakeLines) NRows() int { return len(f.lines) }

func TestEngineGetLineComputesAndCaches(t *testing.T) {
	buf := fakeLines{lines: []string{"package main", "", "func main() {}"}}
	e := NewEngine()
	defer e.Stop()
	e.SetHighlighter(GoHighlighter())

	spans := e.GetLine(buf, 0, 1)
	if len(spans) == 0 {
		t.Fatal("expected spans for package declaration")
	}
	foundKeyword := false
	for _, s := range spans {
		if s.StartCol == 0 && s.EndCol == 7 {
			foundKeyword = true
		}
	}
	if !foundKeyword {
		t.Error("should highlight 'package' keyword")
	}

	again := e.GetLine(buf, 0, 1)
	if len(again) != len(spans) {
		t.Errorf("cached call returned %d spans, want %d", len(again), len(spans))
	}
}

func TestEngineStaleVersionRecomputes(t *testing.T) {
	buf := fakeLines{lines: []string{`"hello"`}}
	e := NewEngine()
	defer e.Stop()
	e.SetHighlighter(GoHighlighter())

	e.GetLine(buf, 0, 1)
	buf.lines[0] = `42`
	spans := e.GetLine(buf, 0, 2)
	if len(spans) != 1 || spans[0].Type != TokenNumber {
		t.Fatalf("expected a single number token after version bump, got %+v", spans)
	}
}

func TestEngineNoHighlighterReturnsNil(t *testing.T) {
	buf := fakeLines{lines: []string{"anything"}}
	e := NewEngine()
	defer e.Stop()
	if e.HasHighlighter() {
		t.Fatal("should report no highlighter")
	}
	if spans := e.GetLine(buf, 0, 1); spans != nil {
		t.Errorf("expected nil spans with no highlighter, got %v", spans)
	}
}

func TestEngineInvalidateFromDropsTailOnly(t *testing.T) {
	buf := fakeLines{lines: []string{"func a() {}", "func b() {}", "func c() {}"}}
	e := NewEngine()
	defer e.Stop()
	e.SetHighlighter(GoHighlighter())

	for i := 0; i < 3; i++ {
		e.GetLine(buf, i, 1)
	}
	e.InvalidateFrom(1)

	e.mu.Lock()
	_, row0 := e.lineCache[0]
	_, row1 := e.lineCache[1]
	_, row2 := e.lineCache[2]
	e.mu.Unlock()

	if !row0 {
		t.Error("row 0 should remain cached")
	}
	if row1 || row2 {
		t.Error("rows >= 1 should be invalidated")
	}
}

func TestEngineStatefulCarriesBlockCommentAcrossLines(t *testing.T) {
	buf := fakeLines{lines: []string{"/* start", "still inside", "end */ code"}}
	e := NewEngine()
	defer e.Stop()
	e.SetHighlighter(GoHighlighter())

	for i := range buf.lines {
		spans := e.GetLine(buf, i, 1)
		if len(spans) == 0 {
			t.Fatalf("line %d: expected at least one span", i)
		}
	}
}

func TestEnginePrefetchViewportWarmsSurroundingRows(t *testing.T) {
	buf := fakeLines{lines: make([]string, 20)}
	for i := range buf.lines {
		buf.lines[i] = "func x() {}"
	}
	e := NewEngine()
	defer e.Stop()
	e.SetHighlighter(GoHighlighter())

	e.PrefetchViewport(buf, 10, 3, 1, 2)

	e.mu.Lock()
	_, hit := e.lineCache[10]
	e.mu.Unlock()
	if !hit {
		t.Error("visible row 10 should be cached synchronously")
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r.byLanguage == nil {
		t.Error("Registry should have initialized byLanguage map")
	}
	if r.byExtension == nil {
		t.Error("Registry should have initialized byExtension map")
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	h := GoHighlighter()

	r.Register(h)

	got, ok := r.GetByLanguage("go")
	if !ok {
		t.Error("Should find highlighter by language")
	}
	if got != h {
		t.Error("Should return the registered highlighter")
	}

	got, ok = r.GetByExtension(".go")
	if !ok {
		t.Error("Should find highlighter by extension")
	}
	if got != h {
		t.Error("Should return the registered highlighter")
	}

	_, ok = r.GetByExtension("go")
	if !ok {
		t.Error("Should find highlighter by extension without dot")
	}
}

func TestRegistryGetByLanguage(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltinHighlighters(r)

	tests := []struct {
		language string
		found    bool
	}{
		{"go", true},
		{"python", true},
		{"javascript", true},
		{"rust", true},
		{"markdown", true},
		{"cobol", false},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			_, ok := r.GetByLanguage(tt.language)
			if ok != tt.found {
				t.Errorf("GetByLanguage(%q) found = %v, want %v", tt.language, ok, tt.found)
			}
		})
	}
}

func TestRegistryGetByExtension(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltinHighlighters(r)

	tests := []struct {
		ext   string
		lang  string
		found bool
	}{
		{".go", "go", true},
		{".py", "python", true},
		{".js", "javascript", true},
		{".ts", "javascript", true},
		{".tsx", "javascript", true},
		{".rs", "rust", true},
		{".md", "markdown", true},
		{".cbl", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			h, ok := r.GetByExtension(tt.ext)
			if ok != tt.found {
				t.Errorf("GetByExtension(%q) found = %v, want %v", tt.ext, ok, tt.found)
			}
			if ok && h.Language() != tt.lang {
				t.Errorf("GetByExtension(%q) language = %q, want %q", tt.ext, h.Language(), tt.lang)
			}
		})
	}
}

func TestRegistryLanguages(t *testing.T) {
	r := NewRegistry()
	RegisterBuiltinHighlighters(r)

	langs := r.Languages()
	if len(langs) != 5 {
		t.Errorf("Expected 5 languages, got %d", len(langs))
	}

	expected := map[string]bool{
		"go":         true,
		"python":     true,
		"javascript": true,
		"rust":       true,
		"markdown":   true,
	}

	for _, lang := range langs {
		if !expected[lang] {
			t.Errorf("Unexpected language: %q", lang)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	if r == nil {
		t.Error("DefaultRegistry should not return nil")
	}

	langs := r.Languages()
	if len(langs) != 0 {
		t.Error("DefaultRegistry should start empty")
	}
}
