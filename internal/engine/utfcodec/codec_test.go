package utfcodec

import "testing"

// S6: Line = "A😀B" (UTF-8 bytes 41 F0 9F 98 80 42).
func TestEmojiSurrogatePair(t *testing.T) {
	line := "A😀B"
	if got := UTF8ColToUTF16Units(line, 2); got != 3 {
		t.Fatalf("UTF8ColToUTF16Units(L,2) = %d, want 3", got)
	}
	if got := UTF16UnitsToUTF8Col(line, 2); got != 1 {
		t.Fatalf("UTF16UnitsToUTF8Col(L,2) = %d, want 1 (mid-surrogate clamp)", got)
	}
}

// Invariant 4: utf16_units_to_utf8_col(L, utf8_col_to_utf16_units(L, c)) == c
// for every valid scalar column c of an ASCII-only line (no surrogate
// splitting possible).
func TestRoundTripASCII(t *testing.T) {
	line := "hello world"
	for c := 0; c <= len([]rune(line)); c++ {
		units := UTF8ColToUTF16Units(line, c)
		got := UTF16UnitsToUTF8Col(line, units)
		if got != c {
			t.Errorf("round trip at col %d: units=%d, back=%d", c, units, got)
		}
	}
}

func TestInvalidUTF8DecodesToReplacementChar(t *testing.T) {
	line := string([]byte{'a', 0xff, 'b'})
	// 'a' (1), invalid byte -> U+FFFD (1), 'b' (1) = 3 scalars, 3 units.
	if got := UTF8ColToUTF16Units(line, 3); got != 3 {
		t.Fatalf("UTF8ColToUTF16Units with invalid byte = %d, want 3", got)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := UTF8ColToUTF16Units("", 0); got != 0 {
		t.Fatalf("UTF8ColToUTF16Units(\"\",0) = %d", got)
	}
	if got := UTF16UnitsToUTF8Col("", 0); got != 0 {
		t.Fatalf("UTF16UnitsToUTF8Col(\"\",0) = %d", got)
	}
}

func TestColBeyondLineClampsToEOL(t *testing.T) {
	line := "hi"
	if got := UTF8ColToUTF16Units(line, 100); got != 2 {
		t.Fatalf("clamp = %d, want 2", got)
	}
}
