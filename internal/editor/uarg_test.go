package editor

import "testing"

func TestUArgDefaultIsFour(t *testing.T) {
	var u UArg
	u.Begin()
	if got := u.Take(); got != 4 {
		t.Fatalf("Take() = %d, want 4", got)
	}
}

func TestUArgRepeatMultipliesByFour(t *testing.T) {
	var u UArg
	u.Begin()
	u.Begin()
	u.Begin()
	if got := u.Take(); got != 64 {
		t.Fatalf("Take() = %d, want 64 (4*4*4)", got)
	}
}

func TestUArgDigitsOverrideDefault(t *testing.T) {
	var u UArg
	u.Begin()
	u.Digit(1)
	u.Digit(2)
	if got := u.Take(); got != 12 {
		t.Fatalf("Take() = %d, want 12", got)
	}
}

func TestUArgNegate(t *testing.T) {
	var u UArg
	u.Begin()
	u.Digit(5)
	u.Negate()
	if got := u.Take(); got != -5 {
		t.Fatalf("Take() = %d, want -5", got)
	}
}

func TestUArgTakeWithoutActiveReturnsOne(t *testing.T) {
	var u UArg
	if got := u.Take(); got != 1 {
		t.Fatalf("Take() = %d, want 1", got)
	}
}

func TestUArgTakeResetsAccumulator(t *testing.T) {
	var u UArg
	u.Begin()
	u.Take()
	if u.Active() {
		t.Fatal("Active() should be false after Take")
	}
	if got := u.Take(); got != 1 {
		t.Fatalf("second Take() = %d, want 1", got)
	}
}
