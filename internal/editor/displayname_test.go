package editor

import (
	"reflect"
	"testing"
)

func TestDisplayNamesNoCollision(t *testing.T) {
	got := DisplayNames([]string{"/a/b/main.go", "/a/c/util.go"})
	want := []string{"main.go", "util.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisplayNames() = %v, want %v", got, want)
	}
}

func TestDisplayNamesGrowsOnCollision(t *testing.T) {
	got := DisplayNames([]string{"/a/b/main.go", "/a/c/main.go"})
	want := []string{"b/main.go", "c/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisplayNames() = %v, want %v", got, want)
	}
}

func TestDisplayNamesUnnamedBuffer(t *testing.T) {
	got := DisplayNames([]string{"", "/a/main.go"})
	want := []string{"[no name]", "main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisplayNames() = %v, want %v", got, want)
	}
}

func TestDisplayNamesFullCollisionFallsBackToWholePath(t *testing.T) {
	got := DisplayNames([]string{"/a/main.go", "/a/main.go"})
	want := []string{"a/main.go", "a/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisplayNames() = %v, want %v", got, want)
	}
}
