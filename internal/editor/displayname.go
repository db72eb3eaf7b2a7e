package editor

import "strings"

// DisplayNames computes, for each path in paths, the shortest suffix
// of path components that uniquely identifies it among the others
// (growing leaf-to-root until there's no collision). Entries equal to
// "" (an unnamed buffer) map to "[no name]" and never participate in
// the collision search.
func DisplayNames(paths []string) []string {
	out := make([]string, len(paths))
	segs := make([][]string, len(paths))
	for i, p := range paths {
		if p == "" {
			out[i] = "[no name]"
			continue
		}
		segs[i] = strings.Split(filepathClean(p), "/")
	}

	for i, p := range paths {
		if p == "" {
			continue
		}
		out[i] = shortestUniqueSuffix(i, segs)
	}
	return out
}

// filepathClean trims a trailing slash and collapses "//"; it doesn't
// touch "." or ".." segments since display names are cosmetic, not
// paths to be resolved.
func filepathClean(p string) string {
	parts := strings.Split(p, "/")
	var kept []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, "/")
}

func shortestUniqueSuffix(i int, segs [][]string) string {
	mine := segs[i]
	for n := 1; n <= len(mine); n++ {
		suffix := mine[len(mine)-n:]
		if uniqueAt(i, suffix, segs) {
			return strings.Join(suffix, "/")
		}
	}
	return strings.Join(mine, "/")
}

func uniqueAt(i int, suffix []string, segs [][]string) bool {
	for j, other := range segs {
		if j == i || other == nil {
			continue
		}
		if suffixEquals(other, suffix) {
			return false
		}
	}
	return true
}

func suffixEquals(full, suffix []string) bool {
	if len(suffix) > len(full) {
		return false
	}
	offset := len(full) - len(suffix)
	for i, s := range suffix {
		if full[offset+i] != s {
			return false
		}
	}
	return true
}
