// Package killring implements the bounded stack of killed text an
// Editor yanks from. Grounded on the named-register stack shape of
// internal/input/vim/register.go, simplified to a single unnamed ring
// since the core spec exposes no named registers.
//
// Kill chaining — the rule that consecutive kill-like commands append
// or prepend to the top entry instead of pushing a new one — is a flag
// owned by the Editor, not by Ring, because the chain decision depends
// on what command ran previously, which this package has no visibility
// into.
package killring

// DefaultMaxEntries is the bound proposed for the ring's depth (spec's
// Open Question #2: the original source has no explicit bound).
const DefaultMaxEntries = 64

// Ring is a bounded LIFO stack of killed text.
type Ring struct {
	entries []string
	max     int
}

// New returns a Ring bounded at max entries. max <= 0 uses
// DefaultMaxEntries.
func New(max int) *Ring {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Ring{max: max}
}

// Push adds a new top entry, evicting the oldest entry if the ring is
// at capacity.
func (r *Ring) Push(text string) {
	r.entries = append(r.entries, text)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// Append concatenates text to the right of the top entry. If the ring
// is empty, behaves like Push.
func (r *Ring) Append(text string) {
	if len(r.entries) == 0 {
		r.Push(text)
		return
	}
	top := len(r.entries) - 1
	r.entries[top] += text
}

// Prepend concatenates text to the left of the top entry. If the ring
// is empty, behaves like Push.
func (r *Ring) Prepend(text string) {
	if len(r.entries) == 0 {
		r.Push(text)
		return
	}
	top := len(r.entries) - 1
	r.entries[top] = text + r.entries[top]
}

// Head returns the top entry, or "" if the ring is empty.
func (r *Ring) Head() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1]
}

// Len reports the number of entries currently held.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Clear empties the ring (the "flush-kill-ring" command).
func (r *Ring) Clear() {
	r.entries = nil
}

// At returns the entry at depth i (0 = top, 1 = next-most-recent, ...)
// and whether it exists. Exposed for a future ring-cycling yank
// command; the v1 command set only uses Head.
func (r *Ring) At(i int) (string, bool) {
	if i < 0 || i >= len(r.entries) {
		return "", false
	}
	return r.entries[len(r.entries)-1-i], true
}
