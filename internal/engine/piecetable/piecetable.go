package piecetable

import "bytes"

// PieceTable is the append-only original+add buffer text representation.
//
// Invariants maintained by every exported mutator:
//  1. the sum of piece lengths equals ByteSize().
//  2. every entry in lineStarts is either 0 or points to the byte
//     immediately after a '\n'.
//  3. no piece straddles the boundary between the original and add
//     buffers — splitting always produces pieces wholly within one
//     source.
type PieceTable struct {
	original []byte
	add      []byte
	pieces   []Piece

	// lineStarts holds the byte offset of every line start, including
	// the implicit offset 0. lineStarts[i] is the start of logical line i.
	lineStarts []int
}

// New returns an empty piece table.
func New() *PieceTable {
	pt := &PieceTable{}
	pt.lineStarts = []int{0}
	return pt
}

// FromBytes builds a piece table whose initial content is data. data is
// retained as the table's original buffer and never mutated in place.
func FromBytes(data []byte) *PieceTable {
	pt := &PieceTable{original: data}
	if len(data) > 0 {
		pt.pieces = []Piece{{Source: SourceOriginal, Offset: 0, Length: len(data)}}
	}
	pt.rebuildLineStarts()
	return pt
}

// FromString builds a piece table from s.
func FromString(s string) *PieceTable {
	return FromBytes([]byte(s))
}

// ByteSize returns the total document length in bytes.
func (pt *PieceTable) ByteSize() int {
	n := 0
	for _, p := range pt.pieces {
		n += p.Length
	}
	return n
}

func (pt *PieceTable) bufferFor(s Source) []byte {
	if s == SourceOriginal {
		return pt.original
	}
	return pt.add
}

// Data materializes the full document as a contiguous byte slice. It is
// not required for mutation to be cheap, only for bulk I/O (save, search
// across lines, etc).
func (pt *PieceTable) Data() []byte {
	out := make([]byte, 0, pt.ByteSize())
	for _, p := range pt.pieces {
		src := pt.bufferFor(p.Source)
		out = append(out, src[p.Offset:p.end()]...)
	}
	return out
}

// String materializes the full document as a string.
func (pt *PieceTable) String() string {
	return string(pt.Data())
}

// clampOffset clamps a byte offset into [0, ByteSize()]. Out-of-range
// offsets are never fatal, per the clamping failure semantics in §4.1.
func (pt *PieceTable) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if size := pt.ByteSize(); offset > size {
		return size
	}
	return offset
}

// locate finds the piece index containing byte offset and the offset
// within that piece. If offset equals ByteSize(), it returns one past
// the last piece (used by Append/Insert-at-end).
func (pt *PieceTable) locate(offset int) (pieceIdx, withinPiece int) {
	offset = pt.clampOffset(offset)
	cum := 0
	for i, p := range pt.pieces {
		if offset < cum+p.Length {
			return i, offset - cum
		}
		cum += p.Length
	}
	return len(pt.pieces), 0
}

// Slice returns the bytes in the half-open byte range [start, end).
// Out-of-range bounds are clamped.
func (pt *PieceTable) Slice(start, end int) []byte {
	start = pt.clampOffset(start)
	end = pt.clampOffset(end)
	if start >= end {
		return nil
	}
	out := make([]byte, 0, end-start)
	cum := 0
	for _, p := range pt.pieces {
		pStart, pEnd := cum, cum+p.Length
		if pEnd <= start {
			cum = pEnd
			continue
		}
		if pStart >= end {
			break
		}
		lo := max(start, pStart) - pStart
		hi := min(end, pEnd) - pStart
		src := pt.bufferFor(p.Source)
		out = append(out, src[p.Offset+lo:p.Offset+hi]...)
		cum = pEnd
	}
	return out
}

// ByteAt returns the byte at offset, or false if out of range.
func (pt *PieceTable) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= pt.ByteSize() {
		return 0, false
	}
	idx, within := pt.locate(offset)
	if idx >= len(pt.pieces) {
		return 0, false
	}
	p := pt.pieces[idx]
	return pt.bufferFor(p.Source)[p.Offset+within], true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// countNewlines reports the number of '\n' bytes in b.
func countNewlines(b []byte) int {
	return bytes.Count(b, []byte{'\n'})
}
