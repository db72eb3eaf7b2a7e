package piecetable

// rebuildLineStarts recomputes the line-start index by scanning the
// piece list without materializing a full copy of the document. It is
// called after every structural mutation (Insert/Delete); correctness
// takes priority over the §4.1 "O(edited_lines + affected_tail_shifts)"
// performance target in this implementation.
func (pt *PieceTable) rebuildLineStarts() {
	starts := []int{0}
	offset := 0
	for _, p := range pt.pieces {
		src := pt.bufferFor(p.Source)
		chunk := src[p.Offset:p.end()]
		for i, b := range chunk {
			if b == '\n' {
				starts = append(starts, offset+i+1)
			}
		}
		offset += len(chunk)
	}
	pt.lineStarts = starts
}

// LineCount returns the number of logical lines. An empty document has
// exactly one (empty) line.
func (pt *PieceTable) LineCount() int {
	return len(pt.lineStarts)
}

// GetLineRange returns the half-open byte range [start, end) of line i,
// with any trailing '\n' excluded. Out-of-range i clamps to the nearest
// valid line.
func (pt *PieceTable) GetLineRange(i int) (start, end int) {
	if len(pt.lineStarts) == 0 {
		return 0, 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(pt.lineStarts) {
		i = len(pt.lineStarts) - 1
	}
	start = pt.lineStarts[i]
	if i+1 < len(pt.lineStarts) {
		end = pt.lineStarts[i+1] - 1 // exclude the '\n'
	} else {
		end = pt.ByteSize()
	}
	if end < start {
		end = start
	}
	return start, end
}

// GetLine returns the bytes of logical line i (excluding any trailing
// '\n').
func (pt *PieceTable) GetLine(i int) []byte {
	start, end := pt.GetLineRange(i)
	return pt.Slice(start, end)
}

// LineColToByteOffset converts a (row, col) position to a byte offset.
// col is interpreted as a count of UTF-8 scalars from the start of the
// line (binary-search the line-start index, then walk scalars within
// the line); col == MAX (or any value at/after the line's scalar count)
// clamps to the line end, before any trailing '\n'.
func (pt *PieceTable) LineColToByteOffset(row, col int) int {
	start, end := pt.GetLineRange(row)
	if col <= 0 {
		return start
	}
	line := pt.Slice(start, end)
	n := 0
	for i := range string(line) {
		if n == col {
			return start + i
		}
		n++
	}
	return end
}

// OffsetToLine returns the logical line index containing byte offset,
// via binary search over the line-start index.
func (pt *PieceTable) OffsetToLine(offset int) int {
	offset = pt.clampOffset(offset)
	lo, hi := 0, len(pt.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if pt.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
