package piecetable

// Append adds bytes to the end of the document without touching the
// piece list structure beyond its tail: the bytes land in the add
// buffer and either extend the final piece (if it already ends at the
// add buffer's current tail) or become a new trailing piece.
func (pt *PieceTable) Append(data []byte) {
	pt.Insert(pt.ByteSize(), data)
}

// Insert splices data into the document at byte offset, which is
// clamped to [0, ByteSize()]. data is copied into the add buffer; the
// piece containing the insertion point is split into up to three
// pieces (left remainder, the new add-buffer piece, right remainder).
func (pt *PieceTable) Insert(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	offset = pt.clampOffset(offset)

	addOffset := len(pt.add)

	// Attempt contiguous-append merge: if offset is exactly at the end
	// of the document and the last piece is an add-buffer piece
	// immediately preceding addOffset, extend it in place instead of
	// allocating a new piece. This keeps repeated type-ahead insertion
	// at the cursor from fragmenting the piece list.
	if offset == pt.ByteSize() && len(pt.pieces) > 0 {
		last := &pt.pieces[len(pt.pieces)-1]
		if last.Source == SourceAdd && last.Offset+last.Length == addOffset {
			pt.add = append(pt.add, data...)
			last.Length += len(data)
			pt.rebuildLineStarts()
			return
		}
	}

	pt.add = append(pt.add, data...)
	newPiece := Piece{Source: SourceAdd, Offset: addOffset, Length: len(data)}

	idx, within := pt.locate(offset)
	switch {
	case within == 0:
		// Insert cleanly between pieces idx-1 and idx.
		pt.pieces = insertPieceAt(pt.pieces, idx, newPiece)
	default:
		p := pt.pieces[idx]
		left, right := p.split(within)
		replacement := []Piece{left, newPiece, right}
		pt.pieces = replacePieceAt(pt.pieces, idx, replacement)
	}

	pt.rebuildLineStarts()
}

func insertPieceAt(pieces []Piece, idx int, p Piece) []Piece {
	out := make([]Piece, 0, len(pieces)+1)
	out = append(out, pieces[:idx]...)
	out = append(out, p)
	out = append(out, pieces[idx:]...)
	return out
}

func replacePieceAt(pieces []Piece, idx int, replacement []Piece) []Piece {
	out := make([]Piece, 0, len(pieces)+len(replacement)-1)
	out = append(out, pieces[:idx]...)
	out = append(out, replacement...)
	out = append(out, pieces[idx+1:]...)
	return compactEmpty(out)
}

// compactEmpty drops zero-length pieces produced when a split lands
// exactly on a piece boundary.
func compactEmpty(pieces []Piece) []Piece {
	out := pieces[:0]
	for _, p := range pieces {
		if p.Length > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Delete removes the half-open byte range [offset, offset+length) from
// the document. Ranges crossing piece or line boundaries are handled by
// trimming the leading piece, dropping wholly-contained pieces, and
// trimming the trailing piece; deleting across newlines joins lines
// implicitly because the line index is rebuilt from the resulting
// pieces.
func (pt *PieceTable) Delete(offset, length int) {
	if length <= 0 {
		return
	}
	size := pt.ByteSize()
	offset = pt.clampOffset(offset)
	end := pt.clampOffset(offset + length)
	if offset >= end || offset >= size {
		return
	}

	var out []Piece
	cum := 0
	for _, p := range pt.pieces {
		pStart, pEnd := cum, cum+p.Length
		cum = pEnd

		if pEnd <= offset || pStart >= end {
			// Entirely outside the deleted range: keep as-is.
			out = append(out, p)
			continue
		}
		if pStart >= offset && pEnd <= end {
			// Entirely inside the deleted range: drop.
			continue
		}
		// Partially overlapping: keep the surviving sub-ranges.
		if pStart < offset {
			keepLen := offset - pStart
			out = append(out, Piece{Source: p.Source, Offset: p.Offset, Length: keepLen})
		}
		if pEnd > end {
			skip := end - pStart
			out = append(out, Piece{Source: p.Source, Offset: p.Offset + skip, Length: p.Length - skip})
		}
	}
	pt.pieces = out
	pt.rebuildLineStarts()
}
