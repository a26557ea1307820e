// Package coord translates between byte offsets into document text and
// LSP (line, UTF-16 code-unit column) positions (§4.9). It is a pure
// function of document text: the engine itself never mentions UTF-16,
// per §9's design note keeping that arithmetic out of the core.
package coord

import (
	"sort"

	"github.com/wordlib-dev/wordlib/core"
)

// Index is an optional precomputed line-start table that makes repeated
// conversions over the same text O(log L) instead of O(n) each (§4.9:
// "strongly recommended for documents > 64 KiB"). The zero value is not
// usable; build one with NewIndex.
type Index struct {
	text       string
	lineStarts []int // ascending byte offsets of the first byte of each line
}

// NewIndex scans text once and records every line start.
func NewIndex(text string) *Index {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Index{text: text, lineStarts: starts}
}

// BytePosition converts a byte offset into text to an LSP Position, using
// the precomputed line-start table.
func (idx *Index) BytePosition(offset int) core.Position {
	line := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	lineStart := idx.lineStarts[line]
	col := utf16Len(idx.text[lineStart:offset])
	return core.Position{Line: line, Column: col}
}

// PositionByte converts an LSP Position back to a byte offset into text.
func (idx *Index) PositionByte(pos core.Position) int {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(idx.lineStarts) {
		return len(idx.text)
	}
	lineStart := idx.lineStarts[pos.Line]
	lineEnd := len(idx.text)
	if pos.Line+1 < len(idx.lineStarts) {
		lineEnd = idx.lineStarts[pos.Line+1]
	}
	return lineStart + byteOffsetForColumn(idx.text[lineStart:lineEnd], pos.Column)
}

// BytePosition is the index-free convenience form (§4.9
// `byte_to_position`): it scans from the start of text each call. Prefer
// Index for repeated lookups against the same text.
func BytePosition(text string, offset int) core.Position {
	line := 0
	lineStart := 0
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col := utf16Len(text[lineStart:offset])
	return core.Position{Line: line, Column: col}
}

// PositionByte is the index-free convenience form (§4.9
// `position_to_byte`).
func PositionByte(text string, pos core.Position) int {
	lineStart := 0
	line := 0
	for i := 0; i < len(text) && line < pos.Line; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(text)
	for i := lineStart; i < len(text); i++ {
		if text[i] == '\n' {
			lineEnd = i
			break
		}
	}
	return lineStart + byteOffsetForColumn(text[lineStart:lineEnd], pos.Column)
}

// utf16Len returns the number of UTF-16 code units s would occupy: 1 per
// code point, except code points encoded as 4 UTF-8 bytes (outside the
// BMP), which occupy a surrogate pair (2).
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// byteOffsetForColumn walks line (a single line's text, no trailing
// newline) and returns the byte offset of the code point at the given
// UTF-16 column count. A column landing inside a surrogate pair resolves
// to the start of that code point's UTF-8 encoding.
func byteOffsetForColumn(line string, column int) int {
	units := 0
	for i, r := range line {
		if units >= column {
			return i
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return len(line)
}
