package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordlib-dev/wordlib/core"
)

func TestRoundTripASCII(t *testing.T) {
	text := "The quikc brown fox"
	for n := 0; n <= len(text); n++ {
		pos := BytePosition(text, n)
		got := PositionByte(text, pos)
		assert.Equal(t, n, got, "offset %d", n)
	}
}

func TestRoundTripMultiline(t *testing.T) {
	text := "line one\nline two\nline three"
	for n := 0; n <= len(text); n++ {
		pos := BytePosition(text, n)
		got := PositionByte(text, pos)
		assert.Equal(t, n, got, "offset %d", n)
	}
}

func TestUTF8SpanColumns(t *testing.T) {
	text := "Bon caf\xc3\xa9!" // "Bon café!"
	pos := BytePosition(text, 4)
	assert.Equal(t, core.Position{Line: 0, Column: 4}, pos)
	pos2 := BytePosition(text, 9)
	assert.Equal(t, core.Position{Line: 0, Column: 8}, pos2)
}

func TestEmojiSurrogatePair(t *testing.T) {
	text := "a\U0001F600b" // a, grinning-face emoji (4 UTF-8 bytes), b
	// byte layout: 'a'(0) emoji(1..5) 'b'(5)
	posBeforeB := BytePosition(text, 5)
	assert.Equal(t, core.Position{Line: 0, Column: 3}, posBeforeB) // 1 + 2 surrogate units
	assert.Equal(t, 5, PositionByte(text, posBeforeB))
}

func TestIndexMatchesIndexFree(t *testing.T) {
	text := "hello\nworld café \U0001F600 done"
	idx := NewIndex(text)
	for n := 0; n <= len(text); n++ {
		// skip mid-codepoint offsets
		if n > 0 && n < len(text) {
			b := text[n]
			if b&0xC0 == 0x80 {
				continue
			}
		}
		assert.Equal(t, BytePosition(text, n), idx.BytePosition(n), "offset %d", n)
	}
}
