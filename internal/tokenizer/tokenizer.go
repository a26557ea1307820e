// Package tokenizer extracts word spans from arbitrary UTF-8 text (§4.5).
package tokenizer

import (
	"unicode/utf8"

	"github.com/wordlib-dev/wordlib/core"
)

// Config controls which bytes participate in a word.
type Config struct {
	// IncludeApostrophes: an ' byte participates in a word iff flanked on
	// both sides by word bytes.
	IncludeApostrophes bool
	// IncludeHyphens: same rule for '-'.
	IncludeHyphens bool
	// MinLength discards tokens shorter than this many bytes. Zero means
	// no minimum beyond the guaranteed non-empty span.
	MinLength int
}

// Tokenize returns the maximal contiguous word spans in text, in order,
// disjoint, half-open, and landing on code-point boundaries. Malformed
// UTF-8 is tolerated: an invalid byte is treated as a single-byte
// non-word character and scanning continues past it (§4.5).
func Tokenize(text string, cfg Config) []core.Span {
	var spans []core.Span
	n := len(text)
	minLen := cfg.MinLength
	if minLen < 1 {
		minLen = 1
	}

	tokenStart := -1
	prevBase := false // previous rune's *unconditional* word-byte class,
	// ignoring any apostrophe/hyphen acceptance — flanking is defined in
	// terms of plain word bytes, not previously-accepted connectors.

	i := 0
	for i < n {
		r, w := utf8.DecodeRuneInString(text[i:])
		invalid := w == 1 && r == utf8.RuneError && text[i] >= utf8.RuneSelf

		var wordHere bool
		switch {
		case invalid:
			wordHere = false
		case r == '\'' && cfg.IncludeApostrophes:
			wordHere = prevBase && peekIsWordByte(text, i+w)
		case r == '-' && cfg.IncludeHyphens:
			wordHere = prevBase && peekIsWordByte(text, i+w)
		default:
			wordHere = isWordRune(r)
		}

		if wordHere {
			if tokenStart < 0 {
				tokenStart = i
			}
		} else if tokenStart >= 0 {
			spans = appendToken(spans, tokenStart, i, minLen)
			tokenStart = -1
		}

		prevBase = !invalid && isWordRune(r)
		i += w
	}
	if tokenStart >= 0 {
		spans = appendToken(spans, tokenStart, n, minLen)
	}
	return spans
}

func appendToken(spans []core.Span, start, end, minLen int) []core.Span {
	if end-start < minLen {
		return spans
	}
	return append(spans, core.Span{Start: start, End: end})
}

// isWordRune classifies a successfully decoded rune: ASCII letters and any
// code point >= U+0080 are word runes; everything else (digits, space,
// punctuation other than the conditionally-accepted '\'' and '-') is not.
func isWordRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= utf8.RuneSelf:
		return true
	default:
		return false
	}
}

// peekIsWordByte decodes the rune starting at idx (without consuming it)
// and reports whether it is a word rune, treating malformed encoding as
// non-word, same as the main loop.
func peekIsWordByte(text string, idx int) bool {
	if idx >= len(text) {
		return false
	}
	r, w := utf8.DecodeRuneInString(text[idx:])
	if w == 1 && r == utf8.RuneError && text[idx] >= utf8.RuneSelf {
		return false
	}
	return isWordRune(r)
}
