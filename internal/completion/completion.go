// Package completion implements the Completion Provider (§4.11): prefix
// extraction at a cursor position plus shaping the engine's trie results
// into an LSP completion list.
package completion

import (
	"fmt"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/internal/coord"
)

const maxItems = 50

// Completer is the narrow engine view this package needs.
type Completer interface {
	Complete(prefix string, limit int) []string
}

// Item is one completion candidate, carrying enough shape for an LSP
// CompletionItem: the word as label, and a zero-padded sort key that
// preserves the trie's lexicographic order on the client (§4.11).
type Item struct {
	Label    string
	Kind     string // always "text" (§4.11)
	SortText string
}

// List is the result of CompleteAt.
type List struct {
	Items        []Item
	IsIncomplete bool
}

// CompleteAt implements §4.11 steps 2-6 for a document already fetched by
// the caller (step 1, "look up the document", is the caller's
// responsibility — on a miss it should return an empty List without
// calling this function).
func CompleteAt(engine Completer, text string, pos core.Position) List {
	offset := coord.PositionByte(text, pos)
	prefixStart := walkBackPrefix(text, offset)
	if offset-prefixStart < 1 {
		return List{}
	}
	prefix := text[prefixStart:offset]

	words := engine.Complete(prefix, maxItems+1)
	incomplete := len(words) > maxItems
	if incomplete {
		words = words[:maxItems]
	}

	items := make([]Item, len(words))
	for i, w := range words {
		items[i] = Item{
			Label:    w,
			Kind:     "text",
			SortText: zeroPad(i, len(words)),
		}
	}
	return List{Items: items, IsIncomplete: incomplete}
}

// walkBackPrefix walks backward from offset while the preceding byte is a
// word byte per §4.5's rules (ASCII letters or any byte >= 0x80), stopping
// at a continuation byte boundary so the result never splits a code point.
func walkBackPrefix(text string, offset int) int {
	i := offset
	for i > 0 {
		b := text[i-1]
		if b&0xC0 == 0x80 {
			// continuation byte: keep walking back to find the lead byte,
			// it's still part of a word rune (>= 0x80 class).
			i--
			continue
		}
		if !isWordByte(b) {
			break
		}
		i--
	}
	return i
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

// zeroPad formats i as a fixed-width decimal string wide enough for total
// items, so lexicographic string sort on the client matches the trie's
// numeric order (§4.11 "sort_text equal to the item index").
func zeroPad(i, total int) string {
	width := 1
	for n := total; n >= 10; n /= 10 {
		width++
	}
	return fmt.Sprintf("%0*d", width, i)
}
