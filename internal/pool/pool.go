// Package pool implements the canonical word store (string interning,
// §4.1): one canonical copy per unique word, addressed by an opaque
// core.Handle.
//
// Grounded on the teacher's central-pool idiom (pool.go), repurposed from
// pooling short-lived allocations to pooling the permanent canonical
// storage of interned words, and hashed with xxhash (the "FNV-1a or
// equivalent" the spec calls for, §4.2) instead of keying a map directly
// by the word's bytes — this keeps Intern at one hash computation plus a
// short bucket scan rather than a full map lookup that rehashes the key
// internally.
package pool

import (
	"github.com/cespare/xxhash/v2"

	"github.com/wordlib-dev/wordlib/core"
)

// Pool interns UTF-8 words and hands back stable handles. It is owned by
// exactly one engine and must not outlive it; handles from one Pool must
// never be passed to another.
type Pool struct {
	caseSensitive bool
	words         []string          // index = handle id; canonical byte sequence
	buckets       map[uint64][]uint32
}

// New creates an empty pool. When caseSensitive is false, Intern folds
// ASCII letters before computing identity (§4.6): interning "Hello" and
// "hello" yields the same handle.
func New(caseSensitive bool) *Pool {
	return &Pool{
		caseSensitive: caseSensitive,
		buckets:       make(map[uint64][]uint32),
	}
}

// Intern returns the existing handle for a byte-equal (post-folding) word,
// or allocates a new canonical slot. O(1) average: one hash of the word
// plus a linear scan of its (small) bucket.
func (p *Pool) Intern(word string) core.Handle {
	key := word
	if !p.caseSensitive {
		key = foldASCII(word)
	}
	h := xxhash.Sum64String(key)
	for _, id := range p.buckets[h] {
		if p.words[id] == key {
			return core.NewHandle(id)
		}
	}
	id := uint32(len(p.words))
	p.words = append(p.words, key)
	p.buckets[h] = append(p.buckets[h], id)
	return core.NewHandle(id)
}

// Lookup reports the handle for word without interning it, for callers
// (hash-set Contains, trie Contains) that must not grow the pool on a
// miss.
func (p *Pool) Lookup(word string) (core.Handle, bool) {
	key := word
	if !p.caseSensitive {
		key = foldASCII(word)
	}
	h := xxhash.Sum64String(key)
	for _, id := range p.buckets[h] {
		if p.words[id] == key {
			return core.NewHandle(id), true
		}
	}
	return core.InvalidHandle, false
}

// Bytes returns the canonical UTF-8 payload for a handle in constant time.
// The returned string must not be mutated (Go strings are immutable, so
// this is automatic) and is valid for the lifetime of the pool.
func (p *Pool) Bytes(h core.Handle) string {
	return p.words[h.Index()]
}

// Len returns the number of distinct interned words ever allocated. This
// is NOT the live word-set cardinality: a word removed from the engine's
// indices keeps its pool slot (§4.6 "leave pool slot intact").
func (p *Pool) Len() int {
	return len(p.words)
}

// CaseSensitive reports the folding mode fixed at construction (§4.6: once
// fixed for an engine instance, it never changes at runtime).
func (p *Pool) CaseSensitive() bool { return p.caseSensitive }
