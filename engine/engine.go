// Package engine implements the Engine Facade (§4.6): the single
// consistency boundary over the string pool and its three derived indices.
package engine

import (
	"sort"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/internal/bktree"
	"github.com/wordlib-dev/wordlib/internal/hashset"
	"github.com/wordlib-dev/wordlib/internal/pool"
	"github.com/wordlib-dev/wordlib/internal/trie"
)

// AddResult is the outcome of Engine.Add.
type AddResult int

const (
	Added AddResult = iota
	AlreadyPresent
)

// RemoveResult is the outcome of Engine.Remove.
type RemoveResult int

const (
	Removed RemoveResult = iota
	Absent
)

// Suggestion pairs a word with its edit distance from a query (§4.4).
type Suggestion struct {
	Word string
	Dist int
}

// Engine owns the pool and the three indices over it, plus the one piece
// of session configuration that must not change after construction:
// case-sensitivity (§4.6). One Engine serves one logical request at a
// time (§5): it is not safe for concurrent use without external
// serialization.
type Engine struct {
	pool  *pool.Pool
	set   *hashset.HashSet
	trie  *trie.Trie
	tree  *bktree.BKTree
	dirty bool
}

// New creates an empty engine. caseSensitive is fixed for the lifetime of
// the instance (§4.6).
func New(caseSensitive bool) *Engine {
	return &Engine{
		pool: pool.New(caseSensitive),
		set:  hashset.New(),
		trie: trie.New(),
		tree: bktree.New(),
	}
}

// Add interns word and inserts it into all three indices atomically from
// the engine's external point of view. Idempotent: adding an
// already-present word leaves the engine in the same observable state.
func (e *Engine) Add(word string) (AddResult, error) {
	h := e.pool.Intern(word)
	canonical := e.pool.Bytes(h)
	added, err := e.set.Add(h)
	if err != nil {
		return AlreadyPresent, err
	}
	if !added {
		return AlreadyPresent, nil
	}
	e.trie.Insert(canonical, h)
	e.tree.Insert(canonical, h)
	e.dirty = true
	return Added, nil
}

// Remove deletes word from all three indices, leaving its pool slot intact
// (§4.6). Removing an absent word is a no-op that reports Absent.
func (e *Engine) Remove(word string) RemoveResult {
	h, ok := e.pool.Lookup(word)
	if !ok {
		return Absent
	}
	if !e.set.Remove(h) {
		return Absent
	}
	canonical := e.pool.Bytes(h)
	e.trie.Remove(canonical)
	e.tree.Remove(h)
	e.dirty = true
	return Removed
}

// Contains reports whether word is known, case-folded per the engine's
// configuration (§4.6).
func (e *Engine) Contains(word string) bool {
	h, ok := e.pool.Lookup(word)
	if !ok {
		return false
	}
	return e.set.Contains(h)
}

// Complete delegates to the trie, returning up to limit known words
// sharing prefix, in lexicographic order (§4.3, §4.6).
func (e *Engine) Complete(prefix string, limit int) []string {
	handles := e.trie.Complete(prefix, limit)
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = e.pool.Bytes(h)
	}
	return out
}

// Suggest delegates to the metric tree and shapes the result per §4.4:
// sorted by (distance asc, bytes asc), truncated to maxResults.
func (e *Engine) Suggest(query string, maxDist, maxResults int) []Suggestion {
	results := e.tree.Search(query, maxDist)
	out := make([]Suggestion, len(results))
	for i, r := range results {
		out[i] = Suggestion{Word: e.pool.Bytes(r.Handle), Dist: r.Dist}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}
		return out[i].Word < out[j].Word
	})
	if maxResults >= 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// Count returns the live word-set cardinality.
func (e *Engine) Count() int { return e.set.Count() }

// IsDirty reports whether Add/Remove/Load has mutated the engine since the
// last MarkClean.
func (e *Engine) IsDirty() bool { return e.dirty }

// MarkClean clears the dirty flag (called after a successful Save).
func (e *Engine) MarkClean() { e.dirty = false }

// CaseSensitive reports the folding mode fixed at construction.
func (e *Engine) CaseSensitive() bool { return e.pool.CaseSensitive() }

// Words returns every live word in the set, in byte-sorted order. Used by
// persistence (deterministic save output) and by the cross-index
// consistency check in tests.
func (e *Engine) Words() []string {
	out := make([]string, 0, e.set.Count())
	e.set.Handles(func(h core.Handle) bool {
		out = append(out, e.pool.Bytes(h))
		return true
	})
	sort.Strings(out)
	return out
}

// CheckConsistency verifies the §4.6 cross-index invariant: every handle in
// the hash set also appears, by the same bytes, in the trie and the metric
// tree, and every handle in the trie or the metric tree is in the hash set.
// It is intended for test suites, not the hot path.
func (e *Engine) CheckConsistency() bool {
	ok := true
	e.set.Handles(func(h core.Handle) bool {
		bytes := e.pool.Bytes(h)
		if !e.trie.Contains(bytes) {
			ok = false
			return false
		}
		if !e.tree.Contains(h) {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}
	for _, h := range e.trie.Handles() {
		if !e.set.Contains(h) {
			return false
		}
	}
	for _, h := range e.tree.Handles() {
		if !e.set.Contains(h) {
			return false
		}
	}
	return true
}
