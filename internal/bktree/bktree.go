// Package bktree implements the metric tree (§4.4): a BK-tree over
// Levenshtein distance, supporting sub-linear within-distance search via
// the triangle-inequality pruning invariant.
package bktree

import "github.com/wordlib-dev/wordlib/core"

type node struct {
	word     []rune
	handle   core.Handle
	removed  bool
	children map[int]*node // keyed by edit distance to this node's word
}

// Result is one match from Search.
type Result struct {
	Handle core.Handle
	Dist   int
}

// BKTree indexes interned handles by Levenshtein distance. The zero value
// is ready to use.
type BKTree struct {
	root     *node
	byHandle map[core.Handle]*node
}

// New creates an empty tree.
func New() *BKTree { return &BKTree{byHandle: make(map[core.Handle]*node)} }

// Insert adds handle, indexed by word. Re-inserting a handle that was
// previously Removed clears its tombstone instead of duplicating it.
func (t *BKTree) Insert(word string, handle core.Handle) {
	if t.byHandle == nil {
		t.byHandle = make(map[core.Handle]*node)
	}
	if n, ok := t.byHandle[handle]; ok {
		n.removed = false
		return
	}
	r := []rune(word)
	if t.root == nil {
		t.root = &node{word: r, handle: handle}
		t.byHandle[handle] = t.root
		return
	}
	n := t.root
	for {
		d := Levenshtein(r, n.word)
		if d == 0 {
			n.removed = false
			t.byHandle[handle] = n
			return
		}
		if n.children == nil {
			n.children = make(map[int]*node)
		}
		child, ok := n.children[d]
		if !ok {
			nn := &node{word: r, handle: handle}
			n.children[d] = nn
			t.byHandle[handle] = nn
			return
		}
		n = child
	}
}

// Remove tombstones handle so it is excluded from future Search results and
// Contains. The tree keeps the node in place: BK-tree children are keyed by
// distance to their parent's word, so physically unlinking an interior node
// would orphan its whole subtree.
func (t *BKTree) Remove(handle core.Handle) bool {
	n, ok := t.byHandle[handle]
	if !ok || n.removed {
		return false
	}
	n.removed = true
	return true
}

// Contains reports whether handle is a live (non-removed) member.
func (t *BKTree) Contains(handle core.Handle) bool {
	n, ok := t.byHandle[handle]
	return ok && !n.removed
}

// Search returns every live handle within maxDist of query. It applies the
// triangle-inequality pruning invariant (§4.4): from a visited node with
// observed distance d, only children at edge labels in [max(1, d-maxDist),
// d+maxDist] are descended into.
func (t *BKTree) Search(query string, maxDist int) []Result {
	if t.root == nil {
		return nil
	}
	qr := []rune(query)
	var out []Result
	var visit func(n *node)
	visit = func(n *node) {
		d := Levenshtein(qr, n.word)
		if !n.removed && d <= maxDist {
			out = append(out, Result{Handle: n.handle, Dist: d})
		}
		lo := d - maxDist
		if lo < 1 {
			lo = 1
		}
		hi := d + maxDist
		for k := lo; k <= hi; k++ {
			if c, ok := n.children[k]; ok {
				visit(c)
			}
		}
	}
	visit(t.root)
	return out
}

// Handles returns every live handle in the tree, in unspecified order. Used
// by the cross-index consistency test (§4.6, §8).
func (t *BKTree) Handles() []core.Handle {
	out := make([]core.Handle, 0, len(t.byHandle))
	for h, n := range t.byHandle {
		if !n.removed {
			out = append(out, h)
		}
	}
	return out
}
