// Package trie implements the prefix trie (§4.3): interned handles indexed
// by their byte sequences, with sorted-slice children (binary search on
// descent) instead of fixed 256-slot arrays, since UTF-8 fanout would make
// a flat array wasteful (§4.3 node layout policy).
package trie

import (
	"sort"

	"github.com/wordlib-dev/wordlib/core"
)

type child struct {
	b    byte
	node *node
}

type node struct {
	children []child // sorted by b
	isWord   bool
	handle   core.Handle
}

func (n *node) find(b byte) (int, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].b >= b })
	if i < len(n.children) && n.children[i].b == b {
		return i, true
	}
	return i, false
}

func (n *node) childAt(b byte) *node {
	i, ok := n.find(b)
	if !ok {
		return nil
	}
	return n.children[i].node
}

func (n *node) ensureChild(b byte) *node {
	i, ok := n.find(b)
	if ok {
		return n.children[i].node
	}
	c := &node{}
	n.children = append(n.children, child{})
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child{b: b, node: c}
	return c
}

// Trie is the prefix index over a word set. The zero value is ready to use.
type Trie struct {
	root node
}

// New creates an empty trie.
func New() *Trie { return &Trie{} }

// Insert adds handle, indexed by word's bytes.
func (t *Trie) Insert(word string, handle core.Handle) {
	n := &t.root
	for i := 0; i < len(word); i++ {
		n = n.ensureChild(word[i])
	}
	n.isWord = true
	n.handle = handle
}

// Remove deletes word, pruning any subtree left with no children and no
// other terminal word (§4.3). Returns true if word had been present.
func (t *Trie) Remove(word string) bool {
	path := make([]*node, 0, len(word)+1)
	idx := make([]byte, 0, len(word))
	n := &t.root
	path = append(path, n)
	for i := 0; i < len(word); i++ {
		c := n.childAt(word[i])
		if c == nil {
			return false
		}
		idx = append(idx, word[i])
		path = append(path, c)
		n = c
	}
	if !n.isWord {
		return false
	}
	n.isWord = false
	n.handle = core.Handle{}

	// Prune from the leaf back up, stopping at the first node that is
	// still a terminal or still has other children.
	for i := len(path) - 1; i > 0; i-- {
		cur := path[i]
		if len(cur.children) > 0 || cur.isWord {
			break
		}
		parent := path[i-1]
		b := idx[i-1]
		j, ok := parent.find(b)
		if !ok {
			break
		}
		parent.children = append(parent.children[:j], parent.children[j+1:]...)
	}
	return true
}

// Contains reports whether word terminates exactly at a word node.
func (t *Trie) Contains(word string) bool {
	n := &t.root
	for i := 0; i < len(word); i++ {
		n = n.childAt(word[i])
		if n == nil {
			return false
		}
	}
	return n.isWord
}

// Complete returns up to limit handles whose words start with prefix, in
// lexicographic order of the underlying bytes (§4.3). The returned slice is
// a fresh snapshot; there is no cursor to resume from — call Complete again
// to restart enumeration from the beginning.
func (t *Trie) Complete(prefix string, limit int) []core.Handle {
	if limit <= 0 {
		return nil
	}
	n := &t.root
	for i := 0; i < len(prefix); i++ {
		n = n.childAt(prefix[i])
		if n == nil {
			return nil
		}
	}
	var out []core.Handle
	walk(n, limit, &out)
	return out
}

func walk(n *node, limit int, out *[]core.Handle) bool {
	if n.isWord {
		*out = append(*out, n.handle)
		if len(*out) >= limit {
			return true // stop
		}
	}
	for _, c := range n.children {
		if walk(c.node, limit, out) {
			return true
		}
	}
	return false
}

// Handles returns every handle stored in the trie, in lexicographic byte
// order. Used by the cross-index consistency test (§4.6, §8).
func (t *Trie) Handles() []core.Handle {
	var out []core.Handle
	var collect func(*node)
	collect = func(n *node) {
		if n.isWord {
			out = append(out, n.handle)
		}
		for _, c := range n.children {
			collect(c.node)
		}
	}
	collect(&t.root)
	return out
}
