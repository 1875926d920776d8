package dict

import "sort"

// node is one rune-transition in the trie. Unlike the teacher's
// (dictionary, guide) pair that follows a serialized DAWG on disk, this
// node tree is built directly from the text loader (§6) and lives entirely
// in memory — same shape as SteosOfficial/SteosMorphy's in-memory
// Node{Children map[rune]*Node}, adapted to hold dict.Entry payloads
// instead of opaque `any`.
type node struct {
	children map[rune]*node
	entries  []Entry // non-nil only at a word-terminal node
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a prefix tree mapping lower-cased surface forms (diacritics
// preserved) to the set of dictionary entries reachable under that key.
// Lookup is O(m) in the query length; PrefixWalk enables the bounded
// edit-distance descent used by the spelling engine.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds entry under key, merging with any existing entries for key.
// Startup-only: the trie is immutable once correction calls begin (§5).
func (t *Trie) Insert(key string, entry Entry) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if n.entries == nil {
		t.size++
	}
	n.entries = append(n.entries, entry)
}

// Lookup returns every entry stored under key, or nil if key is absent.
func (t *Trie) Lookup(key string) []Entry {
	n := t.descend(key)
	if n == nil {
		return nil
	}
	return n.entries
}

// Contains reports whether key has at least one entry (exact match only;
// it does not consult plural derivation — see Dictionary.Contains).
func (t *Trie) Contains(key string) bool {
	n := t.descend(key)
	return n != nil && n.entries != nil
}

// Len reports the number of distinct keys stored.
func (t *Trie) Len() int { return t.size }

func (t *Trie) descend(key string) *node {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// PrefixWalk enumerates every stored surface form beginning with prefix, in
// lexicographic order, stopping early once budget entries have been
// visited (budget <= 0 means unbounded). It calls visit(surface, entries)
// for each terminal node found.
//
// Grounded on the teacher's completer (dawg.go): descend to the prefix
// node, then depth-first over children in sorted rune order, same
// traversal shape as the DAWG's child/sibling guide walk.
func (t *Trie) PrefixWalk(prefix string, budget int, visit func(surface string, entries []Entry) bool) {
	start := t.descend(prefix)
	if start == nil {
		return
	}
	visited := 0
	var walk func(n *node, path []rune) bool
	walk = func(n *node, path []rune) bool {
		if n.entries != nil {
			if !visit(string(path), n.entries) {
				return false
			}
			visited++
			if budget > 0 && visited >= budget {
				return false
			}
		}
		for _, r := range sortedRunes(n.children) {
			if !walk(n.children[r], append(path, r)) {
				return false
			}
		}
		return true
	}
	walk(start, []rune(prefix))
}

func sortedRunes(m map[rune]*node) []rune {
	rs := make([]rune, 0, len(m))
	for r := range m {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

// Root returns a Walker positioned at the trie root; its Next method follows
// one rune transition at a time from any node. It underlies the spelling
// engine's bounded descent in package spell, which
// needs access to child edges one rune at a time without materializing a
// full prefix string per step.
func (t *Trie) Root() Walker { return walker{t.root} }

// Walker exposes the minimal node-transition surface the spelling engine
// needs to drive its own per-edge DP row, without exposing the internal
// node type.
type Walker interface {
	// Next returns the child walker for r and whether it exists.
	Next(r rune) (Walker, bool)
	// Entries returns the entries stored at this node, if it is terminal.
	Entries() []Entry
	// Runes returns the outgoing transitions in sorted order.
	Runes() []rune
}

type walker struct{ n *node }

func (w walker) Next(r rune) (Walker, bool) {
	child, ok := w.n.children[r]
	if !ok {
		return nil, false
	}
	return walker{child}, true
}

func (w walker) Entries() []Entry { return w.n.entries }

func (w walker) Runes() []rune { return sortedRunes(w.n.children) }
