package trie

import (
	"sort"
	"sync"
)

// Trie is a prefix tree over a word dictionary, searchable for anagrams and
// sub-anagrams of a query string.
type Trie struct {
	root                      *node
	mu                        sync.RWMutex
	normalised, caseSensitive bool
	maxResults                int
	size                      int
}

// node is a node in a Trie which contains a map of runes to more node pointers.
// end marks that the path from the root to this node spells a stored word.
type node struct {
	children map[rune]*node
	end      bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates a new empty trie. By default string normalisation is on and
// search is case insensitive, so "Niño" is stored and searched as "nino".
func New() *Trie {
	t := new(Trie)
	t.root = newNode()
	t.WithNormalisation()
	t.CaseInsensitive()
	return t
}

// WithNormalisation sets the Trie to strip diacritics on insert and search.
// For example, niño will be stored as nino and found by nino or niño.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to keep diacritics as given.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// CaseSensitive sets the Trie to keep letter case on insert and search.
func (t *Trie) CaseSensitive() *Trie {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to lower-case words and queries.
func (t *Trie) CaseInsensitive() *Trie {
	t.caseSensitive = false
	return t
}

// WithMaxResults caps the number of distinct words a single search collects.
// Zero means no cap, which is the default.
func (t *Trie) WithMaxResults(limit int) *Trie {
	if limit < 0 {
		limit = 0
	}
	t.maxResults = limit
	return t
}

// Insert inserts strings into the Trie. Inserting a word that is already
// present is a no-op.
func (t *Trie) Insert(entries ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, entry := range entries {
		t.insertInternal(t.normalise(entry))
	}
}

// insertInternal performs the actual insertion without locking.
func (t *Trie) insertInternal(entry string) {
	if len(entry) == 0 {
		return
	}
	currentNode := t.root
	for _, character := range entry {
		child, ok := currentNode.children[character]
		if !ok {
			child = newNode()
			currentNode.children[character] = child
		}
		currentNode = child
	}
	if !currentNode.end {
		currentNode.end = true
		t.size++
	}
}

// Contains reports whether the exact word is stored in the Trie.
func (t *Trie) Contains(word string) bool {
	word = t.normalise(word)
	if len(word) == 0 {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return false
		}
		current = next
	}
	return current.end
}

// Len returns the number of distinct words stored in the Trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Normalise applies the Trie's normalisation settings to s. Words and
// queries always pass through the same transformation.
func (t *Trie) Normalise(s string) string {
	return t.normalise(s)
}

func (t *Trie) normalise(s string) string {
	switch {
	case t.normalised && !t.caseSensitive:
		return Normalise(s)
	case t.normalised && t.caseSensitive:
		return stripDiacritics(s)
	case !t.normalised && !t.caseSensitive:
		return lower(s)
	}
	return s
}

// Node is a read-only view of a position in the Trie. The zero Node is
// not valid; obtain one from Root.
type Node struct {
	n *node
}

// Root returns the entry point for traversal. Callers must not traverse
// while words are still being inserted.
func (t *Trie) Root() Node {
	return Node{n: t.root}
}

// IsWord reports whether the path from the root to this node spells a
// stored word.
func (n Node) IsWord() bool {
	return n.n.end
}

// Child follows the edge labelled r.
func (n Node) Child(r rune) (Node, bool) {
	next, ok := n.n.children[r]
	if !ok {
		return Node{}, false
	}
	return Node{n: next}, true
}

// Edges returns the labels of the node's outgoing edges in ascending order.
func (n Node) Edges() []rune {
	edges := make([]rune, 0, len(n.n.children))
	for r := range n.n.children {
		edges = append(edges, r)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}
