package trie

import (
	"sort"
	"unicode/utf8"
)

// letterCounts is the multiset of letters still available to a search.
// letters holds each distinct rune once, in ascending order, and counts[i]
// is the number of letters[i] left.
type letterCounts struct {
	letters []rune
	counts  []int
}

func newLetterCounts(s string) *letterCounts {
	seen := make(map[rune]int)
	for _, r := range s {
		seen[r]++
	}
	lc := &letterCounts{
		letters: make([]rune, 0, len(seen)),
		counts:  make([]int, 0, len(seen)),
	}
	for r := range seen {
		lc.letters = append(lc.letters, r)
	}
	sort.Slice(lc.letters, func(i, j int) bool { return lc.letters[i] < lc.letters[j] })
	for _, r := range lc.letters {
		lc.counts = append(lc.counts, seen[r])
	}
	return lc
}

func (lc *letterCounts) total() (n int) {
	for _, c := range lc.counts {
		n += c
	}
	return
}

// AnagramSet returns every stored word that can be spelled with letters taken
// from query, using each letter no more often than it occurs in query. Words
// shorter than the query are included, so "at" is found for "cat".
func (t *Trie) AnagramSet(query string) map[string]struct{} {
	collection := make(map[string]struct{})
	query = t.normalise(query)
	if len(query) == 0 {
		return collection
	}
	lc := newLetterCounts(query)
	prefix := make([]rune, 0, utf8.RuneCountInString(query))
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.collectAnagrams(collection, t.root, lc, prefix)
	return collection
}

// Anagrams is like AnagramSet but returns the words ordered by SortByLength.
func (t *Trie) Anagrams(query string) []string {
	collection := t.AnagramSet(query)
	hits := make([]string, 0, len(collection))
	for word := range collection {
		hits = append(hits, word)
	}
	SortByLength(hits)
	return hits
}

// collectAnagrams walks the Trie depth first, consuming one available letter
// per edge and giving it back on the way up. Every word-final node reached is
// added to collection. It returns false once the result cap is reached; the
// counts are restored before returning either way.
func (t *Trie) collectAnagrams(collection map[string]struct{}, n *node, lc *letterCounts, prefix []rune) bool {
	if n.end {
		collection[string(prefix)] = struct{}{}
		if t.maxResults > 0 && len(collection) >= t.maxResults {
			return false
		}
	}
	for i, character := range lc.letters {
		if lc.counts[i] == 0 {
			continue
		}
		next, ok := n.children[character]
		if !ok {
			continue
		}
		lc.counts[i]--
		more := t.collectAnagrams(collection, next, lc, append(prefix, character))
		lc.counts[i]++
		if !more {
			return false
		}
	}
	return true
}

// SortByLength orders words longest first, breaking ties alphabetically.
// Length is counted in runes.
func SortByLength(words []string) {
	sort.Slice(words, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(words[i]), utf8.RuneCountInString(words[j])
		if li != lj {
			return li > lj
		}
		return words[i] < words[j]
	})
}
