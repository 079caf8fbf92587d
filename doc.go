/*
Package trie provides a prefix tree for finding the anagrams and sub-anagrams
of a string within a word dictionary. A search walks the tree letter by
letter, spending from the multiset of letters in the query, so branches that
no dictionary word continues along are never explored.
*/
package trie
