// Package app wires configuration, logging and the dictionary loader into a
// ready-to-query anagram index.
package app

import (
	"context"
	"fmt"
	"log/slog"

	trie "github.com/sarthakjha889/go-anagram-trie"
	"github.com/sarthakjha889/go-anagram-trie/internal/config"
	"github.com/sarthakjha889/go-anagram-trie/internal/dictionary"
)

// NewIndex creates an empty trie with the search settings applied. Words and
// queries share the resulting normalisation.
func NewIndex(cfg config.SearchConfig) *trie.Trie {
	t := trie.New().WithMaxResults(cfg.MaxResults)
	if cfg.CaseSensitive {
		t.CaseSensitive()
	}
	if cfg.KeepDiacritics {
		t.WithoutNormalisation()
	}
	return t
}

// BuildIndex loads the configured dictionary into a new index. The returned
// trie is complete and safe for concurrent searches.
func BuildIndex(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*trie.Trie, dictionary.Stats, error) {
	t := NewIndex(cfg.Search)
	loader := &dictionary.Loader{
		Dir:         cfg.Dictionary.Dir,
		Alphabet:    cfg.Dictionary.Alphabet,
		SkipMissing: cfg.Dictionary.SkipMissing,
		Concurrency: cfg.Dictionary.LoadConcurrency,
		Logger:      logger,
	}
	stats, err := loader.Load(ctx, t)
	if err != nil {
		return nil, dictionary.Stats{}, fmt.Errorf("build index: %w", err)
	}
	return t, stats, nil
}
