package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakjha889/go-anagram-trie/internal/config"
	"github.com/sarthakjha889/go-anagram-trie/internal/dictionary"
)

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})
		logger.Info("hidden")
		logger.Warn("shown", slog.Int("n", 1))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.Equal(t, float64(1), line["n"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, config.LogConfig{Level: "DEBUG", Format: "text"})
		logger.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
		assert.Contains(t, buf.String(), "source=")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" debug "))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewIndex(t *testing.T) {
	t.Run("defaults normalise", func(t *testing.T) {
		ix := NewIndex(config.SearchConfig{})
		ix.Insert("Niño")
		assert.Equal(t, []string{"nino"}, ix.Anagrams("oñin"))
	})

	t.Run("keep diacritics and case", func(t *testing.T) {
		ix := NewIndex(config.SearchConfig{CaseSensitive: true, KeepDiacritics: true})
		ix.Insert("Niño")
		assert.Empty(t, ix.Anagrams("nino"))
		assert.Equal(t, []string{"Niño"}, ix.Anagrams("ñiNo"))
	})

	t.Run("max results", func(t *testing.T) {
		ix := NewIndex(config.SearchConfig{MaxResults: 1})
		ix.Insert("a", "b")
		assert.Len(t, ix.Anagrams("ab"), 1)
	})
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g.txt"), []byte("gato, gota"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "t.txt"), []byte("toga"), 0o644))

	cfg := &config.Config{Dictionary: config.DictionaryConfig{Dir: dir, Alphabet: "gt", LoadConcurrency: 2}}
	logger := newLogger(&bytes.Buffer{}, config.LogConfig{})

	ix, stats, err := BuildIndex(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, []string{"gato", "gota", "toga"}, ix.Anagrams("agot"))

	cfg.Dictionary.Alphabet = "gtz"
	_, _, err = BuildIndex(context.Background(), cfg, logger)
	assert.ErrorIs(t, err, dictionary.ErrMissingFile)
}
