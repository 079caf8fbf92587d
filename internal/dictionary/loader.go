// Package dictionary loads word lists stored as one file per initial letter,
// each line holding comma-separated entries.
package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultAlphabet is the set of initial letters a Spanish word list is split by.
const DefaultAlphabet = "abcdefghijklmnñopqrstuvwxyz"

const fileExt = ".txt"

// ErrMissingFile is returned when a letter has no file and missing files are
// not allowed.
var ErrMissingFile = errors.New("dictionary: missing letter file")

// Inserter receives the loaded words.
type Inserter interface {
	Insert(entries ...string)
}

// Loader reads the dictionary files found in Dir, one per rune of Alphabet.
type Loader struct {
	Dir         string
	Alphabet    string
	SkipMissing bool
	// Concurrency bounds how many files are read at once. Values below one
	// mean one.
	Concurrency int
	Logger      *slog.Logger
}

// Stats describes a completed load.
type Stats struct {
	Files    int
	Missing  int
	Entries  int
	Duration time.Duration
}

// Load reads every letter file and inserts its entries into ix. Files are
// read in parallel but inserted one at a time in alphabet order, so ix needs
// no locking of its own. Nothing is inserted if any file fails.
func (l *Loader) Load(ctx context.Context, ix Inserter) (Stats, error) {
	start := time.Now()
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	alphabet := l.Alphabet
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	letters := []rune(alphabet)

	words := make([][]string, len(letters))
	missing := make([]bool, len(letters))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, l.Concurrency))
	for i, letter := range letters {
		i, letter := i, letter
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(l.Dir, string(letter)+fileExt)
			parsed, err := readFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				if !l.SkipMissing {
					return fmt.Errorf("%w: %s", ErrMissingFile, path)
				}
				logger.Warn("dictionary file missing", slog.String("file", path))
				missing[i] = true
				return nil
			}
			if err != nil {
				return err
			}
			logger.Debug("dictionary file parsed", slog.String("file", path), slog.Int("entries", len(parsed)))
			words[i] = parsed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for i := range letters {
		if missing[i] {
			stats.Missing++
			continue
		}
		stats.Files++
		stats.Entries += len(words[i])
		ix.Insert(words[i]...)
	}
	stats.Duration = time.Since(start)

	logger.Info("dictionary loaded",
		slog.String("dir", l.Dir),
		slog.Int("files", stats.Files),
		slog.Int("missing", stats.Missing),
		slog.Int("entries", stats.Entries),
		slog.Duration("duration", stats.Duration))

	return stats, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := ParseWords(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return words, nil
}

// ParseWords splits r into entries. Each line holds entries separated by
// commas; surrounding spaces and empty entries are dropped.
func ParseWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Word lists are often stored as a single very long line.
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var words []string
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			if word := strings.TrimSpace(field); word != "" {
				words = append(words, word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
