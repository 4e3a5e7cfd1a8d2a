// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load candidate words from a backend (embedded list, text file, SQLite).
//   - Normalize to uppercase, keep only A–Z tokens within length bounds.
//   - Choose one word uniformly at random.
//
// Backends implement Loader; Source adds filtering and selection on top.
// Words keep their stored order; nothing here sorts or shuffles.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/assets"
)

var (
	// ErrWordListUnavailable means the backing resource could not be read.
	ErrWordListUnavailable = errors.New("word list unavailable")
	// ErrEmptyWordList means no word is left to choose from.
	ErrEmptyWordList = errors.New("word list is empty")
)

// Loader reads raw words from some backend. Implementations may pre-filter by
// length; Source filters again regardless.
type Loader interface {
	Words(ctx context.Context, minLen, maxLen int) ([]string, error)
}

// Source loads and picks words.
type Source struct {
	loader Loader
	rand   io.Reader
}

// NewSource wraps l. Selection uses crypto/rand.
func NewSource(l Loader) *Source {
	return &Source{loader: l, rand: rand.Reader}
}

// Load returns the words with minLen <= len <= maxLen, upper-cased, in stored
// order. Backend failures are wrapped with ErrWordListUnavailable.
func (s *Source) Load(ctx context.Context, minLen, maxLen int) ([]string, error) {
	raw, err := s.loader.Words(ctx, minLen, maxLen)
	if err != nil {
		if errors.Is(err, ErrWordListUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !isAlpha(w) || len(w) < minLen || len(w) > maxLen {
			continue
		}
		out = append(out, w)
	}
	log.Debug().Int("loaded", len(raw)).Int("kept", len(out)).
		Int("min", minLen).Int("max", maxLen).Msg("word list loaded")
	return out, nil
}

// Choose returns one element of list uniformly at random.
func (s *Source) Choose(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyWordList
	}
	n, err := rand.Int(s.rand, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("choose word: %w", err)
	}
	return list[n.Int64()], nil
}

// ----------------------------- text backends -------------------------------

// Embedded reads the default list compiled into the binary.
type Embedded struct{}

func (Embedded) Words(ctx context.Context, minLen, maxLen int) ([]string, error) {
	f, err := assets.OpenWordList()
	if err != nil {
		return nil, fmt.Errorf("%w: embedded %s: %v", ErrWordListUnavailable, assets.WordList, err)
	}
	defer f.Close()
	return readWords(f)
}

// File reads a whitespace separated word file from disk.
type File struct {
	Path string
}

func (f File) Words(ctx context.Context, minLen, maxLen int) ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	defer fh.Close()
	return readWords(fh)
}

// Reader reads words from any io.Reader. Handy for tests and piped lists.
type Reader struct {
	R io.Reader
}

func (r Reader) Words(ctx context.Context, minLen, maxLen int) ([]string, error) {
	return readWords(r.R)
}

// readWords splits r on whitespace, skipping lines that start with '#'.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWordListUnavailable, err)
	}
	return out, nil
}

// isAlpha reports whether s is a non-empty run of uppercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
