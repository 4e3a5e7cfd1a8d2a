package words

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lengthWords = []string{"TEST", "FISHER", "PRODUCE", "INSTRUMENT", "TEMPERATURE",
	"CONSTRUCTION", "SUBSCRIPTIONS", "LIGHT", "SHIELD", "IDENTIFICATION"}

func readerSource(list ...string) *Source {
	return NewSource(Reader{R: strings.NewReader(strings.Join(list, "\n"))})
}

func TestLoad(t *testing.T) {
	words := []string{"TESTING", "PYTHON", "FINISH", "YELLOW", "ORANGE"}
	got, err := readerSource(words...).Load(context.Background(), 4, 15)
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestLoad_LengthBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		expected []string
	}{
		{"max 10", 4, 10, []string{"TEST", "FISHER", "PRODUCE", "INSTRUMENT", "LIGHT", "SHIELD"}},
		{"max 8", 4, 8, []string{"TEST", "FISHER", "PRODUCE", "LIGHT", "SHIELD"}},
		{"min 10", 10, 15, []string{"INSTRUMENT", "TEMPERATURE", "CONSTRUCTION", "SUBSCRIPTIONS", "IDENTIFICATION"}},
		{"min 12", 12, 15, []string{"CONSTRUCTION", "SUBSCRIPTIONS", "IDENTIFICATION"}},
		{"exact 10", 10, 10, []string{"INSTRUMENT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readerSource(lengthWords...).Load(context.Background(), tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoad_NormalizesAndSkipsJunk(t *testing.T) {
	src := NewSource(Reader{R: strings.NewReader("# comment line WORD\nletter  Yellow\ncan't 12345 é\n\nmission\n")})
	got, err := src.Load(context.Background(), 4, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"LETTER", "YELLOW", "MISSION"}, got)
}

func TestLoad_Embedded(t *testing.T) {
	got, err := NewSource(Embedded{}).Load(context.Background(), 4, 15)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, w := range got {
		assert.True(t, isAlpha(w), w)
		assert.GreaterOrEqual(t, len(w), 4)
		assert.LessOrEqual(t, len(w), 15)
	}

	short, err := NewSource(Embedded{}).Load(context.Background(), 5, 5)
	require.NoError(t, err)
	for _, w := range short {
		assert.Len(t, w, 5)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha beta\ngamma\n"), 0o644))

	got, err := NewSource(File{Path: path}).Load(context.Background(), 4, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"ALPHA", "BETA", "GAMMA"}, got)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := NewSource(File{Path: filepath.Join(t.TempDir(), "nope.txt")}).Load(context.Background(), 4, 15)
	assert.ErrorIs(t, err, ErrWordListUnavailable)
}

type failingLoader struct{}

func (failingLoader) Words(context.Context, int, int) ([]string, error) {
	return nil, errors.New("disk on fire")
}

func TestLoad_BackendErrorIsUnavailable(t *testing.T) {
	_, err := NewSource(failingLoader{}).Load(context.Background(), 4, 15)
	assert.ErrorIs(t, err, ErrWordListUnavailable)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLoad_NothingInBounds(t *testing.T) {
	got, err := readerSource("CAT", "DOG").Load(context.Background(), 4, 15)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChoose(t *testing.T) {
	src := readerSource()

	_, err := src.Choose(nil)
	assert.ErrorIs(t, err, ErrEmptyWordList)

	w, err := src.Choose([]string{"COMMIT"})
	require.NoError(t, err)
	assert.Equal(t, "COMMIT", w)

	list := []string{"CHOICE", "ENTERPRISE", "COMMIT"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w, err := src.Choose(list)
		require.NoError(t, err)
		assert.Contains(t, list, w)
		seen[w] = true
	}
	assert.Len(t, seen, 3)
}

func TestChoose_DeterministicReader(t *testing.T) {
	src := readerSource()
	// A zero stream makes crypto/rand.Int return 0.
	src.rand = bytes.NewReader(make([]byte, 64))

	w, err := src.Choose([]string{"CHOICE", "ENTERPRISE", "COMMIT"})
	require.NoError(t, err)
	assert.Equal(t, "CHOICE", w)
}

func TestChoose_ReaderError(t *testing.T) {
	src := readerSource()
	src.rand = bytes.NewReader(nil)

	_, err := src.Choose([]string{"CHOICE", "COMMIT"})
	assert.Error(t, err)
}
