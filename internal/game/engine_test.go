package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultRules = Rules{MaxWrong: 6, AllowWholeWord: true}

// play feeds inputs until the round ends and returns the last result.
func play(t *testing.T, s *State, rules Rules, inputs ...string) Result {
	t.Helper()
	var last Result
	for _, in := range inputs {
		if s.Outcome().Terminal() {
			break
		}
		r, _, err := s.Guess(in, rules)
		require.NoError(t, err)
		last = r
	}
	return last
}

func TestClassify(t *testing.T) {
	s := New("LETTER")
	require.NoError(t, s.MarkUsed('S'))

	tests := []struct {
		name      string
		input     string
		wholeWord bool
		expected  Kind
	}{
		{"quit lower", "quit", true, KindQuit},
		{"quit upper", "QUIT", false, KindQuit},
		{"quit mixed", "Quit", true, KindQuit},
		{"digit", "1", true, KindInvalidInput},
		{"empty", "", true, KindInvalidInput},
		{"space", " ", true, KindInvalidInput},
		{"letter with space", "a ", true, KindInvalidInput},
		{"non ascii letter", "é", true, KindInvalidInput},
		{"whole word off", "LETTER", false, KindInvalidInput},
		{"whole word correct", "letter", true, KindWholeWordCorrect},
		{"whole word wrong", "TESTING", true, KindWholeWordIncorrect},
		{"already used", "s", true, KindAlreadyGuessed},
		{"correct letter", "e", true, KindCorrectLetter},
		{"wrong letter", "Z", true, KindWrongLetter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Classify(s, tt.input, tt.wholeWord)
			assert.Equal(t, tt.expected, r.Kind)
		})
	}

	// Classify never mutates.
	assert.Equal(t, "______", s.Revealed())
	assert.Equal(t, 0, s.Wrong())
}

func TestGuess_InvalidInputHasNoEffect(t *testing.T) {
	for _, in := range []string{"1", "90909", "3R", "?", "#", " ", ""} {
		t.Run(in, func(t *testing.T) {
			s := New("LETTER")
			r, o, err := s.Guess(in, defaultRules)
			require.NoError(t, err)
			assert.Equal(t, KindInvalidInput, r.Kind)
			assert.Equal(t, InProgress, o)
			assert.Equal(t, 0, s.Wrong())
			assert.Equal(t, "______", s.Revealed())
		})
	}
}

func TestGuess_WinByLetters(t *testing.T) {
	s := New("LETTER")
	r := play(t, s, defaultRules, "L", "T", "E", "R")

	assert.Equal(t, KindCorrectLetter, r.Kind)
	assert.Equal(t, Won, s.Outcome())
	assert.Equal(t, "LETTER", s.Revealed())
	assert.Equal(t, 0, s.Wrong())
}

func TestGuess_WinAnyOrder(t *testing.T) {
	orders := [][]string{
		{"R", "E", "T", "L"},
		{"e", "l", "r", "t"},
		{"T", "L", "R", "E"},
	}
	for _, order := range orders {
		s := New("LETTER")
		play(t, s, defaultRules, order...)
		assert.Equal(t, Won, s.Outcome())
		assert.Equal(t, s.Word(), s.Revealed())
	}
}

func TestGuess_WrongLetter(t *testing.T) {
	s := New("LETTER")
	r, o, err := s.Guess("w", defaultRules)
	require.NoError(t, err)

	assert.Equal(t, KindWrongLetter, r.Kind)
	assert.Equal(t, byte('W'), r.Letter())
	assert.Equal(t, InProgress, o)
	assert.Equal(t, 1, s.Wrong())
	assert.True(t, s.Used('W'))
	assert.Equal(t, "______", s.Revealed())
}

func TestGuess_AlreadyGuessed(t *testing.T) {
	s := New("LETTER")
	play(t, s, defaultRules, "s", "t", "a", "R")
	wrong, revealed := s.Wrong(), s.Revealed()

	for _, in := range []string{"t", "S", "a", "r"} {
		r, o, err := s.Guess(in, defaultRules)
		require.NoError(t, err)
		assert.Equal(t, KindAlreadyGuessed, r.Kind, in)
		assert.Equal(t, InProgress, o)
	}
	assert.Equal(t, wrong, s.Wrong())
	assert.Equal(t, revealed, s.Revealed())
}

func TestGuess_Lost(t *testing.T) {
	s := New("LETTER")
	r := play(t, s, defaultRules, "K", "i", "l", "a", "s", "W", "z", "U")

	assert.Equal(t, KindWrongLetter, r.Kind)
	assert.Equal(t, byte('Z'), r.Letter())
	assert.Equal(t, Lost, s.Outcome())
	assert.Equal(t, 6, s.Wrong())
	assert.Equal(t, "L_____", s.Revealed())
	assert.False(t, s.Used('U'))
}

func TestGuess_Quit(t *testing.T) {
	for _, in := range []string{"quit", "QUIT", "Quit"} {
		s := New("LETTER")
		play(t, s, defaultRules, "E", "K")
		r, o, err := s.Guess(in, defaultRules)
		require.NoError(t, err)

		assert.Equal(t, KindQuit, r.Kind)
		assert.Equal(t, Quit, o)
		assert.Equal(t, 1, s.Wrong())
		assert.Equal(t, "_E__E_", s.Revealed())
	}
}

func TestGuess_WholeWord(t *testing.T) {
	t.Run("correct after misses", func(t *testing.T) {
		s := New("LETTER")
		play(t, s, defaultRules, "A", "B", "C", "D", "F")
		r, o, err := s.Guess("letter", defaultRules)
		require.NoError(t, err)

		assert.Equal(t, KindWholeWordCorrect, r.Kind)
		assert.Equal(t, Won, o)
		assert.Equal(t, "LETTER", s.Revealed())
		assert.Equal(t, 5, s.Wrong())
	})

	t.Run("incorrect costs one guess", func(t *testing.T) {
		s := New("LETTER")
		r, o, err := s.Guess("TESTING", defaultRules)
		require.NoError(t, err)

		assert.Equal(t, KindWholeWordIncorrect, r.Kind)
		assert.Equal(t, InProgress, o)
		assert.Equal(t, 1, s.Wrong())
		assert.False(t, s.Used('T'))
	})

	t.Run("incorrect on last guess loses", func(t *testing.T) {
		s := New("LETTER")
		play(t, s, defaultRules, "A", "B", "C", "D", "F")
		_, o, err := s.Guess("LATTER", defaultRules)
		require.NoError(t, err)
		assert.Equal(t, Lost, o)
	})

	t.Run("disabled", func(t *testing.T) {
		rules := Rules{MaxWrong: 6}
		for _, in := range []string{"LETTER", "TESTING"} {
			s := New("LETTER")
			r, o, err := s.Guess(in, rules)
			require.NoError(t, err)
			assert.Equal(t, KindInvalidInput, r.Kind)
			assert.Equal(t, InProgress, o)
			assert.Equal(t, 0, s.Wrong())
			assert.Equal(t, "______", s.Revealed())
		}
	})
}

func TestApply_RoundOver(t *testing.T) {
	s := New("LETTER")
	_, o, err := s.Guess("quit", defaultRules)
	require.NoError(t, err)
	require.Equal(t, Quit, o)

	_, o, err = s.Guess("L", defaultRules)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, Quit, o)
	assert.Equal(t, "______", s.Revealed())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "whole_word_incorrect", KindWholeWordIncorrect.String())
	assert.Equal(t, "already_guessed", KindAlreadyGuessed.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
