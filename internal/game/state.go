// internal/game/state.go
//
// Per-round state: target word, revealed buffer, used letters and the
// wrong-guess counter. The alphabet itself is never modified; used letters
// live in their own set so display and bookkeeping stay separate.

package game

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// Alphabet is the ordered set of guessable letters.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Placeholder marks an unrevealed position.
	Placeholder = '_'
)

// State holds one round. It is owned by a single Round and not safe for
// concurrent use.
type State struct {
	id       string
	word     string
	revealed []byte
	used     [26]bool
	wrong    int
	outcome  Outcome
}

// New starts a round for word. The word is upper-cased; callers are expected
// to pass letters A-Z only (the words package guarantees that).
func New(word string) *State {
	w := strings.ToUpper(word)
	revealed := make([]byte, len(w))
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return &State{
		id:       uuid.NewString(),
		word:     w,
		revealed: revealed,
	}
}

func (s *State) ID() string { return s.id }
func (s *State) Word() string { return s.word }
func (s *State) Wrong() int { return s.wrong }
func (s *State) Outcome() Outcome { return s.outcome }
func (s *State) Revealed() string { return string(s.revealed) }

// Used reports whether letter has been tried. Non-letters report false.
func (s *State) Used(letter byte) bool {
	i, ok := index(letter)
	return ok && s.used[i]
}

// MarkUsed moves letter from available to used.
func (s *State) MarkUsed(letter byte) error {
	i, ok := index(letter)
	if !ok {
		return ErrNotALetter
	}
	if s.used[i] {
		return ErrLetterUsed
	}
	s.used[i] = true
	return nil
}

// Reveal uncovers every position holding letter and returns how many matched.
func (s *State) Reveal(letter byte) int {
	n := 0
	for i := 0; i < len(s.word); i++ {
		if s.word[i] == letter {
			s.revealed[i] = letter
			n++
		}
	}
	return n
}

// RevealAll uncovers the whole word.
func (s *State) RevealAll() { copy(s.revealed, s.word) }

// IncrementWrong counts one wrong guess.
func (s *State) IncrementWrong() { s.wrong++ }

// Complete reports whether every position is revealed.
func (s *State) Complete() bool { return string(s.revealed) == s.word }

// OutOfGuesses reports whether the wrong-guess limit has been reached.
func (s *State) OutOfGuesses(limit int) bool { return s.wrong >= limit }

// Contains reports whether letter occurs in the word.
func (s *State) Contains(letter byte) bool {
	return strings.IndexByte(s.word, letter) >= 0
}

// Letters returns the alphabet for display, with used letters replaced by a
// blank so columns keep their position.
func (s *State) Letters() []string {
	out := make([]string, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		if s.used[i] {
			out[i] = " "
		} else {
			out[i] = Alphabet[i : i+1]
		}
	}
	return out
}

// RevealedLetters returns the revealed buffer one character per element.
func (s *State) RevealedLetters() []string {
	out := make([]string, len(s.revealed))
	for i, c := range s.revealed {
		out[i] = string(c)
	}
	return out
}

// index maps an uppercase ASCII letter to 0..25.
func index(letter byte) (int, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}
