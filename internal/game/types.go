// internal/game/types.go
//
// Core type definitions for the word guessing engine.
// Defines:
//   - Outcome: lifecycle of a single round (in progress, won, lost, quit).
//   - Kind: classification of one raw player input.
//   - Result: a classified input, ready to be applied to a State.
//   - Rules: per-round settings the resolver needs.

package game

import "errors"

// Outcome is the round state. InProgress is the only non-terminal value.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
	Quit
)

// String returns a lowercase label, used in logs.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (o Outcome) Terminal() bool { return o != InProgress }

// Kind is the classification of one input line.
type Kind int

const (
	KindQuit Kind = iota
	KindInvalidInput
	KindWholeWordCorrect
	KindWholeWordIncorrect
	KindAlreadyGuessed
	KindCorrectLetter
	KindWrongLetter
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindInvalidInput:
		return "invalid_input"
	case KindWholeWordCorrect:
		return "whole_word_correct"
	case KindWholeWordIncorrect:
		return "whole_word_incorrect"
	case KindAlreadyGuessed:
		return "already_guessed"
	case KindCorrectLetter:
		return "correct_letter"
	case KindWrongLetter:
		return "wrong_letter"
	default:
		return "unknown"
	}
}

// Result is what Classify produces.
type Result struct {
	Kind  Kind
	Input string // upper-cased input
}

// Letter returns the guessed letter for single-letter kinds, 0 otherwise.
func (r Result) Letter() byte {
	if len(r.Input) != 1 {
		return 0
	}
	return r.Input[0]
}

// Rules carries the configuration the resolver consumes.
type Rules struct {
	MaxWrong       int  // wrong guesses allowed before the round is lost
	AllowWholeWord bool // accept multi-letter guesses of the full word
}

var (
	// ErrRoundOver is returned when a result is applied to a finished round.
	ErrRoundOver = errors.New("round is over")
	// ErrLetterUsed is returned by MarkUsed for a letter already tried.
	ErrLetterUsed = errors.New("letter already used")
	// ErrNotALetter is returned for bytes outside A-Z.
	ErrNotALetter = errors.New("not a letter A-Z")
)
