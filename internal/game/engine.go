// internal/game/engine.go
//
// Guess resolution for a single round.
// Responsibilities:
//   - Classify a raw input line against the current State (pure).
//   - Apply a classified Result, mutating the State.
//   - Track state transitions: in progress → won/lost/quit.
//
// Classification order matters: "quit" is checked before alphabetic
// validation, and whole-word handling before single-letter checks.

package game

import "strings"

const quitWord = "QUIT"

// Classify maps raw input to a Result without touching s.
//
// Rules, first match wins:
//   - "QUIT" in any case → KindQuit.
//   - Anything that is not purely A–Z after upper-casing → KindInvalidInput.
//   - More than one letter: KindInvalidInput when whole-word guessing is off,
//     otherwise KindWholeWordCorrect or KindWholeWordIncorrect.
//   - A used letter → KindAlreadyGuessed.
//   - Otherwise KindCorrectLetter or KindWrongLetter.
func Classify(s *State, raw string, allowWholeWord bool) Result {
	in := strings.ToUpper(raw)
	r := Result{Input: in}

	switch {
	case in == quitWord:
		r.Kind = KindQuit
	case !isAlpha(in):
		r.Kind = KindInvalidInput
	case len(in) > 1:
		switch {
		case !allowWholeWord:
			r.Kind = KindInvalidInput
		case in == s.word:
			r.Kind = KindWholeWordCorrect
		default:
			r.Kind = KindWholeWordIncorrect
		}
	case s.Used(in[0]):
		r.Kind = KindAlreadyGuessed
	case s.Contains(in[0]):
		r.Kind = KindCorrectLetter
	default:
		r.Kind = KindWrongLetter
	}
	return r
}

// Apply performs the mutation r implies and returns the new outcome.
// Once the outcome is terminal further results are rejected with ErrRoundOver.
//
// After the result is applied, a round still in progress whose wrong-guess
// count has reached rules.MaxWrong is lost, whatever the result kind was.
func (s *State) Apply(r Result, rules Rules) (Outcome, error) {
	if s.outcome.Terminal() {
		return s.outcome, ErrRoundOver
	}

	switch r.Kind {
	case KindQuit:
		s.outcome = Quit
		return s.outcome, nil

	case KindInvalidInput, KindAlreadyGuessed:
		// no-op

	case KindWholeWordCorrect:
		s.RevealAll()
		s.outcome = Won

	case KindWholeWordIncorrect:
		s.IncrementWrong()

	case KindCorrectLetter:
		if err := s.MarkUsed(r.Letter()); err != nil {
			return s.outcome, err
		}
		s.Reveal(r.Letter())
		if s.Complete() {
			s.outcome = Won
		}

	case KindWrongLetter:
		if err := s.MarkUsed(r.Letter()); err != nil {
			return s.outcome, err
		}
		s.IncrementWrong()
	}

	if s.outcome == InProgress && s.OutOfGuesses(rules.MaxWrong) {
		s.outcome = Lost
	}
	return s.outcome, nil
}

// Guess classifies raw and applies it in one step.
func (s *State) Guess(raw string, rules Rules) (Result, Outcome, error) {
	r := Classify(s, raw, rules.AllowWholeWord)
	o, err := s.Apply(r, rules)
	return r, o, err
}

// isAlpha checks that a non-empty string consists only of uppercase A–Z.
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
