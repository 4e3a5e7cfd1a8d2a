// Package play runs the game: a Round drives one word to a terminal outcome,
// a Session decides whether another round follows.
package play

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/game"
)

// Prompts shown to the player.
const (
	GuessPrompt     = "Enter a letter or 'quit' to quit: "
	PlayAgainPrompt = "Would you like to play again? (Yes or no): "
)

// UI is the presentation a Round and Session talk to.
type UI interface {
	// Render draws the board.
	Render(s *game.State, limit int)
	// Feedback prints the message for a non-terminal result, if it has one.
	Feedback(r game.Result) bool
	// Finish prints the outcome message once the round is over.
	Finish(s *game.State, last game.Result)
	// Prompt blocks for one line of input.
	Prompt(question string) (string, error)
	// Pause waits between a message and the next screen.
	Pause()
	// Newline writes an empty line.
	Newline()
}

// Round plays single rounds with fixed rules.
type Round struct {
	ui    UI
	rules game.Rules
}

// NewRound returns a Round bound to ui and rules.
func NewRound(ui UI, rules game.Rules) *Round {
	return &Round{ui: ui, rules: rules}
}

// Play runs one round for word and returns its final state. End of input is
// treated as the player quitting. Only UI read errors are returned.
func (r *Round) Play(word string) (*game.State, error) {
	s := game.New(word)
	logger := log.With().Str("round", s.ID()).Logger()
	logger.Info().Int("length", len(s.Word())).Int("maxWrong", r.rules.MaxWrong).
		Bool("wholeWord", r.rules.AllowWholeWord).Msg("round started")

	for {
		r.ui.Render(s, r.rules.MaxWrong)

		var res game.Result
		raw, err := r.ui.Prompt(GuessPrompt)
		switch {
		case errors.Is(err, io.EOF):
			logger.Debug().Msg("input closed, quitting")
			res = game.Result{Kind: game.KindQuit}
		case err != nil:
			return s, err
		default:
			res = game.Classify(s, raw, r.rules.AllowWholeWord)
		}

		outcome, err := s.Apply(res, r.rules)
		if err != nil {
			return s, err
		}
		logger.Debug().Str("kind", res.Kind.String()).Int("wrong", s.Wrong()).
			Str("outcome", outcome.String()).Msg("guess")

		if r.ui.Feedback(res) {
			r.ui.Pause()
		}
		if !outcome.Terminal() {
			continue
		}

		if outcome != game.Quit {
			r.ui.Render(s, r.rules.MaxWrong)
		}
		r.ui.Finish(s, res)
		if outcome != game.Quit {
			r.ui.Pause()
		}
		logger.Info().Str("outcome", outcome.String()).Int("wrong", s.Wrong()).Msg("round finished")
		return s, nil
	}
}
