package play

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/config"
	"github.com/robalobadob/wordguess/internal/game"
)

// Chooser picks the word for the next round.
type Chooser interface {
	Choose(words []string) (string, error)
}

// Stats tallies the rounds of a session.
type Stats struct {
	Played int
	Won    int
	Lost   int
	Quit   int
}

func (st *Stats) record(o game.Outcome) {
	st.Played++
	switch o {
	case game.Won:
		st.Won++
	case game.Lost:
		st.Lost++
	case game.Quit:
		st.Quit++
	}
}

// Session repeats rounds according to a replay mode.
type Session struct {
	ui      UI
	chooser Chooser
	words   []string
	mode    config.Mode
	round   *Round
}

// NewSession builds a Session from an already loaded word list.
func NewSession(ui UI, chooser Chooser, words []string, cfg config.Config) *Session {
	rules := game.Rules{MaxWrong: cfg.WrongGuesses, AllowWholeWord: cfg.AllowWholeWord}
	return &Session{
		ui:      ui,
		chooser: chooser,
		words:   words,
		mode:    cfg.Mode,
		round:   NewRound(ui, rules),
	}
}

// Run plays rounds until the mode says stop.
//
//   - SinglePlay: one round.
//   - AutoPlay: until a round ends with Quit.
//   - Interactive: ask after every round, including one the player quit.
func (s *Session) Run() (Stats, error) {
	var st Stats
	for {
		word, err := s.chooser.Choose(s.words)
		if err != nil {
			return st, err
		}
		state, err := s.round.Play(word)
		if err != nil {
			return st, err
		}
		st.record(state.Outcome())

		if s.mode == config.SinglePlay {
			break
		}
		if s.mode == config.AutoPlay {
			if state.Outcome() == game.Quit {
				break
			}
			continue
		}

		again, err := s.playAgain()
		if err != nil {
			return st, err
		}
		if !again {
			break
		}
	}
	log.Info().Str("mode", s.mode.String()).Int("played", st.Played).Int("won", st.Won).
		Int("lost", st.Lost).Int("quit", st.Quit).Msg("session finished")
	return st, nil
}

// playAgain asks the replay question. Closed input means no.
func (s *Session) playAgain() (bool, error) {
	s.ui.Newline()
	ans, err := s.ui.Prompt(PlayAgainPrompt)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(strings.TrimSpace(ans)) {
	case "YES", "Y":
		return true, nil
	}
	return false, nil
}
