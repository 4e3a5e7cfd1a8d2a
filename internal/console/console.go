// internal/console/console.go
//
// Terminal presentation for the word guessing game.
// Responsibilities:
//   - Render the board: title, remaining letters, revealed word, guess count.
//   - Print the feedback and outcome messages, colored when enabled.
//   - Read one line of player input per prompt.
//   - Pace the game with a configurable pause after messages.
//
// The screen is cleared before each render only when the output is a
// terminal, so captured output (tests, pipes) stays plain.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordguess/internal/game"
)

// ANSI styles used by the game.
const (
	Red    = "\033[1;31m"
	Green  = "\033[1;32m"
	White  = "\033[1;37;40m"
	Yellow = "\033[1;93;93m"
	Reset  = "\033[m"

	clearScreen = "\033[H\033[2J"
)

// Title is the first line of every render.
const Title = "Word Guess"

// Options configures a Console.
type Options struct {
	Color bool          // wrap messages in ANSI colors
	Pause time.Duration // delay applied by Pause
	Clear bool          // clear the screen before each render
}

// Console reads player input and writes the game to a terminal.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	opts  Options
	sleep func(time.Duration)
}

// New builds a Console over arbitrary streams.
func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		opts:  opts,
		sleep: time.Sleep,
	}
}

// Stdio builds a Console on the process streams. Stdout goes through
// go-colorable so escape codes work on Windows; clearing is enabled only
// when stdout is a terminal.
func Stdio(color bool, pause time.Duration) *Console {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return New(os.Stdin, colorable.NewColorable(os.Stdout), Options{
		Color: color,
		Pause: pause,
		Clear: tty,
	})
}

// Render draws the board for s with the wrong-guess limit.
func (c *Console) Render(s *game.State, limit int) {
	var b strings.Builder
	if c.opts.Clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(c.paint(White, Title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(s.Letters(), " "))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(s.RevealedLetters(), " "))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Wrong Guesses %d out of %d\n", s.Wrong(), limit)
	_, _ = io.WriteString(c.out, b.String())
}

// Feedback prints the message for a non-terminal result. It reports whether
// anything was printed; a correct letter that does not finish the word has
// no message.
func (c *Console) Feedback(r game.Result) bool {
	var msg string
	switch r.Kind {
	case game.KindInvalidInput:
		msg = c.paint(Red, "Invalid input please try again")
	case game.KindWholeWordIncorrect:
		msg = c.paint(Yellow, r.Input+" is not the correct word")
	case game.KindAlreadyGuessed:
		msg = c.paint(Yellow, "Letter already been picked try again")
	case game.KindWrongLetter:
		msg = c.paint(Yellow, fmt.Sprintf("Letter %c not in the word", r.Letter()))
	default:
		return false
	}
	c.println(msg)
	return true
}

// Finish prints the message for a terminal outcome. last is the result that
// ended the round.
func (c *Console) Finish(s *game.State, last game.Result) {
	switch s.Outcome() {
	case game.Quit:
		c.println("Quitting")
	case game.Won:
		if last.Kind == game.KindWholeWordCorrect {
			c.println(c.paint(Green, "You Won! You guessed the word"))
		} else {
			c.println(c.paint(Green, "You Won! You got the word"))
		}
	case game.Lost:
		c.println(c.paint(Red, "Out of guesses"))
		c.println("The word was  " + s.Word())
	}
}

// Prompt writes question and blocks until a line is read. The trailing
// newline (and carriage return) is stripped; nothing else is. At end of input
// a partial last line is returned first, then io.EOF.
func (c *Console) Prompt(question string) (string, error) {
	_, _ = io.WriteString(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Newline writes an empty line.
func (c *Console) Newline() { c.println("") }

// Pause waits for the configured pacing delay.
func (c *Console) Pause() {
	if c.opts.Pause > 0 {
		c.sleep(c.opts.Pause)
	}
}

func (c *Console) println(msg string) {
	_, _ = io.WriteString(c.out, msg+"\n")
}

func (c *Console) paint(style, msg string) string {
	if !c.opts.Color {
		return msg
	}
	return style + msg + Reset
}
