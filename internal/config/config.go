// internal/config/config.go
//
// Runtime configuration for the wordguess CLI.
//
// Sources, lowest precedence first:
//   1. Built-in defaults.
//   2. Environment (main loads an optional .env first via godotenv).
//   3. Command line flags.
//
// Environment variables:
//   WORDGUESS_WRONG_GUESSES=6
//   WORDGUESS_MIN_LENGTH=4
//   WORDGUESS_MAX_LENGTH=15
//   WORDGUESS_WORDS_FILE=/path/to/words.txt
//   WORDGUESS_WORDS_DB=/path/to/words.db
//   WORDGUESS_PAUSE=3s
//   NO_COLOR=1
//   LOG_LEVEL=warn

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultWrongGuesses = 6
	DefaultMinLength    = 4
	DefaultMaxLength    = 15
	DefaultPause        = 3 * time.Second

	// LengthFloor and LengthCeil bound both -min and -max.
	LengthFloor = 4
	LengthCeil  = 15
)

// ErrInvalidConfiguration is returned for any setting that cannot start a game.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrMinAboveMax is the specific InvalidConfiguration for min > max.
var ErrMinAboveMax = fmt.Errorf("%w: min can't be larger than max", ErrInvalidConfiguration)

// Mode selects what happens after a round ends.
type Mode int

const (
	// Interactive asks whether to play again.
	Interactive Mode = iota
	// SinglePlay stops after one round.
	SinglePlay
	// AutoPlay starts rounds until the player quits.
	AutoPlay
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "interactive"
	case SinglePlay:
		return "single"
	case AutoPlay:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is everything the game needs, resolved and validated.
type Config struct {
	WrongGuesses   int
	MinLength      int
	MaxLength      int
	Color          bool
	AllowWholeWord bool
	Mode           Mode
	WordsFile      string        // empty means the embedded list
	WordsDB        string        // SQLite dictionary; wins over WordsFile
	ImportFile     string        // import into WordsDB and exit
	Pause          time.Duration // delay after feedback messages
	LogLevel       zerolog.Level
	ShowVersion    bool
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		WrongGuesses:   DefaultWrongGuesses,
		MinLength:      DefaultMinLength,
		MaxLength:      DefaultMaxLength,
		Color:          true,
		AllowWholeWord: true,
		Mode:           Interactive,
		Pause:          DefaultPause,
		LogLevel:       zerolog.WarnLevel,
	}
}

// Env is a lookup function, os.LookupEnv in production.
type Env func(key string) (string, bool)

// FromEnv returns Default overlaid with the environment.
func FromEnv(env Env) (Config, error) {
	cfg := Default()
	get := func(k string) string {
		if v, ok := env(k); ok {
			return v
		}
		return ""
	}

	if v := get("WORDGUESS_WRONG_GUESSES"); v != "" {
		if err := (*positiveInt)(&cfg.WrongGuesses).Set(v); err != nil {
			return cfg, envError("WORDGUESS_WRONG_GUESSES", err)
		}
	}
	if v := get("WORDGUESS_MIN_LENGTH"); v != "" {
		if err := (*wordLength)(&cfg.MinLength).Set(v); err != nil {
			return cfg, envError("WORDGUESS_MIN_LENGTH", err)
		}
	}
	if v := get("WORDGUESS_MAX_LENGTH"); v != "" {
		if err := (*wordLength)(&cfg.MaxLength).Set(v); err != nil {
			return cfg, envError("WORDGUESS_MAX_LENGTH", err)
		}
	}
	if v := get("WORDGUESS_PAUSE"); v != "" {
		if err := (*pause)(&cfg.Pause).Set(v); err != nil {
			return cfg, envError("WORDGUESS_PAUSE", err)
		}
	}
	if v := get("LOG_LEVEL"); v != "" {
		if err := (*logLevel)(&cfg.LogLevel).Set(v); err != nil {
			return cfg, envError("LOG_LEVEL", err)
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if get("NO_COLOR") != "" {
		cfg.Color = false
	}
	cfg.WordsFile = get("WORDGUESS_WORDS_FILE")
	cfg.WordsDB = get("WORDGUESS_WORDS_DB")
	return cfg, nil
}

// Load resolves defaults, the process environment and args, then validates.
// Usage and parse errors are written to stderr. -version succeeds even when
// the environment holds bad values.
func Load(args []string, stderr io.Writer) (Config, error) {
	base, envErr := FromEnv(os.LookupEnv)
	cfg, err := Parse(base, args, stderr)
	switch {
	case err != nil:
		return cfg, err
	case cfg.ShowVersion:
		return cfg, nil
	}
	return cfg, envErr
}

// Parse applies command line flags on top of base and validates the result.
// With -version set nothing else is validated.
func Parse(base Config, args []string, stderr io.Writer) (Config, error) {
	cfg := base
	noGuessWord := !cfg.AllowWholeWord
	noColor := !cfg.Color
	var single, auto bool

	fs := flag.NewFlagSet("wordguess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var((*positiveInt)(&cfg.WrongGuesses), "W", "Number of wrong guesses allowed")
	fs.Var((*wordLength)(&cfg.MinLength), "min", "Min word length between 4 and 15")
	fs.Var((*wordLength)(&cfg.MaxLength), "max", "Max word length between 4 and 15")
	fs.BoolVar(&single, "s", false, "single play then exit")
	fs.BoolVar(&auto, "a", false, "continues game play until 'quit' is entered")
	fs.BoolVar(&noGuessWord, "n", noGuessWord, "Do not allow guessing of the whole word")
	fs.BoolVar(&noGuessWord, "no_guess_word", noGuessWord, "Do not allow guessing of the whole word")
	fs.BoolVar(&noColor, "no_color", noColor, "No color mode")
	fs.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "Word list file (default: built-in list)")
	fs.StringVar(&cfg.WordsDB, "words-db", cfg.WordsDB, "SQLite word dictionary")
	fs.StringVar(&cfg.ImportFile, "import", "", "Import a word file into -words-db and exit")
	fs.Var((*pause)(&cfg.Pause), "pause", "Delay after each message")
	fs.Var((*logLevel)(&cfg.LogLevel), "log-level", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfiguration, fs.Args())
	}

	cfg.AllowWholeWord = !noGuessWord
	cfg.Color = !noColor
	switch {
	case single:
		cfg.Mode = SinglePlay
	case auto:
		cfg.Mode = AutoPlay
	}

	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.WrongGuesses <= 0 {
		return fmt.Errorf("%w: %d is an invalid positive int value", ErrInvalidConfiguration, c.WrongGuesses)
	}
	if !inLengthRange(c.MinLength) || !inLengthRange(c.MaxLength) {
		return fmt.Errorf("%w: word lengths must be between %d and %d", ErrInvalidConfiguration, LengthFloor, LengthCeil)
	}
	if c.MinLength > c.MaxLength {
		return ErrMinAboveMax
	}
	if c.Pause < 0 {
		return fmt.Errorf("%w: pause must not be negative", ErrInvalidConfiguration)
	}
	if c.ImportFile != "" && c.WordsDB == "" {
		return fmt.Errorf("%w: -import requires -words-db", ErrInvalidConfiguration)
	}
	return nil
}

func envError(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, key, err)
}

func inLengthRange(n int) bool { return n >= LengthFloor && n <= LengthCeil }

// ------------------------------ flag values --------------------------------

type positiveInt int

func (p *positiveInt) String() string { return strconv.Itoa(int(*p)) }

func (p *positiveInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("%s is an invalid positive int value", s)
	}
	*p = positiveInt(n)
	return nil
}

type wordLength int

func (w *wordLength) String() string { return strconv.Itoa(int(*w)) }

func (w *wordLength) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || !inLengthRange(n) {
		return fmt.Errorf("%s is an invalid positive int between %d and %d", s, LengthFloor, LengthCeil)
	}
	*w = wordLength(n)
	return nil
}

type pause time.Duration

func (p *pause) String() string { return time.Duration(*p).String() }

func (p *pause) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fmt.Errorf("%s is an invalid pause duration", s)
	}
	*p = pause(d)
	return nil
}

type logLevel zerolog.Level

func (l *logLevel) String() string { return zerolog.Level(*l).String() }

func (l *logLevel) Set(s string) error {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return err
	}
	*l = logLevel(lvl)
	return nil
}
