package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/config"
	"github.com/robalobadob/wordguess/internal/console"
	"github.com/robalobadob/wordguess/internal/play"
	"github.com/robalobadob/wordguess/internal/words"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitOK       = 0
	exitWordList = 1
	exitConfig   = 2
)

func main() {
	_ = godotenv.Load()
	newUI := func(cfg config.Config) play.UI { return console.Stdio(cfg.Color, cfg.Pause) }
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, newUI))
}

// run is main without the process: it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, newUI func(config.Config) play.UI) int {
	cfg, err := config.Load(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, config.ErrMinAboveMax):
		fmt.Fprintln(stderr, "Error min can't be larger than max")
		return exitConfig
	case err != nil:
		fmt.Fprintln(stderr, "Error", err)
		return exitConfig
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	if cfg.ShowVersion {
		fmt.Fprintln(stdout, "wordguess", version)
		return exitOK
	}

	if cfg.ImportFile != "" {
		n, err := importWords(ctx, cfg.WordsDB, cfg.ImportFile)
		if err != nil {
			log.Error().Err(err).Str("file", cfg.ImportFile).Msg("import failed")
			fmt.Fprintln(stderr, "Error", err)
			return exitWordList
		}
		fmt.Fprintf(stdout, "imported %d words into %s\n", n, cfg.WordsDB)
		return exitOK
	}

	loader, closeLoader, err := openLoader(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to open word list")
		fmt.Fprintln(stderr, "Error", err)
		return exitWordList
	}
	defer closeLoader()

	src := words.NewSource(loader)
	list, err := src.Load(ctx, cfg.MinLength, cfg.MaxLength)
	if err == nil && len(list) == 0 {
		err = words.ErrEmptyWordList
	}
	if err != nil {
		log.Error().Err(err).Int("min", cfg.MinLength).Int("max", cfg.MaxLength).Msg("failed to load word list")
		fmt.Fprintln(stderr, "Error", err)
		return exitWordList
	}

	st, err := play.NewSession(newUI(cfg), src, list, cfg).Run()
	if err != nil {
		log.Error().Err(err).Int("played", st.Played).Msg("session ended with error")
		fmt.Fprintln(stderr, "Error", err)
		return exitWordList
	}
	log.Debug().Int("played", st.Played).Int("won", st.Won).Int("lost", st.Lost).Msg("exiting")
	return exitOK
}

// openLoader picks the word backend: dictionary, then file, then embedded.
func openLoader(cfg config.Config) (words.Loader, func(), error) {
	switch {
	case cfg.WordsDB != "":
		db, err := words.OpenDictionary(cfg.WordsDB)
		if err != nil {
			return nil, nil, err
		}
		return words.Dictionary{DB: db}, func() { _ = db.Close() }, nil
	case cfg.WordsFile != "":
		return words.File{Path: cfg.WordsFile}, func() {}, nil
	default:
		return words.Embedded{}, func() {}, nil
	}
}

// importWords creates or updates the dictionary at dbPath from a word file.
func importWords(ctx context.Context, dbPath, file string) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", words.ErrWordListUnavailable, err)
	}
	defer f.Close()

	db, err := words.OpenDB(dbPath)
	if err != nil {
		return 0, err
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	if err := words.Migrate(ctx, db); err != nil {
		return 0, fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	return words.Import(ctx, db, f)
}
