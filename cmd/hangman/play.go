package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hangman/internal/console"
	"github.com/vovakirdan/hangman/internal/hangman"
	"github.com/vovakirdan/hangman/internal/platform/tui"
	"github.com/vovakirdan/hangman/internal/render"
	"github.com/vovakirdan/hangman/internal/storage"
	"github.com/vovakirdan/hangman/internal/words"
)

var flagTUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Pick a secret word and start guessing.

Each turn, enter one of:
  a letter   - reveal every occurrence, or lose a guess
  a word     - win on an exact match, or lose a guess
  nothing    - save the game

The game ends when the word is revealed or after 10 wrong guesses.

Examples:
  hangman play
  hangman play --tui
  hangman play --seed 42
  hangman play --color never`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Play full-screen instead of line by line")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, logger, corpus := mustSetup(cmd)

	// Refuse to start without a usable word
	candidates, err := words.Candidates(corpus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading word list: %v\n", err)
		os.Exit(1)
	}
	if len(candidates) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", words.ErrEmptyCorpus)
		fmt.Fprintln(os.Stderr, "Use --words to choose a list with 6 to 11 letter words.")
		os.Exit(1)
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	newGame := func() (*hangman.Game, error) {
		secret, err := words.Select(corpus, rng)
		if err != nil {
			return nil, err
		}
		logger.Debug("secret selected", "length", len(secret), "seed", seed)
		return hangman.New(secret)
	}

	// Open results storage (optional, game works without it)
	var store *storage.Store
	if cfg.Storage.Enabled {
		store, err = storage.Open(cfg.Storage.DB)
		if err != nil {
			logger.Warn("could not open results database", "db", cfg.Storage.DB, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	var game *hangman.Game
	if flagTUI {
		game, err = playTUI(newGame, cfg.Display.Color, logger)
	} else {
		game, err = playConsole(newGame, cfg.Display.Color, logger)
	}
	if err != nil && !errors.Is(err, console.ErrInputClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if game != nil && game.Status().Terminal() && store != nil {
		recordResult(store, game, logger)
	}
}

// playConsole runs the start menu and the game on stdin/stdout.
func playConsole(newGame func() (*hangman.Game, error), color string, logger *log.Logger) (*hangman.Game, error) {
	loop := console.New(os.Stdin, os.Stdout, console.Options{
		Palette: render.NewPalette(color, os.Stdout),
		Logger:  logger,
	})

	game, err := loop.Menu(newGame)
	if err != nil {
		return nil, err
	}
	_, err = loop.Play(game)
	return game, err
}

// playTUI starts a new game straight away in the full-screen frontend.
func playTUI(newGame func() (*hangman.Game, error), color string, logger *log.Logger) (*hangman.Game, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, errors.New("--tui needs a terminal")
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < render.BoardWidth || h < render.FigureHeight+20) {
		logger.Warn("terminal may be too small for the board", "width", w, "height", h)
	}

	game, err := newGame()
	if err != nil {
		return nil, err
	}
	_, err = tui.Run(game, tui.Options{
		Palette: render.NewPalette(color, os.Stdout),
		Logger:  logger,
	})
	return game, err
}

// recordResult stores a finished game. Failures are logged and otherwise ignored.
func recordResult(store *storage.Store, game *hangman.Game, logger *log.Logger) {
	snap := game.Snapshot()
	id, err := store.SaveResult(storage.Result{
		Word:         snap.Secret,
		Won:          snap.Status == hangman.Won,
		WrongGuesses: snap.Wrong,
		Guesses:      len(snap.Guesses),
	})
	if err != nil {
		logger.Warn("could not record result", "error", err)
		return
	}
	logger.Debug("result recorded", "id", id, "status", snap.Status)
}
