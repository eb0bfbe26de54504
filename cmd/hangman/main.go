// hangman is a single-player word guessing game for the terminal.
//
// Usage:
//
//	hangman play             - Play a game on the console
//	hangman play --tui       - Play a game full-screen
//	hangman words            - Show statistics for the word list
//	hangman scores           - Show results of past games
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.hangman, ./configs)
//	--seed <value>      - RNG seed for reproducible word selection
//	--db <path>         - Results database path (default: ~/.hangman/results.db)
//	--words <path>      - Word list file (default: built-in list)
//	--color <mode>      - auto, always or never
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/config"
	"github.com/vovakirdan/hangman/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagWords    string
	flagColor    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess the secret word before the figure is drawn",
	Long: `Hangman picks a secret word and lets you guess it one letter at a
time. Every wrong guess draws one more stroke of the figure; after ten
the game is lost.

Available commands:
  play     - Play a game
  words    - Show word list statistics
  scores   - View past results

Examples:
  hangman play
  hangman play --tui
  hangman play --words ./my-words.txt --seed 42
  hangman scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list (one word per line)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Color mode: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config file and applies any flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if flags.Changed("words") {
		cfg.Words.File = flagWords
	}
	if flags.Changed("color") {
		cfg.Display.Color = flagColor
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger for cfg.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangman",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openCorpus returns the configured word list, or the built-in one.
func openCorpus(cfg config.Config) (words.Corpus, error) {
	if cfg.Words.File == "" {
		return words.Default(), nil
	}
	return words.OpenCorpus(cfg.Words.File)
}

// mustSetup loads config, logger and corpus or exits.
func mustSetup(cmd *cobra.Command) (config.Config, *log.Logger, words.Corpus) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	corpus, err := openCorpus(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("corpus loaded", "file", cfg.Words.File, "lines", corpus.LineCount())
	return cfg, logger, corpus
}
