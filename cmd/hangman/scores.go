package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show results of past games",
	Long: `Display overall statistics and the 10 most recent games.

Examples:
  hangman scores
  hangman scores --db ./results.db
  hangman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open results storage
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Println("All recorded games deleted.")
		return
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	results, err := store.RecentResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Println("Hangman Results")
	fmt.Println()

	if stats.Played == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' to record the first one!")
		return
	}

	fmt.Printf("  Played:   %d\n", stats.Played)
	fmt.Printf("  Won:      %d (%.0f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Printf("  Lost:     %d\n", stats.Losses)
	if stats.BestWin >= 0 {
		fmt.Printf("  Best win: %d wrong guesses\n", stats.BestWin)
	}
	fmt.Println()

	// Print header
	fmt.Printf("  %-11s  %-6s  %-5s  %s\n", "Word", "Result", "Wrong", "Date")
	fmt.Printf("  %-11s  %-6s  %-5s  %s\n", "----", "------", "-----", "----")

	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-11s  %-6s  %-5d  %s\n", r.Word, outcome, r.WrongGuesses, dateStr)
	}
}
