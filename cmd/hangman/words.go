package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangman/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	Long: `Count the lines of the word list and the words usable as secrets
(6 to 11 letters, a-z only), broken down by length.

Examples:
  hangman words
  hangman words --words ./my-words.txt`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func runWords(cmd *cobra.Command, args []string) {
	cfg, _, corpus := mustSetup(cmd)

	stats, err := words.Summarize(corpus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading word list: %v\n", err)
		os.Exit(1)
	}

	source := cfg.Words.File
	if source == "" {
		source = "built-in"
	}

	fmt.Printf("Word list: %s\n", source)
	fmt.Println()
	fmt.Printf("  Lines:      %d\n", stats.Lines)
	fmt.Printf("  Candidates: %d\n", stats.Candidates)
	fmt.Println()

	if stats.Candidates == 0 {
		fmt.Println("No usable words. Secrets need 6 to 11 letters a-z.")
		return
	}

	// Print histogram
	fmt.Printf("  %-6s  %-5s\n", "Length", "Words")
	fmt.Printf("  %-6s  %-5s\n", "------", "-----")
	for n := words.MinLength; n <= words.MaxLength; n++ {
		fmt.Printf("  %-6d  %-5d\n", n, stats.ByLength[n])
	}
}
