// Package words supplies secret words. A Corpus is any line-addressable
// list of candidates; Select draws one word of acceptable length from it.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//go:embed default_words.txt
var defaultWords string

// Corpus is a line-delimited source of candidate words.
type Corpus interface {
	// LineCount returns the total number of lines.
	LineCount() int

	// Line returns the raw line at position i (0-based).
	Line(i int) (string, error)
}

// Lines is an in-memory Corpus.
type Lines []string

// LineCount returns the number of lines.
func (l Lines) LineCount() int {
	return len(l)
}

// Line returns the line at position i.
func (l Lines) Line(i int) (string, error) {
	if i < 0 || i >= len(l) {
		return "", fmt.Errorf("words: line %d out of range [0, %d)", i, len(l))
	}
	return l[i], nil
}

// Default returns the embedded word list.
func Default() Lines {
	lines, _ := ReadCorpus(strings.NewReader(defaultWords))
	return lines
}

// ReadCorpus reads every line of r into memory.
func ReadCorpus(r io.Reader) (Lines, error) {
	var lines Lines
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: cannot read corpus: %w", err)
	}
	return lines, nil
}

// OpenCorpus loads a word list file. A leading ~ is expanded to the home
// directory.
func OpenCorpus(path string) (Lines, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("words: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open corpus %s: %w", path, err)
	}
	defer f.Close()

	return ReadCorpus(f)
}

var _ Corpus = Lines(nil)
