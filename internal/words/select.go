package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Secret words are strictly longer than 5 and strictly shorter than 12
// characters.
const (
	MinLength = 6
	MaxLength = 11
)

// ErrEmptyCorpus is returned when a corpus holds no usable word.
var ErrEmptyCorpus = errors.New("words: corpus has no usable words")

// Normalize trims and lower-cases a corpus line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// Usable reports whether a normalized word can be a secret: MinLength to
// MaxLength letters, a-z only.
func Usable(word string) bool {
	if len(word) < MinLength || len(word) > MaxLength {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Candidates returns every usable word of c, normalized, in corpus order.
func Candidates(c Corpus) ([]string, error) {
	var out []string
	for i := range c.LineCount() {
		line, err := c.Line(i)
		if err != nil {
			return nil, err
		}
		if w := Normalize(line); Usable(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Select draws a secret word uniformly from the usable candidates of c.
// A nil rng uses the package-level source.
// Returns ErrEmptyCorpus when there are none.
func Select(c Corpus, rng *rand.Rand) (string, error) {
	candidates, err := Candidates(c)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w (%d lines scanned)", ErrEmptyCorpus, c.LineCount())
	}
	if rng == nil {
		return candidates[rand.Intn(len(candidates))], nil
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// Stats summarizes a corpus.
type Stats struct {
	Lines      int
	Candidates int
	ByLength   map[int]int
}

// Summarize counts lines, usable candidates, and candidates per length.
func Summarize(c Corpus) (Stats, error) {
	candidates, err := Candidates(c)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Lines:      c.LineCount(),
		Candidates: len(candidates),
		ByLength:   make(map[int]int),
	}
	for _, w := range candidates {
		stats.ByLength[len(w)]++
	}
	return stats, nil
}
