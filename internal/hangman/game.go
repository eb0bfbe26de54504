// Package hangman implements the word-guessing state machine: letter
// tracking, reveal tracking, wrong-guess counting and win/loss detection.
// It holds no I/O; frontends drive it and render its Snapshot.
package hangman

import (
	"fmt"
	"strings"
)

// MaxWrongGuesses is the number of wrong guesses that loses the game.
// It matches the number of strokes in the hanged figure.
const MaxWrongGuesses = 10

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Game is a single hangman session for one secret word.
// It owns its Letters and Reveal trackers; callers only see Snapshots.
type Game struct {
	secret  string
	letters *Letters
	reveal  *Reveal
	wrong   int
	status  Status
	guesses []Input
}

// New starts a game for secret. The secret is lower-cased and must be a
// non-empty run of a-z letters.
func New(secret string) (*Game, error) {
	secret = strings.ToLower(secret)
	if !isWord(secret) {
		return nil, fmt.Errorf("%w: secret word %q must contain only letters a-z", ErrInvalidInput, secret)
	}

	return &Game{
		secret:  secret,
		letters: NewLetters(),
		reveal:  NewReveal(secret),
		status:  InProgress,
	}, nil
}

// GuessLetter applies a single-letter guess.
// Returns the number of slots revealed; zero means the guess was wrong and
// counted against the player.
func (g *Game) GuessLetter(s string) (int, error) {
	if g.status.Terminal() {
		return 0, ErrGameOver
	}

	s = strings.ToLower(s)
	runes := []rune(s)
	if len(runes) != 1 || !IsLetter(runes[0]) {
		return 0, fmt.Errorf("%w: %q is not a single letter", ErrInvalidInput, s)
	}
	letter := runes[0]

	if g.letters.Guessed(letter) {
		return 0, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrDuplicateGuess, s)
	}

	revealed := g.reveal.RevealAll(letter)
	if err := g.letters.Mark(letter, revealed > 0); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	g.guesses = append(g.guesses, Input{Kind: InputLetter, Text: s})

	if revealed > 0 {
		if g.reveal.IsFullyRevealed() {
			g.status = Won
		}
		return revealed, nil
	}

	g.miss()
	return 0, nil
}

// GuessWord applies a whole-word guess. A match wins immediately without
// revealing individual letters; anything else counts as one wrong guess.
func (g *Game) GuessWord(s string) (bool, error) {
	if g.status.Terminal() {
		return false, ErrGameOver
	}

	s = strings.ToLower(s)
	if !isWord(s) {
		return false, fmt.Errorf("%w: %q is not a word", ErrInvalidInput, s)
	}
	g.guesses = append(g.guesses, Input{Kind: InputWord, Text: s})

	if s == g.secret {
		g.status = Won
		return true, nil
	}

	g.miss()
	return false, nil
}

// miss counts one wrong guess and ends the game at the limit.
func (g *Game) miss() {
	g.wrong++
	if g.wrong >= MaxWrongGuesses {
		g.status = Lost
	}
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// WrongGuesses returns the number of wrong guesses so far.
func (g *Game) WrongGuesses() int {
	return g.wrong
}

// Remaining returns how many wrong guesses the player can still afford.
func (g *Game) Remaining() int {
	return MaxWrongGuesses - g.wrong
}

// Secret returns the secret word.
func (g *Game) Secret() string {
	return g.secret
}

// Snapshot captures the game state for rendering and persistence.
type Snapshot struct {
	Secret   string
	Revealed []rune
	Letters  []LetterStatus
	Wrong    int
	Max      int
	Status   Status
	Guesses  []Input // Accepted guesses in order, with the kind each was played as
}

// Snapshot returns an immutable copy of the current state.
func (g *Game) Snapshot() Snapshot {
	guesses := make([]Input, len(g.guesses))
	copy(guesses, g.guesses)

	return Snapshot{
		Secret:   g.secret,
		Revealed: g.reveal.Snapshot(),
		Letters:  g.letters.All(),
		Wrong:    g.wrong,
		Max:      MaxWrongGuesses,
		Status:   g.status,
		Guesses:  guesses,
	}
}

// Remaining returns how many wrong guesses were left when the snapshot was taken.
func (s Snapshot) Remaining() int {
	return s.Max - s.Wrong
}

// Restore rebuilds a game from a snapshot by replaying its guesses.
// The replayed state must agree with the snapshot.
func Restore(s Snapshot) (*Game, error) {
	g, err := New(s.Secret)
	if err != nil {
		return nil, err
	}

	for _, guess := range s.Guesses {
		switch guess.Kind {
		case InputLetter:
			_, err = g.GuessLetter(guess.Text)
		case InputWord:
			_, err = g.GuessWord(guess.Text)
		default:
			err = fmt.Errorf("%w: kind %d is not a guess", ErrInvalidInput, guess.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("hangman: cannot replay guess %q: %w", guess.Text, err)
		}
	}

	if g.wrong != s.Wrong || g.status != s.Status {
		return nil, fmt.Errorf("hangman: snapshot disagrees with replay (wrong %d/%d, status %s/%s)",
			s.Wrong, g.wrong, s.Status, g.status)
	}
	return g, nil
}

// isWord reports whether s is a non-empty run of a-z letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsLetter(r) {
			return false
		}
	}
	return true
}
