package hangman

import "fmt"

// AlphabetSize is the number of letters tracked by Letters.
const AlphabetSize = 26

// LetterState is the guess status of one alphabet letter.
type LetterState int

const (
	Unguessed LetterState = iota
	Correct
	Incorrect
)

// String returns a human-readable name for the state.
func (s LetterState) String() string {
	switch s {
	case Unguessed:
		return "unguessed"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// LetterStatus pairs a letter with its state for display.
type LetterStatus struct {
	Letter rune
	State  LetterState
}

// Letters tracks the guess status of 'a'..'z'.
// Each letter transitions at most once, from Unguessed to Correct or Incorrect.
type Letters struct {
	states [AlphabetSize]LetterState
}

// NewLetters returns a tracker with every letter unguessed.
func NewLetters() *Letters {
	return &Letters{}
}

// IsLetter reports whether r is a lower-case ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// Mark records the outcome of guessing letter.
// Returns ErrDuplicateGuess if the letter already has a state.
func (l *Letters) Mark(letter rune, correct bool) error {
	if !IsLetter(letter) {
		return fmt.Errorf("%w: %q is not a letter", ErrInvalidInput, letter)
	}

	idx := letter - 'a'
	if l.states[idx] != Unguessed {
		return fmt.Errorf("%w: %q", ErrDuplicateGuess, letter)
	}

	if correct {
		l.states[idx] = Correct
	} else {
		l.states[idx] = Incorrect
	}
	return nil
}

// State returns the state of a single letter.
// Non-letters are always Unguessed.
func (l *Letters) State(letter rune) LetterState {
	if !IsLetter(letter) {
		return Unguessed
	}
	return l.states[letter-'a']
}

// Guessed reports whether the letter has been guessed already.
func (l *Letters) Guessed(letter rune) bool {
	return l.State(letter) != Unguessed
}

// All returns the 26 letters in alphabetical order with their states.
func (l *Letters) All() []LetterStatus {
	result := make([]LetterStatus, AlphabetSize)
	for i := range AlphabetSize {
		result[i] = LetterStatus{
			Letter: rune('a' + i),
			State:  l.states[i],
		}
	}
	return result
}
