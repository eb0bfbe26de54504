package hangman

import "errors"

var (
	// ErrInvalidInput reports a malformed guess: a letter guess that is not a
	// single a-z character, an empty word guess, or a word with non-letters.
	// Duplicate letter guesses returned by Game also match it.
	ErrInvalidInput = errors.New("hangman: invalid input")

	// ErrDuplicateGuess reports a letter that was already guessed this game.
	ErrDuplicateGuess = errors.New("hangman: letter already guessed")

	// ErrGameOver reports a guess submitted after the game was won or lost.
	ErrGameOver = errors.New("hangman: game is over")

	// ErrPersistenceUnavailable is returned by NoPersistence.
	ErrPersistenceUnavailable = errors.New("hangman: save and load are not available")
)
