package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/hangman"
)

// IntroMessage announces a fresh or restored game.
func IntroMessage(g *hangman.Game) string {
	return fmt.Sprintf("The secret word has been defined. You have %d attempts to correctly guess the word.\nGood Luck!", g.Remaining())
}

// Apply plays a letter or word input against g. A rejected guess yields the
// message to show the player and a nil error; accepted guesses yield "".
// Save inputs are not guesses and are ignored here.
func Apply(g *hangman.Game, in hangman.Input, logger *log.Logger) (string, error) {
	logger = orDiscard(logger)
	switch in.Kind {
	case hangman.InputLetter:
		n, err := g.GuessLetter(in.Text)
		switch {
		case errors.Is(err, hangman.ErrDuplicateGuess):
			return fmt.Sprintf("You already guessed '%s'. Try again!", in.Text), nil
		case errors.Is(err, hangman.ErrInvalidInput):
			return "That wasn't a valid letter choice. Try again!", nil
		case err != nil:
			return "", err
		}
		logger.Debug("letter guessed", "letter", in.Text, "revealed", n, "wrong", g.WrongGuesses())

	case hangman.InputWord:
		ok, err := g.GuessWord(in.Text)
		switch {
		case errors.Is(err, hangman.ErrInvalidInput):
			return "That's not even a word. Try again!", nil
		case err != nil:
			return "", err
		}
		logger.Debug("word guessed", "word", in.Text, "correct", ok, "wrong", g.WrongGuesses())
	}
	return "", nil
}

// SaveMessage hands the current state to p and describes what happened.
func SaveMessage(p hangman.Persistence, g *hangman.Game, logger *log.Logger) string {
	if p == nil {
		p = hangman.NoPersistence{}
	}
	err := p.Save(g.Snapshot())
	switch {
	case err == nil:
		return "Game saved."
	case errors.Is(err, hangman.ErrPersistenceUnavailable):
		return "Saving is not available yet. Keep guessing!"
	default:
		orDiscard(logger).Error("save failed", "error", err)
		return fmt.Sprintf("Could not save the game: %v", err)
	}
}

// EndMessage announces the outcome of a finished game, or "" while it runs.
func EndMessage(g *hangman.Game) string {
	switch g.Status() {
	case hangman.Lost:
		return fmt.Sprintf("Sorry, you've been hung!! The secret word was '%s'", g.Secret())
	case hangman.Won:
		return "Congratulations, you found the word!!"
	}
	return ""
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
