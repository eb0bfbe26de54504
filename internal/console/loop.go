// Package console runs a hangman game over line-buffered text streams.
// It is the plain frontend: one line of input per turn, the board printed
// after every turn.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/hangman"
	"github.com/vovakirdan/hangman/internal/render"
)

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("console: input closed")

// Options configures a Loop. Zero values select plain output, no
// persistence and a discarding logger.
type Options struct {
	Palette     render.Palette
	Persistence hangman.Persistence
	Logger      *log.Logger
}

// Loop drives one player through menus and turns.
type Loop struct {
	in      *bufio.Scanner
	out     io.Writer
	board   *render.Board
	persist hangman.Persistence
	logger  *log.Logger
}

// New creates a loop reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts Options) *Loop {
	if opts.Persistence == nil {
		opts.Persistence = hangman.NoPersistence{}
	}
	return &Loop{
		in:      bufio.NewScanner(in),
		out:     out,
		board:   render.NewBoard(opts.Palette),
		persist: opts.Persistence,
		logger:  orDiscard(opts.Logger),
	}
}

// Menu shows the start menu until the player starts or loads a game.
// newGame is called for option 1; option 2 goes through Persistence.
func (l *Loop) Menu(newGame func() (*hangman.Game, error)) (*hangman.Game, error) {
	l.printf("          *** Welcome to Hangman ***          \n\n")

	for {
		l.printf("Please select an option by entering an appropriate number:\n" +
			"1 - Start a new game\n2 - Load an existing game\n")

		line, err := l.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.TrimSpace(line) {
		case "1":
			return newGame()
		case "2":
			g, err := l.load()
			if err == nil {
				return g, nil
			}
			if !errors.Is(err, hangman.ErrPersistenceUnavailable) {
				l.logger.Error("load failed", "error", err)
			}
			l.printf("Sorry, there is no saved game to load.\n\n")
		default:
			l.printf("Sorry, I didn't quite catch that...\n\n")
		}
	}
}

// load restores a game from Persistence.
func (l *Loop) load() (*hangman.Game, error) {
	snap, err := l.persist.Load()
	if err != nil {
		return nil, err
	}
	return hangman.Restore(snap)
}

// Play runs turns until g is won or lost and returns the final status.
func (l *Loop) Play(g *hangman.Game) (hangman.Status, error) {
	l.printf("%s\n\n", IntroMessage(g))

	for !g.Status().Terminal() {
		view := render.ViewOf(g.Snapshot())
		l.printf("%s\n%s\n\n", l.board.Frame(view), l.board.Legend(view.Letters))
		l.printf("Please enter a letter, guess the word or enter nothing to save the game:\n")

		line, err := l.readLine()
		if err != nil {
			return g.Status(), err
		}
		in := hangman.ParseInput(line)
		if in.Kind == hangman.InputSave {
			l.printf("%s\n\n", SaveMessage(l.persist, g, l.logger))
			continue
		}

		msg, err := Apply(g, in, l.logger)
		if err != nil {
			return g.Status(), err
		}
		if msg != "" {
			l.printf("%s\n\n", msg)
		}
	}

	l.printf("%s\n%s\n", l.board.Frame(render.ViewOf(g.Snapshot())), EndMessage(g))
	return g.Status(), nil
}

// readLine returns the next input line or ErrInputClosed.
func (l *Loop) readLine() (string, error) {
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", fmt.Errorf("console: cannot read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return l.in.Text(), nil
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}
