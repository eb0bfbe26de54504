// Package tui provides the Bubble Tea frontend for hangman.
// It shows the same board as the console frontend and reads guesses from a
// single-line text input.
package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangman/internal/console"
	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/hangman"
	"github.com/vovakirdan/hangman/internal/render"
)

// Options configures the model. Zero values select the plain palette,
// no persistence and a discarding logger.
type Options struct {
	Palette     render.Palette
	Persistence hangman.Persistence
	Logger      *log.Logger
}

// Model is the Bubble Tea model for one hangman game.
type Model struct {
	game     *hangman.Game
	board    *render.Board
	input    textinput.Model
	persist  hangman.Persistence
	logger   *log.Logger
	keys     *KeyMapper
	message  string
	err      error
	quitting bool
}

// NewModel creates a model playing g.
func NewModel(g *hangman.Game, opts Options) Model {
	if opts.Persistence == nil {
		opts.Persistence = hangman.NoPersistence{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "letter, word, or nothing to save"
	ti.Prompt = "> "
	ti.CharLimit = 32
	ti.Width = render.BoardWidth
	ti.Focus()

	return Model{
		game:    g,
		board:   render.NewBoard(opts.Palette),
		input:   ti,
		persist: opts.Persistence,
		logger:  opts.Logger,
		keys:    NewKeyMapper(),
		message: console.IntroMessage(g),
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.keys.MapKey(key) {
		case KeyQuit:
			m.quitting = true
			return m, tea.Quit
		case KeySubmit:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit plays the typed line. Enter on a finished game leaves.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.game.Status().Terminal() {
		return m, tea.Quit
	}

	in := hangman.ParseInput(m.input.Value())
	m.input.Reset()

	if in.Kind == hangman.InputSave {
		m.message = console.SaveMessage(m.persist, m.game, m.logger)
		return m, nil
	}

	msg, err := console.Apply(m.game, in, m.logger)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.message = msg

	if m.game.Status().Terminal() {
		m.message = console.EndMessage(m.game)
		m.input.Blur()
		m.logger.Info("game finished", "status", m.game.Status(), "wrong", m.game.WrongGuesses())
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := render.ViewOf(m.game.Snapshot())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("*** Hangman ***"))
	sb.WriteString("\n")
	sb.WriteString(m.board.Render(view))
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(styled(messageColor(m.game.Status()), m.message))
		sb.WriteString("\n\n")
	}

	if m.game.Status().Terminal() {
		sb.WriteString(styled(core.ColorGray, "enter: exit"))
	} else {
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")
		sb.WriteString(styled(core.ColorGray, "enter: guess • empty enter: save • esc: quit"))
	}
	return sb.String()
}

// Run starts the Bubble Tea program for g and returns the final status.
func Run(g *hangman.Game, opts Options) (hangman.Status, error) {
	p := tea.NewProgram(
		NewModel(g, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return g.Status(), err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return g.Status(), m.err
	}
	return g.Status(), nil
}
