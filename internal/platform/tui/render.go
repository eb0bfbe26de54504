package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/hangman"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorRed.ANSI())),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGreen.ANSI())),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.ANSI())),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.ANSI())),
}

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// styled renders text in the given color, falling back to no styling.
func styled(c core.Color, text string) string {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style.Render(text)
}

// messageColor picks the color for the line under the board: the outcome
// color once the game is over, yellow for rejected guesses.
func messageColor(status hangman.Status) core.Color {
	switch status {
	case hangman.Won:
		return core.ColorGreen
	case hangman.Lost:
		return core.ColorRed
	}
	return core.ColorYellow
}
