package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/hangman"
)

// Palette decorates text according to a letter state.
// Frontends choose one; tests use PlainPalette to capture plain text.
type Palette interface {
	// Paint returns text decorated for state.
	Paint(state hangman.LetterState, text string) string

	// Legend returns the lines explaining the decoration.
	Legend() []string
}

// StateColor maps a letter state to its display color.
func StateColor(state hangman.LetterState) core.Color {
	switch state {
	case hangman.Correct:
		return core.ColorGreen
	case hangman.Incorrect:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// PlainPalette marks letters with '+' (correct) and '-' (incorrect).
type PlainPalette struct{}

// Paint prefixes text with the state's marker.
func (PlainPalette) Paint(state hangman.LetterState, text string) string {
	switch state {
	case hangman.Correct:
		return "+" + text
	case hangman.Incorrect:
		return "-" + text
	default:
		return text
	}
}

// Legend explains the markers.
func (PlainPalette) Legend() []string {
	return []string{
		"Plain letters are still available",
		"+letters - correct guess",
		"-letters - incorrect guess",
	}
}

// LipglossPalette colors letters with lipgloss styles.
type LipglossPalette struct {
	styles map[hangman.LetterState]lipgloss.Style
}

// NewLipglossPalette builds a palette on the given renderer.
// A nil renderer uses lipgloss's default renderer.
func NewLipglossPalette(r *lipgloss.Renderer) *LipglossPalette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[hangman.LetterState]lipgloss.Style)
	for _, state := range []hangman.LetterState{hangman.Unguessed, hangman.Correct, hangman.Incorrect} {
		style := r.NewStyle()
		if c := StateColor(state).ANSI(); c != "" {
			style = style.Foreground(lipgloss.Color(c))
		}
		styles[state] = style
	}
	return &LipglossPalette{styles: styles}
}

// Paint renders text in the state's color.
func (p *LipglossPalette) Paint(state hangman.LetterState, text string) string {
	style, ok := p.styles[state]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Legend names the colors, each word painted in its own color.
func (p *LipglossPalette) Legend() []string {
	return []string{
		"White letters are still available",
		p.Paint(hangman.Correct, "Green") + " letters - correct guess",
		p.Paint(hangman.Incorrect, "Red") + " letters - incorrect guess",
	}
}

// Color modes accepted by NewPalette.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NewPalette picks a palette for out.
// "auto" colors only when out is a terminal.
func NewPalette(mode string, out io.Writer) Palette {
	switch mode {
	case ColorNever:
		return PlainPalette{}
	case ColorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI)
		return NewLipglossPalette(r)
	default:
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return PlainPalette{}
		}
		return NewLipglossPalette(lipgloss.NewRenderer(out))
	}
}

var (
	_ Palette = PlainPalette{}
	_ Palette = (*LipglossPalette)(nil)
)
