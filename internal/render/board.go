package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/hangman"
)

// BoardWidth is the width of the framed board.
const BoardWidth = FigureWidth

// View is everything the board shows. It is built from a snapshot and never
// refers back to the game.
type View struct {
	Revealed []rune
	Wrong    int
	Max      int
	Figure   *core.Grid
	Letters  []hangman.LetterStatus
}

// ViewOf builds a View from a game snapshot, drawing the figure for its
// wrong-guess count.
func ViewOf(s hangman.Snapshot) View {
	return View{
		Revealed: s.Revealed,
		Wrong:    s.Wrong,
		Max:      s.Max,
		Figure:   Figure(s.Wrong),
		Letters:  s.Letters,
	}
}

// Board renders views as text.
type Board struct {
	palette Palette
}

// NewBoard creates a board renderer. A nil palette means PlainPalette.
func NewBoard(p Palette) *Board {
	if p == nil {
		p = PlainPalette{}
	}
	return &Board{palette: p}
}

// Render returns the framed board followed by the letter legend.
func (b *Board) Render(v View) string {
	var sb strings.Builder
	sb.WriteString(b.Frame(v))
	sb.WriteString("\n")
	sb.WriteString(b.Legend(v.Letters))
	return sb.String()
}

// Frame renders the word row, the figure and the guesses-left row.
func (b *Board) Frame(v View) string {
	border := strings.Repeat("=", BoardWidth)

	var sb strings.Builder
	sb.WriteString(border + "\n")
	sb.WriteString(WordRow(v.Revealed) + "\n")
	sb.WriteString(border + "\n")

	if v.Figure != nil {
		for _, line := range v.Figure.Lines() {
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString(border + "\n")
	sb.WriteString(boxed(fmt.Sprintf(" Guesses left: %d", v.Max-v.Wrong)) + "\n")
	sb.WriteString(border + "\n")
	return sb.String()
}

// Legend renders the color legend and the 26 letters in alphabetical order.
func (b *Board) Legend(letters []hangman.LetterStatus) string {
	var sb strings.Builder
	sb.WriteString("Letter choices:\n")
	for _, line := range b.palette.Legend() {
		sb.WriteString("  • " + line + "\n")
	}
	sb.WriteString("\n")

	parts := make([]string, len(letters))
	for i, ls := range letters {
		parts[i] = b.palette.Paint(ls.State, string(ls.Letter))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("\n")
	return sb.String()
}

// WordRow centers the space-separated reveal slots inside the frame.
// Words too long for the frame push the right border out rather than being cut.
func WordRow(revealed []rune) string {
	word := spaced(revealed)
	inner := BoardWidth - 2
	pad := max(0, inner-len([]rune(word)))
	left := pad / 2
	return "|" + strings.Repeat(" ", left) + word + strings.Repeat(" ", pad-left) + "|"
}

// spaced joins slots with single spaces.
func spaced(revealed []rune) string {
	parts := make([]string, len(revealed))
	for i, r := range revealed {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// boxed left-aligns text between the frame borders.
func boxed(text string) string {
	pad := max(0, BoardWidth-2-len([]rune(text)))
	return "|" + text + strings.Repeat(" ", pad) + "|"
}
