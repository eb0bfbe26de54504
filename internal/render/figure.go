// Package render turns game snapshots into text: the hanged figure, the
// framed board and the letter legend. Nothing here mutates game state.
package render

import (
	"github.com/vovakirdan/hangman/internal/core"
	"github.com/vovakirdan/hangman/internal/hangman"
)

// Figure dimensions, borders included.
const (
	FigureWidth  = 32
	FigureHeight = 7
)

// Placement is one character of a stroke at a fixed grid position.
type Placement struct {
	Row  int
	Col  int
	Char rune
}

// Stroke is the set of placements unlocked by one wrong guess.
type Stroke []Placement

// strokes is indexed by wrong-guess count minus one.
// Placements never overlap, so every count draws a superset of the last.
var strokes = [hangman.MaxWrongGuesses]Stroke{
	// 1: post
	{{2, 14, '|'}, {3, 14, '|'}, {4, 14, '|'}, {5, 14, '|'}},
	// 2: beam
	{{1, 14, '_'}, {1, 15, '_'}, {1, 16, '_'}, {1, 17, '_'}, {1, 18, '_'}, {1, 19, '_'}},
	// 3: brace
	{{2, 16, '/'}, {3, 15, '/'}},
	// 4: rope
	{{2, 19, '|'}},
	// 5: head
	{{3, 19, 'O'}},
	// 6: torso
	{{4, 19, '|'}},
	// 7: left arm
	{{4, 17, '\''}, {4, 18, '-'}},
	// 8: right arm
	{{4, 20, '-'}, {4, 21, '\''}},
	// 9: left leg
	{{5, 18, '/'}},
	// 10: right leg
	{{5, 20, '\\'}},
}

// Strokes returns the strokes unlocked by wrong guesses, in order.
func Strokes() []Stroke {
	out := make([]Stroke, len(strokes))
	copy(out, strokes[:])
	return out
}

// Figure draws the hanged figure for the given wrong-guess count.
// Counts outside [0, MaxWrongGuesses] are clamped.
func Figure(wrong int) *core.Grid {
	wrong = max(0, min(wrong, len(strokes)))

	g := core.NewGrid(FigureWidth, FigureHeight)
	g.DrawVLine(0, 0, FigureHeight, '|')
	g.DrawVLine(FigureWidth-1, 0, FigureHeight, '|')

	for _, stroke := range strokes[:wrong] {
		for _, p := range stroke {
			g.Set(p.Col, p.Row, p.Char)
		}
	}
	return g
}
