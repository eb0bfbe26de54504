package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hangman/internal/hangman"
)

func figureText(wrong int) string {
	return strings.Join(Figure(wrong).Lines(), "\n")
}

func TestFigureDimensions(t *testing.T) {
	for n := 0; n <= hangman.MaxWrongGuesses; n++ {
		g := Figure(n)
		if g.Width() != FigureWidth || g.Height() != FigureHeight {
			t.Fatalf("Figure(%d) is %dx%d, expected %dx%d", n, g.Width(), g.Height(), FigureWidth, FigureHeight)
		}
		for y := 0; y < g.Height(); y++ {
			row := g.Row(y)
			if row[0] != '|' || row[FigureWidth-1] != '|' {
				t.Errorf("Figure(%d) row %d is missing its border: %q", n, y, g.Row(y))
			}
		}
	}
}

func TestFigureEmptyAtZero(t *testing.T) {
	g := Figure(0)
	for y := 0; y < g.Height(); y++ {
		inner := g.Row(y)[1 : FigureWidth-1]
		if strings.TrimSpace(inner) != "" {
			t.Errorf("Figure(0) row %d should be blank, got %q", y, g.Row(y))
		}
	}
}

// Each count keeps every character of the previous one and adds at least one.
func TestFigureMonotone(t *testing.T) {
	for n := 1; n <= hangman.MaxWrongGuesses; n++ {
		prev, cur := Figure(n-1), Figure(n)
		added := 0

		for y := 0; y < FigureHeight; y++ {
			prevRow, curRow := prev.Row(y), cur.Row(y)
			for x := 0; x < FigureWidth; x++ {
				p, c := prevRow[x], curRow[x]
				if p != ' ' && p != c {
					t.Errorf("Figure(%d) changed (%d, %d) from %q to %q", n, x, y, p, c)
				}
				if p == ' ' && c != ' ' {
					added++
				}
			}
		}
		if added == 0 {
			t.Errorf("Figure(%d) adds nothing over Figure(%d)", n, n-1)
		}
	}
}

func TestFigureDeterministic(t *testing.T) {
	for n := 0; n <= hangman.MaxWrongGuesses; n++ {
		if figureText(n) != figureText(n) {
			t.Errorf("Figure(%d) is not deterministic", n)
		}
	}
}

func TestFigureClamp(t *testing.T) {
	if figureText(-3) != figureText(0) {
		t.Error("negative counts should draw the empty figure")
	}
	if figureText(99) != figureText(hangman.MaxWrongGuesses) {
		t.Error("counts above the max should draw the full figure")
	}
}

func TestStrokesDoNotOverlap(t *testing.T) {
	type cell struct{ row, col int }
	seen := make(map[cell]int)

	for i, stroke := range Strokes() {
		if len(stroke) == 0 {
			t.Errorf("stroke %d is empty", i+1)
		}
		for _, p := range stroke {
			if p.Row <= 0 || p.Row >= FigureHeight-1 || p.Col <= 0 || p.Col >= FigureWidth-1 {
				t.Errorf("stroke %d places %q on or outside the border at (%d, %d)", i+1, p.Char, p.Row, p.Col)
			}
			if p.Char == ' ' {
				t.Errorf("stroke %d places a blank at (%d, %d)", i+1, p.Row, p.Col)
			}
			c := cell{p.Row, p.Col}
			if prev, ok := seen[c]; ok {
				t.Errorf("strokes %d and %d both draw at (%d, %d)", prev, i+1, p.Row, p.Col)
			}
			seen[c] = i + 1
		}
	}
}

func TestFigureFull(t *testing.T) {
	want := []string{
		"|                              |",
		"|             ______           |",
		"|             | /  |           |",
		"|             |/   O           |",
		"|             |  '-|-'         |",
		"|             |   / \\          |",
		"|                              |",
	}
	got := Figure(hangman.MaxWrongGuesses).Lines()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, expected %q", i, got[i], want[i])
		}
	}
}
