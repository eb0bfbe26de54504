// Package core provides the small value types shared by the game logic and
// its renderers. It has no external dependencies so the logic stays pure and
// testable.
package core

import (
	"strings"
)

// Grid is a fixed-size 2D character buffer.
// Renderers place runes at (col, row) coordinates and the platform prints
// the rows; nothing in a Grid knows about terminals or colors.
type Grid struct {
	width  int
	height int
	cells  [][]rune
}

// NewGrid creates a grid of the given dimensions filled with spaces.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
	}
	g.cells = make([][]rune, height)
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
	}
	g.Clear()
	return g
}

// Width returns the grid width in characters.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in characters.
func (g *Grid) Height() int {
	return g.height
}

// Clear fills the entire grid with spaces.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = r
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (g *Grid) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		g.Set(x, y+i, r)
	}
}

// Row returns a copy of the specified row as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return strings.Repeat(" ", g.width)
	}
	return string(g.cells[y])
}

// Lines returns every row in order.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = g.Row(y)
	}
	return lines
}
