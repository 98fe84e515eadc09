/*
Package maze provides tools for creating and validating square grid mazes.

A maze is a `Grid` of cells that are either `Wall` or `Open`. Mazes are carved
with a randomized depth-first backtracker that moves two cells at a time, so
open cells sit on even coordinates joined by open connectors. Every carved
maze is checked with a breadth-first search before it is handed out, and the
`Generator` retries a bounded number of times when the goal is not reachable.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// CellState is the state of a single grid cell.
type CellState uint8

const (
	Wall CellState = iota // Wall is impassable.
	Open                  // Open is passable.
)

var (
	ErrInvalidSize = errors.New("maze size must be a positive integer")
	ErrOutOfBounds = errors.New("position is out of the maze")
)

// String returns the lower-case name of the state.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Position is a 0-indexed cell coordinate. X is the column and Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a square matrix of cells indexed as cells[y][x].
type Grid struct {
	size  int
	cells [][]CellState
}

// New allocates a size x size grid with every cell set to Wall.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]CellState, size)
	for y := range cells {
		cells[y] = make([]CellState, size)
	}

	g := &Grid{size: size, cells: cells}
	g.Reset()
	return g, nil
}

// InBounds reports whether (x, y) lies inside a grid of the given size.
func InBounds(x, y, size int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) lies inside g.
func (g *Grid) InBounds(x, y int) bool {
	return InBounds(x, y, g.size)
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Wall, fmt.Errorf("get (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return g.cells[y][x], nil
}

// Set changes the state of the cell at (x, y).
func (g *Grid) Set(x, y int, state CellState) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.cells[y][x] = state
	return nil
}

// IsOpen reports whether (x, y) is inside the grid and Open.
func (g *Grid) IsOpen(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Open
}

// Reset turns every cell back into a Wall.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Wall
		}
	}
}

// Rows returns a copy of the cells, row by row.
func (g *Grid) Rows() [][]CellState {
	rows := make([][]CellState, g.size)
	for y := range g.cells {
		rows[y] = make([]CellState, g.size)
		copy(rows[y], g.cells[y])
	}
	return rows
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: g.Rows()}
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("-", g.size) + "+\n")

	for _, row := range g.cells {
		output.WriteByte('|')
		for _, cell := range row {
			if cell == Open {
				output.WriteByte(' ')
			} else {
				output.WriteByte('#')
			}
		}
		output.WriteString("|\n")
	}

	// Bottom boundary
	output.WriteString("+" + strings.Repeat("-", g.size) + "+\n")
	return output.String()
}
