package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// Cell is the content of one board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellYellowPellet
	CellPinkPellet
)

// IsPellet reports whether the cell holds a pellet of either color.
func (c Cell) IsPellet() bool {
	return c == CellYellowPellet || c == CellPinkPellet
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellYellowPellet:
		return "yellow pellet"
	case CellPinkPellet:
		return "pink pellet"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size board. Its dimensions never change after creation.
type Grid struct {
	cols  int
	rows  int
	cells []Cell // row-major
}

// NewGrid creates a grid from row-major cells. The slice is copied.
func NewGrid(cols, rows int, cells []Cell) *Grid {
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	copy(g.cells, cells)
	return g
}

// GridFromLevel builds an all-empty board with the level's walls.
func GridFromLevel(lvl levels.Level) *Grid {
	cells := make([]Cell, lvl.Cols*lvl.Rows)
	for y := 0; y < lvl.Rows; y++ {
		for x := 0; x < lvl.Cols; x++ {
			if lvl.IsWall(x, y) {
				cells[y*lvl.Cols+x] = CellWall
			}
		}
	}
	return NewGrid(lvl.Cols, lvl.Rows, cells)
}

// Cols returns the board width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the board height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// At returns the cell at p. Out-of-bounds points read as walls, so movers
// can never step off the board even on a level without a border.
func (g *Grid) At(p core.Point) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Y*g.cols+p.X]
}

// IsWall reports whether p is blocked.
func (g *Grid) IsWall(p core.Point) bool {
	return g.At(p) == CellWall
}

func (g *Grid) set(p core.Point, c Cell) {
	if g.InBounds(p) {
		g.cells[p.Y*g.cols+p.X] = c
	}
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// OpenCells returns every non-wall point in row-major order.
func (g *Grid) OpenCells() []core.Point {
	var out []core.Point
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y*g.cols+x] != CellWall {
				out = append(out, core.Pt(x, y))
			}
		}
	}
	return out
}
