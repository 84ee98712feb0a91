// Package levels loads and validates Pacman board layouts.
//
// Two on-disk formats are understood. The native text format starts with a
// header line "cols rows startX startY bonusProbability" followed by rows of
// space-separated 0 (open) / 1 (wall) values. The YAML format describes the
// same data with a character layout. Built-in levels are embedded in the binary.
package levels

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Level is a parsed board layout. Walls are stored row-major.
type Level struct {
	ID               string
	Name             string
	Cols             int
	Rows             int
	Start            core.Point
	BonusProbability float64
	Walls            []bool
	FilePath         string // Empty for built-in levels
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds cells count as walls.
func (l Level) IsWall(x, y int) bool {
	if x < 0 || x >= l.Cols || y < 0 || y >= l.Rows {
		return true
	}
	return l.Walls[y*l.Cols+x]
}

// OpenCells returns the number of non-wall cells.
func (l Level) OpenCells() int {
	n := 0
	for _, w := range l.Walls {
		if !w {
			n++
		}
	}
	return n
}

// DisplayName returns Name, falling back to ID.
func (l Level) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}
