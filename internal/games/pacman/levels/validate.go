package levels

import (
	"errors"
	"fmt"
)

// Validation errors. Wrapped errors returned by Parse and Validate can be
// matched with errors.Is.
var (
	ErrEmpty       = errors.New("empty level file")
	ErrBadSize     = errors.New("bad level dimensions")
	ErrBadCell     = errors.New("unknown cell value")
	ErrStartBounds = errors.New("start position out of bounds")
	ErrStartOnWall = errors.New("start position is a wall")
	ErrProbability = errors.New("bonus probability must be within [0, 1]")
	ErrNoBorder    = errors.New("level must be surrounded by walls")
	ErrNoOpenCells = errors.New("level has no open cells")
)

// Validate checks the structural invariants the game relies on: matching
// dimensions, a start cell that is open, a probability in range and a
// complete wall border so movement can never leave the grid.
func Validate(lvl Level) error {
	if lvl.Cols <= 0 || lvl.Rows <= 0 {
		return fmt.Errorf("levels: %w: %dx%d", ErrBadSize, lvl.Cols, lvl.Rows)
	}
	if len(lvl.Walls) != lvl.Cols*lvl.Rows {
		return fmt.Errorf("levels: %w: %d cells for %dx%d", ErrBadSize, len(lvl.Walls), lvl.Cols, lvl.Rows)
	}
	if lvl.BonusProbability < 0 || lvl.BonusProbability > 1 {
		return fmt.Errorf("levels: %w: %g", ErrProbability, lvl.BonusProbability)
	}

	s := lvl.Start
	if s.X < 0 || s.X >= lvl.Cols || s.Y < 0 || s.Y >= lvl.Rows {
		return fmt.Errorf("levels: %w: (%d, %d)", ErrStartBounds, s.X, s.Y)
	}
	if lvl.IsWall(s.X, s.Y) {
		return fmt.Errorf("levels: %w: (%d, %d)", ErrStartOnWall, s.X, s.Y)
	}

	for x := 0; x < lvl.Cols; x++ {
		if !lvl.IsWall(x, 0) || !lvl.IsWall(x, lvl.Rows-1) {
			return fmt.Errorf("levels: %w: open cell in column %d", ErrNoBorder, x)
		}
	}
	for y := 0; y < lvl.Rows; y++ {
		if !lvl.IsWall(0, y) || !lvl.IsWall(lvl.Cols-1, y) {
			return fmt.Errorf("levels: %w: open cell in row %d", ErrNoBorder, y)
		}
	}

	if lvl.OpenCells() == 0 {
		return fmt.Errorf("levels: %w", ErrNoOpenCells)
	}
	return nil
}
