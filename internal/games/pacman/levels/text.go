package levels

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Cell values used by the text format.
const (
	textOpen = 0
	textWall = 1
)

// Parse reads a level in the native text format and validates it.
func Parse(r io.Reader, id string) (Level, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		if err := sc.Err(); err != nil {
			return Level{}, fmt.Errorf("levels: reading header: %w", err)
		}
		return Level{}, fmt.Errorf("levels: %w", ErrEmpty)
	}

	fields := strings.Fields(header)
	if len(fields) != 5 {
		return Level{}, fmt.Errorf("levels: line %d: header needs 5 fields (cols rows startX startY bonusProbability), got %d", lineNo, len(fields))
	}

	var ints [4]int
	for i := range ints {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return Level{}, fmt.Errorf("levels: line %d: field %d: %w", lineNo, i+1, err)
		}
		ints[i] = v
	}
	prob, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Level{}, fmt.Errorf("levels: line %d: bonus probability: %w", lineNo, err)
	}

	lvl := Level{
		ID:               id,
		Cols:             ints[0],
		Rows:             ints[1],
		Start:            core.Pt(ints[2], ints[3]),
		BonusProbability: prob,
	}
	if lvl.Cols <= 0 || lvl.Rows <= 0 {
		return Level{}, fmt.Errorf("levels: line %d: %w: %dx%d", lineNo, ErrBadSize, lvl.Cols, lvl.Rows)
	}

	lvl.Walls = make([]bool, 0, lvl.Cols*lvl.Rows)
	for y := 0; y < lvl.Rows; y++ {
		line, ok := nextLine()
		if !ok {
			if err := sc.Err(); err != nil {
				return Level{}, fmt.Errorf("levels: reading row %d: %w", y, err)
			}
			return Level{}, fmt.Errorf("levels: %w: expected %d rows, got %d", ErrBadSize, lvl.Rows, y)
		}
		row := strings.Fields(line)
		if len(row) != lvl.Cols {
			return Level{}, fmt.Errorf("levels: line %d: %w: expected %d columns, got %d", lineNo, ErrBadSize, lvl.Cols, len(row))
		}
		for x, field := range row {
			v, err := strconv.Atoi(field)
			if err != nil {
				return Level{}, fmt.Errorf("levels: line %d: column %d: %w", lineNo, x, err)
			}
			switch v {
			case textOpen:
				lvl.Walls = append(lvl.Walls, false)
			case textWall:
				lvl.Walls = append(lvl.Walls, true)
			default:
				return Level{}, fmt.Errorf("levels: line %d: column %d: %w: %d", lineNo, x, ErrBadCell, v)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("levels: %w", err)
	}

	if err := Validate(lvl); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Format writes a level back out in the native text format.
func Format(w io.Writer, lvl Level) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d %s\n", lvl.Cols, lvl.Rows, lvl.Start.X, lvl.Start.Y,
		strconv.FormatFloat(lvl.BonusProbability, 'g', -1, 64))
	for y := 0; y < lvl.Rows; y++ {
		for x := 0; x < lvl.Cols; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			if lvl.IsWall(x, y) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
