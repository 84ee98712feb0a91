package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID               string    `yaml:"id"`
	Name             string    `yaml:"name"`
	Start            YAMLPoint `yaml:"start"`
	BonusProbability float64   `yaml:"bonus_probability"`
	Layout           []string  `yaml:"layout"` // '#' wall, '.' or ' ' open
}

// YAMLPoint is a cell coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a YAML level file and validates it.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if len(yl.Layout) == 0 {
		return Level{}, fmt.Errorf("levels: %w: no layout rows", ErrEmpty)
	}

	lvl := Level{
		ID:               yl.ID,
		Name:             yl.Name,
		Rows:             len(yl.Layout),
		Start:            core.Pt(yl.Start.X, yl.Start.Y),
		BonusProbability: yl.BonusProbability,
	}

	for y, row := range yl.Layout {
		cells := []rune(row)
		if y == 0 {
			lvl.Cols = len(cells)
			lvl.Walls = make([]bool, 0, lvl.Cols*lvl.Rows)
		}
		if len(cells) != lvl.Cols {
			return Level{}, fmt.Errorf("levels: layout row %d: %w: expected %d columns, got %d", y, ErrBadSize, lvl.Cols, len(cells))
		}
		for x, ch := range cells {
			switch ch {
			case '#':
				lvl.Walls = append(lvl.Walls, true)
			case '.', ' ':
				lvl.Walls = append(lvl.Walls, false)
			default:
				return Level{}, fmt.Errorf("levels: layout row %d column %d: %w: %q", y, x, ErrBadCell, ch)
			}
		}
	}

	if err := Validate(lvl); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".lvl", ".yaml", ".yml"}
}
