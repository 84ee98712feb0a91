package pacman

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// CellWidth is the number of terminal columns used per board cell.
const CellWidth = 2

//go:embed themes/default.yaml
var defaultThemeYAML []byte

// Sprites holds the glyph drawn for each entity and board cell.
// An empty glyph is drawn as blank space.
type Sprites struct {
	Player string `yaml:"player"`
	Enemy  string `yaml:"enemy"`
	Bonus  string `yaml:"bonus"`
	Wall   string `yaml:"wall"`
	Pellet string `yaml:"pellet"`
}

// DefaultSprites returns the embedded theme.
func DefaultSprites() Sprites {
	s, err := parseSprites(defaultThemeYAML)
	if err != nil {
		return Sprites{Player: "C", Enemy: "B", Bonus: "%", Wall: "##", Pellet: "."}
	}
	return s
}

func parseSprites(data []byte) (Sprites, error) {
	var s Sprites
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sprites{}, fmt.Errorf("parse theme: %w", err)
	}
	return s, nil
}

// LoadSprites reads a theme file. An empty path selects the default theme.
// Load errors are logged and never fatal: entity glyphs the theme failed to
// provide stay blank, board glyphs fall back to the default theme.
func LoadSprites(path string) Sprites {
	def := DefaultSprites()
	if path == "" {
		return def
	}

	board := Sprites{Wall: def.Wall, Pellet: def.Pellet}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("cannot load theme, entities will be invisible", "path", path, "error", err)
		return board
	}
	s, err := parseSprites(data)
	if err != nil {
		log.Warn("cannot load theme, entities will be invisible", "path", path, "error", err)
		return board
	}

	entities := []struct {
		name  string
		glyph string
	}{
		{"player", s.Player},
		{"enemy", s.Enemy},
		{"bonus", s.Bonus},
	}
	for _, e := range entities {
		if e.glyph == "" {
			log.Warn("theme has no glyph", "path", path, "sprite", e.name)
		}
	}
	if s.Wall == "" {
		s.Wall = def.Wall
	}
	if s.Pellet == "" {
		s.Pellet = def.Pellet
	}
	return s
}

// cellGlyph pads or truncates a glyph to exactly CellWidth runes.
func cellGlyph(glyph string) [CellWidth]rune {
	var out [CellWidth]rune
	for i := range out {
		out[i] = ' '
	}
	i := 0
	for _, r := range glyph {
		if i == CellWidth {
			break
		}
		out[i] = r
		i++
	}
	return out
}
