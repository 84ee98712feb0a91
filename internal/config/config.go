// Package config provides YAML-based game configuration loading and
// difficulty management for Pacman.
package config

// PacmanConfig contains all configuration for the Pacman game.
type PacmanConfig struct {
	World      PacmanWorld      `yaml:"world"`
	Scoring    PacmanScoring    `yaml:"scoring"`
	Level      string           `yaml:"level"`
	Theme      string           `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanWorld defines timing for the enemy and bonus.
type PacmanWorld struct {
	TickIntervalMs    int `yaml:"tick_interval_ms"`
	MinTickIntervalMs int `yaml:"min_tick_interval_ms"`
	CaughtBannerMs    int `yaml:"caught_banner_ms"`
}

// PacmanScoring defines point values.
type PacmanScoring struct {
	Pellet int `yaml:"pellet"`
	Bonus  int `yaml:"bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty selects no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
