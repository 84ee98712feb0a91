package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default Pacman configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		World: PacmanWorld{
			TickIntervalMs:    250,
			MinTickIntervalMs: 90,
			CaughtBannerMs:    900,
		},
		Scoring: PacmanScoring{
			Pellet: 5,
			Bonus:  400,
		},
		Level: "classic",
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
