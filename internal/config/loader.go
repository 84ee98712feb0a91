package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadPacman loads Pacman configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
// Missing fields in a file keep their default values.
func LoadPacman(customPath string) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("pacman.yaml"), filepath.Join("configs", "pacman.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			log.Warn("ignoring unreadable config", "path", path, "error", err)
			continue
		}
		return normalize(fileCfg), nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize replaces nonsensical values with defaults.
func normalize(cfg PacmanConfig) PacmanConfig {
	def := DefaultPacmanConfig()
	if cfg.World.TickIntervalMs <= 0 {
		cfg.World.TickIntervalMs = def.World.TickIntervalMs
	}
	if cfg.World.MinTickIntervalMs <= 0 || cfg.World.MinTickIntervalMs > cfg.World.TickIntervalMs {
		cfg.World.MinTickIntervalMs = min(def.World.MinTickIntervalMs, cfg.World.TickIntervalMs)
	}
	if cfg.World.CaughtBannerMs < 0 {
		cfg.World.CaughtBannerMs = 0
	}
	if cfg.Scoring.Pellet < 0 {
		cfg.Scoring.Pellet = def.Scoring.Pellet
	}
	if cfg.Scoring.Bonus < 0 {
		cfg.Scoring.Bonus = def.Scoring.Bonus
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPacmanPreset modifies the config based on a difficulty preset.
// Presets scale the base step interval only. Progressing presets start at
// level 0; fixed keeps the configured level.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = 0
	}

	switch preset {
	case DifficultyEasy:
		cfg.World.TickIntervalMs = cfg.World.TickIntervalMs * 3 / 2
	case DifficultyHard:
		cfg.World.TickIntervalMs = max(cfg.World.MinTickIntervalMs, cfg.World.TickIntervalMs*3/4)
	}
}
