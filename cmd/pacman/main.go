// pacman is a terminal grid chase game: eat pellets, catch the cherry and
// keep away from the bunny. Play locally or host it over SSH.
//
// Usage:
//
//	pacman play [level]      - Play a level (default: classic)
//	pacman menu              - Pick levels interactively
//	pacman levels            - List installed levels
//	pacman scores [level]    - Show high scores
//	pacman serve             - Start SSH server for remote play
//	pacman list              - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--theme <path>       - Sprite theme YAML
//	--levels-dir <path>  - Directory with user levels (default: ~/.arcade/levels)
//	--log-file <path>    - Write logs to a file instead of stderr
//	--debug              - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagLevelsDir  string
	flagLogFile    string
	flagDebug      bool
)

var logFile *os.File

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - eat pellets, dodge the bunny, in your terminal",
	Long: `Pacman is a terminal grid game. Move with the arrow keys, WASD or
HJKL, eat yellow and pink pellets, grab the cherry when it shows up and keep
away from the bunny. When the bunny catches you the run ends, your score is
saved and the board starts over.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List or validate level files
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  pacman play
  pacman play maze --difficulty hard
  pacman play ./my-level.txt
  pacman levels --validate ./my-level.txt
  pacman scores classic --csv > classic.csv
  pacman serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagTheme, "theme", "", "Path to sprite theme YAML")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory with user levels (default ~/.arcade/levels)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging installs the process-wide logger.
func setupLogging(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}

	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	log.SetDefault(logger)
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// userLevelsDir returns the directory user levels are loaded from.
func userLevelsDir() string {
	if flagLevelsDir != "" {
		return flagLevelsDir
	}
	return levels.DefaultUserDir()
}

// gameOptions collects the per-session options from global flags.
func gameOptions(levelRef string) registry.Options {
	return registry.Options{
		LevelID:    levelRef,
		UserDir:    userLevelsDir(),
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		ThemePath:  flagTheme,
	}
}

// gameID is the game every command works with.
const gameID = pacman.GameID
