package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The level is a built-in ID, the ID of a level in
the user levels directory, or a path to a level file. Without an argument the
level from the config file is played (classic by default).

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  R                - Restart the board
  Esc/B            - Leave (score is saved)
  Q/Ctrl+C         - Quit (score is saved)
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Slower bunny, speeds up as you score
  normal - Default pace, speeds up as you score
  hard   - Faster bunny from the start
  fixed  - No progression, stays at the config's pace

Examples:
  pacman play
  pacman play maze
  pacman play ./levels/spiral.txt --difficulty hard
  pacman play --theme ./themes/ascii.yaml
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelRef := ""
	if len(args) > 0 {
		levelRef = args[0]
	}

	game, err := registry.Create(gameID, gameOptions(levelRef))
	if err != nil {
		log.Fatal("cannot start game", "level", levelRef, "error", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		log.Error("game stopped", "error", runErr)
		closeLog()
		os.Exit(1)
	}
}
