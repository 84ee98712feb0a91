package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level from an interactive menu",
	Long: `Start in interactive menu mode.

The menu lists built-in levels and the levels found in the user levels
directory together with your best score on each. After leaving a game you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Play level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  pacman menu
  pacman menu --fps 30
  pacman menu --levels-dir ./levels --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	userDir := userLevelsDir()

	message := ""
	for {
		menuResult, err := tui.RunMenu(store, gameID, userDir, cfg, message)
		message = ""
		if err != nil {
			log.Error("menu failed", "error", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, gameID, userDir, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				log.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.LevelID == "" {
			break
		}

		game, err := registry.Create(gameID, gameOptions(menuResult.LevelID))
		if err != nil {
			log.Error("cannot start game", "level", menuResult.LevelID, "error", err)
			message = "Cannot load level " + menuResult.LevelID
			continue
		}

		// Fresh seed per game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			log.Error("game stopped", "error", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
