// Package tui runs games in a terminal with Bubble Tea: the frame loop,
// key mapping, the level menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	return tea.Tick(time.Second/time.Duration(frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
