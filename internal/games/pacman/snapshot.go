package pacman

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateCaught      GameStateType = "caught"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame       uint64
	Ticks       int // World ticks in the current run
	TotalTicks  int
	TickEvery   int
	Level       string
	Score       int
	Best        int
	Runs        int
	PlayerX     int
	PlayerY     int
	EnemyX      int
	EnemyY      int
	HasBonus    bool
	BonusX      int
	BonusY      int
	PelletsLeft int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.caughtFrames > 0:
		state = StateCaught
	}

	snap := Snapshot{
		Frame:      g.frame,
		Ticks:      g.runTicks,
		TotalTicks: g.totalTicks,
		TickEvery:  g.tickEvery,
		Level:      g.level.ID,
		Best:       g.best,
		Runs:       g.runs,
		State:      state,
	}
	if g.state == nil {
		return snap
	}

	player, enemy := g.state.Player(), g.state.Enemy()
	bonus, hasBonus := g.state.Bonus()
	snap.Score = g.state.Score()
	snap.PlayerX, snap.PlayerY = player.X, player.Y
	snap.EnemyX, snap.EnemyY = enemy.X, enemy.Y
	snap.HasBonus = hasBonus
	if hasBonus {
		snap.BonusX, snap.BonusY = bonus.X, bonus.Y
	}
	snap.PelletsLeft = g.state.PelletsLeft()
	return snap
}
