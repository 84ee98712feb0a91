// Package pacman implements a grid chase game: the player eats pellets,
// a wandering enemy ends the run on contact and a bonus cherry appears now
// and then.
package pacman

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "pacman"

const hudHeight = 2

// Game adapts State to the platform: it turns frames into world ticks,
// handles pause and restart, and draws the board.
type Game struct {
	cfg        config.PacmanConfig
	level      levels.Level
	sprites    Sprites
	difficulty *config.DifficultyManager

	state *State
	rng   *rand.Rand

	frame        uint64
	tickRate     int
	tickEvery    int // Frames between world ticks
	tickCounter  int
	runTicks     int // World ticks in the current run
	totalTicks   int
	caughtFrames int // Remaining frames of the "Caught!" banner
	lastScore    int
	best         int
	runs         int
	paused       bool

	screenW  int
	screenH  int
	tooSmall bool
	offsetX  int
	offsetY  int
}

func init() {
	registry.Register(GameID, "Pacman", func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// New builds a game from session options: config file, difficulty preset,
// level reference and sprite theme.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadPacman(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, ok := config.ParsePreset(opts.Difficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
	}
	config.ApplyPacmanPreset(&cfg, preset)

	ref := opts.LevelID
	if ref == "" {
		ref = cfg.Level
	}
	userDir := opts.UserDir
	if userDir == "" {
		userDir = levels.DefaultUserDir()
	}
	lvl, err := levels.Resolve(ref, userDir)
	if err != nil {
		return nil, err
	}

	themePath := opts.ThemePath
	if themePath == "" {
		themePath = cfg.Theme
	}

	return NewWithLevel(lvl, cfg, LoadSprites(themePath))
}

// NewWithLevel builds a game for an already loaded level.
func NewWithLevel(lvl levels.Level, cfg config.PacmanConfig, sprites Sprites) (*Game, error) {
	if err := levels.Validate(lvl); err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	return &Game{
		cfg:        cfg,
		level:      lvl,
		sprites:    sprites,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Pacman" }

// LevelID returns the ID scores are stored under.
func (g *Game) LevelID() string { return g.level.ID }

// Level returns the level being played.
func (g *Game) Level() levels.Level { return g.level }

// Reset starts a fresh session on the level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(uint64(cfg.Seed)))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	state, err := NewState(g.level, g.rng, Scoring{Pellet: g.cfg.Scoring.Pellet, Bonus: g.cfg.Scoring.Bonus})
	if err != nil {
		log.Error("cannot build board", "level", g.level.ID, "error", err)
		return
	}
	g.state = state

	g.frame = 0
	g.totalTicks = 0
	g.best = 0
	g.runs = 0
	g.lastScore = 0
	g.paused = false
	g.startRun()
	g.layout()
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

func (g *Game) layout() {
	mapW := g.level.Cols * CellWidth
	mapH := g.level.Rows
	g.tooSmall = g.screenW < mapW || g.screenH < mapH+hudHeight
	g.offsetX = (g.screenW - mapW) / 2
	g.offsetY = hudHeight + max(0, (g.screenH-hudHeight-mapH)/2)
}

// startRun clears per-run counters after a reset of the board.
func (g *Game) startRun() {
	g.runTicks = 0
	g.tickCounter = 0
	g.caughtFrames = 0
	g.updateTickEvery()
}

// updateTickEvery converts the current step interval into frames.
func (g *Game) updateTickEvery() {
	score := 0
	if g.state != nil {
		score = g.state.Score()
	}
	ms := g.difficulty.Interval(g.cfg.World.TickIntervalMs, g.cfg.World.MinTickIntervalMs, score, g.runTicks)
	g.tickEvery = max(1, int(math.Round(float64(ms)*float64(g.tickRate)/1000)))
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	if input.Has(core.ActionRestart) {
		g.state.Reset()
		g.paused = false
		g.startRun()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.caughtFrames > 0 {
		g.caughtFrames--
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	for _, dir := range input.Moves {
		res := g.state.HandleInput(dir)
		if res.AteBonus {
			events = append(events, core.Event{Kind: core.EventBonusEaten, Score: g.state.Score()})
		}
	}
	g.best = max(g.best, g.state.Score())

	g.tickCounter++
	if g.tickCounter >= g.tickEvery {
		g.tickCounter = 0
		events = append(events, g.worldTick()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) worldTick() []core.Event {
	var events []core.Event

	res := g.state.Tick()
	g.runTicks++
	g.totalTicks++

	if res.AteBonus {
		events = append(events, core.Event{Kind: core.EventBonusEaten, Score: g.state.Score()})
	}
	if res.Caught {
		g.runs++
		g.lastScore = res.FinalScore
		g.best = max(g.best, res.FinalScore)
		events = append(events, core.Event{Kind: core.EventRunEnded, Score: res.FinalScore})
		g.startRun()
		g.caughtFrames = g.cfg.World.CaughtBannerMs * g.tickRate / 1000
		return events
	}

	g.best = max(g.best, g.state.Score())
	g.updateTickEvery()
	return events
}

// State returns the current game state. A catch ends a run, not the game.
func (g *Game) State() core.GameState {
	score := 0
	if g.state != nil {
		score = g.state.Score()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.level.Cols*CellWidth, g.level.Rows+hudHeight))
		return
	}

	g.renderBoard(dst)
	g.renderEntities(dst)

	switch {
	case g.caughtFrames > 0:
		g.renderOverlay(dst, "Caught!", fmt.Sprintf("Score: %d", g.lastScore))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pacman · %s   Score: %d   Best: %d   Pellets: %d",
		g.level.DisplayName(), g.state.Score(), g.best, g.state.PelletsLeft())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *core.Screen) {
	wall := cellGlyph(g.sprites.Wall)
	pellet := cellGlyph(g.sprites.Pellet)

	for y := 0; y < g.state.Rows(); y++ {
		for x := 0; x < g.state.Cols(); x++ {
			p := core.Pt(x, y)
			switch g.state.CellAt(p) {
			case CellWall:
				g.drawCell(dst, p, wall, core.ColorBlue)
			case CellYellowPellet:
				g.drawCell(dst, p, pellet, core.ColorYellow)
			case CellPinkPellet:
				g.drawCell(dst, p, pellet, core.ColorPink)
			}
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen) {
	if bonus, ok := g.state.Bonus(); ok {
		g.drawCell(dst, bonus, cellGlyph(g.sprites.Bonus), core.ColorRed)
	}
	g.drawCell(dst, g.state.Enemy(), cellGlyph(g.sprites.Enemy), core.ColorWhite)
	g.drawCell(dst, g.state.Player(), cellGlyph(g.sprites.Player), core.ColorBrightYellow)
}

func (g *Game) drawCell(dst *core.Screen, p core.Point, glyph [CellWidth]rune, c core.Color) {
	sx := g.offsetX + p.X*CellWidth
	sy := g.offsetY + p.Y
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
