package pacman

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// Default point values.
const (
	PelletScore = 5
	BonusScore  = 400
)

// Rand is the random source used by the board. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Scoring holds the points awarded for each kind of food.
type Scoring struct {
	Pellet int
	Bonus  int
}

// DefaultScoring returns the standard point values.
func DefaultScoring() Scoring {
	return Scoring{Pellet: PelletScore, Bonus: BonusScore}
}

// MoveResult describes what happened when the player moved.
type MoveResult struct {
	Moved      bool
	AtePellet  bool
	AteBonus   bool
	ScoreDelta int
}

// TickResult describes one world step.
type TickResult struct {
	AteBonus     bool
	BonusSpawned bool
	// Caught is set when the enemy reached the player. The board has already
	// been reset; FinalScore holds the score of the run that just ended.
	Caught     bool
	FinalScore int
}

// State is the complete board: grid, entity positions and score.
// It is not safe for concurrent use; the platform drives it from one loop.
type State struct {
	grid     *Grid
	open     []core.Point
	start    core.Point
	bonusP   float64
	scoring  Scoring
	rng      Rand
	player   core.Point
	enemy    core.Point
	bonus    core.Point
	hasBonus bool
	score    int
	resets   int
}

// NewState builds a board for the level and resets it.
func NewState(lvl levels.Level, rng Rand, scoring Scoring) (*State, error) {
	if rng == nil {
		return nil, errors.New("pacman: nil random source")
	}
	if err := levels.Validate(lvl); err != nil {
		return nil, fmt.Errorf("pacman: level %s: %w", lvl.ID, err)
	}

	grid := GridFromLevel(lvl)
	s := &State{
		grid:    grid,
		open:    grid.OpenCells(),
		start:   lvl.Start,
		bonusP:  lvl.BonusProbability,
		scoring: scoring,
		rng:     rng,
	}
	s.Reset()
	s.resets = 0
	return s, nil
}

// Reset puts the player back at the start, scatters the enemy and the bonus,
// refills every empty cell with a pellet and zeroes the score.
func (s *State) Reset() {
	s.player = s.start
	s.bonus = s.randomOpenCell()
	s.hasBonus = true
	s.enemy = s.randomOpenCell()
	s.score = 0
	s.resets++

	for y := 0; y < s.grid.rows; y++ {
		for x := 0; x < s.grid.cols; x++ {
			p := core.Pt(x, y)
			if s.grid.At(p) != CellEmpty {
				continue
			}
			if s.rng.Float64() < 0.5 {
				s.grid.set(p, CellYellowPellet)
			} else {
				s.grid.set(p, CellPinkPellet)
			}
		}
	}
}

// HandleInput moves the player one cell unless a wall is in the way, then
// eats whatever is on the new cell.
func (s *State) HandleInput(dir core.Direction) MoveResult {
	var res MoveResult
	if dir == core.DirNone {
		return res
	}

	target := s.player.Add(dir)
	if !s.grid.IsWall(target) {
		s.player = target
		res.Moved = true
	}

	if s.grid.At(s.player).IsPellet() {
		s.grid.set(s.player, CellEmpty)
		s.score += s.scoring.Pellet
		res.AtePellet = true
		res.ScoreDelta += s.scoring.Pellet
	}
	if s.eatBonus() {
		res.AteBonus = true
		res.ScoreDelta += s.scoring.Bonus
	}
	return res
}

// Tick advances the enemy and the bonus by one step.
func (s *State) Tick() TickResult {
	var res TickResult

	s.enemy = s.randomStep(s.enemy)

	if s.hasBonus {
		s.bonus = s.randomStep(s.bonus)
		res.AteBonus = s.eatBonus()
	} else if s.rng.Float64() < s.bonusP {
		s.bonus = s.randomOpenCell()
		s.hasBonus = true
		res.BonusSpawned = true
	}

	if s.player == s.enemy {
		res.Caught = true
		res.FinalScore = s.score
		log.Debug("player caught", "score", s.score, "at", s.player)
		s.Reset()
	}
	return res
}

func (s *State) eatBonus() bool {
	if !s.hasBonus || s.bonus != s.player {
		return false
	}
	s.hasBonus = false
	s.score += s.scoring.Bonus
	return true
}

// randomStep moves p to a uniformly chosen non-wall neighbour, the same
// distribution as redrawing directions until one is legal. A boxed-in mover
// stays where it is.
func (s *State) randomStep(p core.Point) core.Point {
	var options [4]core.Point
	n := 0
	for _, d := range core.Directions {
		next := p.Add(d)
		if !s.grid.IsWall(next) {
			options[n] = next
			n++
		}
	}
	if n == 0 {
		return p
	}
	return options[s.rng.Intn(n)]
}

// randomOpenCell picks a uniformly random non-wall cell.
func (s *State) randomOpenCell() core.Point {
	return s.open[s.rng.Intn(len(s.open))]
}

// Cols returns the board width.
func (s *State) Cols() int { return s.grid.Cols() }

// Rows returns the board height.
func (s *State) Rows() int { return s.grid.Rows() }

// CellAt returns the board content at p.
func (s *State) CellAt(p core.Point) Cell { return s.grid.At(p) }

// Player returns the player position.
func (s *State) Player() core.Point { return s.player }

// Enemy returns the enemy position.
func (s *State) Enemy() core.Point { return s.enemy }

// Bonus returns the bonus position and whether it is on the board.
func (s *State) Bonus() (core.Point, bool) { return s.bonus, s.hasBonus }

// Score returns the score of the current run.
func (s *State) Score() int { return s.score }

// PelletsLeft returns the number of uneaten pellets.
func (s *State) PelletsLeft() int { return s.grid.Count(Cell.IsPellet) }

// Resets returns how many times the board was reset after construction.
func (s *State) Resets() int { return s.resets }
