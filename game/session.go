package game

import (
	"github.com/beka-birhanu/pickle-maze/maze"
)

// MoveOutcome describes what happened to a move request.
type MoveOutcome int

const (
	Blocked MoveOutcome = iota // Blocked leaves the player where it was.
	Moved                      // Moved advanced the player by one cell.
	Reached                    // Reached advanced the player onto the goal.
)

func (o MoveOutcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case Reached:
		return "reached"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a move and the step count after it.
type MoveResult struct {
	Outcome MoveOutcome
	Steps   int
}

// Generator produces solvable grids.
type Generator interface {
	Generate(size int) (*maze.Grid, error)
}

// State is a read-only copy of a session for presentation code.
type State struct {
	Size   int
	Rows   [][]maze.CellState
	Player maze.Position
	Goal   maze.Position
	Steps  int
}

// Session holds the grid, the player, the goal and the step counter of one
// single-player game. It is not safe for concurrent use.
type Session struct {
	generator Generator
	grid      *maze.Grid
	player    maze.Position
	goal      maze.Position
	steps     int
}

// NewSession returns an empty session. Call Start before moving.
func NewSession(g Generator) *Session {
	return &Session{generator: g}
}

// Start generates a new maze of the given size and resets the player to
// (0,0), the goal to (size-1, size-1) and the step counter to 0.
// When generation fails the session keeps its previous maze and state.
func (s *Session) Start(size int) error {
	grid, err := s.generator.Generate(size)
	if err != nil {
		return err
	}

	s.grid = grid
	s.player = maze.Position{X: 0, Y: 0}
	s.goal = maze.Position{X: size - 1, Y: size - 1}
	s.steps = 0
	return nil
}

// Started reports whether the session has a maze.
func (s *Session) Started() bool {
	return s.grid != nil
}

// Move shifts the player by (dx, dy) if the target cell is inside the grid
// and Open. Every accepted move adds one step.
func (s *Session) Move(dx, dy int) MoveResult {
	if s.grid == nil {
		return MoveResult{Outcome: Blocked, Steps: s.steps}
	}

	next := s.player.Add(dx, dy)
	if !s.grid.IsOpen(next.X, next.Y) {
		return MoveResult{Outcome: Blocked, Steps: s.steps}
	}

	s.player = next
	s.steps++

	if s.player == s.goal {
		return MoveResult{Outcome: Reached, Steps: s.steps}
	}
	return MoveResult{Outcome: Moved, Steps: s.steps}
}

// MoveDirection is Move for a Direction.
func (s *Session) MoveDirection(d Direction) MoveResult {
	dx, dy := d.Delta()
	return s.Move(dx, dy)
}

// ResetSteps zeroes the step counter for a new round on the same maze.
func (s *Session) ResetSteps() {
	s.steps = 0
}

// Player returns the current player position.
func (s *Session) Player() maze.Position {
	return s.player
}

// Goal returns the goal position.
func (s *Session) Goal() maze.Position {
	return s.goal
}

// Steps returns the step counter.
func (s *Session) Steps() int {
	return s.steps
}

// Snapshot copies the session state.
func (s *Session) Snapshot() State {
	state := State{
		Player: s.player,
		Goal:   s.goal,
		Steps:  s.steps,
	}
	if s.grid != nil {
		state.Size = s.grid.Size()
		state.Rows = s.grid.Rows()
	}
	return state
}
