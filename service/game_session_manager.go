package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeSize = 11
	defaultMaxSize  = 101
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrSizeTooLarge    = errors.New("maze size is too large")
)

var _ i.GameSessionManager = &GameSessionManager{}

// GameSessionManager keeps the running single-player sessions keyed by id.
// Sessions themselves are not thread safe, so every access goes through the
// manager's lock.
type GameSessionManager struct {
	sessions    map[uuid.UUID]*game.Session
	generator   game.Generator
	defaultSize int
	maxSize     int
	logger      i.Logger
	sync.RWMutex
}

// Config holds the dependencies of a GameSessionManager.
type Config struct {
	Generator   game.Generator // Maze generator shared by all sessions
	Logger      i.Logger
	DefaultSize int // Size used when a request asks for 0; defaults to 11
	MaxSize     int // Largest accepted size; defaults to 101
}

// NewGameSessionManager creates a manager from c.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c == nil || c.Generator == nil {
		return nil, errors.New("a maze generator is required")
	}
	if c.Logger == nil {
		return nil, errors.New("a logger is required")
	}

	gsm := &GameSessionManager{
		sessions:    make(map[uuid.UUID]*game.Session),
		generator:   c.Generator,
		defaultSize: c.DefaultSize,
		maxSize:     c.MaxSize,
		logger:      c.Logger,
	}
	if gsm.maxSize <= 0 {
		gsm.maxSize = defaultMaxSize
	}
	if gsm.defaultSize <= 0 || gsm.defaultSize > gsm.maxSize {
		gsm.defaultSize = min(defaultMazeSize, gsm.maxSize)
	}
	return gsm, nil
}

// NewSession generates a maze and stores a session for it.
// Nothing is stored when generation fails.
func (g *GameSessionManager) NewSession(size int) (uuid.UUID, game.State, error) {
	size, err := g.resolveSize(size)
	if err != nil {
		return uuid.Nil, game.State{}, err
	}

	g.Lock()
	defer g.Unlock()

	session := game.NewSession(g.generator)
	if err := session.Start(size); err != nil {
		g.logger.Warning(fmt.Sprintf("generating %dx%d maze for a new game: %s", size, size, err))
		return uuid.Nil, game.State{}, err
	}

	id := uuid.New()
	for {
		if _, ok := g.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	g.sessions[id] = session

	g.logger.Info(fmt.Sprintf("started %dx%d game %s", size, size, id))
	return id, session.Snapshot(), nil
}

// Restart generates a fresh maze for an existing session.
func (g *GameSessionManager) Restart(id uuid.UUID, size int) (game.State, error) {
	size, err := g.resolveSize(size)
	if err != nil {
		return game.State{}, err
	}

	g.Lock()
	defer g.Unlock()

	session, ok := g.sessions[id]
	if !ok {
		return game.State{}, ErrSessionNotFound
	}

	if err := session.Start(size); err != nil {
		g.logger.Warning(fmt.Sprintf("restarting game %s with size %d: %s", id, size, err))
		return game.State{}, err
	}

	g.logger.Info(fmt.Sprintf("restarted game %s with a %dx%d maze", id, size, size))
	return session.Snapshot(), nil
}

// Move applies d to the session's player. When the goal is reached the
// returned result carries the final count and the session's counter starts
// over for the next round on the same maze.
func (g *GameSessionManager) Move(id uuid.UUID, d game.Direction) (game.MoveResult, game.State, error) {
	g.Lock()
	defer g.Unlock()

	session, ok := g.sessions[id]
	if !ok {
		return game.MoveResult{}, game.State{}, ErrSessionNotFound
	}

	res := session.MoveDirection(d)
	if res.Outcome == game.Reached {
		g.logger.Info(fmt.Sprintf("game %s reached the goal in %d steps", id, res.Steps))
		session.ResetSteps()
	}

	return res, session.Snapshot(), nil
}

// State returns a snapshot of the session.
func (g *GameSessionManager) State(id uuid.UUID) (game.State, error) {
	g.RLock()
	defer g.RUnlock()

	session, ok := g.sessions[id]
	if !ok {
		return game.State{}, ErrSessionNotFound
	}
	return session.Snapshot(), nil
}

// Remove deletes the session.
func (g *GameSessionManager) Remove(id uuid.UUID) error {
	g.Lock()
	defer g.Unlock()

	if _, ok := g.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(g.sessions, id)
	g.logger.Info(fmt.Sprintf("removed game %s", id))
	return nil
}

// Count returns the number of live sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

// resolveSize applies the default and the upper bound. Non-positive sizes
// other than 0 are left for the generator to reject.
func (g *GameSessionManager) resolveSize(size int) (int, error) {
	if size == 0 {
		return g.defaultSize, nil
	}
	if size > g.maxSize {
		return 0, fmt.Errorf("%d > %d: %w", size, g.maxSize, ErrSizeTooLarge)
	}
	return size, nil
}
