package service

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string)    { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warning(msg string) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(msg string)   { l.errors = append(l.errors, msg) }

// corridorGenerator returns a maze whose only path runs along the top row
// and down the right column.
type corridorGenerator struct{}

func (corridorGenerator) Generate(size int) (*maze.Grid, error) {
	g, err := maze.New(size)
	if err != nil {
		return nil, err
	}
	for x := 0; x < size; x++ {
		_ = g.Set(x, 0, maze.Open)
	}
	for y := 0; y < size; y++ {
		_ = g.Set(size-1, y, maze.Open)
	}
	return g, nil
}

func newManager(t *testing.T, gen game.Generator) (*GameSessionManager, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	gsm, err := NewGameSessionManager(&Config{
		Generator:   gen,
		Logger:      logger,
		DefaultSize: 5,
		MaxSize:     31,
	})
	require.NoError(t, err)
	return gsm, logger
}

func TestNewGameSessionManager(t *testing.T) {
	_, err := NewGameSessionManager(nil)
	assert.Error(t, err)

	_, err = NewGameSessionManager(&Config{Generator: corridorGenerator{}})
	assert.Error(t, err)

	gsm, err := NewGameSessionManager(&Config{Generator: corridorGenerator{}, Logger: &recordingLogger{}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxSize, gsm.maxSize)
	assert.Equal(t, defaultMazeSize, gsm.defaultSize)
}

func TestNewSession(t *testing.T) {
	gsm, logger := newManager(t, maze.NewGenerator(rand.New(rand.NewSource(1))))

	t.Run("default size", func(t *testing.T) {
		id, state, err := gsm.NewSession(0)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, 5, state.Size)
		assert.Equal(t, maze.Position{X: 4, Y: 4}, state.Goal)
		assert.Equal(t, 0, state.Steps)
	})

	t.Run("explicit size", func(t *testing.T) {
		_, state, err := gsm.NewSession(9)
		require.NoError(t, err)
		assert.Equal(t, 9, state.Size)
	})

	t.Run("too large", func(t *testing.T) {
		_, _, err := gsm.NewSession(33)
		assert.ErrorIs(t, err, ErrSizeTooLarge)
	})

	t.Run("negative", func(t *testing.T) {
		_, _, err := gsm.NewSession(-3)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)
	})

	t.Run("exhausted generation stores nothing", func(t *testing.T) {
		before := gsm.Count()
		_, _, err := gsm.NewSession(4)
		assert.ErrorIs(t, err, maze.ErrExhausted)
		assert.Equal(t, before, gsm.Count())
		assert.NotEmpty(t, logger.warnings)
	})

	assert.Equal(t, 2, gsm.Count())
}

func TestMoveAndReachGoal(t *testing.T) {
	gsm, logger := newManager(t, corridorGenerator{})
	id, _, err := gsm.NewSession(3)
	require.NoError(t, err)

	res, state, err := gsm.Move(id, game.Down)
	require.NoError(t, err)
	assert.Equal(t, game.Blocked, res.Outcome)
	assert.Equal(t, 0, state.Steps)

	for _, d := range []game.Direction{game.Right, game.Right, game.Down} {
		res, _, err = gsm.Move(id, d)
		require.NoError(t, err)
		assert.Equal(t, game.Moved, res.Outcome)
	}

	res, state, err = gsm.Move(id, game.Down)
	require.NoError(t, err)
	assert.Equal(t, game.Reached, res.Outcome)
	assert.Equal(t, 4, res.Steps)
	assert.Equal(t, 0, state.Steps, "counter starts over after the goal")
	assert.Equal(t, state.Goal, state.Player)
	assert.Contains(t, logger.infos[len(logger.infos)-1], "4 steps")
}

func TestRestart(t *testing.T) {
	gsm, _ := newManager(t, maze.NewGenerator(rand.New(rand.NewSource(2))))
	id, _, err := gsm.NewSession(5)
	require.NoError(t, err)

	_, _, err = gsm.Move(id, game.Right)
	require.NoError(t, err)
	before, err := gsm.State(id)
	require.NoError(t, err)

	t.Run("failure keeps the previous maze", func(t *testing.T) {
		_, err := gsm.Restart(id, 6)
		assert.ErrorIs(t, err, maze.ErrExhausted)

		after, err := gsm.State(id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("success resets the game", func(t *testing.T) {
		state, err := gsm.Restart(id, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, state.Size)
		assert.Equal(t, maze.Position{}, state.Player)
		assert.Equal(t, 0, state.Steps)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := gsm.Restart(uuid.New(), 5)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestUnknownSession(t *testing.T) {
	gsm, _ := newManager(t, corridorGenerator{})
	id := uuid.New()

	_, _, err := gsm.Move(id, game.Up)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = gsm.State(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, gsm.Remove(id), ErrSessionNotFound)
}

func TestRemove(t *testing.T) {
	gsm, _ := newManager(t, corridorGenerator{})
	id, _, err := gsm.NewSession(3)
	require.NoError(t, err)

	require.NoError(t, gsm.Remove(id))
	assert.Equal(t, 0, gsm.Count())

	_, err = gsm.State(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
