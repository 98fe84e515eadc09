package terminal

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSound records the cues it was asked to play.
type countingSound struct {
	goals, bumps int
}

func (c *countingSound) Goal() { c.goals++ }
func (c *countingSound) Bump() { c.bumps++ }

// lGenerator opens the top row and the right column. Even sizes fail.
type lGenerator struct{}

func (lGenerator) Generate(size int) (*maze.Grid, error) {
	g, err := maze.New(size)
	if err != nil {
		return nil, err
	}
	if size%2 == 0 {
		return nil, maze.ErrExhausted
	}
	for i := 0; i < size; i++ {
		_ = g.Set(i, 0, maze.Open)
		_ = g.Set(size-1, i, maze.Open)
	}
	return g, nil
}

func newTestGame(t *testing.T, size int) (*Game, tcell.SimulationScreen, *countingSound) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	sound := &countingSound{}
	g := New(screen, lGenerator{}, size, sound)
	g.Start()
	return g, screen, sound
}

func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDraw(t *testing.T) {
	g, screen, _ := newTestGame(t, 3)
	g.Draw()

	assert.Equal(t, "()", readLine(screen, 0, 2))
	r, _, _, _ := screen.GetContent(4, 2)
	assert.Equal(t, 'X', r)
	r, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '█', r)
	assert.Equal(t, "Steps: 0", readLine(screen, 4, 20))
	assert.Contains(t, readLine(screen, 5, 40), "3x3 maze")
}

func TestHandleKeyMoves(t *testing.T) {
	g, screen, sound := newTestGame(t, 3)

	assert.True(t, g.HandleKey(tcell.KeyDown, 0))
	assert.Equal(t, 1, sound.bumps)
	assert.Equal(t, 0, g.Session().Steps())

	assert.True(t, g.HandleKey(tcell.KeyRight, 0))
	assert.True(t, g.HandleKey(tcell.KeyRune, 'd'))
	assert.True(t, g.HandleKey(tcell.KeyRune, 's'))
	assert.Equal(t, 3, g.Session().Steps())

	assert.True(t, g.HandleKey(tcell.KeyRune, 'S'))
	assert.Equal(t, 1, sound.goals)
	assert.Equal(t, "You reached the end in 4 steps!", g.Message())
	assert.Equal(t, 0, g.Session().Steps())

	g.Draw()
	assert.Equal(t, "Steps: 0", readLine(screen, 4, 20))
}

func TestHandleKeyDifficultyAndRetry(t *testing.T) {
	g, _, _ := newTestGame(t, 3)

	assert.True(t, g.HandleKey(tcell.KeyRune, '1'))
	assert.Equal(t, 11, g.Session().Snapshot().Size)

	// Force a failing size; the previous maze stays.
	g.size = 4
	assert.True(t, g.HandleKey(tcell.KeyRune, 'n'))
	assert.Equal(t, "Maze generation failed. Please try again.", g.Message())
	assert.Equal(t, 11, g.Session().Snapshot().Size)
}

func TestHandleKeyQuit(t *testing.T) {
	g, _, _ := newTestGame(t, 3)
	assert.False(t, g.HandleKey(tcell.KeyEscape, 0))
	assert.False(t, g.HandleKey(tcell.KeyCtrlC, 0))
	assert.False(t, g.HandleKey(tcell.KeyRune, 'q'))
}

func TestStartInvalidSize(t *testing.T) {
	g, _, _ := newTestGame(t, 0)
	assert.False(t, g.Session().Started())
	assert.Equal(t, "Invalid difficulty selected. Please try again.", g.Message())
	assert.True(t, g.HandleKey(tcell.KeyRight, 0))
}

func TestCommandFor(t *testing.T) {
	cases := []struct {
		key      tcell.Key
		r        rune
		expected command
	}{
		{tcell.KeyUp, 0, command{kind: cmdMove, direction: game.Up}},
		{tcell.KeyRune, 'w', command{kind: cmdMove, direction: game.Up}},
		{tcell.KeyRune, 'A', command{kind: cmdMove, direction: game.Left}},
		{tcell.KeyRune, '2', command{kind: cmdDifficulty, size: 21}},
		{tcell.KeyRune, '3', command{kind: cmdDifficulty, size: 31}},
		{tcell.KeyRune, 'n', command{kind: cmdNew}},
		{tcell.KeyRune, 'z', command{}},
		{tcell.KeyTab, 0, command{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, commandFor(tc.key, tc.r), "%v %q", tc.key, tc.r)
	}
}
