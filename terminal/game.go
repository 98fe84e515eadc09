// Package terminal draws a maze game on a tcell screen and turns key presses into moves.
package terminal

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/gdamore/tcell/v2"
)

// Difficulty maps a key to a maze size.
type Difficulty struct {
	Key  rune
	Name string
	Size int
}

// Difficulties lists the selectable sizes.
var Difficulties = []Difficulty{
	{Key: '1', Name: "easy", Size: 11},
	{Key: '2', Name: "medium", Size: 21},
	{Key: '3', Name: "hard", Size: 31},
}

const helpLine = "arrows/WASD move  1-3 difficulty  n new maze  esc/q quit"

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	goalStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle   = tcell.StyleDefault
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdMove
	cmdNew
	cmdDifficulty
)

type command struct {
	kind      commandKind
	direction game.Direction
	size      int
}

// Game is the terminal front end for one Session.
type Game struct {
	screen  tcell.Screen
	session *game.Session
	size    int
	sound   Sound
	message string
}

// New creates a Game drawing on an initialized screen.
func New(screen tcell.Screen, gen game.Generator, size int, sound Sound) *Game {
	if sound == nil {
		sound = Silent{}
	}
	return &Game{
		screen:  screen,
		session: game.NewSession(gen),
		size:    size,
		sound:   sound,
	}
}

// Start generates a maze of the current size. A failure keeps the previous
// maze on screen and asks the player to retry.
func (g *Game) Start() {
	err := g.session.Start(g.size)
	switch {
	case err == nil:
		g.message = fmt.Sprintf("%dx%d maze, reach the X", g.size, g.size)
	case errors.Is(err, maze.ErrExhausted):
		g.message = "Maze generation failed. Please try again."
	case errors.Is(err, maze.ErrInvalidSize):
		g.message = "Invalid difficulty selected. Please try again."
	default:
		g.message = err.Error()
	}
}

// HandleKey applies one key press and reports whether the game should keep running.
func (g *Game) HandleKey(key tcell.Key, r rune) bool {
	cmd := commandFor(key, r)
	switch cmd.kind {
	case cmdQuit:
		return false
	case cmdNew:
		g.Start()
	case cmdDifficulty:
		g.size = cmd.size
		g.Start()
	case cmdMove:
		if !g.session.Started() {
			return true
		}
		res := g.session.MoveDirection(cmd.direction)
		switch res.Outcome {
		case game.Blocked:
			g.sound.Bump()
		case game.Reached:
			g.sound.Goal()
			g.message = fmt.Sprintf("You reached the end in %d steps!", res.Steps)
			g.session.ResetSteps()
		case game.Moved:
			g.message = ""
		}
	}
	return true
}

// Draw renders the maze, the status line and the message line.
func (g *Game) Draw() {
	g.screen.Clear()
	state := g.session.Snapshot()

	for y, row := range state.Rows {
		for x, cell := range row {
			pos := maze.Position{X: x, Y: y}
			switch {
			case pos == state.Player:
				g.putCell(x, y, '(', ')', playerStyle)
			case pos == state.Goal:
				g.putCell(x, y, 'X', 'X', goalStyle)
			case cell == maze.Wall:
				g.putCell(x, y, '█', '█', wallStyle)
			}
		}
	}

	line := state.Size + 1
	g.putText(0, line, fmt.Sprintf("Steps: %d", state.Steps))
	g.putText(0, line+1, g.message)
	g.putText(0, line+2, helpLine)
	g.screen.Show()
}

// Run draws and handles events until the player quits.
func (g *Game) Run() {
	g.Draw()
	for {
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !g.HandleKey(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			return
		}
		g.Draw()
	}
}

// Message returns the current message line.
func (g *Game) Message() string {
	return g.message
}

// Session returns the underlying session.
func (g *Game) Session() *game.Session {
	return g.session
}

// putCell draws a maze cell two columns wide so it looks square.
func (g *Game) putCell(x, y int, left, right rune, style tcell.Style) {
	g.screen.SetContent(2*x, y, left, nil, style)
	g.screen.SetContent(2*x+1, y, right, nil, style)
}

func (g *Game) putText(x, y int, text string) {
	for _, r := range text {
		g.screen.SetContent(x, y, r, nil, textStyle)
		x++
	}
}

// commandFor maps arrows, WASD, difficulty digits, n and escape.
func commandFor(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{kind: cmdQuit}
	case tcell.KeyUp:
		return command{kind: cmdMove, direction: game.Up}
	case tcell.KeyDown:
		return command{kind: cmdMove, direction: game.Down}
	case tcell.KeyLeft:
		return command{kind: cmdMove, direction: game.Left}
	case tcell.KeyRight:
		return command{kind: cmdMove, direction: game.Right}
	case tcell.KeyRune:
	default:
		return command{}
	}

	for _, d := range Difficulties {
		if r == d.Key {
			return command{kind: cmdDifficulty, size: d.Size}
		}
	}

	switch r {
	case 'n', 'N':
		return command{kind: cmdNew}
	case 'q', 'Q':
		return command{kind: cmdQuit}
	}

	if d, err := game.ParseDirection(string(r)); err == nil {
		return command{kind: cmdMove, direction: d}
	}
	return command{}
}
