// Package gameapi exposes single-player maze games over HTTP and websockets.
package gameapi

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/maze"
)

const (
	wallRune = '#'
	openRune = '.'
)

// NewGameRequest asks for a new maze. A missing or zero size selects the default.
type NewGameRequest struct {
	Size int `json:"size"`
}

// MoveRequest carries a direction or key name such as "up", "w" or "ArrowUp".
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// StateResponse is the renderable state of a game.
type StateResponse struct {
	Size   int           `json:"size"`
	Rows   []string      `json:"rows"` // '#' for walls, '.' for open cells
	Player maze.Position `json:"player"`
	Goal   maze.Position `json:"goal"`
	Steps  int           `json:"steps"`
}

// NewGameResponse is returned when a game is created.
type NewGameResponse struct {
	ID    string        `json:"id"`
	Token string        `json:"token"`
	State StateResponse `json:"state"`
}

// MoveResponse reports the outcome of a move.
type MoveResponse struct {
	Outcome string        `json:"outcome"`
	Steps   int           `json:"steps"`
	Message string        `json:"message,omitempty"`
	State   StateResponse `json:"state"`
}

func stateResponse(s game.State) StateResponse {
	rows := make([]string, len(s.Rows))
	for y, row := range s.Rows {
		var b strings.Builder
		b.Grow(len(row))
		for _, cell := range row {
			if cell == maze.Open {
				b.WriteRune(openRune)
			} else {
				b.WriteRune(wallRune)
			}
		}
		rows[y] = b.String()
	}

	return StateResponse{
		Size:   s.Size,
		Rows:   rows,
		Player: s.Player,
		Goal:   s.Goal,
		Steps:  s.Steps,
	}
}

func moveResponse(res game.MoveResult, s game.State) MoveResponse {
	resp := MoveResponse{
		Outcome: res.Outcome.String(),
		Steps:   res.Steps,
		State:   stateResponse(s),
	}

	switch res.Outcome {
	case game.Reached:
		resp.Message = fmt.Sprintf("You reached the end in %d steps!", res.Steps)
	case game.Blocked:
		resp.Message = "blocked"
	}
	return resp
}
