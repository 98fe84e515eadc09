package i

import (
	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/google/uuid"
)

// GameSessionManager owns the single-player game sessions served by the API.
type GameSessionManager interface {
	// NewSession generates a maze of the given size and stores a session for it.
	// A size of 0 selects the default size.
	NewSession(size int) (uuid.UUID, game.State, error)

	// Restart generates a new maze for an existing session.
	// The session keeps its previous maze when generation fails.
	Restart(id uuid.UUID, size int) (game.State, error)

	// Move applies a move to the session's player.
	Move(id uuid.UUID, d game.Direction) (game.MoveResult, game.State, error)

	// State returns a snapshot of the session.
	State(id uuid.UUID) (game.State, error)

	// Remove deletes the session.
	Remove(id uuid.UUID) error
}
