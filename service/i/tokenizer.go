package i

import (
	"time"

	"github.com/google/uuid"
)

// Tokenizer issues and checks the tokens that grant access to one game session.
type Tokenizer interface {
	// Generate creates a token for the given game that expires after expTime.
	Generate(gameID uuid.UUID, expTime time.Duration) (string, error)

	// Decode validates a token and returns the game it grants access to.
	Decode(token string) (uuid.UUID, error)
}
