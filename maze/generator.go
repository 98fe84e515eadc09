package maze

import (
	"errors"
	"fmt"
)

// MaxAttempts is the number of carve and validate cycles tried before giving up.
const MaxAttempts = 50

var ErrExhausted = errors.New("no solvable maze found, please retry")

// AttemptHook is called after every attempt with its 1-based index and
// whether the carved grid was solvable.
type AttemptHook func(attempt int, solvable bool)

// Generator produces solvable mazes.
type Generator struct {
	rng         Rand
	maxAttempts int
	onAttempt   AttemptHook
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides MaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithAttemptHook registers a hook that observes every attempt.
func WithAttemptHook(h AttemptHook) Option {
	return func(g *Generator) {
		if h != nil {
			g.onAttempt = h
		}
	}
}

// NewGenerator returns a Generator drawing its randomness from rng.
func NewGenerator(rng Rand, opts ...Option) *Generator {
	g := &Generator{
		rng:         rng,
		maxAttempts: MaxAttempts,
		onAttempt:   func(int, bool) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a size x size grid on which (size-1, size-1) is reachable
// from (0,0). Each attempt starts from a fresh all-Wall grid. ErrExhausted is
// returned when no attempt produced a solvable maze.
func (g *Generator) Generate(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	start := Position{X: 0, Y: 0}
	goal := Position{X: size - 1, Y: size - 1}

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		grid, err := New(size)
		if err != nil {
			return nil, err
		}

		Carve(grid, g.rng)
		solvable := IsReachable(grid, start, goal)
		g.onAttempt(attempt, solvable)
		if solvable {
			return grid, nil
		}
	}

	return nil, fmt.Errorf("size %d after %d attempts: %w", size, g.maxAttempts, ErrExhausted)
}
