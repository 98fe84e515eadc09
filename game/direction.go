package game

import (
	"errors"
	"strings"
)

// Direction is one of the four moves a player can ask for.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var ErrUnknownDirection = errors.New("unknown direction")

// directionNames maps key names and aliases to directions.
var directionNames = map[string]Direction{
	"up":         Up,
	"w":          Up,
	"arrowup":    Up,
	"north":      Up,
	"down":       Down,
	"s":          Down,
	"arrowdown":  Down,
	"south":      Down,
	"left":       Left,
	"a":          Left,
	"arrowleft":  Left,
	"west":       Left,
	"right":      Right,
	"d":          Right,
	"arrowright": Right,
	"east":       Right,
}

// ParseDirection converts a direction or key name into a Direction.
// Matching ignores case and surrounding spaces.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrUnknownDirection
	}
	return d, nil
}

// Delta returns the (dx, dy) movement for d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
