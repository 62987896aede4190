package game

import (
	"fmt"
	"strings"
)

// Symbol is one of the three shapes a side can play
type Symbol int

const (
	// NoSymbol marks "nothing played yet" and is never a valid choice
	NoSymbol Symbol = iota
	Circle
	Square
	Triangle
)

// Symbols lists the playable symbols in display order
var Symbols = [...]Symbol{Circle, Square, Triangle}

func (s Symbol) String() string {
	switch s {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "none"
	}
}

// Valid reports whether s is one of the three playable symbols
func (s Symbol) Valid() bool {
	return s >= Circle && s <= Triangle
}

// Beats reports whether s defeats other.
// Circle beats Triangle, Square beats Circle, Triangle beats Square.
func (s Symbol) Beats(other Symbol) bool {
	switch s {
	case Circle:
		return other == Triangle
	case Square:
		return other == Circle
	case Triangle:
		return other == Square
	}
	return false
}

// Color returns the cosmetic colour name associated with the symbol
func (s Symbol) Color() string {
	switch s {
	case Circle:
		return "red"
	case Square:
		return "green"
	case Triangle:
		return "blue"
	default:
		return ""
	}
}

// ParseSymbol converts a name such as "circle" (or its first letter) to a Symbol
func ParseSymbol(name string) (Symbol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle", "c":
		return Circle, nil
	case "square", "s":
		return Square, nil
	case "triangle", "t":
		return Triangle, nil
	}
	return NoSymbol, fmt.Errorf("%w: %q", ErrInvalidSymbol, name)
}

// Outcome is the result of a single round from the player's point of view
type Outcome int

const (
	Draw Outcome = iota
	PlayerWins
	OpponentWins
)

func (o Outcome) String() string {
	return [...]string{"draw", "player wins", "opponent wins"}[o]
}

// Resolve applies the dominance table to one round
func Resolve(player, opponent Symbol) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.Beats(opponent):
		return PlayerWins
	default:
		return OpponentWins
	}
}
