package simulator

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/shapeduel/internal/game"
)

// ErrUnknownStrategy is returned by NewStrategy for names it doesn't know
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks the simulated player's symbol for a round.
// round counts every choice made by the worker, starting at zero.
type Strategy func(round int, rng *rand.Rand) game.Symbol

var strategies = map[string]Strategy{
	"random": func(_ int, rng *rand.Rand) game.Symbol {
		return game.Symbols[rng.IntN(len(game.Symbols))]
	},
	"cycle": func(round int, _ *rand.Rand) game.Symbol {
		return game.Symbols[round%len(game.Symbols)]
	},
	"circle":   fixed(game.Circle),
	"square":   fixed(game.Square),
	"triangle": fixed(game.Triangle),
}

func fixed(sym game.Symbol) Strategy {
	return func(int, *rand.Rand) game.Symbol { return sym }
}

// NewStrategy looks up a strategy by name
func NewStrategy(name string) (Strategy, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// StrategyNames returns the known strategy names, sorted
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
