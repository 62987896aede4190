package game

import (
	rand "math/rand/v2"
	"sync"
)

// Opponent picks the opponent's symbol for each round
type Opponent interface {
	Pick() Symbol
}

// OpponentFunc adapts a plain function to the Opponent interface
type OpponentFunc func() Symbol

func (f OpponentFunc) Pick() Symbol { return f() }

// RandomOpponent draws uniformly from the three symbols
type RandomOpponent struct {
	rng *rand.Rand
}

// NewRandomOpponent creates an opponent backed by rng.
// The RNG is required so that seeding stays explicit at the call site.
func NewRandomOpponent(rng *rand.Rand) *RandomOpponent {
	if rng == nil {
		panic("rng is required for random opponent")
	}
	return &RandomOpponent{rng: rng}
}

func (o *RandomOpponent) Pick() Symbol {
	return Symbols[o.rng.IntN(len(Symbols))]
}

// ScriptedOpponent replays a fixed sequence of symbols, wrapping around at the end.
// Useful for deterministic tests and replays.
type ScriptedOpponent struct {
	mu      sync.Mutex
	symbols []Symbol
	next    int
}

// NewScriptedOpponent creates an opponent that plays symbols in order
func NewScriptedOpponent(symbols ...Symbol) *ScriptedOpponent {
	if len(symbols) == 0 {
		panic("scripted opponent needs at least one symbol")
	}
	return &ScriptedOpponent{symbols: append([]Symbol{}, symbols...)}
}

func (o *ScriptedOpponent) Pick() Symbol {
	o.mu.Lock()
	defer o.mu.Unlock()
	s := o.symbols[o.next%len(o.symbols)]
	o.next++
	return s
}
