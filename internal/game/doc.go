// Package game implements the round rules and health state machine for shapeduel.
//
// The main type is Engine, which owns a single game session. A game has two
// states, active and over. Choose plays a round while active; Retry is the only
// way back from over.
//
// # Basic Usage
//
//	e := game.NewEngine()
//	state, err := e.Choose(game.Circle)
//	if errors.Is(err, game.ErrGameOver) {
//	    state = e.Retry()
//	}
//
// # Deterministic Testing
//
// Opponent draws go through the Opponent interface. Inject a seeded RNG or a
// scripted sequence:
//
//	rng := randutil.New(42)
//	e := game.NewEngine(game.WithRand(rng))
//
//	e := game.NewEngine(game.WithOpponent(game.NewScriptedOpponent(game.Triangle, game.Square)))
//
// # Events
//
// After each transaction the engine publishes RoundResolvedEvent,
// GameOverEvent or GameResetEvent on its EventBus. Timestamps come from the
// engine's quartz.Clock so tests can pin them with quartz.NewMock.
package game
