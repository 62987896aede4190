package game

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

var (
	// ErrGameOver is returned by Choose once the game has ended. State is untouched.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidSymbol is returned for anything other than circle, square or triangle
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// Engine owns a game session and applies the round rules.
// Every call is a complete transaction; observers never see a half-applied round.
type Engine struct {
	mu       sync.Mutex
	state    State
	opponent Opponent
	eventBus EventBus
	clock    quartz.Clock
	logger   *log.Logger
}

// NewEngine creates an engine holding a fresh game
//
// Example usage:
//
//	// Production - time-seeded random opponent
//	e := NewEngine()
//
//	// Testing - deterministic opponent draws
//	e := NewEngine(WithOpponent(NewScriptedOpponent(Triangle, Square)))
func NewEngine(opts ...Option) *Engine {
	cfg := newEngineConfig(opts)
	return &Engine{
		state:    NewState(),
		opponent: cfg.opponent,
		eventBus: cfg.bus,
		clock:    cfg.clock,
		logger:   cfg.logger.WithPrefix("engine"),
	}
}

// GetEventBus returns the event bus for subscribing to game events
func (e *Engine) GetEventBus() EventBus {
	return e.eventBus
}

// State returns a snapshot of the current game
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Choose plays one round with the player's symbol.
// Once the game is over it is a no-op returning ErrGameOver.
func (e *Engine) Choose(player Symbol) (State, error) {
	e.mu.Lock()

	if !e.state.Active {
		snapshot := e.state.Clone()
		e.mu.Unlock()
		e.logger.Debug("Ignoring choice after game over", "symbol", player)
		return snapshot, ErrGameOver
	}
	if !player.Valid() {
		snapshot := e.state.Clone()
		e.mu.Unlock()
		return snapshot, ErrInvalidSymbol
	}

	opponent := e.opponent.Pick()
	played := e.state.Round
	outcome := e.resolveRound(player, opponent)
	events := []GameEvent{
		NewRoundResolvedEvent(played, player, opponent, outcome, e.state.PlayerHP, e.state.OpponentHP, e.clock.Now()),
	}
	if over := e.checkGameOver(); over != nil {
		events = append(events, *over)
	}

	snapshot := e.state.Clone()
	e.mu.Unlock()

	e.logger.Debug("Round resolved",
		"round", played,
		"player", player,
		"opponent", opponent,
		"outcome", outcome,
		"playerHP", snapshot.PlayerHP,
		"opponentHP", snapshot.OpponentHP)

	for _, event := range events {
		e.eventBus.Publish(event)
	}
	return snapshot, nil
}

// Retry discards the current game, history included, and starts a fresh one
func (e *Engine) Retry() State {
	e.mu.Lock()
	wasOver := !e.state.Active
	e.state = NewState()
	snapshot := e.state.Clone()
	e.mu.Unlock()

	e.logger.Info("Game reset", "wasOver", wasOver)
	e.eventBus.Publish(NewGameResetEvent(wasOver, e.clock.Now()))
	return snapshot
}

// resolveRound applies history, damage, message, round and last symbols. Caller holds mu.
func (e *Engine) resolveRound(player, opponent Symbol) Outcome {
	outcome := Resolve(player, opponent)
	s := &e.state

	s.PlayerHistory = append(s.PlayerHistory, HistoryEntry{Symbol: player, Won: outcome == PlayerWins})
	s.OpponentHistory = append(s.OpponentHistory, HistoryEntry{Symbol: opponent, Won: outcome == OpponentWins})

	switch outcome {
	case PlayerWins:
		s.OpponentHP = clampHP(s.OpponentHP - Damage)
		s.Message = MessageOpponentHit
	case OpponentWins:
		s.PlayerHP = clampHP(s.PlayerHP - Damage)
		s.Message = MessagePlayerHit
	default:
		s.Message = MessageDraw
	}

	s.Round++
	s.LastPlayer = player
	s.LastOpponent = opponent
	return outcome
}

// checkGameOver ends the game when either side is out of HP. Player exhaustion
// is checked first. The round counter is rolled back once because the final
// round does not start a new one. Caller holds mu.
func (e *Engine) checkGameOver() *GameOverEvent {
	s := &e.state

	var winner Outcome
	switch {
	case s.PlayerHP <= 0:
		winner = OpponentWins
		s.Message = MessageGameOver
	case s.OpponentHP <= 0:
		winner = PlayerWins
		if s.PlayerHP == MaxHP {
			s.Message = MessagePerfectWin
		} else {
			s.Message = MessageWin
		}
	default:
		return nil
	}

	s.Active = false
	s.Round--

	e.logger.Info("Game over", "winner", winner, "round", s.Round, "message", s.Message)
	event := NewGameOverEvent(winner, s.Message == MessagePerfectWin, s.Round, s.Message, e.clock.Now())
	return &event
}
