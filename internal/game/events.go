package game

import (
	"sync"
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundResolved EventType = "round_resolved"
	EventTypeGameOver      EventType = "game_over"
	EventTypeGameReset     EventType = "game_reset"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything the engine publishes after a transaction
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundResolvedEvent is published after every accepted choice
type RoundResolvedEvent struct {
	Round      int // the round that was just played
	Player     Symbol
	Opponent   Symbol
	Outcome    Outcome
	PlayerHP   int
	OpponentHP int
	timestamp  time.Time
}

func (e RoundResolvedEvent) EventType() EventType { return EventTypeRoundResolved }
func (e RoundResolvedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundResolvedEvent creates a new round resolved event
func NewRoundResolvedEvent(round int, player, opponent Symbol, outcome Outcome, playerHP, opponentHP int, at time.Time) RoundResolvedEvent {
	return RoundResolvedEvent{
		Round:      round,
		Player:     player,
		Opponent:   opponent,
		Outcome:    outcome,
		PlayerHP:   playerHP,
		OpponentHP: opponentHP,
		timestamp:  at,
	}
}

// GameOverEvent is published when either side runs out of HP
type GameOverEvent struct {
	Winner    Outcome // PlayerWins or OpponentWins
	Perfect   bool
	Rounds    int // final round counter after the game-over decrement
	Message   string
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(winner Outcome, perfect bool, rounds int, message string, at time.Time) GameOverEvent {
	return GameOverEvent{
		Winner:    winner,
		Perfect:   perfect,
		Rounds:    rounds,
		Message:   message,
		timestamp: at,
	}
}

// GameResetEvent is published by Retry
type GameResetEvent struct {
	WasOver   bool
	timestamp time.Time
}

func (e GameResetEvent) EventType() EventType { return EventTypeGameReset }
func (e GameResetEvent) Timestamp() time.Time { return e.timestamp }

// NewGameResetEvent creates a new game reset event
func NewGameResetEvent(wasOver bool, at time.Time) GameResetEvent {
	return GameResetEvent{WasOver: wasOver, timestamp: at}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	bus.mu.RLock()
	subs := append([]EventSubscriber{}, bus.subscribers...)
	bus.mu.RUnlock()

	for _, subscriber := range subs {
		subscriber.OnEvent(event)
	}
}
