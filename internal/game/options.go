package game

import (
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures an Engine during creation.
type Option func(*engineConfig)

// engineConfig holds all configuration for creating an engine.
type engineConfig struct {
	opponent Opponent
	rng      *rand.Rand
	bus      EventBus
	clock    quartz.Clock
	logger   *log.Logger
}

// WithOpponent sets the source of opponent symbols.
// This overrides WithRand.
func WithOpponent(opponent Opponent) Option {
	return func(c *engineConfig) {
		c.opponent = opponent
	}
}

// WithRand makes the default uniform random opponent draw from rng.
func WithRand(rng *rand.Rand) Option {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithEventBus publishes engine events on bus instead of a private one.
func WithEventBus(bus EventBus) Option {
	return func(c *engineConfig) {
		c.bus = bus
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

func newEngineConfig(opts []Option) *engineConfig {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.opponent == nil {
		if cfg.rng == nil {
			now := uint64(time.Now().UnixNano())
			cfg.rng = rand.New(rand.NewPCG(now, now>>1))
		}
		cfg.opponent = NewRandomOpponent(cfg.rng)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	}
	return cfg
}
