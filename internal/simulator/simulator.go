package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/shapeduel/internal/game"
	"github.com/lox/shapeduel/internal/randutil"
	"github.com/lox/shapeduel/internal/statistics"
)

// maxRoundsPerGame guards against a runaway game; a fair game ends in a
// handful of rounds, so hitting this means something is broken.
const maxRoundsPerGame = 10_000

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int
	Strategy string
	Seed     int64
	Logger   *log.Logger
}

// Simulator plays complete games headlessly against the random opponent
type Simulator struct {
	config   Config
	strategy Strategy
	logger   *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games < 0 {
		return nil, fmt.Errorf("games must not be negative: %d", config.Games)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Strategy == "" {
		config.Strategy = "random"
	}
	strategy, err := NewStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Simulator{
		config:   config,
		strategy: strategy,
		logger:   logger.WithPrefix("simulator"),
	}, nil
}

// Run plays all configured games and returns the merged statistics.
// Results depend only on the seed, games and workers, not on scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	workers := min(s.config.Workers, max(s.config.Games, 1))
	perWorker := s.config.Games / workers
	remainder := s.config.Games % workers

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		games := perWorker
		if w < remainder {
			games++ // Distribute remainder games
		}

		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, games)
			if err != nil {
				return err
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "games", total.Games, "rounds", total.RoundsPlayed, "workers", workers)
	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, worker, games int) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	playerRng := randutil.New(randutil.Derive(s.config.Seed, 2*worker))
	engine := game.NewEngine(
		game.WithRand(randutil.New(randutil.Derive(s.config.Seed, 2*worker+1))),
		game.WithLogger(s.logger),
	)
	engine.GetEventBus().Subscribe(stats)

	choices := 0
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for rounds := 0; ; rounds++ {
			if rounds >= maxRoundsPerGame {
				return nil, fmt.Errorf("worker %d game %d did not finish after %d rounds", worker, i+1, rounds)
			}
			state, err := engine.Choose(s.strategy(choices, playerRng))
			if err != nil {
				return nil, fmt.Errorf("worker %d game %d: %w", worker, i+1, err)
			}
			choices++
			if state.Over() {
				break
			}
		}
		engine.Retry()
	}

	s.logger.Debug("Worker finished", "worker", worker, "games", games)
	return stats, nil
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, strategy string) {
	fmt.Fprintf(w, "\n=== RESULTS (%s strategy) ===\n", strategy)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Wins: %d (%.1f%%), perfect: %d\n", stats.Wins, stats.WinRate()*100, stats.PerfectWins)
	fmt.Fprintf(w, "Losses: %d\n", stats.Losses)

	fmt.Fprintf(w, "\n=== GAME LENGTH ===\n")
	fmt.Fprintf(w, "Mean: %.2f rounds\n", stats.MeanRounds())
	fmt.Fprintf(w, "Median: %.1f rounds\n", stats.MedianRounds())
	fmt.Fprintf(w, "Std Dev: %.2f rounds\n", stats.StdDev())

	fmt.Fprintf(w, "\n=== ROUNDS ===\n")
	fmt.Fprintf(w, "Played: %d (won %d, lost %d, drawn %d)\n",
		stats.RoundsPlayed, stats.RoundWins, stats.RoundLosses, stats.RoundDraws)
	for _, sym := range game.Symbols {
		fmt.Fprintf(w, "%-9s player %6d  opponent %6d\n", sym.String()+":",
			stats.PlayerPicks[sym], stats.OpponentPicks[sym])
	}
}
