package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/shapeduel/internal/randutil"
	"github.com/lox/shapeduel/internal/simulator"
)

type SimulateCmd struct {
	Games    int    `default:"10000" help:"Number of games to simulate"`
	Workers  int    `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Strategy string `default:"random" enum:"random,cycle,circle,square,triangle" help:"Player strategy: ${enum}"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	Verbose  bool   `short:"V" help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	seed := c.Seed
	if seed == 0 {
		var err error
		if seed, err = randutil.NewSeed(); err != nil {
			return err
		}
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sim, err := simulator.New(simulator.Config{
		Games:    c.Games,
		Workers:  workers,
		Strategy: c.Strategy,
		Seed:     seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting simulation", "games", c.Games, "workers", workers, "strategy", c.Strategy, "seed", seed)
	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation finished", "elapsed", time.Since(start).Round(time.Millisecond))

	simulator.PrintSummary(os.Stdout, stats, c.Strategy)
	fmt.Printf("Seed: %d\n", seed)
	return nil
}
