package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/shapeduel/internal/config"
	"github.com/lox/shapeduel/internal/game"
	"github.com/lox/shapeduel/internal/randutil"
	"github.com/lox/shapeduel/internal/statistics"
	"github.com/lox/shapeduel/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type PlayCmd struct {
	Config   string `short:"c" default:"shapeduel.hcl" help:"Path to HCL config file"`
	Seed     int64  `help:"Opponent RNG seed (0 for random)"`
	LogLevel string `help:"Log level (debug, info, warn, error)"`
	LogFile  string `help:"Debug log file"`
	NoColor  bool   `help:"Disable colours"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
		Level:           level,
	})

	seed := cfg.Game.Seed
	if seed == 0 {
		if seed, err = randutil.NewSeed(); err != nil {
			return err
		}
	}
	logger.Info("Starting interactive game", "seed", seed)

	tui.ApplyTheme(cfg.UI.Theme, c.NoColor)

	engine := game.NewEngine(
		game.WithRand(randutil.New(seed)),
		game.WithLogger(logger),
	)
	stats := &statistics.Statistics{}
	engine.GetEventBus().Subscribe(stats)

	opts := tui.Options{
		HistorySize: cfg.UI.HistorySize,
		Logger:      logger,
	}
	if cfg.StatsVisible() {
		opts.Stats = stats
	}

	program := tea.NewProgram(tui.NewTUIModel(engine, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("Session finished", "games", stats.Games, "wins", stats.Wins, "rounds", stats.RoundsPlayed)
	printSessionSummary(stats)
	return nil
}

func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.NoColor {
		cfg.UI.Theme = "mono"
	}
}

func printSessionSummary(stats *statistics.Statistics) {
	if stats.Games == 0 && stats.RoundsPlayed == 0 {
		return
	}
	fmt.Println(titleStyle.Render(" ● ■ ▲ shapeduel "))
	fmt.Printf("Games: %d  Wins: %d  Losses: %d  Perfect: %d  Rounds: %d\n",
		stats.Games, stats.Wins, stats.Losses, stats.PerfectWins, stats.RoundsPlayed)
}
