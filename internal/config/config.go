// Package config loads shapeduel settings from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/shapeduel/internal/game"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "shapeduel.hcl"

// Config represents the complete configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
	Log  LogSettings  `hcl:"log,block"`
}

// GameSettings controls the engine
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"` // 0 picks a fresh seed each run
}

// UISettings controls the terminal interface
type UISettings struct {
	Theme       string `hcl:"theme,optional"`
	HistorySize int    `hcl:"history_size,optional"`
	ShowStats   *bool  `hcl:"show_stats,optional"`
}

// LogSettings controls the debug log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	showStats := true
	return &Config{
		UI: UISettings{
			Theme:       "default",
			HistorySize: game.DefaultHistoryShown,
			ShowStats:   &showStats,
		},
		Log: LogSettings{
			Level: "info",
			File:  "shapeduel.log",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Blocks are optional; decode into a shape where they may be absent
	var raw struct {
		Game *GameSettings `hcl:"game,block"`
		UI   *UISettings   `hcl:"ui,block"`
		Log  *LogSettings  `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Game != nil {
		config.Game = *raw.Game
	}
	if raw.UI != nil {
		if raw.UI.Theme != "" {
			config.UI.Theme = raw.UI.Theme
		}
		if raw.UI.HistorySize != 0 {
			config.UI.HistorySize = raw.UI.HistorySize
		}
		if raw.UI.ShowStats != nil {
			config.UI.ShowStats = raw.UI.ShowStats
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			config.Log.File = raw.Log.File
		}
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validThemes := map[string]bool{
		"default": true,
		"mono":    true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.UI.HistorySize < 1 {
		return fmt.Errorf("history size must be positive")
	}

	return nil
}

// StatsVisible reports whether the session statistics sidebar is shown
func (c *Config) StatsVisible() bool {
	return c.UI.ShowStats == nil || *c.UI.ShowStats
}
