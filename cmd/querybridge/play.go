package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/internal/game"
	"github.com/tmaxwell/querybridge/internal/randutil"
	"github.com/tmaxwell/querybridge/internal/tui"
)

// PlayCmd runs an interactive game in the terminal
type PlayCmd struct {
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Agent   string `kong:"default='heuristic',help='Opponent strategy: heuristic or pass'"`
	LogFile string `kong:"default='querybridge.log',help='Debug log file (the TUI owns the terminal)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	agent, err := resolveAgent(c.Agent)
	if err != nil {
		return err
	}

	// The TUI owns stdout, so debug traces go to a file
	debugFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug file", "error", err)
		}
	}()

	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	seed := randutil.TimeSeed()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting interactive game", "seed", seed, "agent", c.Agent)

	session := game.NewSession(randutil.New(seed), agent, game.WithLogger(logger))
	if err := tui.Run(session, logger); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
