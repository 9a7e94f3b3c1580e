package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/tmaxwell/querybridge/internal/game"
	"github.com/tmaxwell/querybridge/internal/randutil"
	"github.com/tmaxwell/querybridge/internal/server"
)

// ServeCmd exposes a single game session over WebSocket
type ServeCmd struct {
	Config string `kong:"default='querybridge.hcl',help='HCL configuration file'"`
	Addr   string `kong:"help='Listen address override (host:port)'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed override (optional)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(c.Debug || cfg.Server.LogLevel == "debug")

	agent, err := resolveAgent(cfg.Game.Agent)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	addr := cfg.ListenAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	logger.Info("Hosting game session", "seed", seed, "agent", cfg.Game.Agent, "addr", addr)

	session := game.NewSession(randutil.New(seed), agent, game.WithLogger(logger))
	service := server.NewSessionService(session, logger)
	srv := server.NewServer(addr, service, logger, quartz.NewReal())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		log.Error("Server failed", "error", err)
		return err
	}
	return nil
}
