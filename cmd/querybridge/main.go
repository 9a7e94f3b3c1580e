package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/internal/bot"
	"github.com/tmaxwell/querybridge/internal/game"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive game in the terminal"`
	Serve    ServeCmd         `cmd:"" help:"Expose a game session over WebSocket"`
	Simulate SimulateCmd      `cmd:"" help:"Run automated games and report outcomes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("querybridge"),
		kong.Description("A trick-taking card game with a coded-information auction"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// setupLogger configures a stderr logger at the requested verbosity
func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// resolveAgent maps a strategy name to a decision agent
func resolveAgent(name string) (game.Agent, error) {
	switch name {
	case "heuristic":
		return bot.Heuristic{}, nil
	case "pass":
		return bot.PassBot{}, nil
	default:
		return nil, fmt.Errorf("unknown agent strategy: %q (want heuristic or pass)", name)
	}
}
