package main

import (
	"context"
	"os"

	"github.com/dryarchive/worldimport/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("worldimport.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("worldimport.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:      "worldimport",
		Usage:     "Import a game-world batch into an object store and seed popularity relations",
		Version:   "0.3.0",
		ArgsUsage: "<template-path> <output-path> [seed]",
		Action:    runner.Import,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
