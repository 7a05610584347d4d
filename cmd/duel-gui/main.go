//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/ui"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

func main() {
	cfg := ui.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	config, err := utils.LoadConfig(cfg.ConfigPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if cfg.Seed != 0 {
		config.Seed = cfg.Seed
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "workers" {
			config.Workers = cfg.Workers
		}
	})

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	session, err := game.NewSessionFromConfig(config, logger)
	if err != nil {
		logger.Fatal("failed to create session", zap.Error(err))
	}
	if config.Randomize {
		session.Randomize()
	}

	app := ui.New(session, cfg.Scale, logger)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowTitle("go-gol-duel")
	ebiten.SetWindowSize(w, h)

	if err = ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
