package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON or YAML config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	logger, err := utils.NewLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	session, renderer, stats, err := initializeGame(config, logger)
	if err != nil {
		logger.Fatal("failed to initialize game", zap.Error(err))
	}
	displayGameInfo(config, session)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err = session.Start(); err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}

	ticker := time.NewTicker(session.GenerationInterval())
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for session.Phase() == game.Playing {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			session.Stop()
			if err = session.ForceEnd(); err != nil {
				logger.Warn("failed to end game", zap.Error(err))
			}
		case <-ticker.C:
			frameStart := time.Now()
			if err = session.Advance(); err != nil {
				logger.Error("failed to advance generation", zap.Error(err))
				return
			}
			updateGameState(session, lastFrameTime, stats)
			lastFrameTime = frameStart

			if err = renderer.Clear(); err != nil {
				logger.Warn("failed to clear terminal", zap.Error(err))
			}
			displayGameStatus(session, stats)
			snapshot := session.Snapshot()
			renderer.ShowGrid = snapshot.GridVisible
			if err = renderer.Display(snapshot); err != nil {
				logger.Error("failed to render grid", zap.Error(err))
				return
			}

			if reached, msg := checkGenerationLimit(session, config); reached {
				fmt.Println(msg)
				if err = session.ForceEnd(); err != nil {
					logger.Warn("failed to end game", zap.Error(err))
				}
			}
		}
	}

	announceResult(session, stats)
}
