package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

// initializeGame sets up the initial game state: a random fill if configured,
// then every setup placement stamped for its player
func initializeGame(config utils.Config, logger *zap.Logger) (
	*game.Session,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	session, err := game.NewSessionFromConfig(config, logger)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create session")
	}

	if config.Randomize {
		session.Randomize()
	}

	for _, placement := range config.Setup {
		if session.CurrentPlayer() != model.Player(placement.Player) {
			if err = session.SwitchPlayer(); err != nil {
				return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to switch player")
			}
		}
		if err = session.Stamp(placement.Pattern, placement.X, placement.Y); err != nil {
			return nil, nil, nil, errors.Wrapf(err, "[initializeGame] failed to place %+v", placement)
		}
	}
	if session.CurrentPlayer() != model.FirstPlayer {
		if err = session.SwitchPlayer(); err != nil {
			return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to switch player")
		}
	}

	renderer := model.NewTerminalRenderer(session.GridVisible())
	stats := utils.NewStats()

	return session, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, session *game.Session) {
	player1, player2 := session.Scores()
	fmt.Printf("Grid: %dx%d | Speed: %.1f gen/sec | Workers: %d\n",
		session.Width(), session.Height(), session.Speed(), config.Workers)
	fmt.Printf("Player 1: %d cells | Player 2: %d cells\n", player1, player2)
	fmt.Println("Press Ctrl+C to end the game")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState feeds the latest generation into the performance stats
func updateGameState(session *game.Session, lastFrameTime time.Time, stats *utils.Stats) {
	player1, player2 := session.Scores()
	stats.Update(session.Generation(), player1, player2, time.Since(lastFrameTime))
}

// displayGameStatus shows the current game status
func displayGameStatus(session *game.Session, stats *utils.Stats) {
	player1, player2 := session.Scores()
	cells := float64(session.Width() * session.Height())

	fmt.Printf("Gen: %d | Player 1: %d (%.1f%%) | Player 2: %d (%.1f%%)\n",
		session.Generation(),
		player1, float64(player1)/cells*100,
		player2, float64(player2)/cells*100)
	fmt.Printf("Performance: %.1f gen/sec | Avg: %.1f vs %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePlayer1, stats.AveragePlayer2, stats.Elapsed().Seconds())
	fmt.Println(session.StatusText())
	fmt.Println()
}

// checkGenerationLimit reports whether the configured generation cap has been reached
func checkGenerationLimit(session *game.Session, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && session.Generation() >= config.MaxGenerations && session.Phase() == game.Playing {
		return true, fmt.Sprintf("\n🏁 Reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// announceResult prints the outcome and the final stats
func announceResult(session *game.Session, stats *utils.Stats) {
	fmt.Println()
	fmt.Println(session.StatusText())
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		session.Generation(), stats.Elapsed().Seconds())
	fmt.Printf("Peak population: %d vs %d\n", stats.PeakPlayer1, stats.PeakPlayer2)
}
