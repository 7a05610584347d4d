package ui

import (
	"fmt"
	"strings"

	"github.com/sheikhrachel/go-gol-duel/game"
)

// HUDLines builds the status panel text shown under the grid
func HUDLines(snap game.Snapshot, speed float64) []string {
	grid := "OFF"
	if snap.GridVisible {
		grid = "ON"
	}
	lines := []string{
		fmt.Sprintf("Player 1: %d   Player 2: %d", snap.Player1, snap.Player2),
		fmt.Sprintf("Current: %s   Gen: %d", snap.CurrentPlayer, snap.Generation),
		fmt.Sprintf("Speed: %.1fx   Grid: %s", speed, grid),
	}
	if snap.Phase != game.GameOver {
		return append(lines, "Status: "+strings.ToUpper(snap.Phase.String()[:1])+snap.Phase.String()[1:])
	}
	return append(lines, "GAME OVER: "+snap.Outcome.String()+" ("+snap.Reason.String()+")")
}
