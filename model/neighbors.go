package model

import "github.com/sheikhrachel/go-gol-duel/rules"

var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountNeighbors tallies the live neighbors of (x, y) per owner, wrapping around the grid edges.
// x and y must be in range.
func CountNeighbors(g *Grid, x, y int) (player1, player2 int) {
	for _, off := range neighborOffsets {
		nx := (x + off.X + g.width) % g.width
		ny := (y + off.Y + g.height) % g.height

		switch g.cells[ny][nx] {
		case Player1:
			player1++
		case Player2:
			player2++
		}
	}
	return
}

// NextState computes the state of (x, y) in the next generation from the current buffer only.
// x and y must be in range.
func NextState(g *Grid, x, y int) CellState {
	player1, player2 := CountNeighbors(g, x, y)
	total := player1 + player2

	current := g.cells[y][x]
	if current != Dead {
		if rules.Survives(total) {
			return current
		}
		return Dead
	}

	if rules.Born(total) {
		if rules.MajorityOwner(player1, player2) == 1 {
			return Player1
		}
		return Player2
	}
	return Dead
}
