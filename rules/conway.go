package rules

/*
Survives reports whether a live cell stays alive with the given number of live neighbors.

Conway's Game of Life survival rule: neighbors == 2 || neighbors == 3
*/
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// Born reports whether a dead cell comes alive with the given number of live neighbors
func Born(neighbors int) bool {
	return neighbors == 3
}

/*
MajorityOwner picks the owner (1 or 2) of a newly born cell from the per-player neighbor counts.

A birth always has exactly 3 live neighbors, so the two counts can never be equal there; the
strict comparison still hands any tie to player 2.
*/
func MajorityOwner(player1, player2 int) int {
	if player1 > player2 {
		return 1
	}
	return 2
}
