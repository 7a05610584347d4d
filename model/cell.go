package model

import "fmt"

// CellState is the owner of a single grid cell
type CellState uint8

const (
	Dead CellState = iota
	Player1
	Player2
)

// String returns a short name for the state
func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Owner returns the player owning the cell, if any
func (s CellState) Owner() (Player, bool) {
	switch s {
	case Player1:
		return FirstPlayer, true
	case Player2:
		return SecondPlayer, true
	}
	return 0, false
}

// Player identifies one of the two competing populations
type Player int

const (
	FirstPlayer  Player = 1
	SecondPlayer Player = 2
)

// Valid reports whether p is player 1 or 2
func (p Player) Valid() bool {
	return p == FirstPlayer || p == SecondPlayer
}

// Cell returns the cell state owned by the player
func (p Player) Cell() CellState {
	if p == FirstPlayer {
		return Player1
	}
	return Player2
}

// Other returns the opposing player
func (p Player) Other() Player {
	if p == FirstPlayer {
		return SecondPlayer
	}
	return FirstPlayer
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}
