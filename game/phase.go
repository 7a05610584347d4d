package game

import "fmt"

// Phase is the controller state visible to hosts
type Phase int

const (
	Paused Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome is the result of a finished game
type Outcome int

const (
	OutcomeNone Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// EndReason records why a game finished
type EndReason int

const (
	ReasonNone EndReason = iota
	Extinction
	Stalemate
	Forced
)

func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case Extinction:
		return "extinction"
	case Stalemate:
		return "stalemate"
	case Forced:
		return "forced"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}
