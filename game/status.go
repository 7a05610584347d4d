package game

import "fmt"

// StatusText describes the session for a status line: the phase while running,
// and the result with the final scores once the game is over
func (s *Session) StatusText() string {
	switch s.Phase() {
	case Playing:
		return "Status: Playing"
	case Paused:
		return "Status: Paused"
	}

	msg := "GAME OVER\n"
	if s.reason == Stalemate {
		msg += "Field stabilized\n"
	}
	return msg + s.resultText()
}

func (s *Session) resultText() string {
	p1, p2 := s.player1Score, s.player2Score
	if s.reason == Extinction {
		switch s.outcome {
		case Draw:
			return "DRAW! Neither player has cells left!"
		case Player2Wins:
			return "PLAYER 2 WINS! Player 1 has no cells left!"
		default:
			return "PLAYER 1 WINS! Player 2 has no cells left!"
		}
	}

	switch s.outcome {
	case Player1Wins:
		return fmt.Sprintf("PLAYER 1 WINS! %d vs %d", p1, p2)
	case Player2Wins:
		return fmt.Sprintf("PLAYER 2 WINS! %d vs %d", p2, p1)
	default:
		return fmt.Sprintf("DRAW! %d vs %d", p1, p2)
	}
}
