package game

import "go.uber.org/zap"

// checkTermination ends the game on extinction, or once the stability window
// reports enough unchanged generations. Extinction is checked first and skips the window.
func (s *Session) checkTermination() {
	switch {
	case s.player1Score == 0 && s.player2Score == 0:
		s.endGame(Draw, Extinction)
	case s.player1Score == 0:
		s.endGame(Player2Wins, Extinction)
	case s.player2Score == 0:
		s.endGame(Player1Wins, Extinction)
	case s.stability.Observe(s.grid):
		s.endGame(s.outcomeByScore(), Stalemate)
	}
}

func (s *Session) outcomeByScore() Outcome {
	switch {
	case s.player1Score > s.player2Score:
		return Player1Wins
	case s.player2Score > s.player1Score:
		return Player2Wins
	default:
		return Draw
	}
}

func (s *Session) endGame(outcome Outcome, reason EndReason) {
	s.gameOver = true
	s.playing = false
	s.outcome = outcome
	s.reason = reason

	s.logger.Info("game over",
		zap.Stringer("outcome", outcome),
		zap.Stringer("reason", reason),
		zap.Int("generation", s.generation),
		zap.Int("player1", s.player1Score),
		zap.Int("player2", s.player2Score),
	)
}
