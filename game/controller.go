package game

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/model"
)

// Start resumes the simulation. Starting while already playing is a no-op.
func (s *Session) Start() error {
	if s.gameOver {
		return errors.Wrap(ErrInvalidTransition, "[Start] game is over, clear or randomize first")
	}
	if s.playing {
		return nil
	}
	s.playing = true
	s.logger.Debug("simulation started", zap.Int("generation", s.generation))
	s.publish(EventPhase)
	return nil
}

// Stop pauses the simulation. It is always allowed.
func (s *Session) Stop() {
	if !s.playing {
		return
	}
	s.playing = false
	s.logger.Debug("simulation stopped", zap.Int("generation", s.generation))
	s.publish(EventPhase)
}

// ToggleSimulation flips between playing and paused
func (s *Session) ToggleSimulation() error {
	if s.playing {
		s.Stop()
		return nil
	}
	return s.Start()
}

// SwitchPlayer hands setup to the other player
func (s *Session) SwitchPlayer() error {
	if err := s.requireSetup("SwitchPlayer"); err != nil {
		return err
	}
	s.currentPlayer = s.currentPlayer.Other()
	s.publish(EventPhase)
	return nil
}

// ToggleCell flips (x, y) between dead and the current player's ownership.
// A cell owned by the other player is not captured: the call fails with
// ErrCellOccupied and the grid is unchanged, so two toggles always cancel out.
func (s *Session) ToggleCell(x, y int) error {
	if err := s.requireSetup("ToggleCell"); err != nil {
		return err
	}
	state, err := s.grid.Get(x, y)
	if err != nil {
		return errors.Wrap(err, "[ToggleCell] failed to read cell")
	}

	mine := s.currentPlayer.Cell()
	switch state {
	case mine:
		state = model.Dead
	case model.Dead:
		state = mine
	default:
		return errors.Wrapf(ErrCellOccupied, "[ToggleCell] (%d, %d) is %s", x, y, state)
	}
	if err = s.grid.Set(x, y, state); err != nil {
		return errors.Wrap(err, "[ToggleCell] failed to write cell")
	}

	s.edited()
	return nil
}

// Stamp places a catalog pattern for the current player with its origin at (x, y).
// Offsets falling outside the grid are skipped.
func (s *Session) Stamp(name string, x, y int) error {
	if err := s.requireSetup("Stamp"); err != nil {
		return err
	}
	pattern, err := model.LookupPattern(name)
	if err != nil {
		return errors.Wrap(err, "[Stamp] failed to find pattern")
	}

	placed := s.grid.Stamp(pattern, x, y, s.currentPlayer.Cell())
	s.logger.Debug("pattern stamped",
		zap.String("pattern", name),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Stringer("player", s.currentPlayer),
		zap.Int("placed", placed),
	)

	s.edited()
	return nil
}

// Clear kills every cell and returns the session to a fresh paused state
func (s *Session) Clear() {
	s.grid.Clear()
	s.reset()
	s.logger.Debug("grid cleared")
	s.publish(EventEdited)
}

// Randomize refills the grid from the configured distribution and returns to a paused state
func (s *Session) Randomize() {
	s.grid.Randomize(s.rng, s.distribution.Player1, s.distribution.Player2)
	s.reset()
	s.logger.Debug("grid randomized",
		zap.Int("player1", s.player1Score),
		zap.Int("player2", s.player2Score),
	)
	s.publish(EventEdited)
}

// ForceEnd finishes the game now, deciding the winner by score
func (s *Session) ForceEnd() error {
	if s.gameOver {
		return errors.Wrap(ErrInvalidTransition, "[ForceEnd] game is already over")
	}
	s.endGame(s.outcomeByScore(), Forced)
	s.publish(EventGameOver)
	return nil
}

// ToggleGridVisible flips the grid-line rendering hint. Not allowed while playing.
func (s *Session) ToggleGridVisible() error {
	if s.playing {
		return errors.Wrap(ErrInvalidTransition, "[ToggleGridVisible] cannot change grid while playing")
	}
	s.showGrid = !s.showGrid
	s.publish(EventPhase)
	return nil
}

// SetGenerationInterval stores the time hosts should wait between generations
func (s *Session) SetGenerationInterval(interval time.Duration) error {
	if interval <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "[SetGenerationInterval] %v", interval)
	}
	s.interval = interval
	return nil
}

// SetSpeed sets the interval from a rate in generations per second, clamped to [MinSpeed, MaxSpeed]
func (s *Session) SetSpeed(generationsPerSecond float64) error {
	if generationsPerSecond <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "[SetSpeed] %v generations per second", generationsPerSecond)
	}
	speed := min(max(generationsPerSecond, MinSpeed), MaxSpeed)
	return s.SetGenerationInterval(time.Duration(float64(time.Second) / speed))
}

// SetDistribution replaces the densities used by Randomize
func (s *Session) SetDistribution(d Distribution) error {
	if err := d.Validate(); err != nil {
		return errors.Wrap(err, "[SetDistribution] rejected")
	}
	s.distribution = d
	return nil
}

func (s *Session) requireSetup(op string) error {
	if s.playing || s.gameOver {
		return errors.Wrapf(ErrInvalidTransition, "[%s] only allowed while paused, session is %s", op, s.Phase())
	}
	return nil
}

// edited rescores after a setup edit and restarts stability tracking
func (s *Session) edited() {
	s.rescore()
	s.stability.Reset()
	s.publish(EventEdited)
}

func (s *Session) reset() {
	s.playing = false
	s.gameOver = false
	s.outcome = OutcomeNone
	s.reason = ReasonNone
	s.generation = 0
	s.stability.Reset()
	s.rescore()
}
