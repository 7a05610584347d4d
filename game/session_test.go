package game

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sheikhrachel/go-gol-duel/model"
)

func newTestSession(c *qt.C, width, height int) *Session {
	opts := DefaultOptions()
	opts.Seed = 42
	s, err := NewSession(width, height, opts)
	c.Assert(err, qt.IsNil)
	return s
}

// stampAs places a pattern for the given player and leaves the session on that player
func stampAs(c *qt.C, s *Session, player model.Player, name string, x, y int) {
	if s.CurrentPlayer() != player {
		c.Assert(s.SwitchPlayer(), qt.IsNil)
	}
	c.Assert(s.Stamp(name, x, y), qt.IsNil)
}

func countCells(snap Snapshot) (player1, player2 int) {
	for _, state := range snap.Cells {
		switch state {
		case model.Player1:
			player1++
		case model.Player2:
			player2++
		}
	}
	return
}

func TestNewSessionValidation(t *testing.T) {
	c := qt.New(t)

	_, err := NewSession(0, 5, DefaultOptions())
	c.Assert(errors.Is(err, model.ErrInvalidDimensions), qt.IsTrue)

	opts := DefaultOptions()
	opts.GenerationInterval = 0
	_, err = NewSession(5, 5, opts)
	c.Assert(errors.Is(err, ErrInvalidInterval), qt.IsTrue)

	opts = DefaultOptions()
	opts.Distribution = Distribution{Player1: 0.7, Player2: 0.7}
	_, err = NewSession(5, 5, opts)
	c.Assert(errors.Is(err, ErrInvalidDistribution), qt.IsTrue)
}

func TestNewSessionInitialState(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 30, 20)

	c.Assert(s.Width(), qt.Equals, 30)
	c.Assert(s.Height(), qt.Equals, 20)
	c.Assert(s.Phase(), qt.Equals, Paused)
	c.Assert(s.Outcome(), qt.Equals, OutcomeNone)
	c.Assert(s.CurrentPlayer(), qt.Equals, model.FirstPlayer)
	c.Assert(s.GridVisible(), qt.IsTrue)
	c.Assert(s.GenerationInterval(), qt.Equals, DefaultGenerationInterval)
	c.Assert(s.StableGenerations(), qt.Equals, model.DefaultStableGenerations)
	c.Assert(s.StatusText(), qt.Equals, "Status: Paused")

	p1, p2 := s.Scores()
	c.Assert(p1+p2, qt.Equals, 0)

	_, err := s.CellState(30, 0)
	c.Assert(errors.Is(err, model.ErrOutOfBounds), qt.IsTrue)
}

func TestToggleCellIsItsOwnInverse(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 6, 6)
	stampAs(c, s, model.SecondPlayer, model.PatternBlock, 3, 3)
	before := s.Snapshot()

	for _, p := range []model.Point{{0, 0}, {3, 3}} {
		c.Assert(s.ToggleCell(p.X, p.Y), qt.IsNil)
		c.Assert(s.Snapshot().Hash, qt.Not(qt.Equals), before.Hash)
		c.Assert(s.ToggleCell(p.X, p.Y), qt.IsNil)
		c.Assert(s.Snapshot(), qt.DeepEquals, before, qt.Commentf("toggled %v", p))
	}

	p1, p2 := s.Scores()
	c.Assert(p1, qt.Equals, 0)
	c.Assert(p2, qt.Equals, 4)
}

func TestToggleCellRejectsOpponentAndOutOfBounds(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 6, 6)
	c.Assert(s.ToggleCell(1, 1), qt.IsNil)
	c.Assert(s.SwitchPlayer(), qt.IsNil)

	err := s.ToggleCell(1, 1)
	c.Assert(errors.Is(err, ErrCellOccupied), qt.IsTrue)
	state, err := s.CellState(1, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(state, qt.Equals, model.Player1)

	err = s.ToggleCell(-1, 2)
	c.Assert(errors.Is(err, model.ErrOutOfBounds), qt.IsTrue)
}

func TestStampUnknownPatternLeavesGridUntouched(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 10, 10)
	stampAs(c, s, model.FirstPlayer, model.PatternGlider, 1, 1)
	before := s.Snapshot()

	err := s.Stamp("spaceship-9000", 4, 4)
	c.Assert(errors.Is(err, model.ErrUnknownPattern), qt.IsTrue)
	c.Assert(s.Snapshot(), qt.DeepEquals, before)
}

func TestStampClipsAtEdges(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 5, 5)
	c.Assert(s.Stamp(model.PatternBlinker, 3, 4), qt.IsNil)
	p1, _ := s.Scores()
	c.Assert(p1, qt.Equals, 2)
}

func TestSetupOnlyOperationsRejectedWhilePlaying(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 10, 10)
	stampAs(c, s, model.FirstPlayer, model.PatternBlinker, 1, 1)
	stampAs(c, s, model.SecondPlayer, model.PatternBlinker, 6, 6)
	c.Assert(s.Start(), qt.IsNil)
	before := s.Snapshot()

	c.Assert(errors.Is(s.SwitchPlayer(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.ToggleCell(0, 0), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.Stamp(model.PatternBlock, 0, 0), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.ToggleGridVisible(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(s.Snapshot(), qt.DeepEquals, before)

	// starting twice is harmless
	c.Assert(s.Start(), qt.IsNil)
	c.Assert(s.Phase(), qt.Equals, Playing)
}

func TestAdvanceRequiresPlaying(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 10, 10)
	c.Assert(errors.Is(s.Advance(), ErrInvalidTransition), qt.IsTrue)

	c.Assert(s.ForceEnd(), qt.IsNil)
	c.Assert(errors.Is(s.Advance(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.Start(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.ForceEnd(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(errors.Is(s.SwitchPlayer(), ErrInvalidTransition), qt.IsTrue)
	c.Assert(s.Generation(), qt.Equals, 0)
}

func TestStopAndClearAreIdempotent(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 12, 12)
	s.Randomize()
	c.Assert(s.Start(), qt.IsNil)

	s.Stop()
	once := s.Snapshot()
	s.Stop()
	c.Assert(s.Snapshot(), qt.DeepEquals, once)
	c.Assert(s.Phase(), qt.Equals, Paused)

	s.Clear()
	once = s.Snapshot()
	s.Clear()
	c.Assert(s.Snapshot(), qt.DeepEquals, once)
	p1, p2 := s.Scores()
	c.Assert(p1+p2, qt.Equals, 0)
}

func TestClearResetsGameOver(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 8, 8)
	c.Assert(s.ToggleCell(1, 1), qt.IsNil)
	c.Assert(s.ForceEnd(), qt.IsNil)
	c.Assert(s.Phase(), qt.Equals, GameOver)
	c.Assert(s.Outcome(), qt.Equals, Player1Wins)
	c.Assert(s.EndReason(), qt.Equals, Forced)
	c.Assert(s.StatusText(), qt.Equals, "GAME OVER\nPLAYER 1 WINS! 1 vs 0")

	s.Clear()
	c.Assert(s.Phase(), qt.Equals, Paused)
	c.Assert(s.Outcome(), qt.Equals, OutcomeNone)
	c.Assert(s.EndReason(), qt.Equals, ReasonNone)
	c.Assert(s.Start(), qt.IsNil)
}

func TestForceEndDecidesByScore(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name     string
		player1  string
		player2  string
		expected Outcome
	}{
		{"player 2 ahead", model.PatternBlinker, model.PatternBlock, Player2Wins},
		{"level", model.PatternBlock, model.PatternBlock, Draw},
		{"player 1 ahead", model.PatternBeehive, model.PatternBlock, Player1Wins},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			s := newTestSession(c, 12, 12)
			stampAs(c, s, model.FirstPlayer, test.player1, 1, 1)
			stampAs(c, s, model.SecondPlayer, test.player2, 7, 7)
			c.Assert(s.ForceEnd(), qt.IsNil)
			c.Assert(s.Outcome(), qt.Equals, test.expected)
		})
	}
}

func TestRandomizeUsesDistribution(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 50, 50)
	c.Assert(s.SetDistribution(Distribution{Player1: 1}), qt.IsNil)
	s.Randomize()
	p1, p2 := s.Scores()
	c.Assert(p1, qt.Equals, 2500)
	c.Assert(p2, qt.Equals, 0)

	c.Assert(s.SetDistribution(Distribution{Player1: 0.1, Player2: 0.1}), qt.IsNil)
	s.Randomize()
	p1, p2 = s.Scores()
	c.Assert(p1 > 150 && p1 < 350, qt.IsTrue, qt.Commentf("player1=%d", p1))
	c.Assert(p2 > 150 && p2 < 350, qt.IsTrue, qt.Commentf("player2=%d", p2))

	err := s.SetDistribution(Distribution{Player1: -0.1})
	c.Assert(errors.Is(err, ErrInvalidDistribution), qt.IsTrue)
}

func TestSetSpeed(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 5, 5)

	c.Assert(s.SetSpeed(10), qt.IsNil)
	c.Assert(s.GenerationInterval(), qt.Equals, 100*time.Millisecond)
	c.Assert(s.SetSpeed(100), qt.IsNil)
	c.Assert(s.GenerationInterval(), qt.Equals, 50*time.Millisecond)
	c.Assert(s.SetSpeed(0.5), qt.IsNil)
	c.Assert(s.GenerationInterval(), qt.Equals, time.Second)
	c.Assert(s.Speed(), qt.Equals, 1.0)

	c.Assert(errors.Is(s.SetSpeed(0), ErrInvalidInterval), qt.IsTrue)
	c.Assert(errors.Is(s.SetGenerationInterval(-time.Second), ErrInvalidInterval), qt.IsTrue)
	c.Assert(s.GenerationInterval(), qt.Equals, time.Second)
}

func TestToggleGridVisible(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 5, 5)
	c.Assert(s.ToggleGridVisible(), qt.IsNil)
	c.Assert(s.GridVisible(), qt.IsFalse)
	c.Assert(s.Snapshot().GridVisible, qt.IsFalse)
}

func TestSnapshotGet(t *testing.T) {
	c := qt.New(t)
	s := newTestSession(c, 4, 3)
	c.Assert(s.ToggleCell(3, 2), qt.IsNil)
	snap := s.Snapshot()

	state, err := snap.Get(3, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(state, qt.Equals, model.Player1)
	_, err = snap.Get(4, 0)
	c.Assert(errors.Is(err, model.ErrOutOfBounds), qt.IsTrue)

	// the snapshot does not follow later edits
	c.Assert(s.ToggleCell(3, 2), qt.IsNil)
	state, _ = snap.Get(3, 2)
	c.Assert(state, qt.Equals, model.Player1)
}
