package ui

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/sheikhrachel/go-gol-duel/game"
	"github.com/sheikhrachel/go-gol-duel/model"
)

// Action is a host command bound to a key
type Action int

const (
	ActionToggleSimulation Action = iota
	ActionClear
	ActionRandomize
	ActionSwitchPlayer
	ActionPlaceGlider
	ActionPlaceBlinker
	ActionForceEnd
	ActionToggleGrid
	ActionFaster
	ActionSlower
)

// Quick-place anchors for the pattern keys
var (
	GliderAnchor  = model.Point{X: 5, Y: 5}
	BlinkerAnchor = model.Point{X: 15, Y: 15}
)

// speedStep is how much one faster/slower press changes the rate, in generations per second
const speedStep = 1.0

// Apply runs the action against the session
func Apply(s *game.Session, action Action) error {
	switch action {
	case ActionToggleSimulation:
		return s.ToggleSimulation()
	case ActionClear:
		s.Clear()
	case ActionRandomize:
		s.Randomize()
	case ActionSwitchPlayer:
		return s.SwitchPlayer()
	case ActionPlaceGlider:
		return s.Stamp(model.PatternGlider, GliderAnchor.X, GliderAnchor.Y)
	case ActionPlaceBlinker:
		return s.Stamp(model.PatternBlinker, BlinkerAnchor.X, BlinkerAnchor.Y)
	case ActionForceEnd:
		return s.ForceEnd()
	case ActionToggleGrid:
		return s.ToggleGridVisible()
	case ActionFaster:
		return s.SetSpeed(s.Speed() + speedStep)
	case ActionSlower:
		return s.SetSpeed(max(s.Speed()-speedStep, game.MinSpeed))
	default:
		return errors.Errorf("[Apply] unknown action %d", int(action))
	}
	return nil
}

// ApplyAll runs the actions in order. A rejected action does not stop the rest;
// every rejection is returned combined.
func ApplyAll(s *game.Session, actions []Action) error {
	var err error
	for _, action := range actions {
		err = multierr.Append(err, Apply(s, action))
	}
	return err
}
