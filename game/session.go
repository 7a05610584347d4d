package game

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-gol-duel/model"
	"github.com/sheikhrachel/go-gol-duel/utils"
)

const (
	// DefaultGenerationInterval matches five generations per second
	DefaultGenerationInterval = 200 * time.Millisecond

	// MinSpeed and MaxSpeed bound SetSpeed, in generations per second
	MinSpeed = 1.0
	MaxSpeed = 20.0
)

// Distribution holds the per-cell probabilities used by Randomize
type Distribution struct {
	Player1 float64
	Player2 float64
}

// DefaultDistribution gives each player 10% of the cells on average
func DefaultDistribution() Distribution {
	return Distribution{Player1: 0.1, Player2: 0.1}
}

// Validate checks both densities are non-negative and together at most 1
func (d Distribution) Validate() error {
	if d.Player1 < 0 || d.Player2 < 0 || d.Player1+d.Player2 > 1 {
		return errors.Wrapf(ErrInvalidDistribution, "[Validate] player1=%v player2=%v", d.Player1, d.Player2)
	}
	return nil
}

// Options configure a Session
type Options struct {
	StableGenerations  int
	Distribution       Distribution
	GenerationInterval time.Duration
	// Seed drives Randomize; 0 picks a time-based seed
	Seed int64
	// Workers above 1 split each generation into row stripes computed in parallel;
	// 0 or less uses one stripe per CPU
	Workers  int
	ShowGrid bool
	Logger   *zap.Logger
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		StableGenerations:  model.DefaultStableGenerations,
		Distribution:       DefaultDistribution(),
		GenerationInterval: DefaultGenerationInterval,
		Workers:            1,
		ShowGrid:           true,
	}
}

// Session is a two-player game: the grid, scores, stability window and turn state.
// It has a single owner and is not safe for concurrent use.
type Session struct {
	grid      *model.Grid
	stability *model.StabilityWindow

	player1Score int
	player2Score int

	currentPlayer model.Player
	playing       bool
	gameOver      bool
	outcome       Outcome
	reason        EndReason
	generation    int

	showGrid     bool
	interval     time.Duration
	distribution Distribution
	workers      int
	rng          *rand.Rand
	logger       *zap.Logger

	listeners []listener
	nextID    int
}

// NewSession creates a paused session with an all-dead grid and player 1 to act
func NewSession(width, height int, opts Options) (*Session, error) {
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create grid")
	}
	if opts.GenerationInterval <= 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "[NewSession] %v", opts.GenerationInterval)
	}
	if err = opts.Distribution.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] bad distribution")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		grid:          grid,
		stability:     model.NewStabilityWindow(opts.StableGenerations, model.NewGridPool()),
		currentPlayer: model.FirstPlayer,
		showGrid:      opts.ShowGrid,
		interval:      opts.GenerationInterval,
		distribution:  opts.Distribution,
		workers:       opts.Workers,
		rng:           rand.New(rand.NewPCG(uint64(seed), 0)),
		logger:        logger.With(zap.Int("width", width), zap.Int("height", height)),
	}
	s.logger.Debug("session created", zap.Int64("seed", seed), zap.Int("workers", opts.Workers))
	return s, nil
}

// NewSessionFromConfig creates a session from a loaded configuration
func NewSessionFromConfig(config utils.Config, logger *zap.Logger) (*Session, error) {
	return NewSession(config.Width, config.Height, Options{
		StableGenerations:  config.StableGenerations,
		Distribution:       Distribution{Player1: config.Player1Density, Player2: config.Player2Density},
		GenerationInterval: config.GenerationInterval,
		Seed:               config.Seed,
		Workers:            config.Workers,
		ShowGrid:           config.ShowGrid,
		Logger:             logger,
	})
}

// Width returns the grid width
func (s *Session) Width() int {
	return s.grid.GetWidth()
}

// Height returns the grid height
func (s *Session) Height() int {
	return s.grid.GetHeight()
}

// CellState returns the state of a single cell
func (s *Session) CellState(x, y int) (model.CellState, error) {
	return s.grid.Get(x, y)
}

// Scores returns how many cells each player owns
func (s *Session) Scores() (player1, player2 int) {
	return s.player1Score, s.player2Score
}

// CurrentPlayer returns the player whose edits are being placed
func (s *Session) CurrentPlayer() model.Player {
	return s.currentPlayer
}

// Phase returns whether the session is paused, playing or over
func (s *Session) Phase() Phase {
	switch {
	case s.gameOver:
		return GameOver
	case s.playing:
		return Playing
	default:
		return Paused
	}
}

// Outcome returns the result of a finished game, or OutcomeNone
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// EndReason returns why the game finished, or ReasonNone
func (s *Session) EndReason() EndReason {
	return s.reason
}

// Generation returns the number of generations since the last clear or randomize
func (s *Session) Generation() int {
	return s.generation
}

// GridVisible is a rendering hint; the session never acts on it
func (s *Session) GridVisible() bool {
	return s.showGrid
}

// GenerationInterval returns the time hosts should wait between generations
func (s *Session) GenerationInterval() time.Duration {
	return s.interval
}

// Speed returns the generation rate in generations per second
func (s *Session) Speed() float64 {
	return 1 / s.interval.Seconds()
}

// StableGenerations returns the unchanged-generation threshold for a stalemate
func (s *Session) StableGenerations() int {
	return s.stability.Threshold()
}

// Distribution returns the densities used by Randomize
func (s *Session) Distribution() Distribution {
	return s.distribution
}

func (s *Session) rescore() {
	s.player1Score, s.player2Score = s.grid.CountLivingCells()
}
