package game

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-duel/model"
)

// Advance computes and commits one generation, rescores, and checks for the end of the game.
// It is rejected unless the session is playing.
func (s *Session) Advance() error {
	if !s.playing || s.gameOver {
		return errors.Wrapf(ErrInvalidTransition, "[Advance] cannot advance while %s", s.Phase())
	}

	if err := s.computeNext(); err != nil {
		return errors.Wrap(err, "[Advance] failed to compute generation")
	}
	s.grid.SwapBuffers()
	s.generation++
	s.rescore()

	s.logger.Debug("generation committed",
		zap.Int("generation", s.generation),
		zap.Int("player1", s.player1Score),
		zap.Int("player2", s.player2Score),
	)

	s.checkTermination()
	s.publish(EventGeneration)
	if s.gameOver {
		s.publish(EventGameOver)
	}
	return nil
}

// computeNext fills the scratch buffer from the current one
func (s *Session) computeNext() error {
	if s.workers == 1 {
		computeRows(s.grid, 0, s.grid.GetHeight())
		return nil
	}
	return computeParallel(s.grid, s.workers)
}

func computeRows(g *model.Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := range g.GetWidth() {
			g.SetNext(x, y, model.NextState(g, x, y))
		}
	}
}

// computeParallel splits the grid into row stripes, one goroutine each.
// Workers write disjoint rows of the scratch buffer and only read the current one.
func computeParallel(g *model.Grid, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		height        = g.GetHeight()
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			computeRows(g, startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}
