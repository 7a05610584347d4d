package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// CellSource is anything that exposes cell states by coordinate
type CellSource interface {
	GetWidth() int
	GetHeight() int
	Get(x, y int) (CellState, error)
}

// Grid holds the current cell states plus a scratch buffer used to stage the next generation
type Grid struct {
	width  int
	height int
	cells  [][]CellState
	next   [][]CellState
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{}
	g.Reset(width, height)
	return g, nil
}

func newBuffer(width, height int) [][]CellState {
	rows := make([][]CellState, height)
	for i := range rows {
		rows[i] = make([]CellState, width)
	}
	return rows
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes both buffers to the given dimensions and kills every cell
func (g *Grid) Reset(width, height int) {
	g.resize(width, height)
	g.next = resizeBuffer(g.next, width, height)
}

// resize sets the dimensions and clears the current buffer only
func (g *Grid) resize(width, height int) {
	g.width = width
	g.height = height
	g.cells = resizeBuffer(g.cells, width, height)
}

// resizeBuffer returns an all-dead buffer of the given size, reusing rows that already fit
func resizeBuffer(buf [][]CellState, width, height int) [][]CellState {
	if len(buf) != height {
		return newBuffer(width, height)
	}
	for y := range height {
		if len(buf[y]) != width {
			buf[y] = make([]CellState, width)
			continue
		}
		clear(buf[y])
	}
	return buf
}

// Clear kills every cell in the current buffer
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// InBounds reports whether (x, y) is an addressable coordinate
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Set sets the state of a cell
func (g *Grid) Set(x, y int, state CellState) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x] = state
	return nil
}

// SetNext stages a state in the scratch buffer. x and y must be in range.
func (g *Grid) SetNext(x, y int, state CellState) {
	g.next[y][x] = state
}

// SwapBuffers makes the scratch buffer current
func (g *Grid) SwapBuffers() {
	g.cells, g.next = g.next, g.cells
}

// Cells iterates the current buffer in row-major order
func (g *Grid) Cells() iter.Seq2[Point, CellState] {
	return func(yield func(Point, CellState) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(Point{X: x, Y: y}, g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// CountLivingCells returns the number of cells owned by each player
func (g *Grid) CountLivingCells() (player1, player2 int) {
	for _, state := range g.Cells() {
		switch state {
		case Player1:
			player1++
		case Player2:
			player2++
		}
	}
	return
}

// Equal reports whether both grids have the same size and current cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CopyFrom overwrites the current buffer with the current cells of src
func (g *Grid) CopyFrom(src *Grid) error {
	if src == nil {
		return errors.Wrap(ErrInvalidDimensions, "[CopyFrom] nil source grid")
	}
	if g.width != src.width || g.height != src.height {
		return errors.Wrapf(ErrInvalidDimensions, "[CopyFrom] %dx%d into %dx%d", src.width, src.height, g.width, g.height)
	}
	for y := range g.height {
		copy(g.cells[y], src.cells[y])
	}
	return nil
}

// Flatten appends the current cells to dst in row-major order
func (g *Grid) Flatten(dst []CellState) []CellState {
	for y := range g.height {
		dst = append(dst, g.cells[y]...)
	}
	return dst
}

// GetGridHash returns an MD5 fingerprint of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		row := make([]byte, g.width)
		for x, state := range g.cells[y] {
			row[x] = byte(state)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize assigns every cell independently from a single uniform draw:
// below player1 it goes to player 1, below player1+player2 to player 2, otherwise dead
func (g *Grid) Randomize(rng *rand.Rand, player1, player2 float64) {
	for y := range g.height {
		for x := range g.width {
			r := rng.Float64()
			switch {
			case r < player1:
				g.cells[y][x] = Player1
			case r < player1+player2:
				g.cells[y][x] = Player2
			default:
				g.cells[y][x] = Dead
			}
		}
	}
}
