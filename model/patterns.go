package model

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// Pattern is a named set of cell offsets relative to an anchor
type Pattern struct {
	Name    string
	Offsets []Point
}

const (
	PatternGlider     = "glider"
	PatternBlinker    = "blinker"
	PatternBlock      = "block"
	PatternBeehive    = "beehive"
	PatternToad       = "toad"
	PatternBeacon     = "beacon"
	PatternLWSS       = "lwss"
	PatternRPentomino = "r-pentomino"
)

// offsets use x to the right and y down
var patterns = map[string][]Point{
	PatternGlider:     {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	PatternBlinker:    {{0, 0}, {1, 0}, {2, 0}},
	PatternBlock:      {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PatternBeehive:    {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
	PatternToad:       {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	PatternBeacon:     {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	PatternLWSS:       {{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
	PatternRPentomino: {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
}

// LookupPattern returns a copy of the named catalog entry
func LookupPattern(name string) (Pattern, error) {
	offsets, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return Pattern{Name: name, Offsets: slices.Clone(offsets)}, nil
}

// PatternNames lists the catalog in alphabetical order
func PatternNames() []string {
	return slices.Sorted(maps.Keys(patterns))
}

// Stamp sets every offset of p, relative to the anchor, to state.
// Offsets landing outside the grid are skipped rather than wrapped.
// It returns how many cells were written.
func (g *Grid) Stamp(p Pattern, anchorX, anchorY int, state CellState) int {
	placed := 0
	for _, off := range p.Offsets {
		x, y := anchorX+off.X, anchorY+off.Y
		if !g.InBounds(x, y) {
			continue
		}
		g.cells[y][x] = state
		placed++
	}
	return placed
}
