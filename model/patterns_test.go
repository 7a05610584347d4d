package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLookupPattern(t *testing.T) {
	c := qt.New(t)
	p, err := LookupPattern(PatternBlinker)
	c.Assert(err, qt.IsNil)
	c.Assert(p.Offsets, qt.DeepEquals, []Point{{0, 0}, {1, 0}, {2, 0}})

	// callers get their own copy
	p.Offsets[0] = Point{9, 9}
	again, err := LookupPattern(PatternBlinker)
	c.Assert(err, qt.IsNil)
	c.Assert(again.Offsets[0], qt.Equals, Point{0, 0})

	_, err = LookupPattern("spaceship-9000")
	c.Assert(errors.Is(err, ErrUnknownPattern), qt.IsTrue)
}

func TestPatternNamesSorted(t *testing.T) {
	c := qt.New(t)
	names := PatternNames()
	c.Assert(names, qt.HasLen, 8)
	c.Assert(names[0], qt.Equals, PatternBeacon)
	c.Assert(names, qt.Contains, PatternGlider)
	for i := 1; i < len(names); i++ {
		c.Assert(names[i-1] < names[i], qt.IsTrue)
	}
}

func TestStampSkipsOutOfBounds(t *testing.T) {
	c := qt.New(t)
	g, err := NewGrid(5, 5)
	c.Assert(err, qt.IsNil)
	blinker, err := LookupPattern(PatternBlinker)
	c.Assert(err, qt.IsNil)

	c.Assert(g.Stamp(blinker, 3, 4, Player1), qt.Equals, 2)
	c.Assert(gridString(g), qt.Equals, ".....\n.....\n.....\n.....\n...11")

	c.Assert(g.Stamp(blinker, -5, 0, Player2), qt.Equals, 0)
	c.Assert(g.Stamp(blinker, 0, 0, Player2), qt.Equals, 3)
	p1, p2 := g.CountLivingCells()
	c.Assert(p1, qt.Equals, 2)
	c.Assert(p2, qt.Equals, 3)
}

func TestStillLifesAreStable(t *testing.T) {
	c := qt.New(t)
	for _, name := range []string{PatternBlock, PatternBeehive} {
		c.Run(name, func(c *qt.C) {
			g, err := NewGrid(8, 8)
			c.Assert(err, qt.IsNil)
			p, err := LookupPattern(name)
			c.Assert(err, qt.IsNil)
			g.Stamp(p, 2, 2, Player1)
			before := gridString(g)
			step(g)
			c.Assert(gridString(g), qt.Equals, before)
		})
	}
}

func TestOscillatorsHavePeriodTwo(t *testing.T) {
	c := qt.New(t)
	for _, name := range []string{PatternBlinker, PatternToad, PatternBeacon} {
		c.Run(name, func(c *qt.C) {
			g, err := NewGrid(10, 10)
			c.Assert(err, qt.IsNil)
			p, err := LookupPattern(name)
			c.Assert(err, qt.IsNil)
			g.Stamp(p, 3, 3, Player2)
			before := gridString(g)
			step(g)
			c.Assert(gridString(g), qt.Not(qt.Equals), before)
			step(g)
			c.Assert(gridString(g), qt.Equals, before)
		})
	}
}

func TestTerminalRenderer(t *testing.T) {
	c := qt.New(t)
	g := gridFrom(c, "1.", ".2")
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	c.Assert(r.Display(g), qt.IsNil)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	c.Assert(lines, qt.DeepEquals, []string{
		gridPosPlayer1 + gridPosEmpty,
		gridPosEmpty + gridPosPlayer2,
	})

	buf.Reset()
	r.ShowGrid = true
	c.Assert(r.Display(g), qt.IsNil)
	c.Assert(strings.Count(buf.String(), gridPosDot), qt.Equals, 2)

	buf.Reset()
	c.Assert(r.Clear(), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, ansiClearScreen)
}
