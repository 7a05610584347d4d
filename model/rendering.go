package model

import (
	"bufio"
	"io"
	"os"
)

const (
	gridPosPlayer1 = "\x1b[34m██\x1b[0m"
	gridPosPlayer2 = "\x1b[31m██\x1b[0m"
	gridPosEmpty   = "  "
	gridPosDot     = " ·"

	ansiClearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer draws a two-player grid with ANSI colors
type TerminalRenderer struct {
	Out io.Writer
	// ShowGrid marks dead cells with a dot so the cell lattice stays visible
	ShowGrid bool
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer(showGrid bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ShowGrid: showGrid}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(src CellSource) error {
	w := bufio.NewWriter(r.Out)
	empty := gridPosEmpty
	if r.ShowGrid {
		empty = gridPosDot
	}
	for y := range src.GetHeight() {
		for x := range src.GetWidth() {
			state, err := src.Get(x, y)
			if err != nil {
				return err
			}
			switch state {
			case Player1:
				w.WriteString(gridPosPlayer1)
			case Player2:
				w.WriteString(gridPosPlayer2)
			default:
				w.WriteString(empty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClearScreen)
	return err
}
