package ui

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/model"
)

// Palette maps cell states and grid lines to colors
type Palette struct {
	Dead     color.RGBA
	Player1  color.RGBA
	Player2  color.RGBA
	GridLine color.RGBA
}

// DefaultPalette draws player 1 blue and player 2 red on black
func DefaultPalette() Palette {
	return Palette{
		Dead:     color.RGBA{A: 255},
		Player1:  color.RGBA{B: 255, A: 255},
		Player2:  color.RGBA{R: 255, A: 255},
		GridLine: color.RGBA{R: 77, G: 77, B: 77, A: 255},
	}
}

func (p Palette) cell(state model.CellState) color.RGBA {
	switch state {
	case model.Player1:
		return p.Player1
	case model.Player2:
		return p.Player2
	default:
		return p.Dead
	}
}

// GridPainter rasterizes a cell source into an RGBA buffer, scale pixels per cell.
type GridPainter struct {
	Palette Palette
	scale   int
	buf     []byte
}

// NewGridPainter allocates a painter. Scales below 1 are treated as 1.
func NewGridPainter(scale int, palette Palette) *GridPainter {
	return &GridPainter{Palette: palette, scale: max(scale, 1)}
}

// Scale returns the number of pixels per cell side
func (gp *GridPainter) Scale() int {
	return gp.scale
}

// Size returns the pixel dimensions of a painted source
func (gp *GridPainter) Size(src model.CellSource) (int, int) {
	return src.GetWidth() * gp.scale, src.GetHeight() * gp.scale
}

// Paint fills and returns the pixel buffer for src. With gridLines set the first
// pixel row and column of every cell use the grid line color. The buffer is reused
// between calls.
func (gp *GridPainter) Paint(src model.CellSource, gridLines bool) ([]byte, error) {
	w, h := gp.Size(src)
	if need := 4 * w * h; cap(gp.buf) < need {
		gp.buf = make([]byte, need)
	} else {
		gp.buf = gp.buf[:need]
	}

	for cy := range src.GetHeight() {
		for cx := range src.GetWidth() {
			state, err := src.Get(cx, cy)
			if err != nil {
				return nil, errors.Wrap(err, "[Paint] failed to read cell")
			}
			fill := gp.Palette.cell(state)
			for py := range gp.scale {
				for px := range gp.scale {
					col := fill
					if gridLines && gp.scale > 1 && (px == 0 || py == 0) {
						col = gp.Palette.GridLine
					}
					base := 4 * ((cy*gp.scale+py)*w + cx*gp.scale + px)
					gp.buf[base+0] = col.R
					gp.buf[base+1] = col.G
					gp.buf[base+2] = col.B
					gp.buf[base+3] = col.A
				}
			}
		}
	}
	return gp.buf, nil
}

// CellAt converts a pixel position inside a painted source to a cell coordinate
func (gp *GridPainter) CellAt(px, py int) (int, int) {
	return px / gp.scale, py / gp.scale
}
