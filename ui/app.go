//go:build ebiten

package ui

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-gol-duel/game"
)

const (
	hudHeight      = 70
	hudPadding     = 6
	hudLineSpacing = 15
)

// keyBindings is checked in order, so keys pressed in the same frame apply top to bottom
var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionToggleSimulation},
	{ebiten.KeyC, ActionClear},
	{ebiten.KeyR, ActionRandomize},
	{ebiten.KeyP, ActionSwitchPlayer},
	{ebiten.KeyG, ActionPlaceGlider},
	{ebiten.KeyB, ActionPlaceBlinker},
	{ebiten.KeyE, ActionForceEnd},
	{ebiten.KeyH, ActionToggleGrid},
	{ebiten.KeyEqual, ActionFaster},
	{ebiten.KeyMinus, ActionSlower},
}

// Game adapts a duel session to the ebiten.Game interface.
type Game struct {
	session *game.Session
	timer   *FixedStep
	painter *GridPainter
	img     *ebiten.Image
	logger  *zap.Logger

	snapshot game.Snapshot
}

// New constructs a Game drawing the session at scale pixels per cell.
func New(session *game.Session, scale int, logger *zap.Logger) *Game {
	g := &Game{
		session: session,
		timer:   NewFixedStep(session.GenerationInterval()),
		painter: NewGridPainter(scale, DefaultPalette()),
		logger:  logger,
	}
	g.snapshot = session.Snapshot()
	session.Subscribe(func(ev game.Event) {
		g.snapshot = ev.Snapshot
	})
	w, h := g.painter.Size(g.snapshot)
	g.img = ebiten.NewImage(w, h)
	return g
}

// Update handles input and advances the session when a generation is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	var pressed []Action
	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			pressed = append(pressed, binding.action)
		}
	}
	if len(pressed) > 0 {
		if err := ApplyAll(g.session, pressed); err != nil {
			g.logger.Debug("actions rejected", zap.Error(err))
		}
		if slices.Contains(pressed, ActionToggleSimulation) {
			g.timer.Reset()
		}
	}
	g.timer.SetInterval(g.session.GenerationInterval())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		x, y := g.painter.CellAt(px, py)
		if px >= 0 && py >= 0 && x < g.session.Width() && y < g.session.Height() {
			if err := g.session.ToggleCell(x, y); err != nil {
				g.logger.Debug("toggle rejected", zap.Int("x", x), zap.Int("y", y), zap.Error(err))
			}
		}
	}

	if g.session.Phase() == game.Playing && g.timer.ShouldStep() {
		if err := g.session.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders the latest snapshot and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	buf, err := g.painter.Paint(g.snapshot, g.snapshot.GridVisible)
	if err != nil {
		g.logger.Error("failed to paint grid", zap.Error(err))
		return
	}
	g.img.WritePixels(buf)
	screen.DrawImage(g.img, nil)

	_, gridHeight := g.painter.Size(g.snapshot)
	face := basicfont.Face7x13
	for i, line := range HUDLines(g.snapshot, g.session.Speed()) {
		y := gridHeight + hudPadding + (i+1)*hudLineSpacing
		text.Draw(screen, line, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size(g.snapshot)
	return w, h + hudHeight
}
