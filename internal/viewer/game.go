// Package viewer renders a running swarm with ebiten. It is a pure
// consumer of the simulation: all it ever does is call Step and read
// Positions back for display.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gosim-labs/friendfoe/pkg/swarm"
)

const (
	screenWidth  = 960
	screenHeight = 960
	dotRadius    = 2.0
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	agentColor      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	boundsColor     = color.RGBA{R: 60, G: 60, B: 90, A: 255}
)

// Game drives a swarm world one Step per frame and scatter-plots the
// resulting positions. Space pauses, R resets with the same strategy.
type Game struct {
	world    *swarm.World
	cfg      *swarm.Config
	strategy swarm.Strategy
	paused   bool
	err      error
}

// NewGame wires a viewer around an already-reset world.
func NewGame(world *swarm.World, cfg *swarm.Config, strategy swarm.Strategy) *Game {
	return &Game{world: world, cfg: cfg, strategy: strategy}
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.world.Reset(g.strategy); err != nil {
			g.err = err
			return err
		}
	}

	if !g.paused {
		g.world.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// Outline the spawn bounds; agents routinely travel outside them.
	x0, y0 := g.toScreen(0, 0)
	x1, y1 := g.toScreen(g.cfg.WorldWidth, g.cfg.WorldHeight)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, boundsColor, true)

	for _, p := range g.world.Positions() {
		sx, sy := g.toScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, sx, sy, dotRadius, agentColor, true)
	}

	state := "running"
	if g.paused {
		state = "paused [space]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"tick: %d  agents: %d  behavior: %s  strategy: %s  tps: %.0f  %s",
		g.world.Tick(), g.world.Len(), g.cfg.Behavior, g.strategy.Name(), ebiten.ActualTPS(), state,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// toScreen maps world coordinates onto the screen. The viewport covers
// three world-widths in each axis, centered on the spawn bounds, because
// hiding behaviors regularly push the swarm well outside them.
func (g *Game) toScreen(x, y float64) (float32, float32) {
	sx := (x + g.cfg.WorldWidth) / (3 * g.cfg.WorldWidth) * screenWidth
	sy := (y + g.cfg.WorldHeight) / (3 * g.cfg.WorldHeight) * screenHeight
	return float32(sx), float32(sy)
}
