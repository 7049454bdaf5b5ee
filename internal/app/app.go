//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegpu/internal/core"
	"lifegpu/internal/render"
	"lifegpu/internal/sim"
)

// Game adapts the tick orchestrator to the ebiten.Game interface. Each fired
// tick runs Computing (the transition) inside Update and Presenting (the
// instanced draw of the newly current buffer) in the following Draw.
type Game struct {
	ticker  *sim.Ticker
	pair    *core.StatePair
	painter *render.Painter
	clock   *core.FixedStep

	scale    int
	seed     int64
	paused   bool
	tickOnce bool
}

// New constructs a Game around an already seeded simulation.
func New(ticker *sim.Ticker, pair *core.StatePair, cfg *Config) (*Game, error) {
	painter, err := render.NewPainter(pair.Size())
	if err != nil {
		return nil, err
	}
	return &Game{
		ticker:  ticker,
		pair:    pair,
		painter: painter,
		clock:   core.NewFixedStep(cfg.Interval()),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}, nil
}

// Reset reseeds the current buffer and restarts the role cycle from it.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	values := make([]uint8, g.pair.Size().Cells())
	core.NewRNG(seed).FillBinary(values)
	cur, _ := core.Roles(g.ticker.Generation())
	if err := g.pair.Seed(cur, values); err != nil {
		panic(err)
	}
	g.tickOnce = false
}

// Update handles input and advances the simulation on the fixed-step clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.ticker.Tick()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.clock.ShouldStep() {
		g.ticker.Tick()
	}
	return nil
}

// Draw renders the latest completed generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.painter.Draw(screen, g.ticker.Current()); err != nil {
		panic(err)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.pair.Size()
	return s.W * g.scale, s.H * g.scale
}
