//go:build ebiten

package app

import (
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/render"
	"sand-ca/internal/ui"
	pcore "sand-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep
	sound   core.Sounder
	seeds   *pcore.RNG

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The sim advances once
// per interval regardless of the frame rate. A nil sound is silent.
func New(sim core.Sim, scale int, seed int64, interval time.Duration, sound core.Sounder) *Game {
	if sound == nil {
		sound = core.Silent{}
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(size, scale),
		step:    core.NewFixedInterval(interval),
		sound:   sound,
		seeds:   pcore.NewRNG(seed),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.sound.Reset()
}

// newBoard resets with the next seed of the session's seed stream.
func (g *Game) newBoard() { g.Reset(g.seeds.NextSeed()) }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.paused {
			g.step.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.newBoard()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.seed)
	}

	consumed := g.hud.Update(g.viewWidth(), g.paused)
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.paint(ebiten.CursorPosition())
	}
	g.overlay.Update(g.paused)

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.step.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) paint(mx, my int) {
	painter, ok := g.sim.(core.Painter)
	if !ok || mx < 0 || my < 0 {
		return
	}
	x, y, ok := g.sim.Size().FromScreen(mx/g.scale, my/g.scale)
	if !ok {
		return
	}
	painter.Paint(x, y)
	g.sound.Click()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.SandColor, render.EmptyColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + g.hud.Width(), s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
