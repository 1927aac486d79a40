//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"turmites/internal/core"
	"turmites/internal/render"
	"turmites/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type statesProvider interface {
	States() uint8
}

// Game adapts a core simulation to the ebiten.Game interface. The frame loop
// owns cadence: one simulation tick per update while the sim is active.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	states := uint8(2)
	if p, ok := sim.(statesProvider); ok {
		states = p.States()
	}
	size := sim.Size()
	gp := render.NewGridPainter(size.W, size.H, render.Palette(states))
	gp.Fill(sim.Cells())
	return &Game{
		sim:     sim,
		painter: gp,
		hud:     ui.NewHUD(sim),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed and
// resynchronizes the pixel buffer.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Fill(g.sim.Cells())
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
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

	if g.hud != nil {
		g.hud.Update(g.paused)
	}

	if ((!g.paused) || g.tickOnce) && g.sim.Active() {
		if err := g.sim.Tick(g.painter); err != nil {
			if !errors.Is(err, core.ErrRenderTargetUnavailable) {
				return err
			}
			// Simulation state stands; resync the buffer and carry on.
			log.Printf("render target lost, resyncing: %v", err)
			g.painter.Fill(g.sim.Cells())
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var markers []core.AgentMarker
	if provider, ok := g.sim.(core.MarkerProvider); ok {
		markers = provider.Markers()
	}
	g.painter.Blit(screen, g.scale, markers)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
