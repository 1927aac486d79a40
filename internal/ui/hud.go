//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"turmites/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type clockProvider interface {
	Ticks() uint64
}

// HUD draws a small status readout in the top-left corner of the view.
type HUD struct {
	sim     core.Sim
	visible bool
	paused  bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.Black)
	return h
}

// Update handles the visibility toggle and caches the pause state for Draw.
func (h *HUD) Update(paused bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.paused = paused
}

// Draw renders the status lines when the HUD is visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}

	size := h.sim.Size()
	lines := []string{
		fmt.Sprintf("%s  %dx%d", h.sim.Name(), size.W, size.H),
	}
	status := "running"
	if !h.sim.Active() {
		status = "halted"
	} else if h.paused {
		status = "paused"
	}
	if clock, ok := h.sim.(clockProvider); ok {
		lines = append(lines, fmt.Sprintf("tick %d  %s", clock.Ticks(), status))
	} else {
		lines = append(lines, status)
	}
	lines = append(lines, "space pause  n step  r/s reset  h hud  q quit")

	face := basicfont.Face7x13
	lineHeight := face.Height + 3
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+12), float64(lineHeight*len(lines)+8))
	op.ColorM.Scale(1, 1, 1, 0.6)
	screen.DrawImage(h.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, face, 6, 4+lineHeight*(i+1)-3, color.White)
	}
}
