//go:build ebiten

package render

import (
	"fmt"
	"image/color"

	"turmites/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA image in sync with the simulation field. It
// implements core.Surface, so the engine's per-cell repaints land directly in
// the pixel buffer; Blit uploads and draws the image scaled, with agent
// markers on top.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	marker  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h using the given
// cell palette.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	gp.marker = ebiten.NewImage(1, 1)
	gp.marker.Fill(AgentColor)
	return gp
}

// Paint updates one cell pixel. Out-of-range coordinates report a dead
// target, since they mean the painter no longer matches the grid.
func (gp *GridPainter) Paint(x, y int, state uint8) error {
	if x < 0 || x >= gp.w || y < 0 || y >= gp.h {
		return fmt.Errorf("painter is %dx%d, cell (%d,%d): %w", gp.w, gp.h, x, y, core.ErrRenderTargetUnavailable)
	}
	setPixelRGBA(gp.buf, y*gp.w+x, gp.palette, state)
	return nil
}

// Fill resynchronizes the whole buffer from the field, e.g. after a reset.
func (gp *GridPainter) Fill(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
}

// Blit uploads the pixel buffer and draws it scaled onto dst, then stamps an
// agent marker over each occupied cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int, markers []core.AgentMarker) {
	if scale <= 0 {
		scale = 1
	}
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	for _, m := range markers {
		mop := &ebiten.DrawImageOptions{}
		mop.GeoM.Scale(float64(scale), float64(scale))
		mop.GeoM.Translate(float64(m.X*scale), float64(m.Y*scale))
		dst.DrawImage(gp.marker, mop)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
