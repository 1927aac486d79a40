package render

import "image/color"

// fillPaletteRGBA rewrites the whole buffer, one setPixelRGBA per cell. An
// empty palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}
	for i, c := range cells {
		setPixelRGBA(buf, i, palette, c)
	}
}

// setPixelRGBA writes one palette entry at linear cell index i. States past
// the palette end saturate at the last entry; an empty palette is a no-op.
func setPixelRGBA(buf []byte, i int, palette []color.RGBA, state uint8) {
	if len(palette) == 0 {
		return
	}
	idx := int(state)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	col := palette[idx]
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
