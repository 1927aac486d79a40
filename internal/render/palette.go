package render

import "image/color"

// AgentColor marks the agent itself, distinct from any cell color.
var AgentColor = color.RGBA{R: 200, A: 255}

// Palette returns the default cell colors for an n-state simulation. State 0
// is the empty (white) cell and state 1 the filled (black) one; additional
// states are spread around the hue wheel so neighboring indices stay
// distinguishable.
func Palette(n uint8) []color.RGBA {
	p := make([]color.RGBA, n)
	if n > 0 {
		p[0] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if n > 1 {
		p[1] = color.RGBA{A: 255}
	}
	for i := 2; i < int(n); i++ {
		hue := float64(i-2) / float64(int(n)-2) * 360
		p[i] = hueColor(hue)
	}
	return p
}

// hueColor converts a hue in degrees to a fully saturated RGBA color.
func hueColor(hue float64) color.RGBA {
	h := hue / 60
	seg := int(h) % 6
	f := h - float64(int(h))
	q := uint8(255 * (1 - f))
	t := uint8(255 * f)
	switch seg {
	case 0:
		return color.RGBA{R: 255, G: t, A: 255}
	case 1:
		return color.RGBA{R: q, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: t, A: 255}
	case 3:
		return color.RGBA{G: q, B: 255, A: 255}
	case 4:
		return color.RGBA{R: t, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: q, A: 255}
	}
}
