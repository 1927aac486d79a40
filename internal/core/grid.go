package core

import (
	"fmt"
	"strings"
)

// Topology selects how coordinates behave at the grid edges.
type Topology uint8

const (
	// TopologyTorus wraps coordinates modulo width/height.
	TopologyTorus Topology = iota
	// TopologyClamp pins out-of-range coordinates to the nearest edge cell.
	// Agents that hit the edge under this policy are reported as exited.
	TopologyClamp
)

// ParseTopology maps a config string to a Topology, defaulting to clamp.
func ParseTopology(s string) Topology {
	if strings.EqualFold(s, "torus") || strings.EqualFold(s, "wrap") {
		return TopologyTorus
	}
	return TopologyClamp
}

// String returns the config spelling of the topology.
func (t Topology) String() string {
	if t == TopologyTorus {
		return "torus"
	}
	return "clamp"
}

// Grid stores a 2D field of cell states in row-major order. Every cell value
// is kept in [0, States); the size and topology are fixed at construction.
type Grid struct {
	W, H     int
	states   uint8
	topology Topology
	data     []uint8
}

// NewGrid allocates a zeroed grid. Dimensions must be positive and the state
// count at least two.
func NewGrid(w, h int, states uint8, topology Topology) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if states < 2 {
		return nil, fmt.Errorf("grid with %d states: %w", states, ErrInvalidStateCount)
	}
	return &Grid{W: w, H: h, states: states, topology: topology, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so renderers can blit values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// States reports the configured cell-state count.
func (g *Grid) States() uint8 { return g.states }

// Topology reports the edge policy fixed at construction.
func (g *Grid) Topology() Topology { return g.topology }

// Index returns the linear slice index for in-bounds coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell without normalization.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Normalize applies the grid topology to raw coordinates. The returned pair
// is always in bounds; inside is false when clamping had to pin a coordinate
// to the edge (the boundary condition for TopologyClamp).
func (g *Grid) Normalize(x, y int) (nx, ny int, inside bool) {
	switch g.topology {
	case TopologyTorus:
		nx = (x%g.W + g.W) % g.W
		ny = (y%g.H + g.H) % g.H
		return nx, ny, true
	default:
		inside = true
		nx, ny = x, y
		if nx < 0 {
			nx, inside = 0, false
		} else if nx >= g.W {
			nx, inside = g.W-1, false
		}
		if ny < 0 {
			ny, inside = 0, false
		} else if ny >= g.H {
			ny, inside = g.H-1, false
		}
		return nx, ny, inside
	}
}

// Read returns the state of the cell at in-bounds coordinates (x, y).
func (g *Grid) Read(x, y int) (uint8, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("read (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrCorruptState)
	}
	return g.data[g.Index(x, y)], nil
}

// Write sets the cell at in-bounds coordinates (x, y). Values outside
// [0, States) are rejected.
func (g *Grid) Write(x, y int, state uint8) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("write (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrCorruptState)
	}
	if state >= g.states {
		return fmt.Errorf("write state %d with %d states: %w", state, g.states, ErrInvalidState)
	}
	g.data[g.Index(x, y)] = state
	return nil
}

// Clear resets every cell to state zero.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// String dumps the field as one row of digits per line, for diagnostics.
func (g *Grid) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grid{%dx%d %s}\n", g.W, g.H, g.topology)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fmt.Fprintf(&b, "%d", g.data[g.Index(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
