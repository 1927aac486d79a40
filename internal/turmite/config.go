package turmite

import (
	"log"
	"strconv"

	"turmites/internal/core"
)

// Config controls engine construction. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width  int
	Height int
	// States is the cell-state count N; every cell value stays in [0, N).
	States uint8
	// Topology fixes the edge policy. Under clamp an agent stepping off the
	// edge halts the simulation, matching the canvas behavior this engine
	// was built to reproduce; under torus it runs until MaxTicks (if any).
	Topology core.Topology
	// Table selects the rule table: a preset name, "cyclic" for the N-state
	// generator, or "random" for a seeded preset draw. Empty picks a preset
	// for two states and the cyclic generator otherwise.
	Table string
	// MaxTicks halts the engine after this many ticks; zero means unbounded.
	MaxTicks uint64
	// Agents is the number of independently stepping agents.
	Agents int
	Seed   int64
	// Randomize applies the seeded spawn jitter (random initial agent state
	// and cell color under each agent) instead of the canonical zeroed start.
	Randomize bool
	// Logger receives diagnostics (chosen table, halt reason). Nil is silent.
	Logger *log.Logger
}

// DefaultConfig returns the standard configuration: a single two-state agent
// on a clamped 256x256 field.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		States:   2,
		Topology: core.TopologyClamp,
		Table:    "langton",
		Agents:   1,
		Seed:     1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["states"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= 255 {
			c.States = uint8(parsed)
		}
	}
	if v, ok := cfg["topology"]; ok {
		c.Topology = core.ParseTopology(v)
	}
	if v, ok := cfg["table"]; ok && v != "" {
		c.Table = v
	}
	if v, ok := cfg["max_ticks"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.MaxTicks = parsed
		}
	}
	if v, ok := cfg["agents"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Agents = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["randomize"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Randomize = parsed
		}
	}
	return c
}
