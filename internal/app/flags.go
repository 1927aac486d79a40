package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the windowed build.
type Config struct {
	Behavior  string
	Width     int
	Height    int
	States    int
	Agents    int
	Scale     int
	TPS       int
	Seed      int64
	Topology  string
	MaxTicks  uint64
	Randomize bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Behavior: "random",
		Width:    256,
		Height:   256,
		States:   2,
		Agents:   1,
		Scale:    3,
		TPS:      120,
		Seed:     42,
		Topology: "clamp",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Behavior, "behavior", c.Behavior, "behavior table to run (preset name, cyclic, random)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.States, "states", c.States, "cell state count (ignored by 2-state presets)")
	fs.IntVar(&c.Agents, "agents", c.Agents, "number of agents")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Topology, "topology", c.Topology, "edge policy: clamp or torus")
	fs.Uint64Var(&c.MaxTicks, "max-ticks", c.MaxTicks, "halt after this many ticks (0 = unbounded)")
	fs.BoolVar(&c.Randomize, "random-spawn", c.Randomize, "randomize initial agent state and spawn cell")
}

// ToMap converts the flags into the key/value form behavior factories expect.
func (c *Config) ToMap() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"states":    strconv.Itoa(c.States),
		"agents":    strconv.Itoa(c.Agents),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"topology":  c.Topology,
		"max_ticks": strconv.FormatUint(c.MaxTicks, 10),
		"randomize": strconv.FormatBool(c.Randomize),
	}
}
