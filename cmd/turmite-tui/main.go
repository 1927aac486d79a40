package main

import (
	"log"
	"strings"
	"time"

	"turmites/internal/core"
	"turmites/internal/tui"
	"turmites/internal/turmite"

	"github.com/integrii/flaggy"
)

func main() {
	width := 120
	height := 48
	states := 2
	agents := 1
	seed := 42
	interval := 25 * time.Millisecond
	behavior := "random"
	topology := "clamp"
	randomize := false

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("turmite simulation in the terminal")
	flaggy.Int(&width, "x", "width", "width of the simulation field in cells")
	flaggy.Int(&height, "y", "height", "height of the simulation field in cells")
	flaggy.Int(&states, "c", "states", "cell state count (2-state presets ignore this)")
	flaggy.Int(&agents, "a", "agents", "number of agents")
	flaggy.Int(&seed, "s", "seed", "deterministic seed")
	flaggy.Duration(&interval, "i", "interval", "interval between ticks, for example 25ms")
	flaggy.String(&behavior, "b", "behavior", "behavior table ["+strings.Join(append(turmite.Presets(), "cyclic", "random"), "|")+"]")
	flaggy.String(&topology, "t", "topology", "edge policy: clamp or torus")
	flaggy.Bool(&randomize, "r", "random-spawn", "randomize initial agent state and spawn cell")
	flaggy.Parse()

	cfg := turmite.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	if states >= 2 && states <= 255 {
		cfg.States = uint8(states)
	}
	cfg.Agents = agents
	cfg.Seed = int64(seed)
	cfg.Table = behavior
	cfg.Topology = core.ParseTopology(topology)
	cfg.Randomize = randomize

	eng, err := turmite.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	view, err := tui.New(eng, cfg.Seed, interval)
	if err != nil {
		log.Fatal(err)
	}
	view.Start()
}
