package main

import (
	"log"
	"os"
	"time"

	"turmites/internal/core"
	"turmites/internal/turmite"
	"turmites/internal/web"

	"github.com/integrii/flaggy"
)

func main() {
	addr := ":8080"
	width := 192
	height := 128
	states := 2
	agents := 1
	seed := 0
	scale := 4
	interval := 16 * time.Millisecond
	behavior := "random"
	topology := "clamp"
	randomize := true

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("serve turmite simulations to browser canvases over websockets")
	flaggy.String(&addr, "l", "listen", "listen address")
	flaggy.Int(&width, "x", "width", "width of the simulation field in cells")
	flaggy.Int(&height, "y", "height", "height of the simulation field in cells")
	flaggy.Int(&states, "c", "states", "cell state count (2-state presets ignore this)")
	flaggy.Int(&agents, "a", "agents", "number of agents")
	flaggy.Int(&seed, "s", "seed", "deterministic seed (0 = per-connection time seed)")
	flaggy.Int(&scale, "p", "pixel-ratio", "canvas pixels per cell")
	flaggy.Duration(&interval, "i", "interval", "interval between pushed frames, for example 16ms")
	flaggy.String(&behavior, "b", "behavior", "behavior table (preset name, cyclic, random)")
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
	cfg.Table = behavior
	cfg.Topology = core.ParseTopology(topology)
	cfg.Randomize = randomize
	if seed != 0 {
		cfg.Seed = int64(seed)
	} else {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr, "turmite-web ", log.LstdFlags)
	server := web.New(addr, scale, interval, cfg, logger)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal(err)
	}
}
