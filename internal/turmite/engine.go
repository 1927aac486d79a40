package turmite

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"turmites/internal/core"
)

// Engine owns one grid and an ordered, non-empty set of agents and advances
// them in lock step. It is single-threaded by contract: one Tick completes
// fully before control returns, and nothing inside the engine schedules
// itself. External loops decide cadence and stop calling Tick once Active
// reports false; a late Tick is a defined no-op.
type Engine struct {
	cfg    Config
	grid   *core.Grid
	rules  *Table
	agents []Agent
	ticks  uint64
	active bool
	logger *log.Logger
}

// New builds an engine with default behavior for the given dimensions and
// state count, per the construction contract: zero width or height fails with
// ErrInvalidDimensions and a state count below two with ErrInvalidStateCount.
func New(width, height, stateCount uint) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = int(width)
	cfg.Height = int(height)
	if stateCount > 255 {
		return nil, fmt.Errorf("state count %d exceeds uint8 range: %w", stateCount, core.ErrInvalidStateCount)
	}
	cfg.States = uint8(stateCount)
	cfg.Table = ""
	return NewWithConfig(cfg)
}

// NewWithConfig builds an engine from a full configuration, selecting the
// rule table named by cfg.Table. Construction either fully succeeds or
// returns an error; no partially built engine is observable.
func NewWithConfig(cfg Config) (*Engine, error) {
	table, err := tableFor(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithTable(cfg, table)
}

// NewWithTable builds an engine around a caller-supplied rule table. The
// table's state count must match the configured one exactly, otherwise some
// (cell, agent) pair would have no entry.
func NewWithTable(cfg Config, table *Table) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine %dx%d: %w", cfg.Width, cfg.Height, core.ErrInvalidDimensions)
	}
	if cfg.States < 2 {
		return nil, fmt.Errorf("engine with %d states: %w", cfg.States, core.ErrInvalidStateCount)
	}
	if table == nil {
		return nil, fmt.Errorf("engine without rule table: %w", core.ErrIncompleteRuleTable)
	}
	if table.States() != cfg.States {
		return nil, fmt.Errorf("%d-state table %q on %d-state grid: %w",
			table.States(), table.Name(), cfg.States, core.ErrIncompleteRuleTable)
	}
	if cfg.Agents < 1 {
		cfg.Agents = 1
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height, cfg.States, cfg.Topology)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		grid:   grid,
		rules:  table,
		agents: make([]Agent, cfg.Agents),
		logger: cfg.Logger,
	}
	e.logf("using %s as behavior table", table.Name())
	e.Reset(cfg.Seed)
	return e, nil
}

func tableFor(cfg Config) (*Table, error) {
	switch cfg.Table {
	case "":
		if cfg.States == 2 {
			return Preset("langton")
		}
		return Cyclic(cfg.States)
	case "cyclic":
		return Cyclic(cfg.States)
	case "random":
		return RandomPreset(core.NewRNG(cfg.Seed)), nil
	default:
		return Preset(cfg.Table)
	}
}

// Name identifies the engine by its behavior table.
func (e *Engine) Name() string { return e.rules.Name() }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the current grid values for full-field renderers.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// States reports the cell-state count, which doubles as the palette size.
func (e *Engine) States() uint8 { return e.grid.States() }

// Rules exposes the immutable behavior table.
func (e *Engine) Rules() *Table { return e.rules }

// Ticks reports the logical clock: the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Active reports whether further Tick calls will advance the simulation.
// It never mutates state; once false it stays false until Reset.
func (e *Engine) Active() bool { return e.active }

// Agents returns a snapshot of the agents for diagnostics and rendering.
func (e *Engine) Agents() []Agent {
	return append([]Agent(nil), e.agents...)
}

// Markers exposes agent positions for front-ends drawing the ant on top of
// the field.
func (e *Engine) Markers() []core.AgentMarker {
	out := make([]core.AgentMarker, len(e.agents))
	for i, a := range e.agents {
		out[i] = core.AgentMarker{X: a.X, Y: a.Y}
	}
	return out
}

// Reset rebuilds the initial state deterministically from the seed: the grid
// is cleared, agents respawn spaced along the middle row heading east, and,
// when the config asks for it, each agent draws a random internal state and
// repaints its spawn cell with a random color. A zero seed falls back to the
// configured one.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	rng := core.NewRNG(effective)

	e.grid.Clear()
	n := len(e.agents)
	for i := range e.agents {
		e.agents[i] = Agent{
			X:       (i + 1) * e.grid.W / (n + 1),
			Y:       e.grid.H / 2,
			Heading: East,
		}
		if e.cfg.Randomize {
			e.agents[i].State = rng.Uint8n(e.grid.States())
			// Write cannot fail: position and state are both in range here.
			_ = e.grid.Write(e.agents[i].X, e.agents[i].Y, rng.Uint8n(e.grid.States()))
		}
	}
	e.ticks = 0
	e.active = true
}

// Tick advances logical time by one unit: every agent steps once in fixed
// order and each repainted cell is handed to the surface (nil runs headless).
// When the engine is halted Tick is a no-op and returns nil. A corrupt-state
// error halts the engine and is returned; a surface failure is returned but
// leaves the tick's grid and agent mutations standing, so the host can retry
// with a fresh surface.
func (e *Engine) Tick(surface core.Surface) error {
	if !e.active {
		return nil
	}

	var renderErr error
	for i := range e.agents {
		paint, exited, err := e.agents[i].Step(e.grid, e.rules)
		if err != nil {
			e.active = false
			e.logf("halting: agent %d: %v", i, err)
			return fmt.Errorf("tick %d agent %d: %w", e.ticks, i, err)
		}
		if exited {
			e.active = false
			e.logf("agent %d hit the edge at (%d,%d); halting", i, e.agents[i].X, e.agents[i].Y)
		}
		if surface != nil {
			if err := surface.Paint(paint.X, paint.Y, paint.State); err != nil {
				if !errors.Is(err, core.ErrRenderTargetUnavailable) {
					err = fmt.Errorf("%w: %w", core.ErrRenderTargetUnavailable, err)
				}
				if renderErr == nil {
					renderErr = fmt.Errorf("paint (%d,%d): %w", paint.X, paint.Y, err)
				}
			}
		}
	}

	e.ticks++
	if e.cfg.MaxTicks > 0 && e.ticks >= e.cfg.MaxTicks {
		e.active = false
		e.logf("tick budget %d reached; halting", e.cfg.MaxTicks)
	}
	return renderErr
}

// String dumps the engine state for diagnostics: dimensions, clock, agents,
// and the field as digit rows.
func (e *Engine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Engine{%s %dx%d tick=%d active=%v}\n",
		e.rules.Name(), e.grid.W, e.grid.H, e.ticks, e.active)
	for i, a := range e.agents {
		fmt.Fprintf(&b, "agent %d: (%d,%d) %s state=%d\n", i, a.X, a.Y, a.Heading, a.State)
	}
	b.WriteString(e.grid.String())
	return b.String()
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
