package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Surface receives one paint call per changed cell per tick. Implementations
// project cell states onto a drawing target (window, terminal, socket) and
// must never read or mutate simulation state. A dead target reports an error
// wrapping ErrRenderTargetUnavailable.
type Surface interface {
	Paint(x, y int, state uint8) error
}

// AgentMarker is the read-only position of an agent, exposed so front-ends
// can draw the agent distinctly from the cell underneath it.
type AgentMarker struct {
	X, Y int
}

// MarkerProvider is implemented by simulations that expose agent positions.
type MarkerProvider interface {
	Markers() []AgentMarker
}

// Sim defines the contract every registered behavior must implement. Tick
// advances logical time by one unit and reports changed cells to the surface
// (which may be nil for headless runs); Active reports whether further ticks
// will do anything.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Tick(surface Surface) error
	Active() bool
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
