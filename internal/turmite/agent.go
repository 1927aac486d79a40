package turmite

import (
	"fmt"

	"turmites/internal/core"
)

// Heading is one of the four compass directions, in clockwise order.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// String returns the compass name of the heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}

// Apply rotates the heading by the given turn.
func (h Heading) Apply(t Turn) Heading {
	switch t {
	case TurnLeft:
		return (h + 3) % 4
	case TurnRight:
		return (h + 1) % 4
	case TurnReverse:
		return (h + 2) % 4
	}
	return h
}

// Delta returns the unit step for the heading in screen coordinates
// (y grows downward, matching the grid's row-major layout).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Paint is one repaint event: the cell at (X, Y) now holds State.
type Paint struct {
	X, Y  int
	State uint8
}

// Agent is a single turmite: a position, a heading, and an internal state
// indexing the rule table.
type Agent struct {
	X, Y    int
	Heading Heading
	State   uint8
}

// Step advances the agent by one tick: read the cell underneath, resolve the
// rule, repaint the cell at the pre-move position, turn, adopt the next
// internal state, then move one cell in the new heading. The returned Paint
// describes the cell the agent just left; exited reports that the move hit a
// clamped edge, which halts the simulation under TopologyClamp.
func (a *Agent) Step(grid *core.Grid, rules *Table) (paint Paint, exited bool, err error) {
	cell, err := grid.Read(a.X, a.Y)
	if err != nil {
		return Paint{}, false, err
	}
	rule, err := rules.Resolve(cell, a.State)
	if err != nil {
		return Paint{}, false, err
	}
	if err := grid.Write(a.X, a.Y, rule.Write); err != nil {
		return Paint{}, false, err
	}
	paint = Paint{X: a.X, Y: a.Y, State: rule.Write}

	a.Heading = a.Heading.Apply(rule.Turn)
	a.State = rule.Next

	dx, dy := a.Heading.Delta()
	nx, ny, inside := grid.Normalize(a.X+dx, a.Y+dy)
	a.X, a.Y = nx, ny
	return paint, !inside, nil
}
