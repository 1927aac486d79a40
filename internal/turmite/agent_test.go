package turmite

import (
	"errors"
	"testing"

	"turmites/internal/core"
)

func TestHeadingApply(t *testing.T) {
	cases := []struct {
		from Heading
		turn Turn
		want Heading
	}{
		{North, TurnRight, East},
		{East, TurnRight, South},
		{South, TurnRight, West},
		{West, TurnRight, North},
		{North, TurnLeft, West},
		{West, TurnLeft, South},
		{South, TurnLeft, East},
		{East, TurnLeft, North},
		{North, TurnReverse, South},
		{East, TurnReverse, West},
		{South, TurnNone, South},
	}
	for _, c := range cases {
		if got := c.from.Apply(c.turn); got != c.want {
			t.Fatalf("%s + %s = %s, want %s", c.from, c.turn, got, c.want)
		}
	}
}

func TestHeadingDelta(t *testing.T) {
	cases := []struct {
		h      Heading
		dx, dy int
	}{
		{North, 0, -1},
		{East, 1, 0},
		{South, 0, 1},
		{West, -1, 0},
	}
	for _, c := range cases {
		dx, dy := c.h.Delta()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%s delta = (%d,%d), want (%d,%d)", c.h, dx, dy, c.dx, c.dy)
		}
	}
}

// The repaint must land on the cell the agent occupied before moving.
func TestAgentStepOrder(t *testing.T) {
	grid, err := core.NewGrid(3, 3, 2, core.TopologyTorus)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	table, err := Preset("langton")
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	a := Agent{X: 1, Y: 1, Heading: East}
	paint, exited, err := a.Step(grid, table)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if exited {
		t.Fatal("no edge on a torus")
	}
	if paint.X != 1 || paint.Y != 1 || paint.State != 1 {
		t.Fatalf("paint = %+v, want cell (1,1) repainted to 1", paint)
	}
	if got, _ := grid.Read(1, 1); got != 1 {
		t.Fatalf("pre-move cell = %d, want 1", got)
	}
	// Empty cell under langton turns right: east becomes south, move down.
	if a.Heading != South {
		t.Fatalf("heading = %s, want south", a.Heading)
	}
	if a.X != 1 || a.Y != 2 {
		t.Fatalf("agent at (%d,%d), want (1,2)", a.X, a.Y)
	}
	if a.State != 0 {
		t.Fatalf("agent state = %d, want 0", a.State)
	}
}

func TestAgentClampExit(t *testing.T) {
	grid, err := core.NewGrid(3, 1, 2, core.TopologyClamp)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	table, err := NewTable("straight", 2, []Rule{
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 0},
		{Write: 1, Turn: TurnNone, Next: 0},
	})
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	a := Agent{X: 1, Y: 0, Heading: East}
	if _, exited, err := a.Step(grid, table); err != nil || exited {
		t.Fatalf("mid-grid step: exited=%v err=%v", exited, err)
	}
	if a.X != 2 {
		t.Fatalf("agent at x=%d, want 2", a.X)
	}

	_, exited, err := a.Step(grid, table)
	if err != nil {
		t.Fatalf("edge step: %v", err)
	}
	if !exited {
		t.Fatal("stepping off a clamped edge must report the exit")
	}
	if a.X != 2 || a.Y != 0 {
		t.Fatalf("agent must stay pinned in bounds, got (%d,%d)", a.X, a.Y)
	}
}

func TestAgentStepOutOfBoundsIsCorrupt(t *testing.T) {
	grid, err := core.NewGrid(3, 3, 2, core.TopologyTorus)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	table, err := Preset("langton")
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	a := Agent{X: -1, Y: 0, Heading: East}
	if _, _, err := a.Step(grid, table); !errors.Is(err, core.ErrCorruptState) {
		t.Fatalf("got %v, want ErrCorruptState", err)
	}
}
