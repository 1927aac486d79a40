package core

import (
	"errors"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 4, 2, TopologyTorus); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero width: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewGrid(4, -1, 2, TopologyTorus); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("negative height: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewGrid(4, 4, 1, TopologyTorus); !errors.Is(err, ErrInvalidStateCount) {
		t.Fatalf("one state: got %v, want ErrInvalidStateCount", err)
	}

	g, err := NewGrid(4, 3, 2, TopologyTorus)
	if err != nil {
		t.Fatalf("valid grid: %v", err)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("cells = %d, want 12", len(g.Cells()))
	}
}

func TestTorusNormalize(t *testing.T) {
	g, err := NewGrid(4, 3, 2, TopologyTorus)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{4, 0, 0, 0},
		{-1, 0, 3, 0},
		{0, 3, 0, 0},
		{0, -1, 0, 2},
		{-5, -4, 3, 2},
		{9, 7, 1, 1},
	}
	for _, c := range cases {
		nx, ny, inside := g.Normalize(c.x, c.y)
		if !inside {
			t.Fatalf("(%d,%d): torus reported a boundary", c.x, c.y)
		}
		if nx != c.wx || ny != c.wy {
			t.Fatalf("(%d,%d) -> (%d,%d), want (%d,%d)", c.x, c.y, nx, ny, c.wx, c.wy)
		}
	}
}

func TestClampNormalize(t *testing.T) {
	g, err := NewGrid(4, 3, 2, TopologyClamp)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	nx, ny, inside := g.Normalize(2, 1)
	if !inside || nx != 2 || ny != 1 {
		t.Fatalf("in-bounds normalize changed (2,1) -> (%d,%d) inside=%v", nx, ny, inside)
	}

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 0, 0, 0},
		{4, 2, 3, 2},
		{2, -3, 2, 0},
		{2, 3, 2, 2},
		{-1, 5, 0, 2},
	}
	for _, c := range cases {
		nx, ny, inside := g.Normalize(c.x, c.y)
		if inside {
			t.Fatalf("(%d,%d): clamp must report the boundary", c.x, c.y)
		}
		if nx != c.wx || ny != c.wy {
			t.Fatalf("(%d,%d) -> (%d,%d), want (%d,%d)", c.x, c.y, nx, ny, c.wx, c.wy)
		}
	}
}

func TestReadWrite(t *testing.T) {
	g, err := NewGrid(3, 3, 4, TopologyTorus)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	if err := g.Write(1, 2, 3); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := g.Read(1, 2); err != nil || got != 3 {
		t.Fatalf("read = %d (%v), want 3", got, err)
	}

	if err := g.Write(1, 2, 4); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("out-of-range state: got %v, want ErrInvalidState", err)
	}
	if got, _ := g.Read(1, 2); got != 3 {
		t.Fatalf("rejected write mutated the cell to %d", got)
	}

	if err := g.Write(3, 0, 1); !errors.Is(err, ErrCorruptState) {
		t.Fatalf("out-of-bounds write: got %v, want ErrCorruptState", err)
	}
	if _, err := g.Read(-1, 0); !errors.Is(err, ErrCorruptState) {
		t.Fatalf("out-of-bounds read: got %v, want ErrCorruptState", err)
	}

	g.Clear()
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
}

func TestParseTopology(t *testing.T) {
	if ParseTopology("torus") != TopologyTorus || ParseTopology("WRAP") != TopologyTorus {
		t.Fatal("torus spellings not recognized")
	}
	if ParseTopology("clamp") != TopologyClamp || ParseTopology("") != TopologyClamp {
		t.Fatal("clamp must be the default")
	}
}
