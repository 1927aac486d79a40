package core

import "testing"

func TestRNGIsSeedDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}

	c, d := NewRNG(1), NewRNG(2)
	same := true
	for i := 0; i < 100; i++ {
		if c.IntN(1000) != d.IntN(1000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestRNGBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if v := r.IntN(3); v < 0 || v >= 3 {
			t.Fatalf("IntN(3) = %d", v)
		}
		if v := r.Uint8n(4); v >= 4 {
			t.Fatalf("Uint8n(4) = %d", v)
		}
	}
	if r.IntN(0) != 0 || r.Uint8n(0) != 0 {
		t.Fatal("degenerate bounds must return 0")
	}
}
