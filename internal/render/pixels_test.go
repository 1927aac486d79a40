package render

import (
	"image/color"
	"testing"
)

func TestPaletteEndpoints(t *testing.T) {
	p := Palette(4)
	if len(p) != 4 {
		t.Fatalf("palette length = %d, want 4", len(p))
	}
	if p[0] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("state 0 color = %v, want white", p[0])
	}
	if p[1] != (color.RGBA{A: 255}) {
		t.Fatalf("state 1 color = %v, want black", p[1])
	}
	for i := 2; i < 4; i++ {
		if p[i].A != 255 {
			t.Fatalf("state %d color %v is not opaque", i, p[i])
		}
		if p[i] == p[0] || p[i] == p[1] {
			t.Fatalf("state %d color %v collides with the base colors", i, p[i])
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 40, G: 50, B: 60, A: 255},
	}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		10, 20, 30, 255,
		40, 50, 60, 255,
		40, 50, 60, 255, // past-the-end values saturate at the last entry
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette: buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestSetPixelRGBA(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 200, A: 255}}
	buf := make([]byte, 8)

	setPixelRGBA(buf, 1, palette, 1)
	if buf[4] != 200 || buf[7] != 255 {
		t.Fatalf("pixel 1 = %v, want red", buf[4:8])
	}
	if buf[0] != 0 || buf[3] != 0 {
		t.Fatalf("pixel 0 was touched: %v", buf[0:4])
	}

	setPixelRGBA(buf, 0, palette, 9)
	if buf[0] != 200 {
		t.Fatal("out-of-range state must saturate at the last palette entry")
	}
}

func TestRecorderOrder(t *testing.T) {
	r := &Recorder{}
	_ = r.Paint(1, 2, 3)
	_ = r.Paint(4, 5, 6)

	if len(r.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(r.Events))
	}
	if r.Events[0] != (Event{X: 1, Y: 2, State: 3}) || r.Events[1] != (Event{X: 4, Y: 5, State: 6}) {
		t.Fatalf("events out of order: %v", r.Events)
	}

	r.Reset()
	if len(r.Events) != 0 {
		t.Fatal("Reset must drop recorded events")
	}
}
