package tui

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"turmites/internal/core"
	"turmites/internal/turmite"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

// refreshInterval paces view redraws; engine ticks are paced separately.
const refreshInterval = 33 * time.Millisecond

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// repaintCounter is the render sink for the terminal build: the whole field
// is redrawn from the grid each refresh, so per-cell events only feed the
// repaint counter shown in the status panel.
type repaintCounter struct {
	n uint64
}

func (r *repaintCounter) Paint(int, int, uint8) error {
	r.n++
	return nil
}

// ConsoleUI drives a turmite engine inside a gocui terminal layout: a status
// panel on the left, the field on the right, keybindings at the bottom.
type ConsoleUI struct {
	g   *gocui.Gui
	eng *turmite.Engine
	k   []keyBinding

	mu      sync.Mutex
	running bool
	seed    int64
	pacer   *core.FixedStep
	counter repaintCounter
	lastErr error
	stop    chan struct{}

	fillers []string
	ant     string
}

// New constructs the terminal front-end around an engine it takes exclusive
// ownership of.
func New(eng *turmite.Engine, seed int64, interval time.Duration) (*ConsoleUI, error) {
	if interval <= 0 {
		interval = 25 * time.Millisecond
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	t := &ConsoleUI{
		g:       g,
		eng:     eng,
		seed:    seed,
		pacer:   core.NewFixedStep(tpsFor(interval)),
		stop:    make(chan struct{}),
		fillers: cellFillers(eng.Rules().States()),
		ant:     aurora.Colorize("█", aurora.RedFg|aurora.BrightFg).String(),
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "exit", t.cmdQuit},
		{' ', "SPACE", "run/stop", t.cmdToggleRun},
		{'n', "N", "single tick", t.cmdStep},
		{'r', "R", "reset", t.cmdReset},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, err
		}
	}
	return t, nil
}

func tpsFor(interval time.Duration) int {
	tps := int(time.Second / interval)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// cellFillers maps each cell state to a terminal block. State 0 is the empty
// shade; filled states cycle through distinguishable colors.
func cellFillers(states uint8) []string {
	colors := []aurora.Color{
		aurora.WhiteFg,
		aurora.GreenFg,
		aurora.YellowFg,
		aurora.BlueFg,
		aurora.MagentaFg,
		aurora.CyanFg,
	}
	fillers := make([]string, states)
	fillers[0] = "░"
	for i := 1; i < int(states); i++ {
		fillers[i] = aurora.Colorize("█", colors[(i-1)%len(colors)]).String()
	}
	return fillers
}

// Start runs the tick loop and the gocui main loop; it blocks until exit.
func (t *ConsoleUI) Start() {
	go t.loop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.stop)
	t.g.Close()
}

// loop refreshes the views at a steady rate while the pacer decides how many
// engine ticks each refresh is owed, so fast tick rates do not depend on the
// terminal redraw keeping up.
func (t *ConsoleUI) loop() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			for t.pacer.ShouldStep() {
				if !t.running || !t.eng.Active() {
					continue
				}
				t.tickLocked()
			}
			if !t.eng.Active() {
				t.running = false
			}
			t.mu.Unlock()
			t.refresh()
		}
	}
}

// tickLocked advances one tick; the caller holds the mutex.
func (t *ConsoleUI) tickLocked() {
	if err := t.eng.Tick(&t.counter); err != nil {
		t.lastErr = err
		if errors.Is(err, core.ErrCorruptState) {
			t.running = false
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("field")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		size := t.eng.Size()
		cells := append([]uint8(nil), t.eng.Cells()...)
		markers := t.eng.Markers()
		t.mu.Unlock()

		maxW, maxH := v.Size()
		ants := make(map[[2]int]bool, len(markers))
		for _, m := range markers {
			ants[[2]int{m.X, m.Y}] = true
		}

		var b bytes.Buffer
		for y := 0; y < size.H && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			for x := 0; x < size.W && x < maxW; x++ {
				if ants[[2]int{x, y}] {
					b.WriteString(t.ant)
					continue
				}
				state := cells[y*size.W+x]
				if int(state) >= len(t.fillers) {
					state = uint8(len(t.fillers) - 1)
				}
				b.WriteString(t.fillers[state])
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		size := t.eng.Size()
		name := t.eng.Name()
		ticks := t.eng.Ticks()
		active := t.eng.Active()
		running := t.running
		repaints := t.counter.n
		lastErr := t.lastErr
		t.mu.Unlock()

		mode := aurora.Colorize("waiting", aurora.BlueFg).String()
		if running {
			mode = aurora.Colorize("running", aurora.CyanFg).String()
		}
		if !active {
			mode = aurora.Colorize("halted", aurora.RedFg).String()
		}

		_, _ = fmt.Fprintln(v, t.prop("Behavior", "%s", name))
		_, _ = fmt.Fprintln(v, t.prop("Dimension", "%v x %v", size.W, size.H))
		_, _ = fmt.Fprintln(v, t.prop("Tick", "%v", ticks))
		_, _ = fmt.Fprintln(v, t.prop("Repaints", "%v", repaints))
		_, _ = fmt.Fprintln(v, t.prop("Mode", "%v", mode))
		if lastErr != nil {
			_, _ = fmt.Fprintln(v, t.prop("Error", "%v", lastErr))
		}
		return nil
	})
}

func (t *ConsoleUI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+format, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return nil
}

func (t *ConsoleUI) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdToggleRun() error {
	t.mu.Lock()
	if t.eng.Active() {
		t.running = !t.running
	}
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdStep() error {
	t.mu.Lock()
	t.tickLocked()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReset() error {
	t.mu.Lock()
	t.running = false
	t.lastErr = nil
	t.counter.n = 0
	t.eng.Reset(t.seed)
	t.mu.Unlock()
	t.refresh()
	return nil
}
