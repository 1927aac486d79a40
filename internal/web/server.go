package web

import (
	"fmt"
	"html/template"
	"image/color"
	"log"
	"net/http"
	"time"

	"turmites/internal/render"
	"turmites/internal/turmite"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
)

// Server pushes turmite repaint events to browser canvases over websockets.
// Every connection gets its own engine, so each open page is an independent
// simulation, the way the original canvas host behaved.
type Server struct {
	addr     string
	scale    int
	interval time.Duration
	simCfg   turmite.Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	page     *template.Template
}

// New constructs a Server. The simulation config is used as a template: each
// websocket connection instantiates a fresh engine from it.
func New(addr string, scale int, interval time.Duration, simCfg turmite.Config, logger *log.Logger) *Server {
	if scale <= 0 {
		scale = 3
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Server{
		addr:     addr,
		scale:    scale,
		interval: interval,
		simCfg:   simCfg,
		logger:   logger,
		page:     template.Must(template.New("page").Parse(pageHTML)),
	}
}

// ListenAndServe blocks serving the viewer page on / and the event stream
// on /ws.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.servePage)
	mux.HandleFunc("/ws", s.serveSocket)
	s.logf("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := s.page.Execute(w, struct{ Title string }{Title: "turmites"}); err != nil {
		s.logf("page render: %v", err)
	}
}

// initMessage tells the client how to size its canvas and color the cells.
type initMessage struct {
	Type    string   `json:"type"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Scale   int      `json:"scale"`
	Name    string   `json:"name"`
	Palette []string `json:"palette"`
	Agent   string   `json:"agent"`
}

// frameMessage carries one tick's worth of repaints plus agent positions.
type frameMessage struct {
	Type   string       `json:"type"`
	Tick   uint64       `json:"tick"`
	Active bool         `json:"active"`
	Paints []paintEvent `json:"paints"`
	Agents [][2]int     `json:"agents"`
}

type paintEvent struct {
	X int   `json:"x"`
	Y int   `json:"y"`
	S uint8 `json:"s"`
}

// frameSurface buffers one tick's repaint events for the outgoing frame.
type frameSurface struct {
	events []paintEvent
}

func (f *frameSurface) Paint(x, y int, state uint8) error {
	f.events = append(f.events, paintEvent{X: x, Y: y, S: state})
	return nil
}

func (s *Server) serveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	cfg := s.simCfg
	cfg.Logger = s.logger
	eng, err := turmite.NewWithConfig(cfg)
	if err != nil {
		s.logf("engine: %v", err)
		return
	}

	size := eng.Size()
	init := initMessage{
		Type:    "init",
		Width:   size.W,
		Height:  size.H,
		Scale:   s.scale,
		Name:    eng.Name(),
		Palette: hexPalette(render.Palette(cfg.States)),
		Agent:   hexColor(render.AgentColor),
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(init); err != nil {
		s.logf("write init: %v", err)
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	surface := &frameSurface{}
	for range ticker.C {
		surface.events = surface.events[:0]
		if err := eng.Tick(surface); err != nil {
			s.logf("tick %d: %v", eng.Ticks(), err)
			// Corrupt state halts the engine; the final frame below reports it.
		}

		markers := eng.Markers()
		frame := frameMessage{
			Type:   "frame",
			Tick:   eng.Ticks(),
			Active: eng.Active(),
			Paints: surface.events,
			Agents: make([][2]int, len(markers)),
		}
		for i, m := range markers {
			frame.Agents[i] = [2]int{m.X, m.Y}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame); err != nil {
			// Peer gone: the render target is unavailable, stop pushing.
			s.logf("write frame: %v", err)
			return
		}
		if !eng.Active() {
			s.logf("simulation %s halted after %d ticks", eng.Name(), eng.Ticks())
			return
		}
	}
}

func hexPalette(palette []color.RGBA) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		out[i] = hexColor(c)
	}
	return out
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (s *Server) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
