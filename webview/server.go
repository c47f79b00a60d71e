// Package webview serves the game frame over HTTP and pushes updates to
// browsers over a websocket.
package webview

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-rogue/core"
	"github.com/lixenwraith/vi-rogue/engine"
	"github.com/lixenwraith/vi-rogue/fov"
	"github.com/lixenwraith/vi-rogue/input"
	"github.com/lixenwraith/vi-rogue/status"
)

//go:embed static/index.html
var indexHTML []byte

// Server exposes one scheduler to HTTP and websocket clients. Handlers run
// concurrently; mu serializes every tick and frame read.
type Server struct {
	mu        sync.Mutex
	scheduler *engine.Scheduler
	hub       *Hub
	stats     *status.Registry
	upgrader  websocket.Upgrader
}

// ServerOption customizes a Server
type ServerOption func(*Server)

// WithStats exposes reg at /api/stats
func WithStats(reg *status.Registry) ServerOption {
	return func(s *Server) {
		s.stats = reg
	}
}

// NewServer wraps scheduler and subscribes to its render phase
func NewServer(scheduler *engine.Scheduler, opts ...ServerOption) *Server {
	s := &Server{
		scheduler: scheduler,
		hub:       NewHub(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow connections from any origin
			},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Runs inside Step, with mu held by whoever stepped
	scheduler.OnRender(func(f engine.Frame, res engine.TickResult) {
		frame := NewFrameDTO(f)
		result := NewTickDTO(res)
		s.hub.Broadcast(Message{Type: "frame", Frame: &frame, Result: &result})
	})
	return s
}

// Hub returns the websocket client registry
func (s *Server) Hub() *Hub {
	return s.hub
}

// Routes builds the HTTP handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/frame", s.handleFrame)
		r.Get("/stats", s.handleStats)
		r.Post("/move/{intent}", s.handleMove)
		r.Get("/cell/{x}/{y}", s.handleCell)
	})

	r.Get("/ws", s.handleWebSocket)
	r.Get("/", s.handleIndex)

	return r
}

// Step runs one tick under the server lock
func (s *Server) Step(intent input.Intent) engine.TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.Step(intent)
}

// snapshot converts the current frame under the server lock
func (s *Server) snapshot() FrameDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewFrameDTO(s.scheduler.Frame())
}

// handleFrame handles GET /api/frame
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.snapshot())
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		respondError(w, http.StatusNotFound, "stats not enabled")
		return
	}
	respondJSON(w, http.StatusOK, s.stats.Snapshot())
}

// handleMove handles POST /api/move/{intent} - runs one tick
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	intent, err := input.Parse(chi.URLParam(r, "intent"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	res := s.scheduler.Step(intent)
	frame := NewFrameDTO(s.scheduler.Frame())
	s.mu.Unlock()

	result := NewTickDTO(res)
	respondJSON(w, http.StatusOK, Message{Type: "frame", Frame: &frame, Result: &result})
}

// handleCell handles GET /api/cell/{x}/{y} - inspects one tile
func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.scheduler.Frame()
	kind, err := f.KindAt(x, y)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	p := core.Point{X: x, Y: y}
	cell := CellDTO{
		Pos:      toPoint(p),
		Visible:  f.Visible(p),
		Revealed: f.Revealed(p),
	}
	cell.Kind = kindName(kind, cell.Revealed)

	if from, ok := f.PlayerPosition(); ok {
		cell.LineOfSight = fov.LineOfSight(from, p, s.scheduler.Context().Grid)
	}
	if cell.Visible {
		for _, d := range f.EntitiesAt(p) {
			cell.Entities = append(cell.Entities, d.Name)
		}
	}

	respondJSON(w, http.StatusOK, cell)
}

// handleWebSocket handles GET /ws - sends the current frame, then every tick
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("webview: upgrade: %v", err)
		return
	}

	// Registering under mu orders the initial frame before any tick broadcast
	s.mu.Lock()
	c := s.hub.register(ws)
	frame := NewFrameDTO(s.scheduler.Frame())
	c.sendTo(Message{Type: "frame", Frame: &frame})
	s.mu.Unlock()

	go c.writePump()
	go c.readPump(s.handleClientMessage)
}

// handleClientMessage runs move requests received over the websocket.
// The resulting frame reaches every client through the render hook.
func (s *Server) handleClientMessage(c *client, msg ClientMessage) {
	switch msg.Type {
	case "move":
		intent, err := input.Parse(msg.Intent)
		if err != nil {
			c.sendTo(Message{Type: "error", Error: err.Error()})
			return
		}
		s.Step(intent)
	case "frame":
		frame := s.snapshot()
		c.sendTo(Message{Type: "frame", Frame: &frame})
	default:
		c.sendTo(Message{Type: "error", Error: "unknown message type " + strconv.Quote(msg.Type)})
	}
}

// handleIndex serves the bundled browser client
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// Close disconnects all websocket clients
func (s *Server) Close() {
	s.hub.Close()
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("webview: encode response: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
