// Package api provides the HTTP API for observing a running game.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/starfront-game/starfront/internal/engine"
	"github.com/starfront-game/starfront/internal/persistence"
)

// Server serves one game's state over HTTP.
type Server struct {
	Sim      *engine.Simulation
	Eng      *engine.Engine
	DB       *persistence.DB
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// Replanning runs the full planner pipeline; keep it rare.
	replanLimiter := NewRateLimiter(10, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/stars", s.handleStars)
	mux.HandleFunc("/api/v1/players", s.handlePlayers)
	mux.HandleFunc("/api/v1/carriers", s.handleCarriers)
	mux.HandleFunc("/api/v1/events", s.handleEvents)

	// Admin endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/snapshot", s.adminOnly(s.handleSnapshot))
	mux.HandleFunc("/api/v1/replan", s.adminOnly(RateLimitMiddleware(replanLimiter, s.handleReplan)))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" || r.Header.Get("Authorization") != "Bearer "+s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("response encode failed", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	g := s.Sim.Game
	totalCredits := int64(0)
	aiPlayers := 0
	for _, p := range g.Players {
		totalCredits += p.Credits
		if p.AIControlled {
			aiPlayers++
		}
	}

	writeJSON(w, map[string]any{
		"game":          g.Name,
		"state":         g.State,
		"tick":          g.Tick,
		"cycle":         engine.CycleNumber(g.Tick, g.Settings.TicksPerCycle),
		"players":       len(g.Players),
		"ai_players":    aiPlayers,
		"stars":         len(g.Stars),
		"carriers":      len(g.Carriers),
		"total_credits": humanize.Comma(totalCredits),
		"speed":         s.Eng.Speed,
	})
}

func (s *Server) handleStars(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Game.Stars)
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Game.Players)
}

func (s *Server) handleCarriers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Game.Carriers)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	events := s.Sim.Events
	// Most recent 100.
	if len(events) > 100 {
		events = events[len(events)-100:]
	}
	writeJSON(w, events)
}

// handleSpeed adjusts the engine speed: {"speed": 2.0}.
func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Speed < 0 || req.Speed > 100 {
		http.Error(w, "speed out of range", http.StatusBadRequest)
		return
	}
	s.Eng.Speed = req.Speed
	slog.Info("engine speed changed", "speed", req.Speed)
	writeJSON(w, map[string]any{"speed": req.Speed})
}

// handleSnapshot persists the current game state on demand.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.SaveGame(s.Sim.Game); err != nil {
		slog.Error("snapshot failed", "error", err)
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"saved_tick": s.Sim.Game.Tick})
}

// handleReplan reruns the planning pass for an AI player:
// {"player_id": "..."}.
func (s *Server) handleReplan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}
	p := s.Sim.Game.PlayerByID(playerID)
	if p == nil {
		http.Error(w, "player not in game", http.StatusNotFound)
		return
	}
	if !p.AIControlled {
		http.Error(w, "player is not AI-controlled", http.StatusConflict)
		return
	}

	if err := s.Sim.SetAIControlled(playerID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"loops": len(s.Sim.Plans[playerID])})
}
