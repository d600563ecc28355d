// Package api provides the HTTP API for observing the simulation.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/talgya/statecraft/internal/engine"
	"github.com/talgya/statecraft/internal/narrative"
	"github.com/talgya/statecraft/internal/persistence"
)

// Server serves the world state over HTTP.
type Server struct {
	World    *engine.World
	Eng      *engine.Engine
	Writer   *narrative.Client
	DB       *persistence.DB
	RunID    string
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	// Cached chronicle (regenerated at most once per simulated year).
	chronicleMu       sync.Mutex
	cachedChronicle   *narrative.Chronicle
	lastChronicleYear int

	// Speed to restore after a pause.
	pauseMu     sync.Mutex
	resumeSpeed float64
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	// The chronicle endpoint consumes the narrative service; keep it bounded.
	chronicleLimiter := NewRateLimiter(30, time.Hour)

	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/nations", s.handleNations)
	mux.HandleFunc("/api/v1/nation/", s.handleNationDetail)
	mux.HandleFunc("/api/v1/events", s.handleEvents)
	mux.HandleFunc("/api/v1/crises", s.handleCrises)
	mux.HandleFunc("/api/v1/chronicle", RateLimitMiddleware(chronicleLimiter, s.handleChronicle))

	// Admin endpoints (POST, bearer token).
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/pause", s.adminOnly(s.handlePause))
	mux.HandleFunc("/api/v1/resume", s.adminOnly(s.handleResume))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("api server starting", "addr", addr, "admin", s.AdminKey != "")

	go func() {
		srv := &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("api server failed", "error", err)
		}
	}()
}

// adminOnly wraps a handler with bearer-token auth. POST is disabled entirely
// when no admin key is configured.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled", http.StatusForbidden)
			return
		}
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token != s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// --- Public endpoints ---

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.World.Statistics()
	resp := map[string]any{
		"year":       s.World.CurrentYear(),
		"seed":       s.World.Seed,
		"run_id":     s.RunID,
		"speed":      s.Eng.Speed,
		"running":    s.Eng.Running,
		"population": stats.TotalPopulation,
		"at_war":     stats.NationsAtWar,
		"crises":     stats.ActiveCrises,
		"avg_unrest": stats.AvgUnrest,
	}
	writeJSON(w, http.StatusOK, resp)
}

type nationSummary struct {
	Tag        string  `json:"tag"`
	Name       string  `json:"name"`
	Population int64   `json:"population"`
	GDP        float64 `json:"gdp"`
	Military   int     `json:"military"`
	Economy    int     `json:"economy"`
	Stability  int     `json:"stability"`
	AtWar      bool    `json:"at_war"`
	Crises     int     `json:"crises"`
}

func (s *Server) handleNations(w http.ResponseWriter, r *http.Request) {
	_, states := s.World.Snapshot()
	out := make([]nationSummary, 0, len(states))
	for _, st := range states {
		var pop int64
		if st.Demographics != nil {
			pop = st.Demographics.TotalPopulation
		}
		out = append(out, nationSummary{
			Tag:        st.Tag,
			Name:       st.Name,
			Population: pop,
			GDP:        st.Economy.GDP,
			Military:   st.Stats.Military,
			Economy:    st.Stats.Economy,
			Stability:  st.Stats.Stability,
			AtWar:      st.AtWar,
			Crises:     len(st.Active),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleNationDetail(w http.ResponseWriter, r *http.Request) {
	tag := strings.TrimPrefix(r.URL.Path, "/api/v1/nation/")
	tag = strings.ToUpper(strings.TrimSuffix(tag, "/"))
	if tag == "" {
		http.Error(w, "nation tag required", http.StatusBadRequest)
		return
	}
	st, ok := s.World.NationByTag(tag)
	if !ok {
		http.Error(w, "nation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		fmt.Sscanf(q, "%d", &limit)
		if limit < 1 || limit > 500 {
			limit = 50
		}
	}
	events := s.World.RecentEvents(limit)
	if tag := strings.ToUpper(r.URL.Query().Get("nation")); tag != "" {
		filtered := events[:0]
		for _, ev := range events {
			if ev.Nation == tag {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}
	writeJSON(w, http.StatusOK, events)
}

type activeCrisis struct {
	Nation         string  `json:"nation"`
	Type           string  `json:"type"`
	StartYear      int     `json:"start_year"`
	Remaining      int     `json:"remaining"`
	EscalationRisk float64 `json:"escalation_risk"`
}

func (s *Server) handleCrises(w http.ResponseWriter, r *http.Request) {
	_, states := s.World.Snapshot()
	out := make([]activeCrisis, 0)
	for _, st := range states {
		for _, ac := range st.Active {
			out = append(out, activeCrisis{
				Nation:         st.Tag,
				Type:           ac.Type.String(),
				StartYear:      ac.StartYear,
				Remaining:      ac.Remaining,
				EscalationRisk: ac.EscalationRisk,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nation != out[j].Nation {
			return out[i].Nation < out[j].Nation
		}
		return out[i].Type < out[j].Type
	})
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleChronicle(w http.ResponseWriter, r *http.Request) {
	year := s.World.CurrentYear()

	s.chronicleMu.Lock()
	defer s.chronicleMu.Unlock()

	if s.cachedChronicle != nil && s.lastChronicleYear == year {
		writeJSON(w, http.StatusOK, s.cachedChronicle)
		return
	}

	events := s.World.RecentEvents(100)
	chron, err := narrative.GenerateChronicle(s.Writer, year, events)
	if err != nil {
		slog.Warn("chronicle generation failed", "year", year, "error", err)
		http.Error(w, "chronicle unavailable", http.StatusBadGateway)
		return
	}
	s.cachedChronicle = chron
	s.lastChronicleYear = year
	writeJSON(w, http.StatusOK, chron)
}

// --- Admin endpoints ---

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed float64 `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Speed < 0.1 || req.Speed > 100 {
		http.Error(w, "speed must be between 0.1 and 100", http.StatusBadRequest)
		return
	}
	s.Eng.Speed = req.Speed
	slog.Info("simulation speed changed", "speed", req.Speed)
	writeJSON(w, http.StatusOK, map[string]any{"speed": req.Speed})
}

// Pause works by zeroing the speed: the turn loop keeps running and
// resumes cleanly on the next speed change.
func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.pauseMu.Lock()
	if s.Eng.Speed > 0 {
		s.resumeSpeed = s.Eng.Speed
		s.Eng.Speed = 0
	}
	s.pauseMu.Unlock()
	slog.Info("simulation paused", "year", s.World.CurrentYear())
	writeJSON(w, http.StatusOK, map[string]any{"paused": true})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.pauseMu.Lock()
	if s.Eng.Speed == 0 {
		speed := s.resumeSpeed
		if speed <= 0 {
			speed = 1.0
		}
		s.Eng.Speed = speed
	}
	s.pauseMu.Unlock()
	slog.Info("simulation resumed", "year", s.World.CurrentYear(), "speed", s.Eng.Speed)
	writeJSON(w, http.StatusOK, map[string]any{"paused": false, "speed": s.Eng.Speed})
}
