package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mnkgame/internal/bootstrap"
	"mnkgame/internal/engine"
	"mnkgame/internal/game"
)

const tickInterval = 50 * time.Millisecond

type Server struct {
	log     *zap.SugaredLogger
	cfg     *bootstrap.Config
	manager *game.Manager
	hub     *Hub

	// position hash of the last assist suggestion pushed per game, so the
	// ticker broadcasts each suggestion once.
	assistMu   sync.Mutex
	lastAssist map[string]uint64
}

func New(cfg *bootstrap.Config, log *zap.SugaredLogger) *Server {
	return &Server{
		log:        log,
		cfg:        cfg,
		manager:    game.NewManager(),
		hub:        NewHub(),
		lastAssist: make(map[string]uint64),
	}
}

func (s *Server) Manager() *game.Manager {
	return s.manager
}

// Run starts the hub and the tick loop and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	go s.hub.Run(ctx.Done())

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tickAll()
		}
	}
}

func (s *Server) tickAll() {
	for _, controller := range s.manager.All() {
		if controller.Tick() {
			if entry, ok := controller.LatestHistoryEntry(); ok {
				s.hub.broadcastHistory <- historyPayload{
					GameID:  controller.ID(),
					History: []historyEntryDTO{historyEntryToDTO(entry)},
				}
				if entry.IsEngine && s.cfg.LogSearchStats {
					s.log.Infow("engine move",
						"game", controller.ID(),
						"move", entry.Move.Algebraic(),
						"value", entry.Value,
						"states_explored", entry.StatesExplored,
						"elapsed_ms", entry.ElapsedMs,
					)
				}
			}
			s.hub.broadcastStatus <- controllerStatus(controller)
		}
		s.pushAssist(controller)
	}
}

func (s *Server) pushAssist(controller *game.Controller) {
	id := controller.ID()
	if !controller.Settings().AssistEnabled || !s.hub.HasClients(id) {
		return
	}
	decision, ok := controller.Suggestion()
	if !ok {
		return
	}
	state := controller.State()
	s.assistMu.Lock()
	last, seen := s.lastAssist[id]
	if seen && last == state.Position.Hash {
		s.assistMu.Unlock()
		return
	}
	s.lastAssist[id] = state.Position.Hash
	s.assistMu.Unlock()
	s.hub.broadcastAssist <- analysisToDTO(id, state.ToMove, decision)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.handleCreateGame)
		r.Get("/", s.handleListGames)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleStatus)
			r.Get("/status", s.handleStatus)
			r.Delete("/", s.handleDeleteGame)
			r.Post("/start", s.handleStart)
			r.Post("/move", s.handleMove)
			r.Post("/reset", s.handleReset)
			r.Get("/suggest", s.handleSuggest)
		})
	})

	r.Get("/ws/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		controller, ok := s.lookup(w, r)
		if !ok {
			return
		}
		s.serveWS(controller, w, r)
	})

	return r
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*game.Controller, bool) {
	id := chi.URLParam(r, "id")
	controller, ok := s.manager.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
		return nil, false
	}
	return controller, true
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var payload createGameRequest
	// an empty body means default settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	settings := settingsFromDTO(payload.Settings, s.cfg.GameSettings())
	if err := settings.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	controller := s.manager.Create(settings)
	s.log.Infow("game created", "game", controller.ID(), "rules", engineRules(settings))
	writeJSON(w, http.StatusCreated, controllerStatus(controller))
}

func engineRules(settings game.Settings) string {
	return engine.NewRules(settings.BoardWidth, settings.BoardHeight, settings.WinLength).String()
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	controllers := s.manager.All()
	statuses := make([]StatusResponse, 0, len(controllers))
	for _, controller := range controllers {
		statuses = append(statuses, controllerStatus(controller))
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": statuses})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	controller, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, controllerStatus(controller))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed := s.manager.Remove(id)
	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
		return
	}
	s.assistMu.Lock()
	delete(s.lastAssist, id)
	s.assistMu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"removed": true})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	controller, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var payload createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	settings := settingsFromDTO(payload.Settings, controller.Settings())
	if err := settings.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	controller.StartGame(settings)
	writeJSON(w, http.StatusOK, controllerStatus(controller))
	s.hub.broadcastReset <- controllerStatus(controller)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	controller, ok := s.lookup(w, r)
	if !ok {
		return
	}
	controller.Reset(controller.Settings())
	s.assistMu.Lock()
	delete(s.lastAssist, controller.ID())
	s.assistMu.Unlock()
	writeJSON(w, http.StatusOK, controllerStatus(controller))
	s.hub.broadcastReset <- controllerStatus(controller)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	controller, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var payload apiMove
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	move := engine.Move{X: payload.X, Y: payload.Y}
	if payload.Coord != "" {
		parsed, err := engine.ParseAlgebraic(payload.Coord)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		move = parsed
	}
	applied, errMsg := controller.ApplyHumanMove(move)
	if !applied {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
		return
	}
	if entry, ok := controller.LatestHistoryEntry(); ok {
		s.hub.broadcastHistory <- historyPayload{
			GameID:  controller.ID(),
			History: []historyEntryDTO{historyEntryToDTO(entry)},
		}
	}
	s.hub.broadcastStatus <- controllerStatus(controller)
	writeJSON(w, http.StatusOK, controllerStatus(controller))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	controller, ok := s.lookup(w, r)
	if !ok {
		return
	}
	state := controller.State()
	decision, ok := controller.Analyze()
	if !ok {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to analyze"})
		return
	}
	writeJSON(w, http.StatusOK, analysisToDTO(controller.ID(), state.ToMove, decision))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
