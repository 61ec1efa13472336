package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"evroam/internal"
	"evroam/internal/config"
	"evroam/roaming"
)

// Server exposes the latest roaming snapshot read-only. All handlers work
// on the immutable snapshot value, so no locking is needed.
type Server struct {
	conf       *config.Config
	httpServer *http.Server
	service    *roaming.Service
	logger     internal.LogHandler
}

func NewServerApi(conf *config.Config, logger internal.LogHandler, service *roaming.Service) *Server {
	server := Server{
		conf:    conf,
		logger:  logger,
		service: service,
	}
	router := httprouter.New()
	server.register(router)
	server.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port),
		Handler: router,
	}
	return &server
}

func (s *Server) register(router *httprouter.Router) {
	router.GET("/api/operators", s.handleOperators)
	router.GET("/api/operators/:id/topology", s.handleTopology)
	router.GET("/api/operators/:id/collisions", s.handleCollisions)
	router.GET("/api/operators/:id/unresolved", s.handleUnresolved)
	router.GET("/api/evse/:id", s.handleEvse)
	router.GET("/api/evse/:id/status", s.handleEvseStatus)
}

func (s *Server) Start() error {
	s.logger.Debug(fmt.Sprintf("starting api server on %s", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) snapshot(w http.ResponseWriter) *roaming.Snapshot {
	snapshot := s.service.Snapshot()
	if snapshot == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return nil
	}
	return snapshot
}

func (s *Server) handleOperators(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	operators := make([]string, 0, len(snapshot.Topologies))
	for id := range snapshot.Topologies {
		operators = append(operators, id)
	}
	s.writeJSON(w, operators)
}

func (s *Server) handleTopology(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	t, ok := snapshot.Topologies[p.ByName("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJSON(w, t)
}

func (s *Server) handleCollisions(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	t, ok := snapshot.Topologies[p.ByName("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJSON(w, t.Collisions)
}

func (s *Server) handleUnresolved(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	t, ok := snapshot.Topologies[p.ByName("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJSON(w, t.Unresolved)
}

func (s *Server) handleEvse(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	evseID := p.ByName("id")
	for _, t := range snapshot.Topologies {
		if placement, err := t.Lookup(evseID); err == nil {
			s.writeJSON(w, placement)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) handleEvseStatus(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	snapshot := s.snapshot(w)
	if snapshot == nil {
		return
	}
	status, ok := snapshot.Statuses[p.ByName("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeJSON(w, status)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding api response", err)
	}
}
