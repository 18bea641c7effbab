package telemetry

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Server wires a Hub onto a gorilla/mux router exposing /ws/agents for
// viewers and /healthz for liveness checks.
type Server struct {
	Hub *Hub

	router *mux.Router
}

// NewServer builds a Server backed by a fresh Hub.
func NewServer() *Server {
	hub := NewHub()
	s := &Server{Hub: hub, router: mux.NewRouter()}

	s.router.HandleFunc("/ws/agents", hub.ServeWS)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ServeHTTP satisfies http.Handler, delegating to the internal router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
