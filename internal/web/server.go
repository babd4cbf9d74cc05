package web

import (
	"net/http"

	"github.com/ehrlich-b/twisted/internal/cube2"
	"github.com/ehrlich-b/twisted/internal/cube3"
	"github.com/ehrlich-b/twisted/internal/logger"
	"github.com/gorilla/mux"
)

// Server exposes the solvers over HTTP. Both table sets are built up
// front so every request is a pure lookup-driven search.
type Server struct {
	router *mux.Router
	cube2  *cube2.Tables
	cube3  *cube3.Tables
}

// NewServer builds the solver tables and sets up routes.
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		cube2:  cube2.SolverTables(),
		cube3:  cube3.NewTables(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start serves until the listener fails.
func (s *Server) Start(addr string) error {
	log := logger.Logger()
	log.Info().Str("addr", addr).Msg("server starting")
	return http.ListenAndServe(addr, s.router)
}

// Handler returns the route handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
