package web

import (
	"encoding/json"
	"net/http"

	"github.com/ehrlich-b/twisted/internal/cube2"
	"github.com/ehrlich-b/twisted/internal/cube3"
)

type SolveRequest struct {
	Puzzle   string `json:"puzzle"` // "2x2" or "3x3"
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Length   int    `json:"length"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	var resp SolveResponse
	switch req.Puzzle {
	case "2x2":
		seq, err := cube2.ParseNotation(req.Scramble)
		if err != nil {
			http.Error(w, "Invalid cube notation", http.StatusBadRequest)
			return
		}
		_, fixed := cube2.FixDBLCorner(seq.Perm())
		solution := s.cube2.Solve(fixed)
		resp = SolveResponse{
			Solution: cube2.NotationOf(solution).String(),
			Length:   len(solution),
		}
	case "3x3":
		seq, err := cube3.ParseNotation(req.Scramble)
		if err != nil {
			http.Error(w, "Invalid cube notation", http.StatusBadRequest)
			return
		}
		sol := s.cube3.SolveFirst(seq.Perm())
		resp = SolveResponse{
			Solution: sol.Notation().String(),
			Length:   sol.Len(),
		}
	default:
		http.Error(w, "Unknown puzzle; want \"2x2\" or \"3x3\"", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
