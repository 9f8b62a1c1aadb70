package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sozercan/misinfo-mole/apimodels"
	"github.com/sozercan/misinfo-mole/internal/analyzer"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	slog.Debug("received analysis request", "chars", len(req.Text))

	result, err := s.analyzer.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) {
			http.Error(w, "Please paste text to analyze.", http.StatusBadRequest)
			return
		}
		slog.Error("analysis request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("health check request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
