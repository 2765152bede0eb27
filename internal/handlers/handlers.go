package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sunderapp/sunder/internal/config"
	"github.com/sunderapp/sunder/internal/services"
)

// Handler holds all HTTP handlers
type Handler struct {
	cfg     *config.Config
	scanner *services.Scanner
}

// New creates a new Handler
func New(cfg *config.Config, scanner *services.Scanner) *Handler {
	return &Handler{
		cfg:     cfg,
		scanner: scanner,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/home", h.Home)
	mux.HandleFunc("/api/scan", h.SmartScan)
	mux.HandleFunc("/api/scan/progress", h.ScanProgressSSE)
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON body for failed requests
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
