package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sunderapp/sunder/internal/types"
)

// ScanProgressSSE handles SSE connections for scan progress
func (h *Handler) ScanProgressSSE(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	// Subscribe to updates
	updates := h.scanner.Subscribe()
	defer h.scanner.Unsubscribe(updates)

	// Comment line confirms the stream is live before any progress arrives
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.sendScanProgress(w, flusher, update)
		}
	}
}

func (h *Handler) sendScanProgress(w http.ResponseWriter, flusher http.Flusher, progress *types.ScanProgress) {
	jsonData, _ := json.Marshal(progress)
	h.sendEvent(w, flusher, "scan-progress", string(jsonData))
}

func (h *Handler) sendEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}
