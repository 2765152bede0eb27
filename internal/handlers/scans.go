package handlers

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/sunderapp/sunder/internal/services"
	"github.com/sunderapp/sunder/internal/types"
)

// HomeData is the response for GET /api/home
type HomeData struct {
	Home string `json:"home"`
}

// FolderData is a wire view of a categorized folder with a display size
type FolderData struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes uint64 `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Category  string `json:"category"`
}

// ScanResultData is the response for POST /api/scan
type ScanResultData struct {
	TotalSizeBytes uint64       `json:"total_size_bytes"`
	TotalSizeHuman string       `json:"total_size_human"`
	Folders        []FolderData `json:"folders"`
}

// Home handles GET /api/home
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	home, err := h.scanner.HomeDir()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, HomeData{Home: home})
}

// SmartScan handles POST /api/scan. The request blocks until the scan
// completes; progress is available on /api/scan/progress meanwhile.
func (h *Handler) SmartScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.scanner.SmartScan(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrScanInProgress) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, toScanResultData(result))
}

func toScanResultData(result *types.ScanResult) ScanResultData {
	data := ScanResultData{
		TotalSizeBytes: result.TotalSizeBytes,
		TotalSizeHuman: humanize.Bytes(result.TotalSizeBytes),
		Folders:        make([]FolderData, 0, len(result.Folders)),
	}
	for _, f := range result.Folders {
		data.Folders = append(data.Folders, FolderData{
			Name:      f.Name,
			Path:      f.Path,
			SizeBytes: f.SizeBytes,
			SizeHuman: humanize.Bytes(f.SizeBytes),
			Category:  f.Category,
		})
	}
	return data
}
