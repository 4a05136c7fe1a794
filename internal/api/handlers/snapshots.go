package handlers

import (
	"net/http"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
)

// SnapshotHandler handles net worth snapshot HTTP requests
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// SnapshotResponse represents the create-snapshot response
type SnapshotResponse struct {
	Message  string                 `json:"message"`
	Snapshot model.NetWorthSnapshot `json:"snapshot"`
}

// CreateSnapshot forces a fresh valuation pass, appends a snapshot to the
// history, and trims it to the retention cap.
func (h *SnapshotHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotService.CreateSnapshot(r.Context(), userID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to create net worth snapshot")
		return
	}

	respondJSON(w, http.StatusCreated, SnapshotResponse{
		Message:  "Net worth snapshot created",
		Snapshot: snapshot,
	})
}
