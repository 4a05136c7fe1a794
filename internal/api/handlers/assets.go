package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/request"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/validation"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	portfolioService *service.PortfolioService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(portfolioService *service.PortfolioService) *AssetHandler {
	return &AssetHandler{
		portfolioService: portfolioService,
	}
}

// AddAsset creates a new asset in the portfolio. The initial value follows
// the pricing rules: override first, then quote x quantity, then the
// caller-supplied value.
func (h *AssetHandler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		respondServiceError(w, err, "")
		return
	}

	class, _ := model.ParseAssetClass(req.Class)
	asset := model.Asset{
		Name:           req.Name,
		Class:          class,
		Symbol:         req.Symbol,
		Quantity:       req.Quantity,
		ManualOverride: req.ManualOverride,
	}
	if req.Value != nil {
		asset.Value = *req.Value
	}

	created, err := h.portfolioService.AddAsset(r.Context(), userID(r), asset)
	if err != nil {
		respondServiceError(w, err, "Failed to add asset")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// UpdateAsset applies a partial update to an existing asset and revalues
// it. Unknown ids are 404.
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetID")

	var req request.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdateAsset(req); err != nil {
		respondServiceError(w, err, "")
		return
	}

	update := service.AssetUpdate{
		Name:     req.Name,
		Symbol:   req.Symbol,
		Quantity: req.Quantity,
		Value:    req.Value,
	}
	if req.Class != nil {
		class, _ := model.ParseAssetClass(*req.Class)
		update.Class = &class
	}
	switch {
	case req.ManualOverride.Set && req.ManualOverride.Valid:
		override := req.ManualOverride.Value
		update.ManualOverride = &override
	case req.ManualOverride.Set:
		// Explicit null removes the override
		update.ClearManualOverride = true
	}

	updated, err := h.portfolioService.UpdateAsset(r.Context(), userID(r), assetID, update)
	if err != nil {
		respondServiceError(w, err, "Failed to update asset")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteAsset removes an asset from the portfolio. Unknown ids are 404.
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetID")

	if err := h.portfolioService.DeleteAsset(r.Context(), userID(r), assetID); err != nil {
		respondServiceError(w, err, "Failed to delete asset")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Asset deleted successfully",
	})
}
