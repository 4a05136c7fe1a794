package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
)

// QuoteHandler handles standalone stock price lookups, independent of any
// portfolio.
type QuoteHandler struct {
	resolver service.QuoteResolver
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(resolver service.QuoteResolver) *QuoteHandler {
	return &QuoteHandler{
		resolver: resolver,
	}
}

// GetStockPrice returns the current price for a ticker symbol, or 404 when
// no usable quote could be resolved.
func (h *QuoteHandler) GetStockPrice(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

	q, err := h.resolver.Resolve(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuoteUnavailable) {
			respondJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("Could not fetch price for %s", symbol),
			})
			return
		}
		respondServiceError(w, err, "Failed to fetch price")
		return
	}

	respondJSON(w, http.StatusOK, q)
}
