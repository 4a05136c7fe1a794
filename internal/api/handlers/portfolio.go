package handlers

import (
	"net/http"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
)

// PortfolioHandler handles portfolio-level HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// PortfolioResponse represents the portfolio get response: the aggregate
// with freshly repriced assets plus the per-class totals.
type PortfolioResponse struct {
	Portfolio *model.Portfolio `json:"portfolio"`
	Totals    model.Totals     `json:"totals"`
}

// GetPortfolio returns the current portfolio with live valuations applied
// to every non-overridden equity/fund asset.
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, totals, err := h.portfolioService.GetPortfolio(r.Context(), userID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve portfolio")
		return
	}

	respondJSON(w, http.StatusOK, PortfolioResponse{
		Portfolio: portfolio,
		Totals:    totals,
	})
}
