package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/handlers"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/middleware"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/config"
)

// Handlers bundles all HTTP handlers for router construction
type Handlers struct {
	Portfolio *handlers.PortfolioHandler
	Asset     *handlers.AssetHandler
	Goal      *handlers.GoalHandler
	Snapshot  *handlers.SnapshotHandler
	Quote     *handlers.QuoteHandler
	System    *handlers.SystemHandler
}

// NewRouter creates the chi router with all middleware and routes configured
func NewRouter(cfg *config.Config, h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORS(cfg.CORS.AllowedOrigins).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", h.Portfolio.GetPortfolio)
		r.Get("/stock-price/{symbol}", h.Quote.GetStockPrice)
		r.Get("/system/health", h.System.Health)

		// Mutating routes sit behind the optional API key guard.
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyMiddleware)

			r.Post("/assets", h.Asset.AddAsset)
			r.Put("/assets/{assetID}", h.Asset.UpdateAsset)
			r.Delete("/assets/{assetID}", h.Asset.DeleteAsset)

			r.Post("/savings-goals", h.Goal.AddGoal)
			r.Put("/savings-goals/{goalID}", h.Goal.UpdateGoal)
			r.Delete("/savings-goals/{goalID}", h.Goal.DeleteGoal)

			r.Post("/net-worth-snapshot", h.Snapshot.CreateSnapshot)
		})
	})

	return r
}
