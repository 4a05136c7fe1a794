package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/handlers"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestSystemHandler_Health tests the health endpoint.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports healthy with a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body handlers.HealthResponse
		testutil.DecodeJSON(t, rec, &body)
		if body.Status != "healthy" || body.Database != "connected" {
			t.Errorf("Unexpected health body: %+v", body)
		}
	})

	t.Run("reports unhealthy after the database closes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
