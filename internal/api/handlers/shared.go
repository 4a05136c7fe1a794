package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// userID resolves the tenant for a request: the X-User-ID header first, the
// user_id query parameter second, and the MVP default tenant otherwise.
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	if id := r.URL.Query().Get("user_id"); id != "" {
		return id
	}
	return model.DefaultUserID
}

// respondServiceError translates service errors into HTTP responses:
// validation failures are 400 with a field map, missing entities 404,
// exhausted concurrency retries 409, and everything else 500.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrGoalNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, apperrors.ErrVersionConflict):
		respondJSON(w, http.StatusConflict, map[string]string{
			"error":  "portfolio was modified concurrently",
			"detail": "please retry the request",
		})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  message,
			"detail": err.Error(),
		})
	}
}
