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

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// AddGoal creates a new savings goal.
func (h *GoalHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateCreateGoal(req); err != nil {
		respondServiceError(w, err, "")
		return
	}

	goal := model.SavingsGoal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}

	created, err := h.goalService.AddGoal(r.Context(), userID(r), goal)
	if err != nil {
		respondServiceError(w, err, "Failed to add savings goal")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// UpdateGoal applies a partial update to an existing goal. Unknown ids are
// 404.
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalID")

	var req request.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	if err := validation.ValidateUpdateGoal(req); err != nil {
		respondServiceError(w, err, "")
		return
	}

	update := service.GoalUpdate{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
	}
	switch {
	case req.Deadline.Set && req.Deadline.Valid:
		deadline := req.Deadline.Value
		update.Deadline = &deadline
	case req.Deadline.Set:
		// Explicit null removes the deadline
		update.ClearDeadline = true
	}

	updated, err := h.goalService.UpdateGoal(r.Context(), userID(r), goalID, update)
	if err != nil {
		respondServiceError(w, err, "Failed to update savings goal")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteGoal removes a goal. Unknown ids are 404.
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalID")

	if err := h.goalService.DeleteGoal(r.Context(), userID(r), goalID); err != nil {
		respondServiceError(w, err, "Failed to delete savings goal")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Savings goal deleted successfully",
	})
}
