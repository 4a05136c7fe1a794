package validation

import (
	"strings"
	"time"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/request"
)

// deadlineLayout is the accepted format for goal deadlines.
const deadlineLayout = "2006-01-02"

// ValidateCreateGoal checks an add-goal payload: name is required and
// bounded, the target must be positive, the current amount non-negative,
// and the deadline (when present) a valid YYYY-MM-DD date.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.TargetAmount <= 0 {
		errors["targetAmount"] = "target amount must be positive"
	}

	if req.CurrentAmount != nil && *req.CurrentAmount < 0 {
		errors["currentAmount"] = "current amount cannot be negative"
	}

	checkDeadline(req.Deadline, errors)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateGoal checks a partial goal update. Only supplied fields are
// validated.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		errors["targetAmount"] = "target amount must be positive"
	}

	if req.CurrentAmount != nil && *req.CurrentAmount < 0 {
		errors["currentAmount"] = "current amount cannot be negative"
	}

	// A null deadline is a clear request and needs no format check
	if req.Deadline.Set && req.Deadline.Valid {
		checkDeadline(&req.Deadline.Value, errors)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func checkDeadline(deadline *string, errors map[string]string) {
	if deadline == nil || *deadline == "" {
		return
	}
	if _, err := time.Parse(deadlineLayout, *deadline); err != nil {
		errors["deadline"] = "deadline must be a YYYY-MM-DD date"
	}
}
