package request

// CreateGoalRequest is the payload for adding a savings goal.
type CreateGoalRequest struct {
	Name          string   `json:"name"`
	TargetAmount  float64  `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
}

// UpdateGoalRequest is the partial-update payload for an existing goal.
// Nil fields are left unchanged. Deadline is presence-aware: an explicit
// null removes the deadline.
type UpdateGoalRequest struct {
	Name          *string        `json:"name"`
	TargetAmount  *float64       `json:"targetAmount"`
	CurrentAmount *float64       `json:"currentAmount"`
	Deadline      NullableString `json:"deadline,omitzero"`
}
