package model

// SavingsGoal is an independent savings target tracked alongside the
// portfolio. It has no valuation dependency.
type SavingsGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"` // YYYY-MM-DD
}
