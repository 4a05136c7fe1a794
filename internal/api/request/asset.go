package request

// CreateAssetRequest is the payload for adding an asset to the portfolio.
// Symbol and Quantity apply to quote-priced classes (equity/fund); Value is
// the caller-supplied balance for the other classes.
type CreateAssetRequest struct {
	Name           string   `json:"name"`
	Class          string   `json:"class"`
	Symbol         string   `json:"symbol"`
	Quantity       *float64 `json:"quantity"`
	Value          *float64 `json:"value"`
	ManualOverride *float64 `json:"manualOverride"`
}

// UpdateAssetRequest is the partial-update payload for an existing asset.
// Nil fields are left unchanged. ManualOverride is presence-aware: an
// explicit null removes the override so quote pricing resumes.
type UpdateAssetRequest struct {
	Name           *string       `json:"name"`
	Class          *string       `json:"class"`
	Symbol         *string       `json:"symbol"`
	Quantity       *float64      `json:"quantity"`
	Value          *float64      `json:"value"`
	ManualOverride NullableFloat `json:"manualOverride,omitzero"`
}
