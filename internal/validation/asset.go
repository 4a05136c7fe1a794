package validation

import (
	"fmt"
	"strings"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/request"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
)

// ValidateCreateAsset checks an add-asset payload. The class must be in the
// closed set (legacy spellings allowed), quote-priced classes need a symbol,
// and all numeric fields must be non-negative. Caller-supplied values are
// untrusted input.
func ValidateCreateAsset(req request.CreateAssetRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	class, ok := model.ParseAssetClass(req.Class)
	if strings.TrimSpace(req.Class) == "" {
		errors["class"] = "class is required"
	} else if !ok {
		errors["class"] = fmt.Sprintf("invalid asset class: %s", req.Class)
	}

	if ok && class.Priced() {
		if strings.TrimSpace(req.Symbol) == "" {
			errors["symbol"] = "symbol is required for equity and fund assets"
		} else if len(req.Symbol) > 10 {
			errors["symbol"] = "symbol must be 10 characters or less"
		}
		if req.Quantity == nil {
			errors["quantity"] = "quantity is required for equity and fund assets"
		} else if *req.Quantity < 0 {
			errors["quantity"] = "quantity cannot be negative"
		}
	} else if ok {
		if req.Symbol != "" {
			errors["symbol"] = fmt.Sprintf("symbol does not apply to %s assets", class)
		}
		if req.Quantity != nil {
			errors["quantity"] = fmt.Sprintf("quantity does not apply to %s assets", class)
		}
	}

	// Optional numeric fields
	if req.Value != nil && *req.Value < 0 {
		errors["value"] = "value cannot be negative"
	}
	if req.ManualOverride != nil && *req.ManualOverride < 0 {
		errors["manualOverride"] = "manual override cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAsset checks a partial asset update. Only supplied fields
// are validated; nil fields are left unchanged by the service.
func ValidateUpdateAsset(req request.UpdateAssetRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.Class != nil {
		if _, ok := model.ParseAssetClass(*req.Class); !ok {
			errors["class"] = fmt.Sprintf("invalid asset class: %s", *req.Class)
		}
	}
	if req.Symbol != nil && len(*req.Symbol) > 10 {
		errors["symbol"] = "symbol must be 10 characters or less"
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if req.Value != nil && *req.Value < 0 {
		errors["value"] = "value cannot be negative"
	}
	// A null override is a clear request, not a value
	if req.ManualOverride.Set && req.ManualOverride.Valid && req.ManualOverride.Value < 0 {
		errors["manualOverride"] = "manual override cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
