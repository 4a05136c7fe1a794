package model

// AssetClass identifies how an asset is valued and which aggregate bucket
// it contributes to. Equity and fund holdings are priced from market quotes;
// retirement and cash balances are supplied directly by the caller.
type AssetClass string

const (
	ClassEquity     AssetClass = "equity"
	ClassFund       AssetClass = "fund"
	ClassRetirement AssetClass = "retirement"
	ClassCash       AssetClass = "cash"
)

// legacyClassNames maps the spellings used by the original frontend to the
// canonical class names. Accepted on input, never written back to storage.
var legacyClassNames = map[string]AssetClass{
	"stock":   ClassEquity,
	"etf":     ClassFund,
	"super":   ClassRetirement,
	"savings": ClassCash,
}

// ParseAssetClass resolves a caller-supplied class string to its canonical
// form. Returns false for anything outside the closed set.
func ParseAssetClass(s string) (AssetClass, bool) {
	switch AssetClass(s) {
	case ClassEquity, ClassFund, ClassRetirement, ClassCash:
		return AssetClass(s), true
	}
	if c, ok := legacyClassNames[s]; ok {
		return c, true
	}
	return "", false
}

// Priced reports whether assets of this class are valued from market quotes.
func (c AssetClass) Priced() bool {
	return c == ClassEquity || c == ClassFund
}

// Asset represents a single holding inside a portfolio.
//
// Symbol and Quantity are only meaningful for priced classes (equity/fund).
// ManualOverride, when set, takes absolute precedence over any computed
// valuation for those classes.
type Asset struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Class          AssetClass `json:"class"`
	Symbol         string     `json:"symbol,omitempty"`
	Quantity       *float64   `json:"quantity,omitempty"`
	Value          float64    `json:"value"`
	ManualOverride *float64   `json:"manualOverride,omitempty"`
}
