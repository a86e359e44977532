package model

//
// FinBoard API data model.
//

// FinboardPriceQuote is the response of GET /api/price.
type FinboardPriceQuote struct {
	// Symbol is the symbol exactly as requested (e.g., "usd/twd").
	Symbol string `json:"symbol"`

	// Price is the last price or nil when the backend could not
	// obtain a quote for the symbol.
	Price *float64 `json:"price"`

	// OK indicates whether Price is valid.
	OK bool `json:"ok"`
}

// FinboardWatchlistEntry is an entry returned by GET /api/watchlist.
type FinboardWatchlistEntry struct {
	// ID is the entry identifier used by DELETE /api/watchlist/{id}.
	ID int64 `json:"id"`

	// Symbol is the symbol as entered by the user.
	Symbol string `json:"symbol"`

	// SymbolNorm is the symbol after backend normalization
	// (e.g., "USD/TWD" becomes "USDTWD=X").
	SymbolNorm string `json:"symbol_norm"`

	// Label is the OPTIONAL human readable label.
	Label string `json:"label"`
}

// FinboardWatchlistAddRequest is the body of POST /api/watchlist.
type FinboardWatchlistAddRequest struct {
	// Symbol is the MANDATORY symbol to add.
	Symbol string `json:"symbol"`

	// Label is the OPTIONAL label.
	Label string `json:"label,omitempty"`
}

// FinboardAlert is an alert returned by GET /api/alerts.
type FinboardAlert struct {
	ID              int64  `json:"id"`
	Symbol          string `json:"symbol"`
	SymbolNorm      string `json:"symbol_norm"`
	Name            string `json:"name"`
	Cond            string `json:"cond"`
	Enabled         int    `json:"enabled"`
	LastTriggeredTS int64  `json:"last_triggered_ts"`
}

// IsEnabled returns whether the alert is enabled. The backend
// stores the flag as an integer.
func (a *FinboardAlert) IsEnabled() bool {
	return a.Enabled != 0
}

// FinboardAlertPatch is the body of PATCH /api/alerts/{id}. Only
// the non-nil fields are serialized and thus modified.
type FinboardAlertPatch struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Name    *string `json:"name,omitempty"`
	Cond    *string `json:"cond,omitempty"`
}

// IsEmpty returns true when the patch would not modify anything. The
// backend answers 400 to empty patches.
func (p *FinboardAlertPatch) IsEmpty() bool {
	return p.Enabled == nil && p.Name == nil && p.Cond == nil
}

// FinboardAuthEcho is the response of GET /api/auth/echo.
type FinboardAuthEcho struct {
	Authorized bool `json:"authorized"`
}

// FinboardOKResponse is the response of DELETE /api/watchlist/{id}.
type FinboardOKResponse struct {
	OK bool `json:"ok"`
}

// FinboardErrorResponse is the body the backend uses to report errors. Some
// deployments report authorization failures using a 200 status code and
// this body, with Code set to 401 or 403.
type FinboardErrorResponse struct {
	Code  int    `json:"code,omitempty"`
	Error string `json:"error"`
}
