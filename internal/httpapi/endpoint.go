package httpapi

import "github.com/finboard/finboard-cli/internal/model"

// Endpoint is the server hosting the APIs we want to call.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Endpoint struct {
	// BaseURL is the MANDATORY base URL (e.g., "https://finboard-ol3p.onrender.com").
	// It is concatenated with [Descriptor.URLPath], so it should not end with a slash.
	BaseURL string

	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient model.HTTPClient

	// Logger is the MANDATORY logger to use.
	Logger model.DebugLogger

	// UserAgent is the OPTIONAL user-agent to use.
	UserAgent string
}
