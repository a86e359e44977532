package apiclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDenied matches the [*HTTPError] that [Result.AsError] returns for
	// a 200 response whose body signals an authorization failure.
	ErrDenied = errors.New("apiclient: authorization denied by the server")

	// ErrEmptyPatch indicates an alert patch that modifies nothing.
	ErrEmptyPatch = errors.New("apiclient: empty alert patch")

	// ErrEmptySymbol indicates a missing symbol.
	ErrEmptySymbol = errors.New("apiclient: empty symbol")

	// ErrInvalidContract indicates an unknown contract name.
	ErrInvalidContract = errors.New("apiclient: invalid contract")

	// ErrMissingHTTPClient indicates that Config.HTTPClient is nil.
	ErrMissingHTTPClient = errors.New("apiclient: missing HTTP client")

	// ErrNullResponse indicates a successful response whose body is null.
	ErrNullResponse = errors.New("apiclient: null response body")

	// ErrMissingTokenStore indicates that Config.Tokens is nil.
	ErrMissingTokenStore = errors.New("apiclient: missing token store")
)

// HTTPError reports that the server answered with a non-2xx status or,
// for [ContractResult] results, denied authorization in a 2xx body.
type HTTPError struct {
	// StatusCode is the HTTP status code (e.g., 404).
	StatusCode int

	// Status is the HTTP status line (e.g., "404 Not Found").
	Status string

	// Body is the response body. We read it on a best effort basis, so
	// it is empty when reading failed.
	Body string

	// Denied is true when the status is 2xx but the body signals an
	// authorization failure.
	Denied bool
}

// Error implements error.
func (err *HTTPError) Error() string {
	var sb strings.Builder
	status := strings.TrimSpace(err.Status)
	if status == "" {
		status = fmt.Sprintf("%d", err.StatusCode)
	}
	fmt.Fprintf(&sb, "HTTP %s", status)
	if err.Denied {
		sb.WriteString(" (denied)")
	}
	if err.Body != "" {
		fmt.Fprintf(&sb, " - %s", err.Body)
	}
	return sb.String()
}

// Is allows errors.Is(err, ErrDenied) for denials.
func (err *HTTPError) Is(target error) bool {
	return target == ErrDenied && err.Denied
}
