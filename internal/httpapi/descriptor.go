package httpapi

//
// HTTP API descriptor (e.g., GET /api/watchlist)
//

import (
	"net/http"
	"net/url"
	"time"
)

// Descriptor contains the parameters for calling a given HTTP
// API (e.g., GET /api/watchlist).
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// Authorization is the OPTIONAL authorization header value.
	Authorization string

	// ContentType is the OPTIONAL content-type header.
	ContentType string

	// Headers contains OPTIONAL extra headers. They are applied after
	// all the other headers and therefore override them.
	Headers http.Header

	// LogBody OPTIONALLY enables logging bodies.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use the |DefaultMaxBodySize| constant.
	MaxBodySize int64

	// Method is the MANDATORY request method.
	Method string

	// RequestBody is the OPTIONAL request body.
	RequestBody []byte

	// Timeout is the OPTIONAL timeout for this call. If no timeout
	// is specified we will use the |DefaultCallTimeout| const.
	Timeout time.Duration

	// URLPath is the MANDATORY URL path. It may also be an absolute
	// http:// or https:// URL, in which case the base URL is ignored.
	URLPath string

	// URLQuery is the OPTIONAL query.
	URLQuery url.Values
}

// DefaultMaxBodySize is the default value for the maximum
// body size you can fetch using the httpapi package.
const DefaultMaxBodySize = 1 << 22

// DefaultCallTimeout is the default timeout for an httpapi call.
const DefaultCallTimeout = 60 * time.Second

// ApplicationJSON is the content-type for JSON
const ApplicationJSON = "application/json"

// MethodAllowsBody returns whether we send a body with the given method. Bodies
// are never sent with GET, HEAD, and OPTIONS requests.
func MethodAllowsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
