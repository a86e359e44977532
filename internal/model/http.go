package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is the subset of [*http.Client] used by the httpapi package.
// Tests replace it with the mock in the mocks package.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = &http.Client{}

const (
	// HTTPHeaderAuthorization is the name of the authorization header.
	HTTPHeaderAuthorization = "Authorization"

	// HTTPHeaderContentType is the name of the content-type header.
	HTTPHeaderContentType = "Content-Type"

	// HTTPContentTypeJSON is the content-type for JSON documents.
	HTTPContentTypeJSON = "application/json"

	// HTTPBearerPrefix prefixes the token inside the authorization header.
	HTTPBearerPrefix = "Bearer "
)
