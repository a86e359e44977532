package httpapi

import (
	"mime"
	"net/http"
	"strings"
)

// Response is the outcome of an HTTP round trip that produced a response.
type Response struct {
	// StatusCode is the HTTP status code (e.g., 404).
	StatusCode int

	// Status is the HTTP status line (e.g., "404 Not Found").
	Status string

	// Header contains the response headers.
	Header http.Header

	// Body contains the response body, truncated at the descriptor's
	// MaxBodySize. It is empty when we could not read the body of
	// an unsuccessful response.
	Body []byte
}

// Successful returns whether the status code is 2xx.
func (r *Response) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// ContentType returns the media type of the response without parameters.
func (r *Response) ContentType() string {
	value := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return mediaType
}

// IsJSON returns whether the content-type denotes a JSON document, i.e.,
// it is application/json or a structured "+json" media type.
func (r *Response) IsJSON() bool {
	ctype := r.ContentType()
	return ctype == ApplicationJSON || strings.HasSuffix(ctype, "+json")
}
