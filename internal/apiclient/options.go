package apiclient

// Options describes a single [*Client.FetchJSON] call.
//
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Method is the OPTIONAL HTTP method. The default is GET.
	Method string

	// Params contains the OPTIONAL query string parameters.
	Params map[string]string

	// Body is the OPTIONAL JSON-serializable request body. We only
	// send it with POST, PUT, PATCH, and DELETE.
	Body any

	// Headers contains OPTIONAL headers. They override both the default
	// content-type and the authorization header.
	Headers map[string]string
}
