package apiclient

import "strings"

// deniedErrorStrings contains the lowercase values of the "error" field
// that signal an authorization failure.
var deniedErrorStrings = map[string]bool{
	"forbidden":    true,
	"unauthorized": true,
}

// isEmbeddedDenial returns whether data is a JSON object reporting an
// authorization failure, i.e., {"code": 401|403} or {"error": "forbidden"}.
// Some deployments sit behind gateways that use this shape with a 200 status.
func isEmbeddedDenial(data any) bool {
	object, ok := data.(map[string]any)
	if !ok {
		return false
	}
	if code, ok := object["code"].(float64); ok && (code == 401 || code == 403) {
		return true
	}
	if message, ok := object["error"].(string); ok {
		return deniedErrorStrings[strings.ToLower(strings.TrimSpace(message))]
	}
	return false
}
