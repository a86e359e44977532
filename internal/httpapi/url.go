package httpapi

import (
	"net/url"
	"strings"
)

// isAbsoluteURL returns whether path already is a full http(s) URL.
func isAbsoluteURL(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// BuildURL concatenates baseURL and urlPath and appends the percent-encoded
// query, if any. An absolute urlPath replaces baseURL. A relative urlPath
// without a leading slash gets one. No "?" is appended when query is empty.
func BuildURL(baseURL, urlPath string, query url.Values) string {
	var URL string
	switch {
	case isAbsoluteURL(urlPath):
		URL = urlPath
	case urlPath != "" && !strings.HasPrefix(urlPath, "/"):
		URL = baseURL + "/" + urlPath
	default:
		URL = baseURL + urlPath
	}
	if len(query) <= 0 {
		return URL
	}
	separator := "?"
	if strings.Contains(URL, "?") {
		separator = "&"
	}
	return URL + separator + query.Encode()
}
