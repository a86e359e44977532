package httpapi

//
// Calling HTTP APIs.
//

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/finboard/finboard-cli/internal/model"
	"github.com/google/uuid"
)

// newRequest creates a new http.Request from the given |ctx|, |endpoint|, and |desc|.
func newRequest(ctx context.Context, endpoint *Endpoint, desc *Descriptor) (*http.Request, error) {
	URL := BuildURL(endpoint.BaseURL, desc.URLPath, desc.URLQuery)
	var reqBody io.Reader
	if len(desc.RequestBody) > 0 && MethodAllowsBody(desc.Method) {
		reqBody = bytes.NewReader(desc.RequestBody)
	}
	request, err := http.NewRequestWithContext(ctx, desc.Method, URL, reqBody)
	if err != nil {
		return nil, err
	}
	if desc.ContentType != "" {
		request.Header.Set(model.HTTPHeaderContentType, desc.ContentType)
	}
	if desc.Accept != "" {
		request.Header.Set("Accept", desc.Accept)
	}
	if desc.Authorization != "" {
		request.Header.Set(model.HTTPHeaderAuthorization, desc.Authorization)
	}
	if endpoint.UserAgent != "" {
		request.Header.Set("User-Agent", endpoint.UserAgent)
	}
	for key, values := range desc.Headers {
		request.Header.Del(key)
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	return request, nil
}

// TransportError indicates that we did not receive a response, e.g.,
// because of a DNS lookup failure or a connection reset.
type TransportError struct {
	// Err is the underlying error
	Err error
}

// Error implements error
func (err *TransportError) Error() string {
	return err.Err.Error()
}

// Unwrap allows to get the underlying error
func (err *TransportError) Unwrap() error {
	return err.Err
}

// docall sends |request| using |endpoint| and reads the response body.
func docall(endpoint *Endpoint, desc *Descriptor, request *http.Request, callID string) (*Response, error) {
	response, err := endpoint.HTTPClient.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()
	maxBodySize := desc.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize // as documented
	}
	out := &Response{
		StatusCode: response.StatusCode,
		Status:     response.Status,
		Header:     response.Header,
		Body:       nil,
	}
	data, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	switch {
	case err != nil && out.Successful():
		return nil, &TransportError{err}
	case err != nil:
		// best effort for unsuccessful responses
		endpoint.Logger.Debugf("httpapi: [%s] cannot read error body: %s", callID, err.Error())
		data = []byte{}
	}
	out.Body = data
	endpoint.Logger.Debugf("httpapi: [%s] %s (%d bytes)", callID, response.Status, len(data))
	if desc.LogBody {
		endpoint.Logger.Debugf("httpapi: [%s] response body: %s", callID, string(data))
	}
	return out, nil
}

// Do invokes the API described by |desc| on the given HTTP |endpoint|.
//
// A non-2xx status code is NOT an error: the caller decides what to do using
// [*Response.Successful]. The returned error is a [*TransportError] when we could
// not get a response and a plain error when we could not build the request.
func Do(ctx context.Context, desc *Descriptor, endpoint *Endpoint) (*Response, error) {
	timeout := desc.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout // as documented
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	request, err := newRequest(ctx, endpoint, desc)
	if err != nil {
		return nil, err
	}
	callID := uuid.NewString()
	endpoint.Logger.Debugf("httpapi: [%s] %s %s", callID, request.Method, request.URL.String())
	if request.Body != nil {
		endpoint.Logger.Debugf("httpapi: [%s] request body length: %d", callID, len(desc.RequestBody))
		if desc.LogBody {
			endpoint.Logger.Debugf("httpapi: [%s] request body: %s", callID, string(desc.RequestBody))
		}
	}
	resp, err := docall(endpoint, desc, request, callID)
	endpoint.Logger.Debugf("httpapi: [%s] %s %s... %s", callID, request.Method,
		request.URL.String(), model.ErrorToStringOrOK(err))
	if err != nil {
		return nil, err
	}
	return resp, nil
}
