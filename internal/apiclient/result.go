package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Result is the outcome of a call.
//
// With [ContractError] you only see successful results. With [ContractResult]
// failures are also reported here: HTTPStatus is zero and Err is set when
// no response was received; otherwise Data holds the (possibly parsed)
// response body.
type Result struct {
	// OK indicates whether the call succeeded.
	OK bool

	// HTTPStatus is the response status code or zero.
	HTTPStatus int

	// Data is the response body parsed as JSON (map[string]any,
	// []any, float64, ...) or, for non-JSON responses, a string.
	Data any

	// Raw is the raw response body.
	Raw []byte

	// ContentType is the response media type without parameters.
	ContentType string

	// Err is the error that prevented us from receiving a response.
	Err error
}

// errNoResponseBody indicates that we're trying to decode a result without body.
var errNoResponseBody = errors.New("apiclient: no response body")

// Decode decodes the raw response body into v.
func (r *Result) Decode(v any) error {
	if len(r.Raw) <= 0 {
		return errNoResponseBody
	}
	return json.Unmarshal(r.Raw, v)
}

// AsError returns nil for a successful result and the error that a
// [ContractError] client would have returned otherwise.
func (r *Result) AsError() error {
	switch {
	case r.OK:
		return nil
	case r.Err != nil:
		return r.Err
	default:
		return &HTTPError{
			StatusCode: r.HTTPStatus,
			Body:       string(r.Raw),
			Denied:     r.HTTPStatus >= 200 && r.HTTPStatus <= 299,
		}
	}
}

// As converts the outcome of a call into a value of type T. It works
// with both contracts and fails with [ErrNullResponse] when the body is
// the JSON null literal, e.g.:
//
//	quote, err := apiclient.As[*model.FinboardPriceQuote](client.GetPrice(ctx, "AAPL"))
func As[T any](res *Result, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := res.AsError(); err != nil {
		return out, err
	}
	if bytes.Equal(bytes.TrimSpace(res.Raw), []byte("null")) {
		return out, ErrNullResponse
	}
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
