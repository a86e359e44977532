package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finboard/finboard-cli/internal/httpapi"
	"github.com/finboard/finboard-cli/internal/model"
	"github.com/finboard/finboard-cli/internal/tokenstore"
)

// Config contains the [*Client] configuration.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// BaseURL is the OPTIONAL base URL. Trailing slashes are removed. When
	// empty, request paths must be absolute URLs.
	BaseURL string

	// Contract is the OPTIONAL contract. The default is [ContractError].
	Contract Contract

	// HTTPClient is the MANDATORY [model.HTTPClient] to use.
	HTTPClient model.HTTPClient

	// LogBody OPTIONALLY logs request and response bodies at debug level.
	LogBody bool

	// Logger is the OPTIONAL [model.Logger] to use.
	Logger model.Logger

	// Timeout is the OPTIONAL per-call timeout. The default is
	// [httpapi.DefaultCallTimeout].
	Timeout time.Duration

	// Tokens is the MANDATORY token store.
	Tokens *tokenstore.Store

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}

// Client is a FinBoard API client. It is safe for concurrent use.
//
// Construct using [New].
type Client struct {
	contract Contract
	endpoint *httpapi.Endpoint
	logBody  bool
	logger   model.Logger
	timeout  time.Duration
	tokens   *tokenstore.Store
}

// New creates a new [*Client] from the given [*Config].
func New(config *Config) (*Client, error) {
	if config.HTTPClient == nil {
		return nil, ErrMissingHTTPClient
	}
	if config.Tokens == nil {
		return nil, ErrMissingTokenStore
	}
	switch config.Contract {
	case ContractError, ContractResult:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidContract, config.Contract)
	}
	logger := model.ValidLoggerOrDefault(config.Logger)
	client := &Client{
		contract: config.Contract,
		endpoint: &httpapi.Endpoint{
			BaseURL:    strings.TrimRight(strings.TrimSpace(config.BaseURL), "/"),
			HTTPClient: config.HTTPClient,
			Logger:     logger,
			UserAgent:  config.UserAgent,
		},
		logBody: config.LogBody,
		logger:  logger,
		timeout: config.Timeout,
		tokens:  config.Tokens,
	}
	return client, nil
}

// BaseURL returns the base URL, which never changes after [New].
func (c *Client) BaseURL() string {
	return c.endpoint.BaseURL
}

// Contract returns the client contract.
func (c *Client) Contract() Contract {
	return c.contract
}

// SetToken stores the token used by subsequent requests. The empty
// string removes the token.
func (c *Client) SetToken(token string) error {
	return c.tokens.Set(token)
}

// GetToken returns the stored token or an empty string.
func (c *Client) GetToken() string {
	return c.tokens.Get()
}

// AuthHeaders returns the authorization header for the current token or
// an empty map when there is no token.
func (c *Client) AuthHeaders() map[string]string {
	out := map[string]string{}
	if token := c.GetToken(); token != "" {
		out[model.HTTPHeaderAuthorization] = model.HTTPBearerPrefix + token
	}
	return out
}

// newDescriptor lowers path and opts into an [*httpapi.Descriptor].
func (c *Client) newDescriptor(path string, opts *Options) (*httpapi.Descriptor, error) {
	if opts == nil {
		opts = &Options{}
	}
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodGet
	}
	var query url.Values
	if len(opts.Params) > 0 {
		query = url.Values{}
		for key, value := range opts.Params {
			query.Set(key, value)
		}
	}
	var body []byte
	if opts.Body != nil && httpapi.MethodAllowsBody(method) {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: cannot serialize request body: %w", err)
		}
		body = data
	}
	headers := http.Header{}
	for key, value := range opts.Headers {
		headers.Set(key, value)
	}
	desc := &httpapi.Descriptor{
		Accept:        httpapi.ApplicationJSON,
		Authorization: c.AuthHeaders()[model.HTTPHeaderAuthorization],
		ContentType:   model.HTTPContentTypeJSON,
		Headers:       headers,
		LogBody:       c.logBody,
		MaxBodySize:   httpapi.DefaultMaxBodySize,
		Method:        method,
		RequestBody:   body,
		Timeout:       c.timeout,
		URLPath:       path,
		URLQuery:      query,
	}
	return desc, nil
}

// fail reports a failure that occurred before receiving a response.
func (c *Client) fail(err error) (*Result, error) {
	if c.contract == ContractResult {
		return &Result{Err: err}, nil
	}
	return nil, err
}

// FetchJSON sends a request to path, which is either relative to the base
// URL or an absolute URL, and reports the outcome according to the client
// [Contract]. We never cache responses and never retry.
func (c *Client) FetchJSON(ctx context.Context, path string, opts *Options) (*Result, error) {
	desc, err := c.newDescriptor(path, opts)
	if err != nil {
		return c.fail(err)
	}
	resp, err := httpapi.Do(ctx, desc, c.endpoint)
	if err != nil {
		return c.fail(err)
	}
	if c.contract == ContractResult {
		return c.newResult(resp), nil
	}
	return c.newResultOrError(resp)
}

// newResult implements the [ContractResult] contract.
func (c *Client) newResult(resp *httpapi.Response) *Result {
	result := &Result{
		OK:          false,
		HTTPStatus:  resp.StatusCode,
		Data:        string(resp.Body),
		Raw:         resp.Body,
		ContentType: resp.ContentType(),
		Err:         nil,
	}
	if resp.IsJSON() && len(resp.Body) > 0 {
		var data any
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			c.logger.Warnf("apiclient: cannot parse JSON response: %s", err.Error())
		} else {
			result.Data = data
		}
	}
	switch {
	case !resp.Successful():
	case isEmbeddedDenial(result.Data):
		c.logger.Warnf("apiclient: %s: authorization denied in response body", resp.Status)
	default:
		result.OK = true
	}
	return result
}

// newResultOrError implements the [ContractError] contract.
func (c *Client) newResultOrError(resp *httpapi.Response) (*Result, error) {
	if !resp.Successful() {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(resp.Body),
		}
	}
	var data any
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return nil, fmt.Errorf("apiclient: cannot parse JSON response: %w", err)
		}
	}
	result := &Result{
		OK:          true,
		HTTPStatus:  resp.StatusCode,
		Data:        data,
		Raw:         resp.Body,
		ContentType: resp.ContentType(),
		Err:         nil,
	}
	return result, nil
}
