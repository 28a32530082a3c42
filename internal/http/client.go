package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/portalcx/portalcx-go/internal/auth"
	"github.com/portalcx/portalcx-go/internal/constants"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
)

// ResponseMode selects how a successful body is normalized.
type ResponseMode int

const (
	// ResponseAuto decodes JSON, falls back to raw text, then to an empty map.
	ResponseAuto ResponseMode = iota
	// ResponseTextOnDeleted returns the raw text whenever the body mentions
	// "deleted", before any JSON decoding is attempted.
	ResponseTextOnDeleted
)

// Client is the HTTP client for the PortalCX API.
type Client struct {
	baseURL     string
	credentials auth.CredentialSource
	httpClient  *retryablehttp.Client
	logger      portalcx.Logger
	userAgent   string
	debug       bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger. An hclog-backed logger is also handed to the
// underlying transport.
func WithLogger(logger portalcx.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			return
		}

		c.logger = logger

		if hc, ok := logger.(*portalcx.HCLogger); ok {
			c.httpClient.Logger = hc.Underlying().Named("transport")
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds every request. Zero leaves the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP client. credentials may be nil, in which case
// requests are never authenticated.
func NewClient(baseURL string, credentials auth.CredentialSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		httpClient:  retryClient,
		logger:      portalcx.NopLogger{},
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an HTTP request. At most one of JSON and Form is used;
// Form is sent as multipart/form-data.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Headers  map[string]string
	JSON     interface{}
	Form     map[string]interface{}
	Response ResponseMode
}

// Do performs the request and normalizes the response. Statuses other than
// 200 and 204 yield a *portalcx.DomainError; failures before a response is
// received yield a *portalcx.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*portalcx.Result, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	httpReq, err := c.buildRequest(ctx, req, fullURL)
	if err != nil {
		c.logger.Error("An error occurred", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"error":  err.Error(),
		})

		return nil, err
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":  req.Method,
			"url":     fullURL,
			"headers": redactHeaders(httpReq.Header),
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		c.logger.Error("Request error occurred", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"error":  err.Error(),
		})

		return nil, &portalcx.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Request error occurred", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"error":  err.Error(),
		})

		return nil, &portalcx.TransportError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
	}

	if resp.StatusCode != constants.HTTPStatusOK && resp.StatusCode != constants.HTTPStatusNoContent {
		apiErr := &portalcx.DomainError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}

		c.logger.Error("HTTP error occurred", map[string]interface{}{
			"method":  req.Method,
			"url":     fullURL,
			"status":  resp.StatusCode,
			"message": apiErr.Message,
		})

		return nil, apiErr
	}

	return &portalcx.Result{
		StatusCode: resp.StatusCode,
		Value:      normalize(body, req.Response),
		Raw:        body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request, fullURL string) (*retryablehttp.Request, error) {
	var (
		body        interface{}
		contentType string
	)

	switch {
	case req.Form != nil:
		data, boundary, err := encodeMultipart(req.Form)
		if err != nil {
			return nil, err
		}

		body = data
		contentType = boundary
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = data
		contentType = constants.ContentTypeJSON
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	if c.credentials != nil {
		if token := c.credentials.Credential(); token != "" {
			httpReq.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*portalcx.Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*portalcx.Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		JSON:   body,
	})
}

// PostForm performs a POST request with a multipart/form-data body.
func (c *Client) PostForm(ctx context.Context, path string, form map[string]interface{}) (*portalcx.Result, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Form:   form,
	})
}

// Delete performs a DELETE request. Bodies mentioning "deleted" are returned
// as raw text.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*portalcx.Result, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodDelete,
		Path:     path,
		Query:    query,
		Response: ResponseTextOnDeleted,
	})
}

func normalize(body []byte, mode ResponseMode) interface{} {
	if mode == ResponseTextOnDeleted && bytes.Contains(body, []byte(constants.DeletedMarker)) {
		return string(body)
	}

	var value interface{}

	err := json.Unmarshal(body, &value)
	if err == nil {
		return value
	}

	if len(body) > 0 {
		return string(body)
	}

	return map[string]interface{}{}
}

func errorMessage(body []byte) string {
	var value interface{}

	err := json.Unmarshal(body, &value)
	if err != nil {
		return string(body)
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return constants.UnknownErrorMessage
	}

	message, ok := object[constants.ErrorMessageField]
	if !ok || message == nil {
		return constants.UnknownErrorMessage
	}

	if text, ok := message.(string); ok {
		return text
	}

	return fmt.Sprint(message)
}

func redactHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key := range header {
		headers[key] = header.Get(key)
	}

	if _, ok := headers[constants.HeaderAuthorization]; ok {
		headers[constants.HeaderAuthorization] = constants.BearerPrefix + "[REDACTED]"
	}

	return headers
}
