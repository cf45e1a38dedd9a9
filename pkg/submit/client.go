package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-resetform/pkg/model"
)

// DefaultPath is appended to the base URL.
const DefaultPath = "/submit"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// Result describes a successful submission. The body is ignored.
type Result struct {
	Status int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithPath overrides the endpoint path appended to the base URL.
func WithPath(path string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, "/") {
			trimmed = "/" + trimmed
		}
		c.path = trimmed
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client posts reset requests to {baseURL}/submit.
type Client struct {
	baseURL string
	path    string
	http    *http.Client
	logger  *log.Logger
}

// New validates baseURL and returns a configured client.
func New(baseURL string, options ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, errors.New("submit: base url is required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("submit: parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("submit: base url %q must use http or https", baseURL)
	}

	c := &Client{
		baseURL: base,
		path:    DefaultPath,
		http:    http.DefaultClient,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.baseURL + c.path
}

// Submit posts req. Any failure is returned as *Error.
func (c *Client) Submit(ctx context.Context, req model.SubmitRequest) (Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Result{}, unexpected(fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return Result{}, unexpected(fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Printf("submit: POST %s (user %q)", c.URL(), req.Username)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Printf("submit: no response: %v", err)
		return Result{}, noResponse(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return Result{Status: resp.StatusCode}, nil
	}

	message := readErrorMessage(resp.Body)
	c.logger.Printf("submit: rejected with status %d", resp.StatusCode)
	return Result{}, rejected(resp.StatusCode, message)
}

// errorBody is the optional failure payload returned by the endpoint.
type errorBody struct {
	Message string `json:"message"`
}

// readErrorMessage returns the body's message verbatim when it is a non-empty
// JSON string. Surrounding whitespace is kept. Anything else, including a
// non-string message or a non-JSON body, yields "" so the caller falls back.
func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return ""
	}
	var decoded errorBody
	if err := json.Unmarshal(data, &decoded); err != nil {
		return ""
	}
	return decoded.Message
}
