// Package client is a Go client for the hrdash HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/johnwards/hrdash/internal/domain"
)

// Client talks to one hrdash server. Transient failures (connection errors
// and 5xx responses) are retried with backoff; POST requests are only
// retried when the request never reached the server.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// Option configures a Client.
type Option func(*retryablehttp.Client)

// WithRetry sets the retry budget and the backoff bounds.
func WithRetry(max int, waitMin, waitMax time.Duration) Option {
	return func(c *retryablehttp.Client) {
		c.RetryMax = max
		c.RetryWaitMin = waitMin
		c.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *retryablehttp.Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithLogger routes retry logging to l. Pass nil to silence it.
func WithLogger(l *slog.Logger) Option {
	return func(c *retryablehttp.Client) {
		if l == nil {
			c.Logger = nil
			return
		}
		c.Logger = l
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	rc.Logger = slog.Default()
	rc.CheckRetry = checkRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	for _, opt := range opts {
		opt(rc)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.Request != nil && resp.Request.Method == http.MethodPost {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// ListEmployees runs a list query.
func (c *Client) ListEmployees(ctx context.Context, s domain.EmployeeSearch) (*domain.EmployeePage, error) {
	var page domain.EmployeePage
	if err := c.do(ctx, http.MethodGet, "/api/employees", s.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEmployee fetches one employee by ID.
func (c *Client) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	var e domain.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/"+url.PathEscape(id), nil, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEmployee creates an employee and returns the stored record.
func (c *Client) CreateEmployee(ctx context.Context, in domain.CreateEmployeeInput) (*domain.Employee, error) {
	var created struct {
		Data *domain.Employee `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/employees", nil, in, &created); err != nil {
		return nil, err
	}
	if created.Data == nil {
		return nil, fmt.Errorf("create employee: response has no data")
	}
	return created.Data, nil
}

// Departments lists the departments.
func (c *Client) Departments(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	if err := c.do(ctx, http.MethodGet, "/api/departments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Positions lists the positions of a department by its value.
func (c *Client) Positions(ctx context.Context, department string) ([]domain.Position, error) {
	var out []domain.Position
	params := url.Values{"department": {department}}
	if err := c.do(ctx, http.MethodGet, "/api/positions", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody any
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
