// Package client provides a Go client for the passgen password service.
//
// Basic usage:
//
//	c := client.New() // uses default https://pw.ig.lc
//	pw, err := c.Password(ctx)
//	n, err := c.Int(ctx, 0, 255)
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default passgen service URL.
	DefaultBaseURL = "https://pw.ig.lc"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is a passgen API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the passgen service.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new passgen client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PasswordOptions configures password generation.
type PasswordOptions struct {
	// Length of the generated password in characters. Zero selects the
	// server default (24).
	Length int
	// Charset name: "ascii" (default), "alnum" or "hex".
	Charset string
	// Share asks the server for a one-time link instead of the secret
	// itself; the returned string is then a URL redeemable exactly once
	// with Redeem.
	Share bool
}

// Password generates a password with the server defaults.
func (c *Client) Password(ctx context.Context) (string, error) {
	return c.PasswordWithOptions(ctx, PasswordOptions{})
}

// PasswordWithOptions generates a password with custom options. With
// opts.Share set the returned string is a one-time share URL, not the
// password.
func (c *Client) PasswordWithOptions(ctx context.Context, opts PasswordOptions) (string, error) {
	if opts.Length < 0 {
		return "", &Error{Code: ErrBadRequest, Message: "length cannot be negative"}
	}

	q := url.Values{}
	if opts.Length > 0 {
		q.Set("len", strconv.Itoa(opts.Length))
	}
	if opts.Charset != "" {
		q.Set("charset", opts.Charset)
	}
	if opts.Share {
		q.Set("share", "true")
	}

	endpoint := c.baseURL + "/password"
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	return c.getText(ctx, endpoint, http.StatusOK, http.StatusCreated)
}

// Int asks the server for a uniformly distributed integer in [min, max].
func (c *Client) Int(ctx context.Context, min, max int64) (int64, error) {
	q := url.Values{}
	q.Set("min", strconv.FormatInt(min, 10))
	q.Set("max", strconv.FormatInt(max, 10))

	body, err := c.getText(ctx, c.baseURL+"/int?"+q.Encode(), http.StatusOK)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, &Error{Code: ErrServer, Message: fmt.Sprintf("unparseable integer response %q", body)}
	}
	return n, nil
}

// Redeem fetches a one-time share by its identifier or full URL. The share
// is destroyed on first redemption; a second call returns a not-found
// error.
func (c *Client) Redeem(ctx context.Context, identifier string) (string, error) {
	id := identifier
	if strings.HasPrefix(identifier, "http://") || strings.HasPrefix(identifier, "https://") {
		parsed, err := url.Parse(identifier)
		if err != nil {
			return "", fmt.Errorf("parsing URL: %w", err)
		}
		id = strings.TrimPrefix(strings.TrimPrefix(parsed.Path, "/"), "s/")
	}

	if id == "" {
		return "", &Error{Code: ErrBadRequest, Message: "identifier cannot be empty"}
	}

	return c.getText(ctx, c.baseURL+"/s/"+id, http.StatusOK)
}

// getText performs a GET, maps non-success statuses to typed errors, and
// returns the trimmed body for any of the accepted statuses.
func (c *Client) getText(ctx context.Context, endpoint string, accepted ...int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	text := strings.TrimSpace(string(body))

	for _, status := range accepted {
		if resp.StatusCode == status {
			return text, nil
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return "", &Error{Code: ErrNotFound, Message: "share not found, expired or already redeemed"}
	case http.StatusTooManyRequests:
		return "", &Error{Code: ErrRateLimited, Message: text}
	case http.StatusBadRequest:
		return "", &Error{Code: ErrBadRequest, Message: text}
	default:
		return "", &Error{Code: ErrServer, Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, text)}
	}
}
