package tokenadmin

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Option customizes a Client at construction time.
type Option func(*Client)

func WithBaseURL(u string) Option { return func(c *Client) { c.BaseURL = strings.TrimRight(u, "/") } }
func WithPersonalAccessToken(pat string) Option {
	return func(c *Client) { c.PersonalAccessToken = pat }
}
func WithAPIVersion(v string) Option       { return func(c *Client) { c.APIVersion = v } }
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTPClient = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l *zap.Logger) Option      { return func(c *Client) { c.Logger = l } }

// WithHooks appends request/response observation hooks.
func WithHooks(before func(*http.Request), after func(*http.Response, []byte, error)) Option {
	return func(c *Client) {
		if before != nil {
			c.BeforeHooks = append(c.BeforeHooks, before)
		}
		if after != nil {
			c.AfterHooks = append(c.AfterHooks, after)
		}
	}
}

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	headers http.Header
	query   map[string]string
}

// WithHeader adds an arbitrary header to a single API call.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		if co.headers == nil {
			co.headers = http.Header{}
		}
		co.headers.Add(key, value)
	}
}

// WithQuery adds an arbitrary query parameter to a single API call.
func WithQuery(key, value string) CallOption {
	return func(co *callOptions) {
		if co.query == nil {
			co.query = map[string]string{}
		}
		co.query[key] = value
	}
}
