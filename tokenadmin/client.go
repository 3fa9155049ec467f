// Package tokenadmin provides a typed Go client for the token administration
// REST surface of an Azure DevOps style service: user lookup through the
// Graph endpoints, personal access token (PAT) enumeration, and token or
// credential revocation. The client wraps HTTP transport, authentication
// headers, response decoding, and the service's two cursor-pagination
// conventions behind strongly-typed helpers.
//
// All operations require the caller to be an administrator of the target
// organization; authorization failures surface as *APIError values.
package tokenadmin

import (
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIVersion is sent as the api-version query parameter unless
// overridden by WithAPIVersion.
const DefaultAPIVersion = "7.1-preview.1"

// Client contains shared configuration and HTTP plumbing for the SDK.
type Client struct {
	// BaseURL is the organization (collection) URL, for example:
	// https://dev.azure.com/fabrikam.
	BaseURL string

	// PersonalAccessToken authenticates every call via HTTP Basic auth.
	// The token owner must hold administrator rights for the token admin
	// endpoints to succeed.
	PersonalAccessToken string

	// APIVersion is appended to every request as the api-version query
	// parameter.
	APIVersion string

	// HTTPClient is the underlying HTTP client. A tuned default is provided
	// and can be replaced via WithHTTPClient.
	HTTPClient *http.Client

	// UserAgent is added to each request.
	UserAgent string

	// Logger, when set, records request/response metadata. The personal
	// access token is never logged.
	Logger *zap.Logger

	// Observability hooks.
	BeforeHooks []func(*http.Request)
	AfterHooks  []func(*http.Response, []byte, error)
}

// New constructs a Client with safe defaults. Options can override defaults.
func New(opts ...Option) *Client {
	c := &Client{
		APIVersion: DefaultAPIVersion,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		UserAgent: "tokenadmin-go/0.2 (+https://github.com/serranolabs/tokenadmin-go)",
	}
	for _, f := range opts {
		f(c)
	}
	return c
}
