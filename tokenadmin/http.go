package tokenadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// doJSON sends an HTTP request with a JSON encoded body and decodes a JSON
// response. The response header set is returned so callers can read
// header-borne continuation tokens. Failures are not retried: transport
// errors and non-2xx responses propagate immediately to the caller.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, hdr http.Header, in, out any) (http.Header, error) {
	u, err := c.buildURL(path, query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.PersonalAccessToken != "" {
		req.Header.Set("Authorization", basicAuth(c.PersonalAccessToken))
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.Logger != nil {
		c.Logger.Debug("request",
			zap.String("method", method),
			zap.String("url", u),
		)
	}
	for _, h := range c.BeforeHooks {
		h(req)
	}

	res, err := c.HTTPClient.Do(req)
	var raw []byte
	if err == nil {
		defer res.Body.Close()
		raw, _ = io.ReadAll(res.Body)
	}
	if c.Logger != nil {
		c.Logger.Debug("response",
			zap.String("method", method),
			zap.String("url", u),
			zap.Int("status", statusOf(res)),
		)
	}
	for _, h := range c.AfterHooks {
		h(res, raw, err)
	}

	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, u, err)
	}
	if res.StatusCode/100 != 2 {
		return res.Header, parseAPIError(res.StatusCode, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return res.Header, fmt.Errorf("decode response: %w (body=%s)", err, string(raw))
		}
	}
	return res.Header, nil
}

// buildURL joins the base URL and path and injects the api-version plus any
// per-call query parameters.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("tokenadmin: BaseURL is not set")
	}
	if query == nil {
		query = url.Values{}
	}
	if c.APIVersion != "" && query.Get("api-version") == "" {
		query.Set("api-version", c.APIVersion)
	}
	u := c.BaseURL + path
	if qs := query.Encode(); qs != "" {
		u += "?" + qs
	}
	return u, nil
}
