package tokenadmin

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
)

// basicAuth encodes a personal access token as an HTTP Basic Authorization
// value. The service expects an empty user name with the token as password.
func basicAuth(pat string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+pat))
}

// buildHeaders collects headers from CallOptions into a header map.
func buildHeaders(opts ...CallOption) http.Header {
	co := collectCallOptions(opts...)
	return co.headers
}

// collectCallOptions folds CallOptions into a single struct.
func collectCallOptions(opts ...CallOption) *callOptions {
	co := &callOptions{}
	for _, o := range opts {
		o(co)
	}
	return co
}

// callQuery folds per-call query parameters from CallOptions.
func callQuery(opts ...CallOption) url.Values {
	co := collectCallOptions(opts...)
	q := url.Values{}
	for k, v := range co.query {
		q.Set(k, v)
	}
	return q
}

// statusOf returns the HTTP status code or zero if the response is nil.
func statusOf(res *http.Response) int {
	if res == nil {
		return 0
	}
	return res.StatusCode
}

// parseAPIError decodes an error body and captures message/typeKey when the
// service returned its usual error envelope.
func parseAPIError(code int, b []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Body: string(b)}
	var msg struct {
		Message string `json:"message"`
		TypeKey string `json:"typeKey"`
	}
	if json.Unmarshal(b, &msg) == nil {
		apiErr.Message = msg.Message
		apiErr.TypeKey = msg.TypeKey
	}
	return apiErr
}
