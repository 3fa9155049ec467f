package tokenadmin

import (
	"net/http"
	"net/http/httptest"
)

func newTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	srv := httptest.NewServer(handler)
	cl := New(
		WithBaseURL(srv.URL),
		WithPersonalAccessToken("test-pat"),
	)
	return srv, cl
}
