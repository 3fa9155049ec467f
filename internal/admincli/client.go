package admincli

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/serranolabs/tokenadmin-go/tokenadmin"
)

// NewClient constructs an SDK client using global flags.
func NewClient(g GlobalFlags) *tokenadmin.Client {
	opts := []tokenadmin.Option{
		tokenadmin.WithBaseURL(g.BaseURL),
		tokenadmin.WithPersonalAccessToken(g.PAT),
		tokenadmin.WithHTTPClient(&http.Client{Timeout: g.Timeout}),
	}
	if g.APIVersion != "" {
		opts = append(opts, tokenadmin.WithAPIVersion(g.APIVersion))
	}
	if g.Verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			opts = append(opts, tokenadmin.WithLogger(logger))
		}
	}
	return tokenadmin.New(opts...)
}

// Ctx returns a context with the CLI-configured timeout.
func Ctx(g GlobalFlags) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), g.Timeout)
}
