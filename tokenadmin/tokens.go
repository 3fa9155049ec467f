package tokenadmin

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// ListPersonalAccessTokens returns one page of a user's personal access
// tokens, addressed by subject descriptor. pageSize is forwarded verbatim
// when positive; a value above the server-enforced maximum is rejected by
// the service, not validated here. Pass the empty string as
// continuationToken for the first page.
func (c *Client) ListPersonalAccessTokens(ctx context.Context, descriptor string, pageSize int, continuationToken string, opts ...CallOption) (*PagedSessionTokens, error) {
	q := callQuery(opts...)
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	if continuationToken != "" {
		q.Set("continuationToken", continuationToken)
	}
	path := fmt.Sprintf("/_apis/tokenAdmin/personalAccessTokens/%s", url.PathEscape(descriptor))
	var out PagedSessionTokens
	if _, err := c.doJSON(ctx, http.MethodGet, path, q, buildHeaders(opts...), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TokenPager returns a Pager over all personal access tokens of one user.
// Unlike the user listing, this endpoint marks the last page with the zero
// GUID rather than an absent token; the sentinel is folded here so the
// pager only ever sees an empty cursor at the end.
func (c *Client) TokenPager(descriptor string, pageSize int, opts ...CallOption) *Pager[SessionToken] {
	return NewPager(func(ctx context.Context, cursor string) ([]SessionToken, string, error) {
		page, err := c.ListPersonalAccessTokens(ctx, descriptor, pageSize, cursor, opts...)
		if err != nil {
			return nil, "", err
		}
		next := page.ContinuationToken
		if next == uuid.Nil.String() {
			next = ""
		}
		return page.Value, next, nil
	})
}

// ListAllPersonalAccessTokens walks every token page for a user and returns
// the concatenated result.
func (c *Client) ListAllPersonalAccessTokens(ctx context.Context, descriptor string, pageSize int, opts ...CallOption) ([]SessionToken, error) {
	return c.TokenPager(descriptor, pageSize, opts...).All(ctx)
}

// RevokeAuthorizations revokes the given authorizations in a single batch.
// The service answers 204 No Content on success and rejects oversized
// batches. Batch order is preserved on the wire.
func (c *Client) RevokeAuthorizations(ctx context.Context, revocations []TokenRevocation, opts ...CallOption) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/_apis/tokenAdmin/revocations", callQuery(opts...), buildHeaders(opts...), revocations, nil)
	return err
}

// CreateRevocationRule installs a standing revocation rule for credential
// kinds that cannot be revoked individually (for example SSH keys). The
// service answers 204 No Content on success.
func (c *Client) CreateRevocationRule(ctx context.Context, rule RevocationRule, opts ...CallOption) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/_apis/tokenAdmin/revocationRules", callQuery(opts...), buildHeaders(opts...), rule, nil)
	return err
}
