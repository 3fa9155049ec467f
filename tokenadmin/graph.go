package tokenadmin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ContinuationTokenHeader carries the next-page cursor for the user listing
// endpoint. An absent or empty header means the last page was returned.
const ContinuationTokenHeader = "X-MS-ContinuationToken"

// GetDescriptor resolves a subject's storage key to its subject descriptor.
// Descriptors, not storage keys, identify users on the token admin endpoints.
func (c *Client) GetDescriptor(ctx context.Context, storageKey uuid.UUID, opts ...CallOption) (string, error) {
	path := fmt.Sprintf("/_apis/graph/descriptors/%s", storageKey)
	var out graphDescriptorResponse
	if _, err := c.doJSON(ctx, http.MethodGet, path, callQuery(opts...), buildHeaders(opts...), nil, &out); err != nil {
		return "", err
	}
	return out.Value, nil
}

// ListUsers returns one page of the organization's users. Pass the empty
// string for the first page; the returned token requests the next page and
// is empty once all pages have been served.
func (c *Client) ListUsers(ctx context.Context, continuationToken string, opts ...CallOption) ([]GraphUser, string, error) {
	q := callQuery(opts...)
	if continuationToken != "" {
		q.Set("continuationToken", continuationToken)
	}
	var out graphUsersResponse
	hdr, err := c.doJSON(ctx, http.MethodGet, "/_apis/graph/users", q, buildHeaders(opts...), nil, &out)
	if err != nil {
		return nil, "", err
	}
	return out.Value, hdr.Get(ContinuationTokenHeader), nil
}

// UserPager returns a Pager over every user in the organization.
func (c *Client) UserPager(opts ...CallOption) *Pager[GraphUser] {
	return NewPager(func(ctx context.Context, cursor string) ([]GraphUser, string, error) {
		return c.ListUsers(ctx, cursor, opts...)
	})
}

// ListAllUsers walks all user pages and returns the concatenated result.
func (c *Client) ListAllUsers(ctx context.Context, opts ...CallOption) ([]GraphUser, error) {
	return c.UserPager(opts...).All(ctx)
}

// EachUserPage walks all user pages, handing each page to onPage instead of
// accumulating.
func (c *Client) EachUserPage(ctx context.Context, onPage func([]GraphUser), opts ...CallOption) error {
	return c.UserPager(opts...).Each(ctx, onPage)
}
