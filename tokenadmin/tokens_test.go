package tokenadmin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPersonalAccessTokens_QueryForwarding(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_apis/tokenAdmin/personalAccessTokens/aad.dXNlcg", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "11111111-2222-3333-4444-555555555555", r.URL.Query().Get("continuationToken"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PagedSessionTokens{
			Count:             1,
			Value:             []SessionToken{{DisplayName: "ci token"}},
			ContinuationToken: uuid.Nil.String(),
		})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	page, err := cl.ListPersonalAccessTokens(ctx, "aad.dXNlcg", 20, "11111111-2222-3333-4444-555555555555")
	require.NoError(t, err)
	require.Len(t, page.Value, 1)
	assert.Equal(t, "ci token", page.Value[0].DisplayName)
}

func TestTokenPager_EmptyGUIDSentinel(t *testing.T) {
	nextToken := "99999999-8888-7777-6666-555555555555"
	var requests int

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("continuationToken") == "" {
			json.NewEncoder(w).Encode(PagedSessionTokens{
				Count:             2,
				Value:             []SessionToken{{DisplayName: "t1"}, {DisplayName: "t2"}},
				ContinuationToken: nextToken,
			})
			return
		}
		assert.Equal(t, nextToken, r.URL.Query().Get("continuationToken"))
		// The PAT endpoint marks the last page with the zero GUID.
		json.NewEncoder(w).Encode(PagedSessionTokens{
			Count:             1,
			Value:             []SessionToken{{DisplayName: "t3"}},
			ContinuationToken: uuid.Nil.String(),
		})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tokens, err := cl.ListAllPersonalAccessTokens(ctx, "aad.dXNlcg", 2)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "t1", tokens[0].DisplayName)
	assert.Equal(t, "t3", tokens[2].DisplayName)
	assert.Equal(t, 2, requests)
}

func TestRevokeAuthorizations_BodyShapeAndOrder(t *testing.T) {
	ids := []uuid.UUID{
		uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		uuid.MustParse("33333333-3333-3333-3333-333333333333"),
	}
	var body []byte

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/_apis/tokenAdmin/revocations", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cl.RevokeAuthorizations(ctx, NewRevocations(ids...))
	require.NoError(t, err)

	var sent []map[string]string
	require.NoError(t, json.Unmarshal(body, &sent))
	require.Len(t, sent, 3)
	for i, obj := range sent {
		require.Len(t, obj, 1)
		assert.Equal(t, ids[i].String(), obj["authorizationId"])
	}
}

func TestCreateRevocationRule(t *testing.T) {
	createdBefore := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	var body []byte

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/_apis/tokenAdmin/revocationRules", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cl.CreateRevocationRule(ctx, RevocationRule{
		Scopes:        "vso.packaging vso.code_write",
		CreatedBefore: createdBefore,
	})
	require.NoError(t, err)

	var sent struct {
		Scopes        string    `json:"scopes"`
		CreatedBefore time.Time `json:"createdBefore"`
	}
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Equal(t, "vso.packaging vso.code_write", sent.Scopes)
	assert.True(t, createdBefore.Equal(sent.CreatedBefore))
}

func TestListPersonalAccessTokens_ErrorAbortsPager(t *testing.T) {
	var requests int

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(PagedSessionTokens{
				Count:             1,
				Value:             []SessionToken{{DisplayName: "t1"}},
				ContinuationToken: "99999999-8888-7777-6666-555555555555",
			})
			return
		}
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Access denied.",
			"typeKey": "AccessCheckException",
		})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := cl.TokenPager("aad.dXNlcg", 1)
	got, err := p.All(ctx)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.Len(t, got, 1)
	assert.Equal(t, 2, requests)
	assert.True(t, p.Done())
}
