package tokenadmin

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDescriptor(t *testing.T) {
	storageKey := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_apis/graph/descriptors/"+storageKey.String(), r.URL.Path)
		assert.Equal(t, DefaultAPIVersion, r.URL.Query().Get("api-version"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"value": "aad.YWJjZGVm"})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	desc, err := cl.GetDescriptor(ctx, storageKey)
	require.NoError(t, err)
	assert.Equal(t, "aad.YWJjZGVm", desc)
}

func TestListUsers_HeaderContinuation(t *testing.T) {
	var tokens []string

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/_apis/graph/users", r.URL.Path)
		tok := r.URL.Query().Get("continuationToken")
		tokens = append(tokens, tok)
		w.Header().Set("Content-Type", "application/json")
		if tok == "" {
			// First page; next cursor travels in a response header.
			w.Header().Set(ContinuationTokenHeader, "page-2")
			json.NewEncoder(w).Encode(graphUsersResponse{
				Count: 2,
				Value: []GraphUser{{Descriptor: "aad.u1"}, {Descriptor: "aad.u2"}},
			})
			return
		}
		json.NewEncoder(w).Encode(graphUsersResponse{
			Count: 1,
			Value: []GraphUser{{Descriptor: "aad.u3"}},
		})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users, err := cl.ListAllUsers(ctx)
	require.NoError(t, err)

	descs := make([]string, 0, len(users))
	for _, u := range users {
		descs = append(descs, u.Descriptor)
	}
	assert.Equal(t, []string{"aad.u1", "aad.u2", "aad.u3"}, descs)
	assert.Equal(t, []string{"", "page-2"}, tokens)
}

func TestEachUserPage_Streams(t *testing.T) {
	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("continuationToken") == "" {
			w.Header().Set(ContinuationTokenHeader, "next")
			json.NewEncoder(w).Encode(graphUsersResponse{Count: 1, Value: []GraphUser{{Descriptor: "aad.u1"}}})
			return
		}
		json.NewEncoder(w).Encode(graphUsersResponse{Count: 1, Value: []GraphUser{{Descriptor: "aad.u2"}}})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var pages int
	err := cl.EachUserPage(ctx, func(users []GraphUser) {
		pages++
		require.Len(t, users, 1)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestAuthAndUserAgentForwarded(t *testing.T) {
	var gotAuth, gotUA, gotExtra string

	srv, cl := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotExtra = r.Header.Get("x-extra")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(graphUsersResponse{})
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := cl.ListUsers(ctx, "", WithHeader("x-extra", "1"))
	require.NoError(t, err)
	assert.Equal(t, basicAuth("test-pat"), gotAuth)
	assert.Contains(t, gotUA, "tokenadmin-go/")
	assert.Equal(t, "1", gotExtra)
}
