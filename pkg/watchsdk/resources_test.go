package watchsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchesResource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Public catalogue: no Authorization header expected.
		require.Empty(t, r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/watches":
			_, _ = w.Write([]byte(`[{"id":"watch1","brand":"Rolex","currentPrice":14850}]`))
		case "/watches/watch1":
			_, _ = w.Write([]byte(`{"id":"watch1","brand":"Rolex","prices":[{"id":"price3","price":14850}]}`))
		default:
			(&APIError{StatusCode: http.StatusNotFound, Code: ErrorCodeNotFound, Description: "not found"}).WriteError(w)
		}
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, NewMemoryStore())

	t.Run("list works without a token", func(t *testing.T) {
		watches, err := client.Watches(ctx)
		require.NoError(t, err)
		require.Len(t, watches, 1)
		require.Equal(t, "Rolex", watches[0].Brand)
	})

	t.Run("get by id", func(t *testing.T) {
		w, err := client.Watch(ctx, "watch1")
		require.NoError(t, err)
		require.Len(t, w.Prices, 1)
	})

	t.Run("unknown id yields typed error", func(t *testing.T) {
		_, err := client.Watch(ctx, "nope")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, ErrorCodeNotFound, apiErr.Code)
	})
}

func TestCollectionResource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/user-watches":
			_, _ = w.Write([]byte(`[{"id":"uw1","watchId":"watch1"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/user-watches":
			var req AddUserWatchRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.WatchID == "watch1" {
				ErrAlreadyInCollection.WriteError(w)
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"uw2","watchId":"` + req.WatchID + `"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/user-watches/uw1":
			w.WriteHeader(http.StatusNoContent)
		default:
			ErrNotFound.WriteError(w)
		}
	}))
	t.Cleanup(server.Close)

	newAuthedClient := func() *Client {
		client := New(server.URL, NewMemoryStore())
		client.SetTokens("tok1", "")
		return client
	}

	t.Run("list", func(t *testing.T) {
		entries, err := newAuthedClient().Collection(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "watch1", entries[0].WatchID)
	})

	t.Run("add", func(t *testing.T) {
		entry, err := newAuthedClient().AddToCollection(ctx, AddUserWatchRequest{WatchID: "watch2"})
		require.NoError(t, err)
		require.Equal(t, "watch2", entry.WatchID)
	})

	t.Run("add duplicate", func(t *testing.T) {
		_, err := newAuthedClient().AddToCollection(ctx, AddUserWatchRequest{WatchID: "watch1"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeAlreadyInCollection, apiErr.Code)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, newAuthedClient().RemoveFromCollection(ctx, "uw1"))
	})

	t.Run("remove missing", func(t *testing.T) {
		err := newAuthedClient().RemoveFromCollection(ctx, "uw-gone")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("no token yields typed 401", func(t *testing.T) {
		client := New(server.URL, NewMemoryStore())
		_, err := client.Collection(ctx)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, ErrorCodeInvalidToken, apiErr.Code)
	})
}

func TestUserInfoCachesIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/userinfo", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"user1","email":"alice@example.com","name":"Alice"}`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, NewMemoryStore())
	client.SetTokens("tok1", "")

	identity, err := client.UserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, "user1", identity.ID)

	cached, ok := client.CachedIdentity()
	require.True(t, ok)
	require.Equal(t, identity, cached)
}
