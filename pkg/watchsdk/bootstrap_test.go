package watchsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// newBootstrapBackend serves /auth/userinfo, accepting only goodToken.
func newBootstrapBackend(t *testing.T, goodToken string) (*Client, *atomic.Int32) {
	t.Helper()

	var userinfoHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/userinfo" {
			http.NotFound(w, r)
			return
		}
		userinfoHits.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+goodToken {
			http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"user1","email":"alice@example.com","name":"Alice"}`))
	}))
	t.Cleanup(server.Close)

	return New(server.URL, NewMemoryStore()), &userinfoHits
}

func TestBootstrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("error flag wins over everything", func(t *testing.T) {
		client, hits := newBootstrapBackend(t, "tok1")
		client.SetTokens("tok1", "")

		result := client.Bootstrap(ctx, url.Values{
			"error": {"auth_failed"},
			"token": {"tok1"},
		})

		require.Equal(t, StateErrorFromRedirect, result.State)
		require.Error(t, result.Err)
		require.False(t, result.RedirectToLogin)
		require.Equal(t, int32(0), hits.Load(), "no fetches in the error state")
	})

	t.Run("token from redirect", func(t *testing.T) {
		client, _ := newBootstrapBackend(t, "tok1")

		result := client.Bootstrap(ctx, url.Values{
			"token":   {"tok1"},
			"refresh": {"ref1"},
		})

		require.Equal(t, StateTokenFromRedirect, result.State)
		require.NoError(t, result.Err)
		require.Equal(t, "Alice", result.Identity.Name)
		require.False(t, result.RedirectToLogin)

		// The redirect tokens were persisted.
		token, ok := client.AccessToken()
		require.True(t, ok)
		require.Equal(t, "tok1", token)
		stored, _ := client.Store.Get(KeyRefreshToken)
		require.Equal(t, "ref1", stored)
	})

	t.Run("redirect token that fails userinfo is an error, not a bounce", func(t *testing.T) {
		client, _ := newBootstrapBackend(t, "some-other-token")

		result := client.Bootstrap(ctx, url.Values{"token": {"tok1"}})

		require.Equal(t, StateTokenFromRedirect, result.State)
		require.Error(t, result.Err)
		require.False(t, result.RedirectToLogin)
	})

	t.Run("stored token still valid", func(t *testing.T) {
		client, _ := newBootstrapBackend(t, "tok1")
		client.SetTokens("tok1", "")

		result := client.Bootstrap(ctx, url.Values{})

		require.Equal(t, StateStoredTokenValid, result.State)
		require.Equal(t, "user1", result.Identity.ID)
		require.False(t, result.RedirectToLogin)
	})

	t.Run("stored token rejected", func(t *testing.T) {
		client, _ := newBootstrapBackend(t, "tok1")
		client.SetTokens("expired", "")

		result := client.Bootstrap(ctx, url.Values{})

		require.Equal(t, StateStoredTokenInvalid, result.State)
		require.Error(t, result.Err)
		require.True(t, result.RedirectToLogin)

		// The dead credentials were cleared.
		_, ok := client.AccessToken()
		require.False(t, ok)
	})

	t.Run("nothing stored, nothing in the url", func(t *testing.T) {
		client, hits := newBootstrapBackend(t, "tok1")

		result := client.Bootstrap(ctx, url.Values{})

		require.Equal(t, StateNoToken, result.State)
		require.True(t, result.RedirectToLogin)
		require.Equal(t, int32(0), hits.Load())
	})
}
