package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/internal/watchasset/sso"
	"github.com/watchasset/watchasset/internal/watchasset/store/drivers/sqlite"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/stretchr/testify/require"
)

const testFrontendURL = "http://localhost:3000"

// testEnv wires real services over an in-memory database and a fake SSO
// provider so handler tests exercise the full path below the router.
type testEnv struct {
	Store    *sqlite.Store
	Auth     *service.AuthService
	Watches  *service.WatchService
	Coll     *service.UserWatchService
	Provider *httptest.Server
}

// newTestEnv starts a fake provider serving providerH (nil means 404s).
func newTestEnv(t *testing.T, providerH http.HandlerFunc) *testEnv {
	t.Helper()

	if providerH == nil {
		providerH = func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}
	}
	provider := httptest.NewServer(providerH)
	t.Cleanup(provider.Close)

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ssoClient := sso.NewClient(sso.Config{
		BaseURL:      provider.URL,
		ClientID:     "watchasset-web",
		ClientSecret: "super-secret",
		RedirectURI:  "http://localhost:3001/auth/callback",
	})

	return &testEnv{
		Store:    st,
		Auth:     service.NewAuthService(ssoClient),
		Watches:  service.NewWatchService(st),
		Coll:     service.NewUserWatchService(st),
		Provider: provider,
	}
}

// asUser attaches an authenticated subject to the request context, the way
// the bearer middleware would have.
func asUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), httpx.CtxKeyUserID, userID)
	return r.WithContext(ctx)
}
