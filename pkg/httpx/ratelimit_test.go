package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	newReq := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/watches", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		return r
	}

	t.Run("remote addr without proxy headers", func(t *testing.T) {
		require.Equal(t, "10.0.0.1", IPKeyExtractor(newReq()))
	})

	t.Run("x-forwarded-for takes first hop", func(t *testing.T) {
		r := newReq()
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		require.Equal(t, "203.0.113.7", IPKeyExtractor(r))
	})

	t.Run("x-real-ip fallback", func(t *testing.T) {
		r := newReq()
		r.Header.Set("X-Real-IP", "203.0.113.9")
		require.Equal(t, "203.0.113.9", IPKeyExtractor(r))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	t.Parallel()

	extractor := CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor)

	r := httptest.NewRequest(http.MethodGet, "/user-watches", nil)
	r.RemoteAddr = "10.0.0.1:54321"

	t.Run("anonymous falls back to ip", func(t *testing.T) {
		require.Equal(t, "10.0.0.1", extractor(r))
	})

	t.Run("authenticated prefixes user id", func(t *testing.T) {
		ctx := context.WithValue(r.Context(), CtxKeyUserID, "user1")
		require.Equal(t, "user1:10.0.0.1", extractor(r.WithContext(ctx)))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	config := RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}

	handler := RateLimitByIP(config)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows up to burst then rejects", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)
		require.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)

		rec := do("10.0.0.1:1000")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("limits are per key", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code)
	})
}

func TestParseRateLimitFromEnv(t *testing.T) {
	defaults := RateLimitConfig{
		RequestsPerWindow: 10,
		Window:            time.Minute,
		Burst:             10,
	}

	t.Run("defaults without env", func(t *testing.T) {
		require.Equal(t, defaults, ParseRateLimitFromEnv("TESTPROFILE", defaults))
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTPROFILE_REQUESTS", "20")
		t.Setenv("RATELIMIT_TESTPROFILE_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TESTPROFILE_BURST", "5")

		config := ParseRateLimitFromEnv("TESTPROFILE", defaults)
		require.Equal(t, 20, config.RequestsPerWindow)
		require.Equal(t, 30*time.Second, config.Window)
		require.Equal(t, 5, config.Burst)
	})

	t.Run("garbage values fall back to defaults", func(t *testing.T) {
		t.Setenv("RATELIMIT_TESTPROFILE_REQUESTS", "not-a-number")
		t.Setenv("RATELIMIT_TESTPROFILE_WINDOW_SEC", "-1")

		config := ParseRateLimitFromEnv("TESTPROFILE", defaults)
		require.Equal(t, defaults, config)
	})
}
