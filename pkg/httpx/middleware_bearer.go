package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/watchasset/watchasset/pkg/slogx"
)

// SubjectResolver maps a bearer token to a stable subject id. Tokens are
// opaque here, so resolution means asking whoever issued them; an error means
// the issuer no longer considers the token valid.
type SubjectResolver func(ctx context.Context, accessToken string) (string, error)

// BearerMiddleware extracts the bearer token, resolves the subject behind it
// and injects both into the request context. Requests without a usable token
// get a 401 before reaching the handler.
func BearerMiddleware(resolve SubjectResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
			if raw == "" {
				writeBearerError(w, "empty bearer token")
				return
			}

			subject, err := resolve(ctx, raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeBearerError(w, "token rejected by identity provider")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, subject)
			ctx = context.WithValue(ctx, CtxKeyAccessToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
