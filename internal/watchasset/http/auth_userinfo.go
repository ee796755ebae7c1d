package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/internal/watchasset/sso"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/slogx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// UserInfoHandler serves GET /auth/userinfo. It forwards the caller's bearer
// token to the SSO provider and returns the canonical identity mapping.
type UserInfoHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Get user information
//	@Description	Forwards the bearer token to the SSO provider's userinfo endpoint
//	@Description	and returns the identity. Provider error statuses propagate, so an
//	@Description	expired token yields the provider's 401.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	watchsdk.Identity	"id, email, name, username"
//	@Failure		401	{object}	watchsdk.APIError	"Missing or rejected access token"
//	@Router			/auth/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		watchsdk.ErrUnauthorized.WriteError(w)
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	if token == "" {
		watchsdk.ErrUnauthorized.WriteError(w)
		return
	}

	identity, err := h.AuthService.ResolveIdentity(ctx, token)
	if err != nil {
		// The provider's status carries the meaning; pass it through.
		var statusErr *sso.StatusError
		if errors.As(err, &statusErr) {
			(&watchsdk.APIError{
				StatusCode:  statusErr.StatusCode,
				Code:        watchsdk.ErrorCodeInvalidToken,
				Description: "token rejected by identity provider",
			}).WriteError(w)
			return
		}
		log.Error("userinfo lookup failed", "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	response := watchsdk.Identity{
		ID:       identity.ID,
		Email:    identity.Email,
		Name:     identity.DisplayName(),
		Username: identity.Username,
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
