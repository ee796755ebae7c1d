package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/internal/watchasset/sso"
	"github.com/watchasset/watchasset/pkg/httpx"
	"github.com/watchasset/watchasset/pkg/slogx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// RefreshHandler serves POST /auth/refresh.
type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh access token
//	@Description	Trades a refresh token for a new token set via the SSO provider's
//	@Description	refresh_token grant. The refresh token in the response is only set
//	@Description	when the provider rotated it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		watchsdk.RefreshRequest		true	"refresh_token"
//	@Success		200		{object}	watchsdk.RefreshResponse	"access_token, refresh_token?, expires_in?"
//	@Failure		400		{object}	watchsdk.APIError			"Missing refresh token"
//	@Failure		401		{object}	watchsdk.APIError			"Refresh token rejected"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req watchsdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		watchsdk.ErrValidation.WithDescription("refresh_token is required").WriteError(w)
		return
	}

	tokens, err := h.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, sso.ErrAuthenticationFailed) {
			watchsdk.ErrRefreshFailed.WriteError(w)
			return
		}
		log.Error("token refresh failed", "err", err)
		watchsdk.ErrServerError.WriteError(w)
		return
	}

	response := watchsdk.RefreshResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
