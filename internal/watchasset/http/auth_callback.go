package http

import (
	"net/http"
	"net/url"

	"github.com/watchasset/watchasset/internal/watchasset/service"
	"github.com/watchasset/watchasset/pkg/slogx"
	"github.com/watchasset/watchasset/pkg/watchsdk"
)

// CallbackHandler serves GET /auth/callback, where the SSO provider sends the
// browser back with a one-time authorization code.
type CallbackHandler struct {
	AuthService *service.AuthService
	FrontendURL string
}

// ServeHTTP godoc
//
//	@Summary		OAuth2 callback
//	@Description	Exchanges the authorization code for tokens and redirects the browser
//	@Description	to the frontend dashboard with the access token. On exchange failure
//	@Description	the browser is redirected to the frontend root with error=auth_failed
//	@Description	so it always lands somewhere navigable.
//	@Tags			Auth
//	@Param			code	query		string					true	"One-time authorization code"
//	@Success		302		{string}	string					"Redirect to {FRONTEND}/dashboard?token=..."
//	@Failure		400		{object}	watchsdk.APIError		"Missing authorization code"
//	@Router			/auth/callback [get].
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		// No code means the browser never consented; there is nowhere
		// sensible to redirect to, so fail the request itself.
		watchsdk.ErrMissingCode.WriteError(w)
		return
	}

	tokens, err := h.AuthService.HandleCallback(ctx, code)
	if err != nil {
		log.Warn("authorization code exchange failed", "err", err)
		http.Redirect(w, r, h.FrontendURL+"/?error=auth_failed", http.StatusFound)
		return
	}

	// Hand the tokens to the frontend; it fetches /auth/userinfo itself.
	params := url.Values{"token": {tokens.AccessToken}}
	if tokens.RefreshToken != "" {
		params.Set("refresh", tokens.RefreshToken)
	}
	http.Redirect(w, r, h.FrontendURL+"/dashboard?"+params.Encode(), http.StatusFound)
}
