package http

import (
	"net/http"

	"github.com/watchasset/watchasset/internal/watchasset/service"
)

// LoginHandler serves GET /auth/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Start SSO login
//	@Description	Redirects the browser to the external SSO provider's authorize endpoint.
//	@Description	No local state is created; the flow resumes at /auth/callback.
//	@Tags			Auth
//	@Success		302	{string}	string	"Redirect to {SSO_BASE}/authorize"
//	@Router			/auth/login [get].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.AuthService.LoginURL(), http.StatusFound)
}
