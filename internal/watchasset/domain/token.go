package domain

// TokenSet is what the SSO provider's token endpoint returns. Tokens are
// opaque to us: we never parse or validate them locally, validity is learned
// by observing the provider's responses.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"` // typically "Bearer"
	ExpiresIn    int    `json:"expires_in,omitempty"` // seconds until expiry
}

// Identity is the canonical user identity derived from the provider's
// userinfo response. It is never authoritative locally; callers re-fetch it
// from the provider and cache it only for display continuity.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// DisplayName resolves the name to show in the UI: name, then username,
// then email.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}
