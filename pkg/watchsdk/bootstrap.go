package watchsdk

import (
	"context"
	"net/url"
)

// BootstrapState classifies what the dashboard found when it mounted.
type BootstrapState string

const (
	// StateErrorFromRedirect: the OAuth2 redirect carried an error flag;
	// render a terminal error view, fetch nothing.
	StateErrorFromRedirect BootstrapState = "error_from_redirect"

	// StateTokenFromRedirect: a fresh token arrived on the redirect and the
	// identity was fetched with it.
	StateTokenFromRedirect BootstrapState = "token_from_redirect"

	// StateStoredTokenValid: no redirect parameters, the stored token still
	// works and the identity was fetched.
	StateStoredTokenValid BootstrapState = "stored_token_valid"

	// StateStoredTokenInvalid: the stored token no longer works; the store
	// was cleared and the user must log in again.
	StateStoredTokenInvalid BootstrapState = "stored_token_invalid"

	// StateNoToken: nothing stored and nothing in the URL.
	StateNoToken BootstrapState = "no_token"
)

// BootstrapResult is the outcome of one dashboard mount.
type BootstrapResult struct {
	State    BootstrapState
	Identity Identity
	Err      error

	// RedirectToLogin is set when the caller should navigate to the
	// home/login route instead of rendering the dashboard.
	RedirectToLogin bool
}

// Bootstrap runs the dashboard mount sequence over the redirect query
// parameters. It runs once per mount; navigation changes re-trigger it.
func (c *Client) Bootstrap(ctx context.Context, query url.Values) BootstrapResult {
	// An error flag from the OAuth2 redirect wins over everything.
	if errFlag := query.Get("error"); errFlag != "" {
		return BootstrapResult{
			State: StateErrorFromRedirect,
			Err:   &APIError{StatusCode: 0, Code: errFlag, Description: "authentication failed"},
		}
	}

	// A token on the redirect is stored first, then the identity is fetched
	// with it. A fetch failure surfaces as an error state; we do not
	// silently bounce the user back to login with a token in hand.
	if token := query.Get("token"); token != "" {
		c.SetTokens(token, query.Get("refresh"))

		identity, err := c.UserInfo(ctx)
		if err != nil {
			return BootstrapResult{State: StateTokenFromRedirect, Err: err}
		}
		return BootstrapResult{State: StateTokenFromRedirect, Identity: identity}
	}

	// No redirect parameters: fall back to whatever the store holds.
	if _, ok := c.AccessToken(); !ok {
		return BootstrapResult{State: StateNoToken, RedirectToLogin: true}
	}

	identity, err := c.UserInfo(ctx)
	if err != nil {
		c.ClearAuth()
		return BootstrapResult{State: StateStoredTokenInvalid, Err: err, RedirectToLogin: true}
	}

	return BootstrapResult{State: StateStoredTokenValid, Identity: identity}
}
