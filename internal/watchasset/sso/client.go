// Package sso wraps the external Single Sign-On provider: authorization-code
// exchange, refresh-token grant and userinfo lookup. It holds no state, every
// method is a single request/response against the provider.
package sso

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/watchasset/watchasset/internal/watchasset/domain"
	"github.com/watchasset/watchasset/pkg/slogx"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	clientID     string
	clientSecret string
	redirectURI  string
}

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
	}
}

// AuthorizeURL builds the provider's authorization endpoint URL the browser
// is sent to at login.
func (c *Client) AuthorizeURL() string {
	params := url.Values{
		"client_id":     {c.clientID},
		"response_type": {"code"},
		"scope":         {"openid email profile"},
		"redirect_uri":  {c.redirectURI},
	}
	return c.BaseURL + "/authorize?" + params.Encode()
}

// ExchangeCode trades a one-time authorization code for tokens via the
// authorization_code grant. The codeVerifier is forwarded for PKCE-enabled
// providers and may be empty.
func (c *Client) ExchangeCode(ctx context.Context, code, codeVerifier string) (domain.TokenSet, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {c.redirectURI},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	if codeVerifier != "" {
		data.Set("code_verifier", codeVerifier)
	}

	return c.requestToken(ctx, data)
}

// Refresh trades a refresh token for a new token set via the refresh_token
// grant.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (domain.TokenSet, error) {
	data := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	return c.requestToken(ctx, data)
}

// UserInfo fetches the identity behind an access token. Provider errors
// (invalid or expired token) are surfaced unchanged as a *StatusError so the
// HTTP layer can propagate the provider's status code.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/userinfo", nil)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		slogx.FromContext(ctx).Warn("userinfo lookup rejected",
			"status", resp.StatusCode,
			"body", string(bodyBytes),
		)
		return domain.Identity{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var raw userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return domain.Identity{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return raw.identity(), nil
}

func (c *Client) requestToken(ctx context.Context, data url.Values) (domain.TokenSet, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/token",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return domain.TokenSet{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.TokenSet{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Log the provider's error body, never hand it to callers where it
		// could leak into a browser response.
		bodyBytes, _ := io.ReadAll(resp.Body)
		slogx.FromContext(ctx).Warn("token request rejected",
			"grant_type", data.Get("grant_type"),
			"status", resp.StatusCode,
			"body", string(bodyBytes),
		)
		return domain.TokenSet{}, ErrAuthenticationFailed
	}

	var tokens domain.TokenSet
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return domain.TokenSet{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if tokens.AccessToken == "" {
		return domain.TokenSet{}, ErrAuthenticationFailed
	}

	return tokens, nil
}

// userInfoResponse tolerates the two subject spellings seen in the wild:
// OIDC "sub" and plain "id".
type userInfoResponse struct {
	Sub      string `json:"sub"`
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (r userInfoResponse) identity() domain.Identity {
	id := r.Sub
	if id == "" {
		id = r.ID
	}
	return domain.Identity{
		ID:       id,
		Email:    r.Email,
		Name:     r.Name,
		Username: r.Username,
	}
}
