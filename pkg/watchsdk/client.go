package watchsdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client is a WatchAsset API client bound to a TokenStore.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Store      TokenStore

	// refreshGroup collapses concurrent refresh attempts into one provider
	// call so racing 401s don't stampede the refresh endpoint.
	refreshGroup singleflight.Group
}

// New creates a client for the backend at baseURL, persisting tokens in store.
func New(baseURL string, store TokenStore) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Store: store,
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// AccessToken returns the stored access token, if any.
func (c *Client) AccessToken() (string, bool) {
	token, ok := c.Store.Get(KeyAccessToken)
	return token, ok && token != ""
}

// SetTokens stores a fresh token pair, typically the one carried on the
// OAuth2 redirect. An empty refreshToken leaves any stored one in place.
func (c *Client) SetTokens(accessToken, refreshToken string) {
	c.Store.Set(KeyAccessToken, accessToken)
	if refreshToken != "" {
		c.Store.Set(KeyRefreshToken, refreshToken)
	}
}

// ClearAuth removes every stored credential, the client-side logout.
func (c *Client) ClearAuth() {
	c.Store.Remove(KeyAccessToken)
	c.Store.Remove(KeyRefreshToken)
	c.Store.Remove(KeyUser)
}
