package watchsdk

import (
	"context"
	"encoding/json"
	"net/http"
)

// UserInfo fetches the identity behind the stored access token and caches it
// in the store for display continuity.
func (c *Client) UserInfo(ctx context.Context) (Identity, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/auth/userinfo", nil, nil)
	if err != nil {
		return Identity{}, err
	}

	var identity Identity
	if err := decodeJSON(resp, &identity, http.StatusOK); err != nil {
		return Identity{}, err
	}

	if raw, err := json.Marshal(identity); err == nil {
		c.Store.Set(KeyUser, string(raw))
	}

	return identity, nil
}

// CachedIdentity returns the identity stored by the last UserInfo call.
func (c *Client) CachedIdentity() (Identity, bool) {
	raw, ok := c.Store.Get(KeyUser)
	if !ok {
		return Identity{}, false
	}
	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return Identity{}, false
	}
	return identity, true
}

// Watches returns the public catalogue. No authentication required.
func (c *Client) Watches(ctx context.Context) ([]Watch, error) {
	resp, err := c.get(ctx, "/watches")
	if err != nil {
		return nil, err
	}

	var watches []Watch
	if err := decodeJSON(resp, &watches, http.StatusOK); err != nil {
		return nil, err
	}
	return watches, nil
}

// Watch returns one catalogue entry with its full price history.
func (c *Client) Watch(ctx context.Context, id string) (Watch, error) {
	resp, err := c.get(ctx, "/watches/"+id)
	if err != nil {
		return Watch{}, err
	}

	var w Watch
	if err := decodeJSON(resp, &w, http.StatusOK); err != nil {
		return Watch{}, err
	}
	return w, nil
}

// get performs an unauthenticated GET against a public endpoint.
func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	return c.HTTPClient.Do(req)
}

// Collection returns the caller's tracked watches.
func (c *Client) Collection(ctx context.Context) ([]UserWatch, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/user-watches", nil, nil)
	if err != nil {
		return nil, err
	}

	var entries []UserWatch
	if err := decodeJSON(resp, &entries, http.StatusOK); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToCollection adds a watch to the caller's collection.
func (c *Client) AddToCollection(ctx context.Context, req AddUserWatchRequest) (UserWatch, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return UserWatch{}, err
	}

	resp, err := c.Do(ctx, http.MethodPost, "/user-watches", payload,
		map[string]string{"Content-Type": "application/json"})
	if err != nil {
		return UserWatch{}, err
	}

	var entry UserWatch
	if err := decodeJSON(resp, &entry, http.StatusCreated); err != nil {
		return UserWatch{}, err
	}
	return entry, nil
}

// RemoveFromCollection deletes one collection entry.
func (c *Client) RemoveFromCollection(ctx context.Context, id string) error {
	resp, err := c.Do(ctx, http.MethodDelete, "/user-watches/"+id, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusNoContent)
}
