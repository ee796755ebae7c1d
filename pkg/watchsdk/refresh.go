package watchsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// refreshAccessToken trades the stored refresh token for a new access token
// via the backend. Returns "" when no refresh token is stored or the provider
// rejects it; the caller must treat that as "user must re-authenticate".
//
// Concurrent callers are collapsed into a single provider call: they all wait
// for the one in-flight refresh and share its result.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	token, err, _ := c.refreshGroup.Do(KeyRefreshToken, func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (c *Client) doRefresh(ctx context.Context) (string, error) {
	refreshToken, ok := c.Store.Get(KeyRefreshToken)
	if !ok || refreshToken == "" {
		return "", nil
	}

	payload, err := json.Marshal(RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url("/auth/refresh"),
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var refreshed RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&refreshed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if refreshed.AccessToken == "" {
		return "", nil
	}

	// Store the new access token always; the refresh token only when the
	// provider rotated it (absence means keep the old one).
	c.Store.Set(KeyAccessToken, refreshed.AccessToken)
	if refreshed.RefreshToken != "" {
		c.Store.Set(KeyRefreshToken, refreshed.RefreshToken)
	}

	return refreshed.AccessToken, nil
}
