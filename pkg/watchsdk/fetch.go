package watchsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Do performs an authenticated request against the backend.
//
// With no stored access token it short-circuits with a synthesized 401
// response rather than an error, so missing-token and expired-token look the
// same to callers and compose with the retry logic.
//
// On the first 401 it refreshes the access token and retries the original
// call exactly once with the new token; a 401 on the retry is returned as-is.
// The body is taken as a byte slice so the retry can replay it.
func (c *Client) Do(
	ctx context.Context,
	method, path string,
	body []byte,
	headers map[string]string,
) (*http.Response, error) {
	return c.do(ctx, method, path, body, headers, false)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body []byte,
	headers map[string]string,
	isRetry bool,
) (*http.Response, error) {
	token, ok := c.Store.Get(KeyAccessToken)
	if !ok || token == "" {
		return c.synthesizeUnauthorized(ctx, method, path), nil
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Caller headers first, then the bearer token. The Authorization header
	// always wins; everything else the caller set is preserved.
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !isRetry {
		newToken, refreshErr := c.refreshAccessToken(ctx)
		if refreshErr != nil || newToken == "" {
			// Refresh failed; surface the original 401 to the caller.
			return resp, nil
		}
		resp.Body.Close()
		return c.do(ctx, method, path, body, headers, true)
	}

	return resp, nil
}

// synthesizeUnauthorized fabricates the 401 a protected endpoint would have
// returned had we sent a request without a token. Request is populated with
// the request that would have been sent, so callers that inspect
// resp.Request.URL keep working.
func (c *Client) synthesizeUnauthorized(ctx context.Context, method, path string) *http.Response {
	req, _ := http.NewRequestWithContext(ctx, method, c.url(path), http.NoBody)

	body := []byte(`{"error":"invalid_token","error_description":"no access token available"}`)
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		Status:        "401 Unauthorized",
		StatusCode:    http.StatusUnauthorized,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
