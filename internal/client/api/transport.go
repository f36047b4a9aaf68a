package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

const refreshPath = "/auth/refresh-token"

// refreshGate serializes refresh-token exchanges. When several requests
// hit a 401 at once, only the first performs the exchange; the others
// observe the store already holding a newer access token and just replay.
type refreshGate struct {
	mu sync.Mutex
}

// do executes one logical request: attach the bearer token, send, and on
// a 401 perform a single refresh-and-replay. The retry budget lives in
// this function's locals rather than on the request object, so no flag
// mutation is shared between logical requests.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string, out any) error {
	access, _, err := c.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("reading tokens: %w", err)
	}

	status, err := c.attempt(ctx, method, path, query, body, contentType, access, out)
	if err != nil || status != http.StatusUnauthorized {
		return err
	}

	// The refresh endpoint itself never triggers a refresh.
	if path == refreshPath {
		return &Error{Status: http.StatusUnauthorized}
	}

	newAccess, refreshErr := c.refreshTokens(ctx, access)
	if refreshErr != nil {
		return refreshErr
	}

	// Replay once with the new token. A second 401 is surfaced as-is,
	// never retried again.
	status, err = c.attempt(ctx, method, path, query, body, contentType, newAccess, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return &Error{Status: http.StatusUnauthorized}
	}
	return nil
}

// attempt performs a single HTTP round trip. For non-2xx responses it
// returns the status plus, for everything except 401 (which do may still
// recover from), a decoded *Error.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body []byte, contentType, access string, out any) (int, error) {
	req, err := c.buildRequest(ctx, method, path, query, body, contentType)
	if err != nil {
		return 0, err
	}
	if access != "" && path != refreshPath {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return resp.StatusCode, newError(resp.StatusCode, raw)
	}

	if err := decodeInto(resp.Body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return resp.StatusCode, nil
}

// refreshTokens exchanges the stored refresh token for a new pair and
// returns the new access token. staleAccess is the token the failed
// attempt used: if another request already refreshed while this one was
// waiting on the gate, the exchange is skipped. On any refresh failure
// the stored pair is cleared and common.ErrUnauthorized is returned,
// which the UI translates into a forced sign-out.
func (c *Client) refreshTokens(ctx context.Context, staleAccess string) (string, error) {
	c.refresh.mu.Lock()
	defer c.refresh.mu.Unlock()

	access, refresh, err := c.tokens.Tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("reading tokens: %w", err)
	}
	if access != "" && access != staleAccess {
		return access, nil
	}
	if refresh == "" {
		_ = c.tokens.ClearTokens(ctx)
		return "", fmt.Errorf("no refresh token: %w", common.ErrUnauthorized)
	}

	var pair TokenPair
	err = c.sendJSON(ctx, http.MethodPost, refreshPath, refreshTokenRequest{RefreshToken: refresh}, &pair)
	if err != nil {
		_ = c.tokens.ClearTokens(ctx)
		c.log.Warn(ctx, "token refresh failed, session cleared", "err", err)
		return "", fmt.Errorf("refreshing session: %w", common.ErrUnauthorized)
	}

	if err := c.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return "", fmt.Errorf("storing refreshed tokens: %w", err)
	}

	c.log.Info(ctx, "access token refreshed")
	return pair.AccessToken, nil
}
