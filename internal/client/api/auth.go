package api

import (
	"context"
	"net/http"
)

// TokenPair is the backend's answer to sign-in and refresh calls.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SignIn exchanges credentials for a token pair. The pair is returned to
// the caller (the session guard persists it); the client itself stores
// nothing here. A 401 surfaces as common.ErrUnauthorized, i.e. wrong
// credentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	err := c.sendJSON(ctx, http.MethodPost, "/auth/sign-in", signInRequest{Email: email, Password: password}, &pair)
	if err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}
