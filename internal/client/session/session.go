package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

// Claims is the decoded (unverified) content of the access token, used
// for display only. Verification is the backend's job; the console just
// shows who is signed in and until when.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Session is the explicit authentication guard: it owns the token store
// and answers routing questions for the UI. One instance is built at
// application start and handed down by dependency injection.
type Session struct {
	client *api.Client
	store  api.TokenStore
	log    logging.Logger
}

// New binds the guard to its API client and token store.
func New(client *api.Client, store api.TokenStore, log logging.Logger) *Session {
	return &Session{client: client, store: store, log: log}
}

// IsAuthenticated reports whether a full token pair is stored. This is a
// presence check only; an expired access token is handled transparently
// by the refresh transport on the next request.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	access, refresh, err := s.store.Tokens(ctx)
	if err != nil {
		s.log.Error(ctx, "reading session state", "err", err)
		return false
	}
	return access != "" && refresh != ""
}

// SignIn authenticates against the backend and persists the token pair.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	pair, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.store.SetTokens(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.log.Info(ctx, "signed in", "email", email)
	return nil
}

// Logout clears the stored token pair.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.ClearTokens(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// AccessClaims decodes the stored access token without verifying its
// signature.
func (s *Session) AccessClaims(ctx context.Context) (*Claims, error) {
	access, _, err := s.store.Tokens(ctx)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, common.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNoSession, err)
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
