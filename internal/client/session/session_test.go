package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "session.db")
	store, err := OpenStore(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	access, refresh, err := store.Tokens(ctx)
	require.NoError(t, err)
	require.Empty(t, access)
	require.Empty(t, refresh)

	require.NoError(t, store.SetTokens(ctx, "a1", "r1"))
	access, refresh, err = store.Tokens(ctx)
	require.NoError(t, err)
	require.Equal(t, "a1", access)
	require.Equal(t, "r1", refresh)

	// Rewrite (the refresh flow replaces both).
	require.NoError(t, store.SetTokens(ctx, "a2", "r2"))
	access, refresh, _ = store.Tokens(ctx)
	require.Equal(t, "a2", access)
	require.Equal(t, "r2", refresh)

	require.NoError(t, store.ClearTokens(ctx))
	access, refresh, _ = store.Tokens(ctx)
	require.Empty(t, access)
	require.Empty(t, refresh)
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	store, err := OpenStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, store.SetTokens(ctx, "a1", "r1"))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	access, refresh, err := reopened.Tokens(ctx)
	require.NoError(t, err)
	require.Equal(t, "a1", access)
	require.Equal(t, "r1", refresh)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/sign-in" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(api.TokenPair{AccessToken: "acc", RefreshToken: "ref"})
	}))
	defer srv.Close()

	client := api.New(srv.URL, store, testLogger())
	sess := New(client, store, testLogger())

	require.False(t, sess.IsAuthenticated(ctx))

	err := sess.SignIn(ctx, "vet@shelter.org", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.False(t, sess.IsAuthenticated(ctx))

	require.NoError(t, sess.SignIn(ctx, "vet@shelter.org", "s3cret"))
	require.True(t, sess.IsAuthenticated(ctx))

	require.NoError(t, sess.Logout(ctx))
	require.False(t, sess.IsAuthenticated(ctx))
}

func TestAccessClaims(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"email": "vet@shelter.org",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	require.NoError(t, store.SetTokens(ctx, signed, "ref"))

	sess := New(nil, store, testLogger())
	claims, err := sess.AccessClaims(ctx)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "vet@shelter.org", claims.Email)
	require.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestAccessClaimsWithoutSession(t *testing.T) {
	store := openTestStore(t)
	sess := New(nil, store, testLogger())

	_, err := sess.AccessClaims(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
}
