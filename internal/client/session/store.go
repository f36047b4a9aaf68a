// Package session owns the authenticated-user state of the console: a
// SQLite-backed store for the access/refresh token pair (the terminal
// analog of the browser's localStorage) and a Session guard that the UI
// consults for routing decisions. The Session is constructed once at
// startup and passed explicitly to whatever needs it.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	"github.com/victorozoterio/friendly-snout-console/internal/client/session/migrations"
	"github.com/victorozoterio/friendly-snout-console/internal/dbx"

	_ "modernc.org/sqlite"
)

const (
	accessTokenKey  = "accessToken"
	refreshTokenKey = "refreshToken"
)

// Store persists the token pair in a local SQLite database. It satisfies
// api.TokenStore.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the session database at dsn and
// runs pending migrations.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session db: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(ctx context.Context, tx dbx.DBTX, key string) (string, error) {
	var value string
	err := tx.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Tokens returns the stored pair; both strings are empty when no session
// exists.
func (s *Store) Tokens(ctx context.Context) (string, string, error) {
	access, err := s.get(ctx, s.db, accessTokenKey)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.get(ctx, s.db, refreshTokenKey)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// SetTokens writes both tokens in one transaction, so a crash can never
// leave a half-written session behind.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, accessTokenKey, access); err != nil {
			return err
		}
		return s.set(ctx, tx, refreshTokenKey, refresh)
	})
}

// ClearTokens removes the stored pair.
func (s *Store) ClearTokens(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
