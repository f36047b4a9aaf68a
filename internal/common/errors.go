// Package common defines shared sentinel errors used across the console's
// API, session and UI layers. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// ErrUnauthorized means the backend rejected the credentials, or a
	// token refresh failed irrecoverably. The UI reacts by forcing the
	// user back to the sign-in screen.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps HTTP 404 for single-entity lookups.
	ErrNotFound = errors.New("not found")

	// ErrConflict maps HTTP 409: the delete or create was blocked by
	// dependent records server-side (e.g. a brand with active medicines).
	ErrConflict = errors.New("conflict with dependent records")

	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNoSession means an authenticated operation was attempted with
	// no stored token pair.
	ErrNoSession = errors.New("not signed in")
)
