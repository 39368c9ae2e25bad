// Package common defines shared constants and sentinel errors used across
// the champs-cli client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth errors (no token, or one that does not look like a signed token).
	ErrNotAuthenticated = errors.New("not authenticated")

	// Transport errors (request could not be sent or the response not read).
	ErrNetwork = errors.New("network error")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
