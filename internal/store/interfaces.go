package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the single opaque session token issued by the
// identity provider. The token lives under a fixed key in the local database;
// this layer tracks no expiry and performs no validation of the value.
type SessionRepository interface {
	// Save stores token under the fixed session key, replacing any previous
	// value.
	Save(ctx context.Context, token string) error

	// Get returns the stored token, or [ErrSessionNotFound] when no session
	// has been saved.
	Get(ctx context.Context) (string, error)

	// Delete removes the stored token. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context) error
}
