package store

import "errors"

var (
	// ErrSessionNotFound is returned by [SessionRepository.Get] when no
	// token has been persisted yet (or the session was logged out).
	ErrSessionNotFound = errors.New("local session not found")
)
