package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
)

// sessionKey is the fixed key the token is stored under, matching the storage
// key the mobile builds of this client have always used.
const sessionKey = "idToken"

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, token string) error {
	_, err := s.DB.ExecContext(ctx, upsertSessionToken, sessionKey, token, time.Now())
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to upsert session token")
		return fmt.Errorf("failed to save session token: %w", err)
	}

	return nil
}

func (s *sessionRepository) Get(ctx context.Context) (string, error) {
	var token string

	row := s.DB.QueryRowContext(ctx, getSessionToken, sessionKey)
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}
		s.logger.Err(err).
			Str("func", "sessionRepository.Get").
			Msg("failed to read session token")
		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	return token, nil
}

func (s *sessionRepository) Delete(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, deleteSessionToken, sessionKey)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete session token")
		return fmt.Errorf("failed to delete session token: %w", err)
	}

	return nil
}
