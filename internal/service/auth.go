package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/store"
	"github.com/Anjaratiana11/restaurant-mobile/models"
)

type authService struct {
	localStore *store.ClientStorages
	identity   adapter.IdentityProvider

	logger *logger.Logger
}

// NewAuthService wires the identity adapter and the local session store into
// an [AuthService].
func NewAuthService(localStore *store.ClientStorages, identity adapter.IdentityProvider, logger *logger.Logger) AuthService {
	return &authService{localStore: localStore, identity: identity, logger: logger}
}

func (a *authService) Signup(ctx context.Context, email, password string) (models.Session, error) {
	if err := checkCredentials(email, password); err != nil {
		return models.Session{}, err
	}

	resp, err := a.identity.SignUp(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("signup: %w", err)
	}

	return a.openSession(ctx, resp)
}

func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := checkCredentials(email, password); err != nil {
		return models.Session{}, err
	}

	resp, err := a.identity.SignIn(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	return a.openSession(ctx, resp)
}

// openSession persists the issued token and returns the composed session.
// A token that cannot be persisted is unusable on the next launch, so the
// storage failure is reported instead of silently returning the session.
func (a *authService) openSession(ctx context.Context, resp models.SignUpResponse) (models.Session, error) {
	session := models.NewSession(resp.IDToken, resp.Email, resp.LocalID)

	if err := a.localStore.SessionRepository.Save(ctx, session.Token); err != nil {
		a.logger.Err(err).Msg("failed to persist session token")
		return models.Session{}, fmt.Errorf("persist session token: %w", err)
	}

	a.logger.Info().Str("email", session.Email).Msg("session opened")
	return session, nil
}

func (a *authService) Token(ctx context.Context) (string, error) {
	token, err := a.localStore.SessionRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", nil
		}
		a.logger.Err(err).Msg("failed to read session token")
		return "", fmt.Errorf("read session token: %w", err)
	}

	return token, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.localStore.SessionRepository.Delete(ctx); err != nil {
		a.logger.Err(err).Msg("failed to delete session token")
		return fmt.Errorf("delete session token: %w", err)
	}

	a.logger.Info().Msg("session closed")
	return nil
}

func checkCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrEmptyCredentials
	}
	return nil
}
