package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Anjaratiana11/restaurant-mobile/internal/config"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/utils"
	"github.com/Anjaratiana11/restaurant-mobile/models"
)

type identityAdapter struct {
	client *utils.HTTPClient
	apiKey string

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewIdentityAdapter constructs an HTTP implementation of [IdentityProvider]
// speaking the Google Identity Toolkit wire format. It normalises and
// validates the base URL from identityCfg.BaseURL and configures the
// underlying HTTP client.
//
// Returns an error if the base URL is empty or cannot be parsed, or if the
// API key is missing.
func NewIdentityAdapter(identityCfg config.ClientIdentity, logger *logger.Logger) (IdentityProvider, error) {
	baseURL, err := normalizeBaseURL(identityCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity base url: %w", err)
	}
	if identityCfg.APIKey == "" {
		return nil, fmt.Errorf("identity api key is required")
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &identityAdapter{
		client: client,
		apiKey: identityCfg.APIKey,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignUp implements [IdentityProvider]. It POSTs the credentials to
// POST /v1/accounts:signUp?key=<apiKey> requesting a secure token.
func (a *identityAdapter) SignUp(ctx context.Context, email, password string) (models.SignUpResponse, error) {
	return a.postCredentials(ctx, "/v1/accounts:signUp", email, password)
}

// SignIn implements [IdentityProvider]. It POSTs the credentials to
// POST /v1/accounts:signInWithPassword?key=<apiKey>.
func (a *identityAdapter) SignIn(ctx context.Context, email, password string) (models.SignUpResponse, error) {
	return a.postCredentials(ctx, "/v1/accounts:signInWithPassword", email, password)
}

func (a *identityAdapter) postCredentials(ctx context.Context, path, email, password string) (models.SignUpResponse, error) {
	var result models.SignUpResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", a.ids.Generate()).
		SetQueryParam("key", a.apiKey).
		SetBody(models.CredentialsRequest{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}).
		SetResult(&result).
		Post(path)
	if err != nil {
		a.logger.Err(err).Str("path", path).Msg("identity request failed")
		return models.SignUpResponse{}, fmt.Errorf("%w: identity request: %v", ErrUpstream, err)
	}

	if resp.IsError() {
		msg := providerErrorMessage(resp.Body())
		a.logger.Debug().Int("status", resp.StatusCode()).Str("message", msg).Msg("identity provider refused")
		return models.SignUpResponse{}, fmt.Errorf("%w: %s", ErrIdentityRejected, msg)
	}

	return result, nil
}

// providerErrorMessage extracts the structured error message from the
// provider's {"error":{"message":...}} envelope, falling back to a generic
// message when the envelope is absent or undecodable.
func providerErrorMessage(body []byte) string {
	var envelope models.IdentityError
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return "unknown identity error"
	}
	return envelope.Error.Message
}
