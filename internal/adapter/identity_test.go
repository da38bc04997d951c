package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anjaratiana11/restaurant-mobile/internal/config"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestIdentity builds an identityAdapter pointed at a test server.
func newTestIdentity(t *testing.T, serverURL string) *identityAdapter {
	t.Helper()
	identityCfg := config.ClientIdentity{BaseURL: serverURL, APIKey: "test-key"}

	a, err := NewIdentityAdapter(identityCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*identityAdapter)
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	want := models.SignUpResponse{
		IDToken: "issued-token",
		Email:   "alice@example.com",
		LocalID: "uid-1",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/accounts:signUp", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body models.CredentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body.Email)
		assert.True(t, body.ReturnSecureToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestIdentity(t, srv.URL)
	got, err := a.SignUp(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSignUp_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"EMAIL_EXISTS"}}`))
	}))
	defer srv.Close()

	a := newTestIdentity(t, srv.URL)
	_, err := a.SignUp(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityRejected)
	assert.Contains(t, err.Error(), "EMAIL_EXISTS")
}

func TestSignUp_RejectionWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("no json here"))
	}))
	defer srv.Close()

	a := newTestIdentity(t, srv.URL)
	_, err := a.SignUp(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityRejected)
	assert.Contains(t, err.Error(), "unknown identity error")
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SignUpResponse{IDToken: "login-token"})
	}))
	defer srv.Close()

	a := newTestIdentity(t, srv.URL)
	got, err := a.SignIn(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "login-token", got.IDToken)
}

func TestSignIn_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"INVALID_PASSWORD"}}`))
	}))
	defer srv.Close()

	a := newTestIdentity(t, srv.URL)
	_, err := a.SignIn(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityRejected)
	assert.Contains(t, err.Error(), "INVALID_PASSWORD")
}

func TestSignIn_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the call: connection refused

	a := newTestIdentity(t, srv.URL)
	_, err := a.SignIn(context.Background(), "alice@example.com", "secret123")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewIdentityAdapter_MissingAPIKey(t *testing.T) {
	_, err := NewIdentityAdapter(config.ClientIdentity{BaseURL: "https://id.example.com"}, logger.Nop())
	require.Error(t, err)
}

func TestNewIdentityAdapter_EmptyBaseURL(t *testing.T) {
	_, err := NewIdentityAdapter(config.ClientIdentity{APIKey: "key"}, logger.Nop())
	require.Error(t, err)
}
