package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"user_id": 3,
			"version": "0.9.0",
		},
		"identity": map[string]any{
			"base_url": "https://id.example.com",
			"api_key":  "json-key",
		},
		"ordering": map[string]any{
			"base_url":        "https://cuisine.example.com/api",
			"request_timeout": "20s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/tmp/restaurant.db"},
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.App.UserID)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "https://id.example.com", cfg.Identity.BaseURL)
	assert.Equal(t, "json-key", cfg.Identity.APIKey)
	assert.Equal(t, "https://cuisine.example.com/api", cfg.Ordering.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Ordering.RequestTimeout)
	assert.Equal(t, "/tmp/restaurant.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath, "nested config files are not followed")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/no/such/file.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	f := writeTempJSONConfig(t, "not-an-object")

	cfg, err := parseJSON(f)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}
