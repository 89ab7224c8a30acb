package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsStravaSettings(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Strava)
	assert.Equal(t, "https://www.strava.com/api/v3", cfg.Strava.BaseURL)
	assert.Equal(t, "https://www.strava.com/api/v3/oauth/token", cfg.Strava.TokenURL)
	assert.Equal(t, 10*time.Second, cfg.Strava.RequestTimeout)
	assert.Equal(t, 3, cfg.Strava.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Strava.StateTTL)
	assert.Equal(t, defaultSessionTTL, cfg.SecretKey.SessionTTL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Strava: &StravaConfig{
		ClientID:       "1",
		ClientSecret:   "s",
		RequestTimeout: 2 * time.Second,
		MaxAttempts:    1,
	}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, 2*time.Second, cfg.Strava.RequestTimeout)
	assert.Equal(t, 1, cfg.Strava.MaxAttempts)
}

func TestStravaKeyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strava-key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_id": "12345", "client_secret": "shh"}`), 0o600))

	s := &StravaConfig{KeyFile: path}
	require.NoError(t, s.applyDefaults())

	assert.Equal(t, "12345", s.ClientID)
	assert.Equal(t, "shh", s.ClientSecret)
}

func TestStravaKeyFile_MissingSecret(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strava-key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"client_id": "12345"}`), 0o600))

	s := &StravaConfig{KeyFile: path}
	assert.Error(t, s.applyDefaults())
}
