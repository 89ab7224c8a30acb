package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loaderFixture struct {
	Strava struct {
		ClientID       string        `yaml:"clientId"`
		RequestTimeout time.Duration `yaml:"requestTimeout"`
	} `yaml:"strava"`
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "strava:\n  clientId: from-file\n  requestTimeout: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fixture.yaml"), []byte(content), 0o600))
	t.Setenv("STRAVA_CLIENTID", "from-env")

	cfg, err := LoadWithEnv[loaderFixture]("fixture", dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Strava.ClientID)
	assert.Equal(t, 5*time.Second, cfg.Strava.RequestTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[loaderFixture]("absent", t.TempDir())
	assert.ErrorContains(t, err, "absent.yaml not found")
}
