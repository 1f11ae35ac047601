package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
server:
  name: my-booking-server
api:
  base_url: https://ws.example.com/api/v2
  username: apiuser
  timeout_seconds: 10
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "my-booking-server", s.Server.Name)
	assert.Equal(t, "https://ws.example.com/api/v2", s.API.BaseURL)
	assert.Equal(t, "apiuser", s.API.Username)
	assert.Equal(t, 10, s.API.TimeoutSeconds)
}

func TestLoadSettingsExpandsEnv(t *testing.T) {
	t.Setenv("TEST_NEO_PASSWORD", "s3cret")

	path := writeSettings(t, `
api:
  password: ${TEST_NEO_PASSWORD}
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", s.API.Password)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := writeSettings(t, "api: [not a mapping")

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings")
}

func TestSettingsApply(t *testing.T) {
	base := neobookings.Config{
		ClientCode: "neo",
		SystemCode: "XML",
		Username:   "envuser",
		Password:   "envpass",
		BaseURL:    neobookings.DefaultBaseURL,
		Timeout:    neobookings.DefaultTimeout,
	}

	s := Settings{API: APISettings{
		Username:       "fileuser",
		TimeoutSeconds: 5,
	}}

	cfg := s.Apply(base)

	assert.Equal(t, "fileuser", cfg.Username)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	// Untouched fields keep their environment values.
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, neobookings.DefaultBaseURL, cfg.BaseURL)
}
