package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http":     "www.example:9000",
		"database_dsn":           "postgres://db",
		"secret_key":             "my_secret_key",
		"session_token_validity": "1h",
		"reset_token_validity":   "24h",
		"password_min_length":    12,
		"smtp_host":              "smtp.example.org",
		"smtp_port":              587,
		"smtp_user":              "mailer",
		"smtp_password":          "mailerpass",
		"smtp_from":              "noreply@example.org",
		"auth_rate_per_minute":   10,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, time.Hour, cfg.SessionTokenValidity)
		assert.Equal(t, 24*time.Hour, cfg.ResetTokenValidity)
		assert.Equal(t, 12, cfg.PasswordMinLength)
		assert.Equal(t, "smtp.example.org", cfg.SMTPHost)
		assert.Equal(t, 587, cfg.SMTPPort)
		assert.Equal(t, "mailer", cfg.SMTPUser)
		assert.Equal(t, "mailerpass", cfg.SMTPPassword)
		assert.Equal(t, "noreply@example.org", cfg.SMTPFrom)
		assert.Equal(t, 10, cfg.AuthRatePerMinute)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrHTTP:     "defaults:1234",
			DatabaseDSN:          "postgres://defaults",
			SecretKey:            "key",
			SessionTokenValidity: 2 * time.Minute,
			ResetTokenValidity:   3 * time.Minute,
			PasswordMinLength:    6,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://defaults", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Minute, cfg.SessionTokenValidity)
		assert.Equal(t, 3*time.Minute, cfg.ResetTokenValidity)
		assert.Equal(t, 6, cfg.PasswordMinLength)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
