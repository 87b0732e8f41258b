package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "kraken.yaml", `
api_key: key
api_secret: a2V5c2VjcmV0
timeout: 15
default_error_message: kraken request failed
verification_tier: 2
rate_limit: true
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "a2V5c2VjcmV0", cfg.APISecret)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "kraken request failed", cfg.DefaultErrorMessage)
	assert.Equal(t, uint8(2), cfg.VerificationTier)
	assert.True(t, cfg.RateLimit)
	assert.True(t, cfg.HasCredentials())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "api_key: [unterminated")
	_, err = Load(path)
	assert.Error(t, err)

	path = writeFile(t, "badsecret.yaml", "api_key: key\napi_secret: '***'\n")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPISecret, "a2V5c2VjcmV0")
	t.Setenv(EnvTimeout, "7")
	t.Setenv(EnvTier, "3")
	t.Setenv(EnvRateLimit, "true")
	t.Setenv(EnvDefaultError, "boom")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
	assert.Equal(t, uint8(3), cfg.VerificationTier)
	assert.True(t, cfg.RateLimit)
	assert.Equal(t, "boom", cfg.DefaultErrorMessage)
}

func TestFromEnvFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPISecret, "")
	os.Unsetenv(EnvAPIKey)
	os.Unsetenv(EnvAPISecret)
	path := writeFile(t, ".env", "KRAKEN_API_KEY=file-key\nKRAKEN_API_SECRET=a2V5c2VjcmV0\n")

	cfg, err := FromEnv(path, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "a2V5c2VjcmV0", cfg.APISecret)
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")
	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is public only", Config{}, false},
		{"negative timeout", Config{Timeout: -1}, true},
		{"secret without key", Config{APISecret: "a2V5c2VjcmV0"}, true},
		{"bad tier", Config{VerificationTier: 4}, true},
		{"rate limit without tier", Config{RateLimit: true}, true},
		{"full", Config{APIKey: "k", APISecret: "a2V5c2VjcmV0", VerificationTier: 1, RateLimit: true}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
