package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("test-signing-key"))

	t.Setenv("SIGNING_KEY", key)
	t.Setenv("SERVER_ADDR", "0.0.0.0:9000")
	t.Setenv("DB_NAME", "parlor_test")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://parlor.example.com")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.ServerAddr)
	assert.Equal(t, []byte("test-signing-key"), cfg.SigningKey)
	assert.Equal(t, []string{"http://localhost:3000", "https://parlor.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Production)
	assert.Equal(t, "parlor_test", cfg.Database.Name)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("SIGNING_KEY", base64.StdEncoding.EncodeToString([]byte("key")))

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.ServerAddr)
	assert.Equal(t, "parlor", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Production)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestFromEnv_MissingSigningKey(t *testing.T) {
	t.Setenv("SIGNING_KEY", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_BadSigningKey(t *testing.T) {
	t.Setenv("SIGNING_KEY", "not base64!!!")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("SIGNING_KEY", base64.StdEncoding.EncodeToString([]byte("key")))
	t.Setenv("DB_PORT", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}
