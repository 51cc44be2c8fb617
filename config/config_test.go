package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "chronochef", cfg.DBName)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiAPIURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestGeminiKeyFromFile(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	keyPath := filepath.Join(dir, "gemini_api_key")
	require.NoError(t, os.WriteFile(keyPath, []byte("file-key\n"), 0600))
	t.Setenv("GEMINI_API_KEY_FILE", keyPath)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvironmentDetection(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())
	assert.False(t, IsTest())

	t.Setenv("ENV", "test")
	assert.True(t, IsTest())

	t.Setenv("ENV", "")
	assert.True(t, IsDevelopment())
}
