package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("SESSION_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("IMAGE_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/app", cfg.DatabaseURL)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	require.Equal(t, "secret", cfg.SessionSecret)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "./public/images", cfg.ImageDir)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("PORT", "8081")
	t.Setenv("IMAGE_DIR", "/srv/images")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "/srv/images", cfg.ImageDir)
}

func TestLoadErrors(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("SESSION_SECRET", "")
	_, err = Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("REDIS_DB", "bad")
	_, err = Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("REDIS_DB", "0")
	t.Setenv("PORT", "-1")
	_, err = Load()
	require.Error(t, err)
}
