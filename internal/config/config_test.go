package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStoreEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PASSWORD", "service-role")
	t.Setenv("DB_PORT", "")
	t.Setenv("STUDY_TIMEZONE", "")
	t.Setenv("STUDY_CRON", "")
}

func TestLoadDefaults(t *testing.T) {
	setStoreEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "0 5 0 * * *", cfg.StudyCron)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Contains(t, cfg.DSN(), "host=db.local")
	assert.Contains(t, cfg.DSN(), "password=service-role")
}

func TestLoadMissingStoreEnv(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingEnv))
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "x")
	t.Setenv("DB_HOST", "")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestLoadTimezone(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("STUDY_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Location.String())

	t.Setenv("STUDY_TIMEZONE", "Mars/Olympus")
	_, err = Load()
	assert.Error(t, err)
}

func TestRequireJWT(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.RequireJWT())

	cfg.AccessSecret = []byte("a")
	cfg.RefreshSecret = []byte("r")
	assert.NoError(t, cfg.RequireJWT())
}
