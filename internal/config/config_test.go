package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvWithDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/site")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("EMAIL_USER", "bot@example.com")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/site", cfg.DatabaseURL)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 15*time.Minute, cfg.Session.PruneInterval)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.Host)
	assert.Equal(t, 587, cfg.Email.Port)
	assert.Equal(t, "./uploads", cfg.Uploads.Dir)
	assert.False(t, cfg.Email.Enabled(), "password missing, email must stay disabled")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/site")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "8080")

	cfg, err := Load([]string{"-d", "postgres://flag/site", "-port", "9090"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://flag/site", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/site")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SESSION_MAX_AGE", "2h")
	t.Setenv("EMAIL_PORT", "2525")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 2525, cfg.Email.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
	assert.ErrorIs(t, err, ErrNoSessionSecret)
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := Load([]string{"-unknown"})
	assert.Error(t, err)
}

func TestEmailEnabled(t *testing.T) {
	assert.True(t, Email{User: "u", Password: "p"}.Enabled())
	assert.False(t, Email{User: "u"}.Enabled())
	assert.False(t, Email{}.Enabled())
}
