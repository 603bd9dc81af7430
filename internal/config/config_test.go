package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "3306", cfg.Database.Port)
	require.Equal(t, "learning_app", cfg.Database.Database)
	require.Equal(t, 5*time.Minute, cfg.JWT.TokenExpiry)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "http://localhost:8080", cfg.SMTP.BaseURL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "override-secret")
	t.Setenv("TOKEN_EXPIRY", "10m")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg := LoadConfig()

	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "override-secret", cfg.JWT.Secret)
	require.Equal(t, 10*time.Minute, cfg.JWT.TokenExpiry)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "not-a-duration")

	cfg := LoadConfig()
	require.Equal(t, 5*time.Minute, cfg.JWT.TokenExpiry)
}
