package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	require.Equal(t, "http://localhost:3001", cfg.BackendURL)
	require.Equal(t, "http://localhost:3001/auth/callback", cfg.SSORedirectURI)
	require.Equal(t, "watchasset.db", cfg.DatabaseFile)
	require.Equal(t, 3001, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.watchasset.example")
	t.Setenv("FRONTEND_URL", "https://watchasset.example")
	t.Setenv("PORT", "8080")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg := LoadConfig()

	require.Equal(t, "https://api.watchasset.example", cfg.BackendURL)
	require.Equal(t, "https://watchasset.example", cfg.FrontendURL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "https://api.watchasset.example/auth/callback", cfg.SSORedirectURI)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		SSOBaseURL:      "https://sso.example.com",
		SSOClientID:     "watchasset-web",
		SSOClientSecret: "super-secret",
	}
	require.NoError(t, valid.Validate())

	t.Run("missing base url", func(t *testing.T) {
		cfg := valid
		cfg.SSOBaseURL = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("missing client id", func(t *testing.T) {
		cfg := valid
		cfg.SSOClientID = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("missing client secret stops startup", func(t *testing.T) {
		cfg := valid
		cfg.SSOClientSecret = ""
		require.Error(t, cfg.Validate())
	})
}
