package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every FOLIOPANEL_ env var that Load() reads.
var allConfigKeys = []string{
	"FOLIOPANEL_LISTEN_ADDR",
	"FOLIOPANEL_DB_PATH",
	"FOLIOPANEL_UPLOAD_DIR",
	"FOLIOPANEL_JWT_SECRET",
	"FOLIOPANEL_SESSION_TTL",
	"FOLIOPANEL_ADMIN_USERNAME",
	"FOLIOPANEL_ADMIN_PASSWORD",
}

// isolateConfigEnv saves and unsets all FOLIOPANEL_ env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3001", cfg.ListenAddr)
	assert.Equal(t, "foliopanel.db", cfg.DBPath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FOLIOPANEL_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("FOLIOPANEL_DB_PATH", "/tmp/test.db")
	t.Setenv("FOLIOPANEL_UPLOAD_DIR", "/tmp/uploads")
	t.Setenv("FOLIOPANEL_JWT_SECRET", "s3cret")
	t.Setenv("FOLIOPANEL_SESSION_TTL", "1h")
	t.Setenv("FOLIOPANEL_ADMIN_USERNAME", "owner")
	t.Setenv("FOLIOPANEL_ADMIN_PASSWORD", "hunter2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "owner", cfg.AdminUsername)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FOLIOPANEL_SESSION_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NonPositiveSessionTTL(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FOLIOPANEL_SESSION_TTL", "-5m")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EmptySecretFallsBack(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FOLIOPANEL_JWT_SECRET", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
}
