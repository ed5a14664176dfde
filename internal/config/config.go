// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Defaults used when the corresponding environment variable is unset.
// The JWT secret default exists so local development works out of the box;
// production deployments must set FOLIOPANEL_JWT_SECRET.
const (
	DefaultListenAddr = "127.0.0.1:3001"
	DefaultDBPath     = "foliopanel.db"
	DefaultUploadDir  = "uploads"
	DefaultJWTSecret  = "portfolio-secret-key-2024"
	DefaultSessionTTL = 24 * time.Hour

	// Bootstrap credential provisioned at first startup.
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string
	DBPath        string
	UploadDir     string
	JWTSecret     string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables and returns a validated
// Config. Every variable has a development default: FOLIOPANEL_LISTEN_ADDR,
// FOLIOPANEL_DB_PATH, FOLIOPANEL_UPLOAD_DIR, FOLIOPANEL_JWT_SECRET,
// FOLIOPANEL_SESSION_TTL, FOLIOPANEL_ADMIN_USERNAME, FOLIOPANEL_ADMIN_PASSWORD.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:    DefaultListenAddr,
		DBPath:        DefaultDBPath,
		UploadDir:     DefaultUploadDir,
		JWTSecret:     DefaultJWTSecret,
		SessionTTL:    DefaultSessionTTL,
		AdminUsername: DefaultAdminUsername,
		AdminPassword: DefaultAdminPassword,
	}

	if v, ok := os.LookupEnv("FOLIOPANEL_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_UPLOAD_DIR"); ok {
		cfg.UploadDir = v
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_JWT_SECRET"); ok && v != "" {
		cfg.JWTSecret = v
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("FOLIOPANEL_SESSION_TTL has invalid duration %q: %w", v, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("FOLIOPANEL_SESSION_TTL must be positive, got %q", v)
		}
		cfg.SessionTTL = ttl
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_ADMIN_USERNAME"); ok && v != "" {
		cfg.AdminUsername = v
	}
	if v, ok := os.LookupEnv("FOLIOPANEL_ADMIN_PASSWORD"); ok && v != "" {
		cfg.AdminPassword = v
	}

	return cfg, nil
}
