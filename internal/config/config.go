// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Admin credentials for the dashboard. The password is read in
	// plain text from the environment and hashed once at startup.
	AdminEmail    string
	AdminPassword string

	// Valkey (Redis-compatible cache); optional. Empty host disables
	// response caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AllowedOrigins lists the browser origins allowed by CORS,
	// comma-separated in the environment. Empty allows any origin.
	AllowedOrigins []string
}

// Load reads configuration from the environment, first merging in a .env
// file when one exists. Defaults suit development; production refuses to
// start with the default admin password.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments configure the environment
	// directly.
	godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@skillforge.dev"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "changeme"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
	}

	if cfg.Env == "production" {
		if cfg.AdminPassword == "changeme" {
			return nil, fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyEnabled reports whether a Valkey host is configured.
func (c *Config) ValkeyEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated environment value, trimming
// whitespace and dropping empty entries.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
