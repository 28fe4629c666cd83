package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables (optionally via a .env file loaded in main).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig describes where catalog state lives on disk.
//
// DataDir holds items.json and metadata.json. UploadDir is the root of the
// uploaded-image tree; per-item directories live under UploadDir/items/<id>.
// PublicBasePath is the site-relative prefix those files are served under.
type StorageConfig struct {
	DataDir        string
	UploadDir      string
	PublicBasePath string
	MaxUploadBytes int64
}

type AuthConfig struct {
	AdminPassword    string
	JWTSecret        string
	TokenExpiryHours int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Antiques Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			DataDir:        getEnv("DATA_DIR", "data"),
			UploadDir:      getEnv("UPLOAD_DIR", filepath.Join("assets", "uploaded")),
			PublicBasePath: getEnv("PUBLIC_BASE_PATH", "/assets/uploaded"),
			MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10<<20), // 10 MiB
		},
		Auth: AuthConfig{
			AdminPassword:    getEnv("ADMIN_PASSWORD", "admin123"),
			JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			TokenExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical config values.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Auth.AdminPassword == "admin123" {
			return fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
	}
	if c.Storage.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

// ItemsFile is the path of the JSON array holding the whole catalog.
func (c *Config) ItemsFile() string {
	return filepath.Join(c.Storage.DataDir, "items.json")
}

// MetadataFile is the path of the JSON document holding the
// category/period/condition lists.
func (c *Config) MetadataFile() string {
	return filepath.Join(c.Storage.DataDir, "metadata.json")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
