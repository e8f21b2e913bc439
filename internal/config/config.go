package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// DefaultSegmentDurationMS is the 90-second Whisper segment size.
const DefaultSegmentDurationMS = 90 * 1000

// devUserID is the fixed development subject used when auth is disabled.
const devUserID = "a1b2c3d4-e5f6-7890-1234-567890abcdef"

// Config holds all runtime configuration for the notary service.
type Config struct {
	// Server
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string

	// Database
	DatabaseURL string

	// Transcription
	OpenAIAPIKey      string
	GeminiAPIKey      string
	SegmentDurationMS int
	UploadDir         string

	// Object storage
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Cache
	RedisAddr     string
	RedisPassword string

	// Auth
	AuthSecret   string
	AuthDisabled bool
	DevUserID    uuid.UUID

	// Keycloak admin provisioning
	KeycloakURL           string
	KeycloakRealm         string
	KeycloakAdminUsername string
	KeycloakAdminPassword string
	KeycloakClientID      string
	KeycloakClientSecret  string
}

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Not finding a .env file is fine, variables may be set system-wide.
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads configuration from the environment, applying the same defaults
// the container contract guarantees (port 8000, 300s timeouts).
func Load() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:         getEnvOrDefault("HOST", "0.0.0.0"),
		Port:         getEnvOrDefault("PORT", "8000"),
		ReadTimeout:  getDurationEnv("READ_TIMEOUT_SEC", 300),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT_SEC", 300),
		IdleTimeout:  getDurationEnv("IDLE_TIMEOUT_SEC", 60),
		Environment:  getEnvOrDefault("ENVIRONMENT", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		SegmentDurationMS: getIntEnv("SEGMENT_DURATION_MS", DefaultSegmentDurationMS),
		UploadDir:         getEnvOrDefault("UPLOAD_DIR", os.TempDir()),

		MinioEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnvOrDefault("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnvOrDefault("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnvOrDefault("MINIO_BUCKET", "notary-audio"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AuthSecret:   os.Getenv("AUTH_JWT_SECRET"),
		AuthDisabled: os.Getenv("AUTH_DISABLED") == "true",
		DevUserID:    uuid.MustParse(devUserID),

		KeycloakURL:           os.Getenv("KEYCLOAK_URL"),
		KeycloakRealm:         os.Getenv("OIDC_REALM"),
		KeycloakAdminUsername: os.Getenv("KEYCLOAK_ADMIN_USERNAME"),
		KeycloakAdminPassword: os.Getenv("KEYCLOAK_ADMIN_PASSWORD"),
		KeycloakClientID:      os.Getenv("OIDC_CLIENT_ID"),
		KeycloakClientSecret:  os.Getenv("OIDC_CLIENT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if !cfg.AuthDisabled && cfg.AuthSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is not set (or set AUTH_DISABLED=true for development)")
	}

	return cfg, nil
}

// LoadCLI reads configuration for the offline commands, which only need the
// transcription settings. Unlike Load it does not require a database or auth.
func LoadCLI() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:       getEnvOrDefault("ENVIRONMENT", "development"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		SegmentDurationMS: getIntEnv("SEGMENT_DURATION_MS", DefaultSegmentDurationMS),
		UploadDir:         getEnvOrDefault("UPLOAD_DIR", os.TempDir()),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	return time.Duration(getIntEnv(key, defaultSeconds)) * time.Second
}
