package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Blob storage for rendered report artifacts.
	GCSBucket          string
	GCSCredentialsFile string

	// Logo fetch guards for report rendering.
	LogoFetchTimeout time.Duration
	LogoMaxBytes     int64

	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "dukaanbook-backend")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("LOGO_FETCH_TIMEOUT", "5s")
	viper.SetDefault("LOGO_MAX_BYTES", 5*1024*1024)
	viper.SetDefault("RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = viper.GetDuration("JWT_EXPIRY_DURATION")
	if cfg.JWTExpiryDuration <= 0 {
		cfg.JWTExpiryDuration = time.Hour
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GCSBucket = viper.GetString("GCS_BUCKET")
	if cfg.GCSBucket == "" {
		log.Println("Warning: GCS_BUCKET environment variable not set. Report exports will fail.")
	}
	cfg.GCSCredentialsFile = viper.GetString("GCS_CREDENTIALS_FILE")

	cfg.LogoFetchTimeout = viper.GetDuration("LOGO_FETCH_TIMEOUT")
	if cfg.LogoFetchTimeout <= 0 {
		cfg.LogoFetchTimeout = 5 * time.Second
	}
	cfg.LogoMaxBytes = viper.GetInt64("LOGO_MAX_BYTES")
	if cfg.LogoMaxBytes <= 0 {
		cfg.LogoMaxBytes = 5 * 1024 * 1024
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
