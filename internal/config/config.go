package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Database  DatabaseConfig
	Audit     AuditConfig
	JWT       JWTConfig
	Platform  PlatformConfig
	RateLimit RateLimitConfig
	// ReconcileSchedule is a cron spec; "off" disables the receipt reconciler
	ReconcileSchedule string
	AllowedOrigins    string
}

// DatabaseConfig holds document store configuration
type DatabaseConfig struct {
	URL  string
	Name string
	// URLSet and NameSet report whether the values came from the environment
	URLSet  bool
	NameSet bool
}

// AuditConfig holds the SQL audit store configuration
type AuditConfig struct {
	Driver string
	DSN    string
}

// Enabled reports whether an audit store is configured
func (a AuditConfig) Enabled() bool {
	return a.Driver != "" && a.DSN != ""
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	BcryptCost int
}

// PlatformConfig holds marketplace operator settings
type PlatformConfig struct {
	Phone   string
	FeeRate float64
}

// RateLimitConfig holds limiter budgets per minute
type RateLimitConfig struct {
	PerMinute     int
	AuthPerMinute int
	RedisURL      string
}

// Load reads configuration from .env file and environment variables
func Load(log *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	hours, err := getInt("ACCESS_TOKEN_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cost, err := getInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %d (must be between %d and %d)", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	feeRate, err := strconv.ParseFloat(getEnv("PLATFORM_FEE_RATE", "0.05"), 64)
	if err != nil || feeRate < 0 || feeRate > 1 {
		return nil, fmt.Errorf("invalid PLATFORM_FEE_RATE: must be a fraction between 0 and 1")
	}
	perMinute, err := getInt("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		return nil, err
	}
	authPerMinute, err := getInt("AUTH_RATE_LIMIT_PER_MINUTE", 5)
	if err != nil {
		return nil, err
	}

	audit := AuditConfig{
		Driver: strings.ToLower(getEnv("AUDIT_DB_DRIVER", "")),
		DSN:    getEnv("AUDIT_DB_DSN", ""),
	}
	if audit.Driver != "" && audit.Driver != "mysql" && audit.Driver != "postgres" {
		return nil, fmt.Errorf("invalid AUDIT_DB_DRIVER: '%s' (must be 'mysql' or 'postgres')", audit.Driver)
	}

	cfg := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "8000"),
		Database: DatabaseConfig{
			URL:     getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			Name:    getEnv("DATABASE_NAME", "takuezy"),
			URLSet:  os.Getenv("DATABASE_URL") != "",
			NameSet: os.Getenv("DATABASE_NAME") != "",
		},
		Audit: audit,
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "devsecret"),
			AccessTTL:  time.Duration(hours) * time.Hour,
			BcryptCost: cost,
		},
		Platform: PlatformConfig{
			Phone:   getEnv("PLATFORM_PHONE", "+263 778 864 239"),
			FeeRate: feeRate,
		},
		RateLimit: RateLimitConfig{
			PerMinute:     perMinute,
			AuthPerMinute: authPerMinute,
			RedisURL:      getEnv("REDIS_URL", ""),
		},
		ReconcileSchedule: getEnv("RECONCILE_SCHEDULE", "@every 5m"),
		AllowedOrigins:    getEnv("ALLOWED_ORIGINS", ""),
	}

	if cfg.IsProd() && cfg.JWT.Secret == "devsecret" {
		log.Warn("⚠️ JWT_SECRET is the development default")
	}

	log.WithField("mode", appMode).Info("✅ Configuration loaded successfully")
	return cfg, nil
}

// Default returns the development configuration without reading the environment
func Default() *Config {
	return &Config{
		AppMode: "dev",
		Port:    "8000",
		Database: DatabaseConfig{
			URL:  "mongodb://localhost:27017",
			Name: "takuezy",
		},
		JWT: JWTConfig{
			Secret:     "devsecret",
			AccessTTL:  24 * time.Hour,
			BcryptCost: 12,
		},
		Platform: PlatformConfig{
			Phone:   "+263 778 864 239",
			FeeRate: 0.05,
		},
		RateLimit: RateLimitConfig{
			PerMinute:     100,
			AuthPerMinute: 5,
		},
		ReconcileSchedule: "@every 5m",
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: '%s' (must be a positive integer)", key, raw)
	}
	return n, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// ReconcilerEnabled reports whether the receipt reconciler should be scheduled
func (c *Config) ReconcilerEnabled() bool {
	return c.ReconcileSchedule != "" && c.ReconcileSchedule != "off"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		return "*"
	}
	return c.AllowedOrigins
}
