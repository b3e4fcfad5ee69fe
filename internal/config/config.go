package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Env             string
	Port            string
	CORSAllowOrigin string

	// Record store
	StoreDriver   string
	DataFile      string
	SQLitePath    string
	EncryptionKey string
	StoreFailOpen bool

	// Database (postgres driver)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Live prices
	AlphaVantageKey   string
	GoldAPIKey        string
	PriceCacheTTL     time.Duration
	PriceRequestDelay time.Duration
	RequestTimeout    time.Duration

	// Currency rates
	FXLiveRates       bool
	FXRefreshInterval time.Duration

	// Auth
	AuthSecret   string
	AuthTokenTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "3001"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		DataFile:      getEnv("DATA_FILE", "investments.json"),
		SQLitePath:    getEnv("SQLITE_PATH", "investments.db"),
		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finalloc"),
		DBPassword: getEnv("DB_PASSWORD", "finalloc"),
		DBName:     getEnv("DB_NAME", "finalloc"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AlphaVantageKey: os.Getenv("ALPHA_VANTAGE_KEY"),
		GoldAPIKey:      os.Getenv("GOLD_API_KEY"),

		AuthSecret: os.Getenv("AUTH_SECRET"),
	}

	switch config.StoreDriver {
	case DriverFile, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be file, sqlite, or postgres", config.StoreDriver)
	}

	var err error
	if config.StoreFailOpen, err = parseBool("STORE_FAIL_OPEN", true); err != nil {
		return nil, err
	}
	if config.FXLiveRates, err = parseBool("FX_LIVE_RATES", false); err != nil {
		return nil, err
	}
	if config.PriceCacheTTL, err = parseDuration("PRICE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if config.PriceRequestDelay, err = parseDuration("PRICE_REQUEST_DELAY", time.Second); err != nil {
		return nil, err
	}
	if config.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if config.FXRefreshInterval, err = parseDuration("FX_REFRESH_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if config.FXRefreshInterval == 0 {
		return nil, fmt.Errorf("FX_REFRESH_INTERVAL must be positive")
	}
	if config.AuthTokenTTL, err = parseDuration("AUTH_TOKEN_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}

	return config, nil
}

// EncryptionEnabled reports whether the file store should encrypt documents at rest.
func (c *Config) EncryptionEnabled() bool {
	return c.EncryptionKey != ""
}

// AuthEnabled reports whether API routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %v", key, d)
	}
	return d, nil
}

func parseBool(key string, defaultValue bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value: must be true, false, 1, or 0, got %q", key, s)
	}
}
