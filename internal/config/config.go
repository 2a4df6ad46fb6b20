package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// Seed player created at startup.
	SeedUserID   int
	SeedBalance  decimal.Decimal
	SeedCurrency string
}

// Seed player defaults
const (
	DefaultSeedUserID   = 123
	DefaultSeedBalance  = "150.00"
	DefaultSeedCurrency = "USD"
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		SeedCurrency: getEnv("SEED_CURRENCY", DefaultSeedCurrency),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seedUserID, err := strconv.Atoi(getEnv("SEED_USER_ID", strconv.Itoa(DefaultSeedUserID)))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_USER_ID value: %w", err)
	}
	cfg.SeedUserID = seedUserID

	seedBalance, err := decimal.NewFromString(getEnv("SEED_BALANCE", DefaultSeedBalance))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_BALANCE value: %w", err)
	}
	if seedBalance.IsNegative() {
		return nil, fmt.Errorf("SEED_BALANCE must not be negative")
	}
	cfg.SeedBalance = seedBalance

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
