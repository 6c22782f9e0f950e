package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the market-data provider, and the result cache.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	PROVIDER_TIMEOUT_SECONDS=30
//	PROVIDER_MAX_PARALLEL=4
//	CACHE_TTL_SECONDS=30
//	CACHE_MAX_ENTRIES=128
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Market-data provider settings
	Cache    CacheConfig    // Aggregation result cache settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how the market-data provider is reached.
//
// Fields:
//   - BaseURL: root URL of the provider API.
//   - Timeout: per-request HTTP timeout.
//   - MaxParallel: upper bound on concurrent per-symbol requests within one
//     batched history call.
type ProviderConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxParallel int
}

// CacheConfig bounds the advisory memoization of aggregation results.
//
// Fields:
//   - TTL: how long a cached table stays valid after insertion.
//   - MaxEntries: maximum number of cached input tuples.
type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PROVIDER_MAX_PARALLEL", 4)

	viper.SetDefault("CACHE_TTL_SECONDS", 30)
	viper.SetDefault("CACHE_MAX_ENTRIES", 128)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			BaseURL:     viper.GetString("PROVIDER_BASE_URL"),
			Timeout:     time.Duration(viper.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second,
			MaxParallel: viper.GetInt("PROVIDER_MAX_PARALLEL"),
		},
		Cache: CacheConfig{
			TTL:        time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
			MaxEntries: viper.GetInt("CACHE_MAX_ENTRIES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing or degenerate, avoiding unexpected runtime
// failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT_SECONDS")
	}
	if AppConfig.Provider.MaxParallel < 1 {
		missing = append(missing, "PROVIDER_MAX_PARALLEL")
	}
	if AppConfig.Cache.TTL <= 0 {
		missing = append(missing, "CACHE_TTL_SECONDS")
	}
	if AppConfig.Cache.MaxEntries < 1 {
		missing = append(missing, "CACHE_MAX_ENTRIES")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
