// Package config provides configuration management for the payroll service.
// It handles loading and validation of configuration values from environment variables,
// with support for required variables, default values, and collective error reporting.
// In Nest.js, the `@nestjs/config` module serves a similar purpose, often integrating
// with `.env` files and providing a `ConfigService`.
package config

import (
	"fmt"
	// `os` package provides operating system functionalities, like reading environment variables.
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPoolSize     = 2
	maxPoolSize     = 100
	minSecretLength = 16
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxSize      int
	QueryTimeout time.Duration // Upper bound for a single store call
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing JWTs
	TokenDuration time.Duration // Lifetime of issued tokens
	Issuer        string        // `iss` claim of issued tokens
	BcryptCost    int           // Work factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port               string // Port for the HTTP server
	Environment        string // "production" hides internal error details
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

// IsProduction reports whether the service runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as time.Duration.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	if valueDuration <= 0 {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: duration must be positive, got '%s'", key, valueStr))
		return defaultValue
	}
	return valueDuration
}

// getOptionalEnvList splits a comma separated variable, dropping empty items.
func getOptionalEnvList(key string, defaultValue []string) []string {
	raw := getOptionalEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

// clampPoolSize keeps the pool size within reasonable bounds.
func clampPoolSize(size int, errors *[]string) int {
	if size < minPoolSize {
		*errors = append(*errors, fmt.Sprintf("DB_POOL_SIZE (%d) is less than minimum %d", size, minPoolSize))
		return minPoolSize
	}
	if size > maxPoolSize {
		*errors = append(*errors, fmt.Sprintf("DB_POOL_SIZE (%d) is greater than maximum %d", size, maxPoolSize))
		return maxPoolSize
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating environment variables.
// It collects all errors encountered during loading and returns a single error if any exist.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Database Configuration
	dbPool := &PoolConfig{
		User:         getRequiredEnv("DB_USER", &errors),
		Password:     getRequiredEnv("DB_PASSWORD", &errors),
		DBName:       getRequiredEnv("DB_NAME", &errors),
		Host:         getOptionalEnv("DB_HOST", "localhost"),
		Port:         getOptionalEnvInt("DB_PORT", 5432, &errors),
		SSLMode:      getOptionalEnv("DB_SSLMODE", "disable"),
		QueryTimeout: getOptionalEnvDuration("DB_QUERY_TIMEOUT", 5*time.Second, &errors),
	}
	dbPool.MaxSize = clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), &errors)

	// Auth Configuration
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	if jwtSecret != "" && len(jwtSecret) < minSecretLength {
		errors = append(errors, fmt.Sprintf("JWT_SECRET must be at least %d characters long", minSecretLength))
	}
	bcryptCost := getOptionalEnvInt("BCRYPT_COST", 12, &errors)
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		errors = append(errors, fmt.Sprintf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, bcryptCost))
	}
	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errors),
		Issuer:        getOptionalEnv("JWT_ISSUER", "payroll-api"),
		BcryptCost:    bcryptCost,
	}

	// Server Configuration
	serverConfig := &ServerConfig{
		// Server port is a string because it's used directly in the listen address (e.g., ":8080").
		Port:               getOptionalEnv("PORT", "8080"),
		Environment:        getOptionalEnv("APP_ENV", "development"),
		LogLevel:           getOptionalEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getOptionalEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRequests:  getOptionalEnvInt("RATE_LIMIT_REQUESTS", 100, &errors),
		RateLimitWindow:    getOptionalEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute, &errors),
	}
	if serverConfig.RateLimitRequests < 1 {
		errors = append(errors, "RATE_LIMIT_REQUESTS must be at least 1")
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbPool,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
