package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-bar-api/internal/database"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string        `json:"jwt_secret"`
	Session   SessionConfig `json:"session"`

	// Menu policy
	CheapCocktailPrice decimal.Decimal `json:"cheap_cocktail_price"`
	CheapFoodPrice     decimal.Decimal `json:"cheap_food_price"`

	// SeedFile is a YAML catalog loaded into an empty database; "default" uses the built-in one
	SeedFile string `json:"seed_file"`

	Contact Contact `json:"contact"`
}

// SessionConfig controls the admin session cookie
type SessionConfig struct {
	Lifetime     time.Duration `json:"lifetime"`
	CookieName   string        `json:"cookie_name"`
	CookieSecure bool          `json:"cookie_secure"`
}

// Contact is what the public contact page shows
type Contact struct {
	BarName string `json:"bar_name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, Database: %s, LogLevel: %s, JWTSecret: [REDACTED], SessionLifetime: %s, CheapCocktailPrice: %s, CheapFoodPrice: %s, SeedFile: %s}",
		c.Environment, c.Port, c.Host, c.Database.String(), c.LogLevel, c.Session.Lifetime,
		c.CheapCocktailPrice.StringFixed(2), c.CheapFoodPrice.StringFixed(2), c.SeedFile)
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates numeric values, durations and price thresholds
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	lifetime, err := time.ParseDuration(GetEnvWithDefault("SESSION_LIFETIME", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME: %w", err)
	}

	cheapCocktail, err := getEnvAsPrice("CHEAP_COCKTAIL_PRICE", "8.00")
	if err != nil {
		return nil, err
	}
	cheapFood, err := getEnvAsPrice("CHEAP_FOOD_PRICE", "10.00")
	if err != nil {
		return nil, err
	}

	config := &Config{
		Environment: GetEnvWithDefault("APP_ENV", "development"),
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		Database: database.DatabaseConfig{
			Driver:   strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite")),
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "bar"),
			Password: GetEnvWithDefault("DB_PASSWORD", "password"),
			Name:     GetEnvWithDefault("DB_NAME", "bar"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "bar.sqlite"),
		},
		LogLevel:  GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret: GetEnvWithDefault("JWT_SECRET", "secret"),
		Session: SessionConfig{
			Lifetime:     lifetime,
			CookieName:   GetEnvWithDefault("SESSION_COOKIE_NAME", "bar_session"),
			CookieSecure: GetEnvAsType("SESSION_COOKIE_SECURE", false),
		},
		CheapCocktailPrice: cheapCocktail,
		CheapFoodPrice:     cheapFood,
		SeedFile:           GetEnvWithDefault("SEED_FILE", ""),
		Contact: Contact{
			BarName: GetEnvWithDefault("CONTACT_BAR_NAME", "The Copper Still"),
			Address: GetEnvWithDefault("CONTACT_ADDRESS", "12 Harbour Street"),
			Phone:   GetEnvWithDefault("CONTACT_PHONE", "+00 000 000 000"),
			Email:   GetEnvWithDefault("CONTACT_EMAIL", "hello@copperstill.example"),
			Hours:   GetEnvWithDefault("CONTACT_HOURS", "Tue-Sun 18:00-02:00"),
		},
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// getEnvAsPrice reads a positive decimal threshold
func getEnvAsPrice(key, defaultValue string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(GetEnvWithDefault(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid %s: must be positive", key)
	}
	return price, nil
}

// ParseLogLevel resolves LOG_LEVEL, falling back to the environment default
func (c *Config) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return LevelForEnvironment(c.Environment)
	}
	return level
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
