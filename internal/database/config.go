package database

import (
	"fmt"
	"strings"
)

// sqlitePragmas make a connection wait on a file locked by another process
// (the server and a CLI command sharing bar.sqlite) instead of failing at once
const sqlitePragmas = "_busy_timeout=5000"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		if c.Path == "" {
			return ""
		}
		separator := "?"
		if strings.Contains(c.Path, "?") {
			separator = "&"
		}
		return c.Path + separator + sqlitePragmas
	default:
		return ""
	}
}

// InMemory reports whether the configuration points at a private in-memory SQLite database
func (c *DatabaseConfig) InMemory() bool {
	driver := strings.ToLower(c.Driver)
	if driver != "sqlite" && driver != "" {
		return false
	}
	return c.Path == ":memory:" || strings.Contains(c.Path, "mode=memory")
}
