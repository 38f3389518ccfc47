// Package cli exposes the bar service as a cobra command tree.
package cli

import (
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/franciscosanchezn/gin-bar-api/internal/database"
	"github.com/franciscosanchezn/gin-bar-api/internal/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "gin-bar-api",
	Short:         "Bar catalog service",
	Long:          "Serves the public bar menus and the administration API for categories, cocktails, food and water pipes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		return err
	}
	return nil
}

// loadConfig reads the configuration and aligns every package logger with its level
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	level := cfg.ParseLogLevel()
	log.SetLevel(level)
	database.SetLogLevel(level)
	middleware.SetLogLevel(level)
	return cfg, nil
}

// openDatabase connects and migrates the schema
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// bootstrap is the common prologue of every command touching the database
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
