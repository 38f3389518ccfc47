package main

import (
	"os"

	_ "github.com/franciscosanchezn/gin-bar-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-bar-api/internal/cli"
	"github.com/franciscosanchezn/gin-bar-api/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Bar API
// @version 1.0
// @description Public bar menus and the administration API for the bar catalog
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token from /oauth/token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}
