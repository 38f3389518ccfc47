package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every table owned by the application, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.Category{},
		&models.CocktailIngredient{},
		&models.Cocktail{},
		&models.Food{},
		&models.WaterPipe{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	}
}

// Migrate creates or updates the schema, including the cocktail ingredient join table
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("Database schema up to date")
	return nil
}
