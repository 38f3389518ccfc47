package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"gorm.io/gorm"
)

// IngredientService provides methods to interact with the cocktail ingredient table
type IngredientService interface {
	GetAllIngredients(ctx context.Context) ([]models.CocktailIngredient, error)
	GetIngredientByID(ctx context.Context, id uint) (models.CocktailIngredient, error)
	CreateIngredient(ctx context.Context, input IngredientInput) (models.CocktailIngredient, error)
	UpdateIngredient(ctx context.Context, id uint, input IngredientInput) (models.CocktailIngredient, error)
	// DeleteIngredient removes the ingredient from every cocktail, then deletes it
	DeleteIngredient(ctx context.Context, id uint) error
}

type ingredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients(ctx context.Context) ([]models.CocktailIngredient, error) {
	var ingredients []models.CocktailIngredient
	if err := s.db.WithContext(ctx).Scopes(OrderByName).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (models.CocktailIngredient, error) {
	var ingredient models.CocktailIngredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return models.CocktailIngredient{}, translate(err)
	}
	return ingredient, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, input IngredientInput) (models.CocktailIngredient, error) {
	ingredient, errs := input.Validate()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueName(tx, &models.CocktailIngredient{}, ingredient.Name, 0, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		return tx.Create(&ingredient).Error
	})
	if err != nil {
		return models.CocktailIngredient{}, translate(err)
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, input IngredientInput) (models.CocktailIngredient, error) {
	var ingredient models.CocktailIngredient
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ingredient, id).Error; err != nil {
			return err
		}
		cleaned, errs := input.Validate()
		if err := ensureUniqueName(tx, &models.CocktailIngredient{}, cleaned.Name, id, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		ingredient.Name = cleaned.Name
		return tx.Save(&ingredient).Error
	})
	if err != nil {
		return models.CocktailIngredient{}, translate(err)
	}
	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient models.CocktailIngredient
		if err := tx.First(&ingredient, id).Error; err != nil {
			return err
		}
		unlink := fmt.Sprintf("DELETE FROM %s WHERE cocktail_ingredient_id = ?", models.IngredientLinkTable)
		if err := tx.Exec(unlink, id).Error; err != nil {
			return fmt.Errorf("unlink ingredient: %w", err)
		}
		return tx.Delete(&ingredient).Error
	})
	return translate(err)
}
