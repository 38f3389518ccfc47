package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CocktailService provides methods to interact with the cocktail table
type CocktailService interface {
	// GetAllCocktails retrieves every cocktail with its ingredients and category
	GetAllCocktails(ctx context.Context) ([]models.Cocktail, error)
	// GetCheapCocktails retrieves the cocktails priced at or below maxPrice
	GetCheapCocktails(ctx context.Context, maxPrice decimal.Decimal) ([]models.Cocktail, error)
	GetCocktailByID(ctx context.Context, id uint) (models.Cocktail, error)
	CreateCocktail(ctx context.Context, input CocktailInput) (models.Cocktail, error)
	UpdateCocktail(ctx context.Context, id uint, input CocktailInput) (models.Cocktail, error)
	DeleteCocktail(ctx context.Context, id uint) error
}

type cocktailService struct {
	db *gorm.DB
}

func NewCocktailService(db *gorm.DB) CocktailService {
	return &cocktailService{db: db}
}

// withRelations preloads ingredients in name order and the category
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredients", OrderByName).Preload("Category")
}

func (s *cocktailService) GetAllCocktails(ctx context.Context) ([]models.Cocktail, error) {
	var cocktails []models.Cocktail
	if err := s.db.WithContext(ctx).Scopes(withRelations, OrderByName).Find(&cocktails).Error; err != nil {
		return nil, err
	}
	return cocktails, nil
}

func (s *cocktailService) GetCheapCocktails(ctx context.Context, maxPrice decimal.Decimal) ([]models.Cocktail, error) {
	var cocktails []models.Cocktail
	if err := s.db.WithContext(ctx).Scopes(withRelations, Cheap(maxPrice), OrderByName).Find(&cocktails).Error; err != nil {
		return nil, err
	}
	return cocktails, nil
}

func (s *cocktailService) GetCocktailByID(ctx context.Context, id uint) (models.Cocktail, error) {
	var cocktail models.Cocktail
	if err := s.db.WithContext(ctx).Scopes(withRelations).First(&cocktail, id).Error; err != nil {
		return models.Cocktail{}, translate(err)
	}
	return cocktail, nil
}

func (s *cocktailService) CreateCocktail(ctx context.Context, input CocktailInput) (models.Cocktail, error) {
	cocktail, errs := input.Validate()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients, err := s.checkReferences(tx, &cocktail, 0, input.IngredientIDs, errs)
		if err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&cocktail).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, &cocktail, ingredients)
	})
	if err != nil {
		return models.Cocktail{}, translate(err)
	}
	return s.GetCocktailByID(ctx, cocktail.ID)
}

func (s *cocktailService) UpdateCocktail(ctx context.Context, id uint, input CocktailInput) (models.Cocktail, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Cocktail
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		cocktail, errs := input.Validate()
		ingredients, err := s.checkReferences(tx, &cocktail, id, input.IngredientIDs, errs)
		if err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		cocktail.ID = existing.ID
		cocktail.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(&cocktail).Error; err != nil {
			return err
		}
		return replaceIngredients(tx, &cocktail, ingredients)
	})
	if err != nil {
		return models.Cocktail{}, translate(err)
	}
	return s.GetCocktailByID(ctx, id)
}

func (s *cocktailService) DeleteCocktail(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cocktail models.Cocktail
		if err := tx.First(&cocktail, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&cocktail).Association("Ingredients").Clear(); err != nil {
			return fmt.Errorf("unlink ingredients: %w", err)
		}
		return tx.Delete(&cocktail).Error
	})
	return translate(err)
}

// checkReferences resolves the category and ingredient ids of a submitted
// cocktail and checks the name is free, recording field errors in errs.
func (s *cocktailService) checkReferences(tx *gorm.DB, cocktail *models.Cocktail, excludeID uint, ingredientIDs []uint, errs validation.Errors) ([]models.CocktailIngredient, error) {
	if err := ensureUniqueName(tx, &models.Cocktail{}, cocktail.Name, excludeID, errs); err != nil {
		return nil, err
	}
	if err := ensureCategory(tx, cocktail.CategoryID, errs); err != nil {
		return nil, err
	}

	ids := uniqueIDs(ingredientIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.CocktailIngredient
	if err := tx.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	if len(ingredients) != len(ids) {
		errs.Add("ingredient_ids", ErrInvalidChoice)
	}
	return ingredients, nil
}

func replaceIngredients(tx *gorm.DB, cocktail *models.Cocktail, ingredients []models.CocktailIngredient) error {
	association := tx.Model(cocktail).Association("Ingredients")
	if len(ingredients) == 0 {
		return association.Clear()
	}
	return association.Replace(ingredients)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
