package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CascadeResult reports how many dependent records went with a deleted category
type CascadeResult struct {
	Cocktails  int64 `json:"cocktails"`
	Foods      int64 `json:"foods"`
	WaterPipes int64 `json:"water_pipes"`
}

// CategoryService provides methods to interact with the category table
type CategoryService interface {
	// GetAllCategories retrieves all categories ordered by name
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	// GetCategoryByID retrieves a category by its ID
	GetCategoryByID(ctx context.Context, id uint) (models.Category, error)
	// CreateCategory validates the input and stores a new category
	CreateCategory(ctx context.Context, input CategoryInput) (models.Category, error)
	// UpdateCategory validates the input and overwrites an existing category
	UpdateCategory(ctx context.Context, id uint, input CategoryInput) (models.Category, error)
	// DeleteCategory deletes a category together with every cocktail, food and water pipe in it
	DeleteCategory(ctx context.Context, id uint) (CascadeResult, error)
}

type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{db: db}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Scopes(OrderByName).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return models.Category{}, translate(err)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, input CategoryInput) (models.Category, error) {
	category, errs := input.Validate()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueName(tx, &models.Category{}, category.Name, 0, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		return tx.Create(&category).Error
	})
	if err != nil {
		return models.Category{}, translate(err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, input CategoryInput) (models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		cleaned, errs := input.Validate()
		if err := ensureUniqueName(tx, &models.Category{}, cleaned.Name, id, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		category.Name = cleaned.Name
		return tx.Save(&category).Error
	})
	if err != nil {
		return models.Category{}, translate(err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) (CascadeResult, error) {
	var result CascadeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}

		unlink := fmt.Sprintf("DELETE FROM %s WHERE cocktail_id IN (SELECT id FROM cocktails WHERE category_id = ?)", models.IngredientLinkTable)
		if err := tx.Exec(unlink, id).Error; err != nil {
			return fmt.Errorf("unlink cocktail ingredients: %w", err)
		}

		deleted := tx.Where("category_id = ?", id).Delete(&models.Cocktail{})
		if deleted.Error != nil {
			return fmt.Errorf("delete cocktails: %w", deleted.Error)
		}
		result.Cocktails = deleted.RowsAffected

		deleted = tx.Where("category_id = ?", id).Delete(&models.Food{})
		if deleted.Error != nil {
			return fmt.Errorf("delete foods: %w", deleted.Error)
		}
		result.Foods = deleted.RowsAffected

		deleted = tx.Where("category_id = ?", id).Delete(&models.WaterPipe{})
		if deleted.Error != nil {
			return fmt.Errorf("delete water pipes: %w", deleted.Error)
		}
		result.WaterPipes = deleted.RowsAffected

		return tx.Delete(&category).Error
	})
	if err != nil {
		return CascadeResult{}, translate(err)
	}

	log.WithFields(log.Fields{
		"category_id": id,
		"cocktails":   result.Cocktails,
		"foods":       result.Foods,
		"water_pipes": result.WaterPipes,
	}).Info("Category deleted with dependent records")
	return result, nil
}
