package services

import (
	"context"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodService provides methods to interact with the food table
type FoodService interface {
	GetAllFoods(ctx context.Context) ([]models.Food, error)
	// GetCheapFoods retrieves the food priced at or below maxPrice
	GetCheapFoods(ctx context.Context, maxPrice decimal.Decimal) ([]models.Food, error)
	GetFoodByID(ctx context.Context, id uint) (models.Food, error)
	CreateFood(ctx context.Context, input FoodInput) (models.Food, error)
	UpdateFood(ctx context.Context, id uint, input FoodInput) (models.Food, error)
	DeleteFood(ctx context.Context, id uint) error
}

type foodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) FoodService {
	return &foodService{db: db}
}

func (s *foodService) GetAllFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Preload("Category").Scopes(OrderByName).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *foodService) GetCheapFoods(ctx context.Context, maxPrice decimal.Decimal) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Preload("Category").Scopes(Cheap(maxPrice), OrderByName).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id uint) (models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).Preload("Category").First(&food, id).Error; err != nil {
		return models.Food{}, translate(err)
	}
	return food, nil
}

func (s *foodService) CreateFood(ctx context.Context, input FoodInput) (models.Food, error) {
	food, errs := input.Validate()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategory(tx, food.CategoryID, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&food).Error
	})
	if err != nil {
		return models.Food{}, translate(err)
	}
	return s.GetFoodByID(ctx, food.ID)
}

func (s *foodService) UpdateFood(ctx context.Context, id uint, input FoodInput) (models.Food, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Food
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		food, errs := input.Validate()
		if err := ensureCategory(tx, food.CategoryID, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		food.ID = existing.ID
		food.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(&food).Error
	})
	if err != nil {
		return models.Food{}, translate(err)
	}
	return s.GetFoodByID(ctx, id)
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Food{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
