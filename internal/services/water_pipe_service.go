package services

import (
	"context"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WaterPipeService provides methods to interact with the water pipe table
type WaterPipeService interface {
	GetAllWaterPipes(ctx context.Context) ([]models.WaterPipe, error)
	GetWaterPipeByID(ctx context.Context, id uint) (models.WaterPipe, error)
	CreateWaterPipe(ctx context.Context, input WaterPipeInput) (models.WaterPipe, error)
	UpdateWaterPipe(ctx context.Context, id uint, input WaterPipeInput) (models.WaterPipe, error)
	DeleteWaterPipe(ctx context.Context, id uint) error
}

type waterPipeService struct {
	db *gorm.DB
}

func NewWaterPipeService(db *gorm.DB) WaterPipeService {
	return &waterPipeService{db: db}
}

func (s *waterPipeService) GetAllWaterPipes(ctx context.Context) ([]models.WaterPipe, error) {
	var pipes []models.WaterPipe
	if err := s.db.WithContext(ctx).Preload("Category").Scopes(OrderByName).Find(&pipes).Error; err != nil {
		return nil, err
	}
	return pipes, nil
}

func (s *waterPipeService) GetWaterPipeByID(ctx context.Context, id uint) (models.WaterPipe, error) {
	var pipe models.WaterPipe
	if err := s.db.WithContext(ctx).Preload("Category").First(&pipe, id).Error; err != nil {
		return models.WaterPipe{}, translate(err)
	}
	return pipe, nil
}

func (s *waterPipeService) CreateWaterPipe(ctx context.Context, input WaterPipeInput) (models.WaterPipe, error) {
	pipe, errs := input.Validate()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategory(tx, pipe.CategoryID, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&pipe).Error
	})
	if err != nil {
		return models.WaterPipe{}, translate(err)
	}
	return s.GetWaterPipeByID(ctx, pipe.ID)
}

func (s *waterPipeService) UpdateWaterPipe(ctx context.Context, id uint, input WaterPipeInput) (models.WaterPipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WaterPipe
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		pipe, errs := input.Validate()
		if err := ensureCategory(tx, pipe.CategoryID, errs); err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		pipe.ID = existing.ID
		pipe.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(&pipe).Error
	})
	if err != nil {
		return models.WaterPipe{}, translate(err)
	}
	return s.GetWaterPipeByID(ctx, id)
}

func (s *waterPipeService) DeleteWaterPipe(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.WaterPipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
