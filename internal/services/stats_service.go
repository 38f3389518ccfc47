package services

import (
	"context"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"gorm.io/gorm"
)

// CatalogStats counts the records of every catalog table
type CatalogStats struct {
	Categories  int64 `json:"categories"`
	Ingredients int64 `json:"ingredients"`
	Cocktails   int64 `json:"cocktails"`
	Foods       int64 `json:"foods"`
	WaterPipes  int64 `json:"water_pipes"`
}

// IsEmpty reports whether nothing at all has been stored yet
func (s CatalogStats) IsEmpty() bool {
	return s.Categories+s.Ingredients+s.Cocktails+s.Foods+s.WaterPipes == 0
}

// StatsService backs the administration dashboard
type StatsService interface {
	GetCatalogStats(ctx context.Context) (CatalogStats, error)
}

type statsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

func (s *statsService) GetCatalogStats(ctx context.Context) (CatalogStats, error) {
	var stats CatalogStats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Category{}, &stats.Categories},
		{&models.CocktailIngredient{}, &stats.Ingredients},
		{&models.Cocktail{}, &stats.Cocktails},
		{&models.Food{}, &stats.Foods},
		{&models.WaterPipe{}, &stats.WaterPipes},
	}
	db := s.db.WithContext(ctx)
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return CatalogStats{}, err
		}
	}
	return stats, nil
}
