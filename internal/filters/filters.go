// Package filters partitions catalog collections that are already loaded in memory.
package filters

import (
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/shopspring/decimal"
)

// Priced is any catalog item carrying a price
type Priced interface {
	GetPrice() decimal.Decimal
}

// Cheap keeps the items priced at or below maxPrice, preserving their order
func Cheap[T Priced](items []T, maxPrice decimal.Decimal) []T {
	cheap := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetPrice().LessThanOrEqual(maxPrice) {
			cheap = append(cheap, item)
		}
	}
	return cheap
}

// AlcoholBuckets are the base alcohols shown on the cocktail menu. None is not a bucket.
var AlcoholBuckets = []models.BaseAlcohol{
	models.BaseAlcoholGin,
	models.BaseAlcoholRum,
	models.BaseAlcoholVodka,
	models.BaseAlcoholWhisky,
	models.BaseAlcoholTequila,
}

// TobaccoBuckets are the tobacco strengths shown on the water pipe menu
var TobaccoBuckets = []models.Tobacco{
	models.TobaccoLight,
	models.TobaccoDark,
}

// GroupByBaseAlcohol partitions cocktails by exact base alcohol match.
// Every bucket is present, possibly empty; cocktails without a bucket are dropped.
func GroupByBaseAlcohol(cocktails []models.Cocktail) map[models.BaseAlcohol][]models.Cocktail {
	groups := make(map[models.BaseAlcohol][]models.Cocktail, len(AlcoholBuckets))
	for _, bucket := range AlcoholBuckets {
		groups[bucket] = []models.Cocktail{}
	}
	for _, cocktail := range cocktails {
		if bucket, ok := groups[cocktail.BaseAlcohol]; ok {
			groups[cocktail.BaseAlcohol] = append(bucket, cocktail)
		}
	}
	return groups
}

// GroupByTobacco partitions water pipes into the Light and Dark buckets
func GroupByTobacco(pipes []models.WaterPipe) map[models.Tobacco][]models.WaterPipe {
	groups := make(map[models.Tobacco][]models.WaterPipe, len(TobaccoBuckets))
	for _, bucket := range TobaccoBuckets {
		groups[bucket] = []models.WaterPipe{}
	}
	for _, pipe := range pipes {
		if bucket, ok := groups[pipe.Tobacco]; ok {
			groups[pipe.Tobacco] = append(bucket, pipe)
		}
	}
	return groups
}
