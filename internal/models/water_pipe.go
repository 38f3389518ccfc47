package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WaterPipe represents a shisha offer with its flavour and tobacco strength
type WaterPipe struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"size:50;not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Flavour    string          `json:"flavour" gorm:"size:150;not null"`
	Tobacco    Tobacco         `json:"tobacco" gorm:"size:7;not null;index"`
	CategoryID uint            `json:"category_id" gorm:"not null;index"`
	Category   *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (WaterPipe) TableName() string {
	return "water_pipes"
}

func (w WaterPipe) GetPrice() decimal.Decimal {
	return w.Price
}

func (w WaterPipe) String() string {
	return fmt.Sprintf("%s - Price: %s$ - Flavour: %s - Tobacco: %s", w.Name, w.Price.StringFixed(2), w.Flavour, w.Tobacco)
}
