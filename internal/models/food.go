package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Food represents a dish on the menu
type Food struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:50;not null;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Food) TableName() string {
	return "foods"
}

func (f Food) GetPrice() decimal.Decimal {
	return f.Price
}

func (f Food) String() string {
	return fmt.Sprintf("%s - Price: %s$", f.Name, f.Price.StringFixed(2))
}
