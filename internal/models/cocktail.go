package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// IngredientLinkTable is the join table between cocktails and their ingredients
const IngredientLinkTable = "cocktail_ingredient_links"

// Cocktail represents a drink on the menu
type Cocktail struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	Name        string               `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Price       decimal.Decimal      `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string               `json:"description" gorm:"type:text;not null"`
	Ingredients []CocktailIngredient `json:"ingredients" gorm:"many2many:cocktail_ingredient_links"`
	CategoryID  uint                 `json:"category_id" gorm:"not null;index"`
	Category    *Category            `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	BaseAlcohol BaseAlcohol          `json:"base_alcohol" gorm:"size:9;not null;index"`
	Image       *string              `json:"image,omitempty" gorm:"size:255"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (Cocktail) TableName() string {
	return "cocktails"
}

func (c Cocktail) GetPrice() decimal.Decimal {
	return c.Price
}

func (c Cocktail) String() string {
	return fmt.Sprintf("%s - Price: %s$ - Base alcohol: %s", c.Name, c.Price.StringFixed(2), c.BaseAlcohol)
}
