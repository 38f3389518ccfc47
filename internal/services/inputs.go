package services

import (
	"encoding/json"
	"strings"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
)

// RawPrice keeps a submitted price as text so that numbers, numeric strings
// and garbage all reach the price rule instead of failing at bind time.
type RawPrice string

func (p *RawPrice) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*p = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = RawPrice(s)
	default:
		*p = RawPrice(raw)
	}
	return nil
}

// CategoryInput is the submitted form of a category
type CategoryInput struct {
	Name string `json:"name" form:"name"`
}

func (in CategoryInput) Validate() (models.Category, validation.Errors) {
	errs := validation.Errors{}
	name, err := validation.Name(in.Name, validation.MinNameLength, validation.MaxNameLength)
	errs.Add("name", err)
	return models.Category{Name: name}, errs
}

// IngredientInput is the submitted form of a cocktail ingredient
type IngredientInput struct {
	Name string `json:"name" form:"name"`
}

func (in IngredientInput) Validate() (models.CocktailIngredient, validation.Errors) {
	errs := validation.Errors{}
	name, err := validation.Name(in.Name, validation.MinNameLength, validation.MaxNameLength)
	errs.Add("name", err)
	return models.CocktailIngredient{Name: name}, errs
}

// CocktailInput is the submitted form of a cocktail
type CocktailInput struct {
	Name          string   `json:"name" form:"name"`
	Price         RawPrice `json:"price" form:"price"`
	Description   string   `json:"description" form:"description"`
	IngredientIDs []uint   `json:"ingredient_ids" form:"ingredient_ids"`
	CategoryID    uint     `json:"category_id" form:"category_id"`
	BaseAlcohol   string   `json:"base_alcohol" form:"base_alcohol"`
	Image         string   `json:"image" form:"image"`
}

// Validate checks every field that needs no store access. Ingredient and
// category references are resolved by the service.
func (in CocktailInput) Validate() (models.Cocktail, validation.Errors) {
	errs := validation.Errors{}
	cocktail := models.Cocktail{CategoryID: in.CategoryID}

	var err error
	cocktail.Name, err = validation.Name(in.Name, validation.MinNameLength, validation.MaxNameLength)
	errs.Add("name", err)
	cocktail.Price, err = validation.Price(string(in.Price))
	errs.Add("price", err)
	cocktail.Description, err = validation.Required(in.Description, 0)
	errs.Add("description", err)
	cocktail.BaseAlcohol, err = models.ParseBaseAlcohol(in.BaseAlcohol)
	errs.Add("base_alcohol", err)
	if in.CategoryID == 0 {
		errs.Add("category_id", validation.ErrRequired)
	}
	if image := strings.TrimSpace(in.Image); image != "" {
		cocktail.Image = &image
	}
	return cocktail, errs
}

// FoodInput is the submitted form of a food item
type FoodInput struct {
	Name        string   `json:"name" form:"name"`
	Price       RawPrice `json:"price" form:"price"`
	Description string   `json:"description" form:"description"`
	CategoryID  uint     `json:"category_id" form:"category_id"`
}

func (in FoodInput) Validate() (models.Food, validation.Errors) {
	errs := validation.Errors{}
	food := models.Food{CategoryID: in.CategoryID}

	var err error
	food.Name, err = validation.Name(in.Name, validation.MinNameLength, validation.MaxNameLength)
	errs.Add("name", err)
	food.Price, err = validation.Price(string(in.Price))
	errs.Add("price", err)
	food.Description, err = validation.Required(in.Description, 0)
	errs.Add("description", err)
	if in.CategoryID == 0 {
		errs.Add("category_id", validation.ErrRequired)
	}
	return food, errs
}

// WaterPipeInput is the submitted form of a water pipe
type WaterPipeInput struct {
	Name       string   `json:"name" form:"name"`
	Price      RawPrice `json:"price" form:"price"`
	Flavour    string   `json:"flavour" form:"flavour"`
	Tobacco    string   `json:"tobacco" form:"tobacco"`
	CategoryID uint     `json:"category_id" form:"category_id"`
}

func (in WaterPipeInput) Validate() (models.WaterPipe, validation.Errors) {
	errs := validation.Errors{}
	pipe := models.WaterPipe{CategoryID: in.CategoryID}

	var err error
	pipe.Name, err = validation.Name(in.Name, validation.MinNameLength, validation.MaxNameLength)
	errs.Add("name", err)
	pipe.Price, err = validation.Price(string(in.Price))
	errs.Add("price", err)
	pipe.Flavour, err = validation.Required(in.Flavour, validation.MaxFlavourLength)
	errs.Add("flavour", err)
	pipe.Tobacco, err = models.ParseTobacco(in.Tobacco)
	errs.Add("tobacco", err)
	if in.CategoryID == 0 {
		errs.Add("category_id", validation.ErrRequired)
	}
	return pipe, errs
}
