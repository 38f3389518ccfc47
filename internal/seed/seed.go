// Package seed loads catalog fixtures from YAML through the validated service path.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the YAML layout of a fixture file. References between
// entries are by name.
type Catalog struct {
	Categories []struct {
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Ingredients []string       `yaml:"ingredients"`
	Cocktails   []CocktailItem `yaml:"cocktails"`
	Food        []FoodItem     `yaml:"food"`
	WaterPipes  []PipeItem     `yaml:"water_pipes"`
}

type CocktailItem struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	BaseAlcohol string   `yaml:"base_alcohol"`
	Ingredients []string `yaml:"ingredients"`
	Image       string   `yaml:"image"`
}

type FoodItem struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type PipeItem struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Flavour  string `yaml:"flavour"`
	Tobacco  string `yaml:"tobacco"`
	Category string `yaml:"category"`
}

// Result counts the records created by a seed run
type Result struct {
	Categories  int `json:"categories"`
	Ingredients int `json:"ingredients"`
	Cocktails   int `json:"cocktails"`
	Foods       int `json:"foods"`
	WaterPipes  int `json:"water_pipes"`
}

// Services are the write paths a seed run goes through
type Services struct {
	Categories  services.CategoryService
	Ingredients services.IngredientService
	Cocktails   services.CocktailService
	Foods       services.FoodService
	WaterPipes  services.WaterPipeService
}

// Parse decodes a YAML fixture file
func Parse(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		if err == io.EOF {
			return &catalog, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &catalog, nil
}

// Default returns the catalog embedded in the binary
func Default() *Catalog {
	var catalog Catalog
	if err := yaml.Unmarshal(defaultCatalog, &catalog); err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return &catalog
}

// Load creates every entry of catalog, stopping at the first rejected entry
func Load(ctx context.Context, svc Services, catalog *Catalog) (Result, error) {
	var result Result
	categoryIDs := map[string]uint{}
	ingredientIDs := map[string]uint{}

	for _, item := range catalog.Categories {
		category, err := svc.Categories.CreateCategory(ctx, services.CategoryInput{Name: item.Name})
		if err != nil {
			return result, fmt.Errorf("category %q: %w", item.Name, err)
		}
		categoryIDs[category.Name] = category.ID
		result.Categories++
	}

	for _, name := range catalog.Ingredients {
		ingredient, err := svc.Ingredients.CreateIngredient(ctx, services.IngredientInput{Name: name})
		if err != nil {
			return result, fmt.Errorf("ingredient %q: %w", name, err)
		}
		ingredientIDs[ingredient.Name] = ingredient.ID
		result.Ingredients++
	}

	for _, item := range catalog.Cocktails {
		ids := make([]uint, 0, len(item.Ingredients))
		for _, name := range item.Ingredients {
			id, ok := ingredientIDs[name]
			if !ok {
				return result, fmt.Errorf("cocktail %q: unknown ingredient %q", item.Name, name)
			}
			ids = append(ids, id)
		}
		_, err := svc.Cocktails.CreateCocktail(ctx, services.CocktailInput{
			Name:          item.Name,
			Price:         services.RawPrice(item.Price),
			Description:   item.Description,
			IngredientIDs: ids,
			CategoryID:    categoryIDs[item.Category],
			BaseAlcohol:   item.BaseAlcohol,
			Image:         item.Image,
		})
		if err != nil {
			return result, fmt.Errorf("cocktail %q: %w", item.Name, err)
		}
		result.Cocktails++
	}

	for _, item := range catalog.Food {
		_, err := svc.Foods.CreateFood(ctx, services.FoodInput{
			Name:        item.Name,
			Price:       services.RawPrice(item.Price),
			Description: item.Description,
			CategoryID:  categoryIDs[item.Category],
		})
		if err != nil {
			return result, fmt.Errorf("food %q: %w", item.Name, err)
		}
		result.Foods++
	}

	for _, item := range catalog.WaterPipes {
		_, err := svc.WaterPipes.CreateWaterPipe(ctx, services.WaterPipeInput{
			Name:       item.Name,
			Price:      services.RawPrice(item.Price),
			Flavour:    item.Flavour,
			Tobacco:    item.Tobacco,
			CategoryID: categoryIDs[item.Category],
		})
		if err != nil {
			return result, fmt.Errorf("water pipe %q: %w", item.Name, err)
		}
		result.WaterPipes++
	}

	log.WithFields(log.Fields{
		"categories":  result.Categories,
		"ingredients": result.Ingredients,
		"cocktails":   result.Cocktails,
		"foods":       result.Foods,
		"water_pipes": result.WaterPipes,
	}).Info("Catalog seeded")
	return result, nil
}
